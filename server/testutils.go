package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	utils "github.com/ruthmoore/bastion/internal"
	"go.uber.org/zap"
)

func newTestServer() *GameServer {
	return NewServer(NewInMemoryRoomStore(), zap.NewNop())
}

func mustMakeJSON(t *testing.T, input interface{}) []byte {
	t.Helper()

	data, err := json.Marshal(input)
	utils.AssertNoError(t, err)
	return data
}

func newCreateRoomRequest(data []byte) *http.Request {
	request, _ := http.NewRequest(http.MethodPost, "/new", bytes.NewBuffer(data))
	return request
}

func newJoinRoomRequest(data []byte) *http.Request {
	request, _ := http.NewRequest(http.MethodPost, "/join", bytes.NewBuffer(data))
	return request
}

func newGetRoomRequest(roomID string) *http.Request {
	request, _ := http.NewRequest(http.MethodGet, "/game/"+roomID, nil)
	return request
}

func decodePendingRoomRes(t *testing.T, body *bytes.Buffer) PendingRoomRes {
	t.Helper()

	var res PendingRoomRes
	utils.AssertNoError(t, json.NewDecoder(body).Decode(&res))
	return res
}
