package protocol

import (
	"encoding/json"
	"testing"

	utils "github.com/ruthmoore/bastion/internal"
)

func TestCmd(t *testing.T) {
	t.Run("wire names round-trip", func(t *testing.T) {
		for _, cmd := range []Cmd{PlayCard, BuyCard, EndTurn, CompleteRequiredAction} {
			parsed, err := ParseCmd(cmd.String())
			utils.AssertNoError(t, err)
			utils.AssertEqual(t, parsed, cmd)
		}
	})

	t.Run("unknown names are rejected", func(t *testing.T) {
		_, err := ParseCmd("discardEverything")
		utils.AssertErrored(t, err)

		_, err = ParseCmd("null")
		utils.AssertErrored(t, err)
	})
}

func TestInboundMessage(t *testing.T) {
	t.Run("decodes a playCard message", func(t *testing.T) {
		data := []byte(`{"command":"playCard","args":{"index":2}}`)

		var msg InboundMessage
		utils.AssertNoError(t, json.Unmarshal(data, &msg))
		utils.AssertEqual(t, msg.Command, PlayCard)
		utils.AssertEqual(t, msg.Args.Index, 2)
	})

	t.Run("decodes a completeRequiredAction message", func(t *testing.T) {
		data := []byte(`{"command":"completeRequiredAction","args":{"id":3,"indices":[0,2]}}`)

		var msg InboundMessage
		utils.AssertNoError(t, json.Unmarshal(data, &msg))
		utils.AssertEqual(t, msg.Command, CompleteRequiredAction)
		utils.AssertEqual(t, msg.Args.ID, 3)
		utils.AssertDeepEqual(t, msg.Args.Indices, []int{0, 2})
	})

	t.Run("rejects a malformed command", func(t *testing.T) {
		data := []byte(`{"command":"shenanigans","args":{}}`)

		var msg InboundMessage
		utils.AssertErrored(t, json.Unmarshal(data, &msg))
	})

	t.Run("the wire cannot impersonate a player", func(t *testing.T) {
		data := []byte(`{"playerID":"someone-else","command":"endTurn","args":{}}`)

		var msg InboundMessage
		utils.AssertNoError(t, json.Unmarshal(data, &msg))
		utils.AssertEqual(t, msg.PlayerID, "")
	})
}
