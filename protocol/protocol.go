package protocol

import (
	"encoding/json"
	"fmt"
)

// Cmd represents a client command
type Cmd int

const (
	Null Cmd = iota
	PlayCard
	BuyCard
	EndTurn
	CompleteRequiredAction
)

var cmdNames = []string{
	"null",
	"playCard",
	"buyCard",
	"endTurn",
	"completeRequiredAction",
}

func (c Cmd) String() string {
	if int(c) < 0 || int(c) >= len(cmdNames) {
		return "unknown"
	}
	return cmdNames[c]
}

// ParseCmd maps a wire command name to a Cmd
func ParseCmd(name string) (Cmd, error) {
	for i, n := range cmdNames {
		if n == name && Cmd(i) != Null {
			return Cmd(i), nil
		}
	}
	return Null, fmt.Errorf("unknown command %q", name)
}

func (c Cmd) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Cmd) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	cmd, err := ParseCmd(name)
	if err != nil {
		return err
	}
	*c = cmd
	return nil
}
