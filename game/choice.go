package game

// ChoiceKind identifies the shape of input a pending choice expects
type ChoiceKind string

const (
	ChoiceTrashFromHand ChoiceKind = "trash-from-hand"
)

// ChoiceSpec describes what a suspended effect needs from a player
type ChoiceSpec struct {
	Kind            ChoiceKind
	Prompt          string
	Min             int
	Max             int
	EligibleIndices []int
}

// ChoiceResponse carries a player's answer back into a suspended effect
type ChoiceResponse struct {
	Indices []int
}

// RequiredChoice is an outstanding request for a player's input. The
// id is monotonic per player. The resume continuation re-enters the
// effect that suspended; it runs at most once.
type RequiredChoice struct {
	ID int
	ChoiceSpec
	resume func(ChoiceResponse)
}

// allows reports whether a response satisfies the spec's constraints:
// a selection count within Min..Max, every index eligible
func (s ChoiceSpec) allows(resp ChoiceResponse) bool {
	if len(resp.Indices) < s.Min || len(resp.Indices) > s.Max {
		return false
	}
	eligible := map[int]bool{}
	for _, i := range s.EligibleIndices {
		eligible[i] = true
	}
	for _, i := range resp.Indices {
		if !eligible[i] {
			return false
		}
	}
	return true
}

// WaitForChoice registers a pending choice against this player and
// records the continuation to run when a matching response arrives.
// The calling effect returns immediately; nothing blocks.
func (p *Player) WaitForChoice(spec ChoiceSpec, resume func(ChoiceResponse)) {
	choice := RequiredChoice{
		ID:         p.nextChoiceID,
		ChoiceSpec: spec,
		resume:     resume,
	}
	p.nextChoiceID++
	p.RequiredChoices = append(p.RequiredChoices, choice)
}

// ResolveChoice consumes the pending choice with the given id and
// resumes its effect. Unknown or stale ids are ignored; duplicate
// responses cannot resume an effect twice. A response that violates
// the choice's constraints is also ignored and the choice stays
// pending, so the player can answer again. Reports whether a choice
// was resolved.
func (p *Player) ResolveChoice(id int, resp ChoiceResponse) bool {
	for i, choice := range p.RequiredChoices {
		if choice.ID != id {
			continue
		}
		if !choice.allows(resp) {
			return false
		}
		p.RequiredChoices = append(p.RequiredChoices[:i], p.RequiredChoices[i+1:]...)
		choice.resume(resp)
		return true
	}
	return false
}

// AwaitingChoice reports whether any choice is outstanding for this
// player. While true, the player's own play, buy and end-turn
// commands are rejected; the opponent is unaffected.
func (p *Player) AwaitingChoice() bool {
	return len(p.RequiredChoices) > 0
}
