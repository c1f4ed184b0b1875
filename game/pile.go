package game

// Pile is a shared stock of card instances of a single kind.
// Instances are interchangeable, so internal order is irrelevant.
type Pile struct {
	Kind  CardID
	Cards []Card
}

// TakeTop removes and returns the foremost instance. The second
// return value is false when the pile is empty; callers treat that
// as an expected, recoverable condition.
func (p *Pile) TakeTop() (Card, bool) {
	if len(p.Cards) == 0 {
		return Card{}, false
	}
	top := p.Cards[0]
	p.Cards = p.Cards[1:]
	return top, true
}

// Size returns the number of instances left in the pile
func (p *Pile) Size() int {
	return len(p.Cards)
}
