package component

// Score is the session's point counter. It only ever goes back to zero on
// a death.
type Score struct {
	Value int
}

var ScoreComponent = NewComponentKind[Score]()
