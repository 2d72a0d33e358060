package component

// Input stores the key snapshot sampled once per frame.
type Input struct {
	MoveLeft  bool
	MoveRight bool
	Jump      bool
	Fire      bool
	Quit      bool
	// FirePressed is true only on the frame Fire went down.
	FirePressed bool
}

var InputComponent = NewComponentKind[Input]()
