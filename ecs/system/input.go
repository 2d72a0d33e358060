package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/miniplatformer/ecs"
	"github.com/milk9111/miniplatformer/ecs/component"
)

// Action is a logical control the player can hold.
type Action int

const (
	ActionMoveLeft Action = iota
	ActionMoveRight
	ActionJump
	ActionFire
	ActionQuit
)

// KeySource reports which actions are held this frame.
type KeySource interface {
	Pressed(a Action) bool
}

// edgeSource is implemented by sources that track key-down edges
// themselves.
type edgeSource interface {
	JustPressed(a Action) bool
}

// KeyState is a fixed snapshot, used by tests and the headless runner.
type KeyState map[Action]bool

func (k KeyState) Pressed(a Action) bool { return k[a] }

// DefaultBindings maps each action to the keyboard keys that trigger it.
func DefaultBindings() map[Action][]ebiten.Key {
	return map[Action][]ebiten.Key{
		ActionMoveLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
		ActionMoveRight: {ebiten.KeyArrowRight, ebiten.KeyD},
		ActionJump:      {ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyZ},
		ActionFire:      {ebiten.KeyX},
		ActionQuit:      {ebiten.KeyEscape},
	}
}

// EbitenKeys reads the live keyboard.
type EbitenKeys struct {
	Bindings map[Action][]ebiten.Key
}

func NewEbitenKeys() *EbitenKeys {
	return &EbitenKeys{Bindings: DefaultBindings()}
}

func (k *EbitenKeys) Pressed(a Action) bool {
	for _, key := range k.Bindings[a] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

func (k *EbitenKeys) JustPressed(a Action) bool {
	for _, key := range k.Bindings[a] {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}

// InputSystem samples the key source once per frame and copies the snapshot
// into every Input component. The quit request is kept on the system itself
// since the player entity may be rebuilt later in the same frame.
type InputSystem struct {
	source   KeySource
	prevFire bool
	quit     bool
}

func NewInputSystem(source KeySource) *InputSystem {
	return &InputSystem{source: source}
}

// SetSource swaps the key source, e.g. between scripted frames.
func (s *InputSystem) SetSource(source KeySource) {
	s.source = source
}

func (s *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var snap component.Input
	if s.source != nil {
		snap.MoveLeft = s.source.Pressed(ActionMoveLeft)
		snap.MoveRight = s.source.Pressed(ActionMoveRight)
		snap.Jump = s.source.Pressed(ActionJump)
		snap.Fire = s.source.Pressed(ActionFire)
		snap.Quit = s.source.Pressed(ActionQuit)
		if edges, ok := s.source.(edgeSource); ok {
			snap.FirePressed = edges.JustPressed(ActionFire)
		} else {
			snap.FirePressed = snap.Fire && !s.prevFire
		}
	}
	s.prevFire = snap.Fire
	s.quit = snap.Quit

	ecs.ForEach(w, component.InputComponent, func(_ ecs.Entity, in *component.Input) {
		*in = snap
	})
}

// QuitRequested reports whether the last sampled snapshot asked to leave.
func (s *InputSystem) QuitRequested() bool {
	return s != nil && s.quit
}
