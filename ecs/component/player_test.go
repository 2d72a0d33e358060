package component

import "testing"

func TestPlayerHandleInput(t *testing.T) {
	tests := []struct {
		name       string
		in         Input
		onGround   bool
		jumpOK     bool
		startFace  Facing
		wantVX     float64
		wantVY     float64
		wantFacing Facing
		wantGround bool
	}{
		{"idle_keeps_facing", Input{}, true, true, FacingLeft, 0, 0, FacingLeft, true},
		{"left", Input{MoveLeft: true}, true, true, FacingRight, -5, 0, FacingLeft, true},
		{"right", Input{MoveRight: true}, true, true, FacingLeft, 5, 0, FacingRight, true},
		{"both_right_wins", Input{MoveLeft: true, MoveRight: true}, true, true, FacingLeft, 5, 0, FacingRight, true},
		{"jump_on_ground", Input{Jump: true}, true, true, FacingRight, 0, -14, FacingRight, false},
		{"jump_in_air", Input{Jump: true}, false, true, FacingRight, 0, 0, FacingRight, false},
		{"jump_disabled", Input{Jump: true}, true, false, FacingRight, 0, 0, FacingRight, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPlayer(5, 14)
			p.OnGround = tc.onGround
			p.JumpEnabled = tc.jumpOK
			p.Facing = tc.startFace
			v := &Velocity{}
			v.X = 3

			in := tc.in
			p.HandleInput(&in, v)

			if v.X != tc.wantVX || v.Y != tc.wantVY {
				t.Fatalf("velocity = (%v,%v), want (%v,%v)", v.X, v.Y, tc.wantVX, tc.wantVY)
			}
			if p.Facing != tc.wantFacing {
				t.Fatalf("facing = %v, want %v", p.Facing, tc.wantFacing)
			}
			if p.OnGround != tc.wantGround {
				t.Fatalf("onGround = %v, want %v", p.OnGround, tc.wantGround)
			}
		})
	}
}
