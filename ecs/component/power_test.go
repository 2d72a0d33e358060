package component

import (
	"errors"
	"testing"
)

func TestPowerApplyEffects(t *testing.T) {
	tests := []struct {
		kind        PowerKind
		speed       float64
		jump        float64
		jumpEnabled bool
		killOnTouch bool
	}{
		{PowerFire, 5, 14, true, true},
		{PowerIce, 5, 14, true, true},
		{PowerJump, 5, 28, true, false},
		{PowerSlippery, 5 * 1.6, 14, false, false},
		{PowerInvincible, 5, 14, true, false},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			p := NewPlayer(5, 14)
			pw := &Power{}
			if err := pw.Apply(p, tc.kind, 8); err != nil {
				t.Fatalf("Apply: %v", err)
			}
			if p.Speed != tc.speed || p.JumpPower != tc.jump {
				t.Fatalf("speed/jump = %v/%v, want %v/%v", p.Speed, p.JumpPower, tc.speed, tc.jump)
			}
			if p.JumpEnabled != tc.jumpEnabled || p.CanKillOnTouch != tc.killOnTouch {
				t.Fatalf("jumpEnabled/kill = %v/%v, want %v/%v", p.JumpEnabled, p.CanKillOnTouch, tc.jumpEnabled, tc.killOnTouch)
			}
			if pw.Kind != tc.kind || pw.Remaining != 8 {
				t.Fatalf("power = %v/%v", pw.Kind, pw.Remaining)
			}
		})
	}
}

func TestPowerApplyReplacesPrevious(t *testing.T) {
	for _, first := range PowerKinds {
		for _, second := range PowerKinds {
			p := NewPlayer(5, 14)
			pw := &Power{}
			if err := pw.Apply(p, first, 8); err != nil {
				t.Fatal(err)
			}
			if err := pw.Apply(p, second, 3); err != nil {
				t.Fatal(err)
			}

			want := NewPlayer(5, 14)
			if err := (&Power{}).Apply(want, second, 3); err != nil {
				t.Fatal(err)
			}
			if *p != *want {
				t.Fatalf("%v then %v left residue: got %+v want %+v", first, second, *p, *want)
			}
			if pw.Kind != second || pw.Remaining != 3 {
				t.Fatalf("%v then %v: power = %+v", first, second, *pw)
			}
		}
	}
}

func TestPowerApplyUnknown(t *testing.T) {
	p := NewPlayer(5, 14)
	pw := &Power{}
	if err := pw.Apply(p, PowerKind(42), 8); !errors.Is(err, ErrUnknownPower) {
		t.Fatalf("expected ErrUnknownPower, got %v", err)
	}
	if err := pw.Apply(p, PowerNone, 8); !errors.Is(err, ErrUnknownPower) {
		t.Fatalf("PowerNone must not be applicable, got %v", err)
	}
	if pw.Active() {
		t.Fatalf("failed apply must not activate a power")
	}
}

func TestPowerTick(t *testing.T) {
	tests := []struct {
		name        string
		remaining   float64
		dt          float64
		wantExpired bool
	}{
		{"partial", 8, 1.0 / 60, false},
		{"exact", 0.5, 0.5, true},
		{"overshoot", 0.1, 1, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for _, kind := range PowerKinds {
				p := NewPlayer(5, 14)
				pw := &Power{}
				if err := pw.Apply(p, kind, tc.remaining); err != nil {
					t.Fatal(err)
				}
				inv := &Invulnerable{}
				expired := pw.Tick(p, inv, tc.dt)
				if expired != tc.wantExpired {
					t.Fatalf("%v: expired = %v, want %v", kind, expired, tc.wantExpired)
				}
				if !tc.wantExpired {
					continue
				}
				if pw.Active() || pw.Remaining != 0 {
					t.Fatalf("%v: power not cleared: %+v", kind, *pw)
				}
				if *p != *NewPlayer(5, 14) {
					t.Fatalf("%v: stats not restored: %+v", kind, *p)
				}
			}
		})
	}
}

func TestPowerClear(t *testing.T) {
	p := NewPlayer(5, 14)
	pw := &Power{}
	if err := pw.Apply(p, PowerFire, 8); err != nil {
		t.Fatal(err)
	}
	pw.Clear(p)
	if pw.Active() || p.CanKillOnTouch || p.Speed != 5 || p.JumpPower != 14 || !p.JumpEnabled {
		t.Fatalf("Clear left power state behind: %+v %+v", *pw, *p)
	}
}

func TestInvulnerableTickFloorsAtZero(t *testing.T) {
	inv := &Invulnerable{Seconds: 0.05}
	inv.Tick(1)
	if inv.Seconds != 0 || inv.Active() {
		t.Fatalf("expected 0, got %v", inv.Seconds)
	}
	inv.Tick(1)
	if inv.Seconds != 0 {
		t.Fatalf("expected to stay at 0, got %v", inv.Seconds)
	}
}

func TestPowerKindParse(t *testing.T) {
	for _, k := range PowerKinds {
		got, err := ParsePowerKind(k.String())
		if err != nil || got != k {
			t.Fatalf("ParsePowerKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParsePowerKind("laser"); !errors.Is(err, ErrUnknownPower) {
		t.Fatalf("expected ErrUnknownPower, got %v", err)
	}
}
