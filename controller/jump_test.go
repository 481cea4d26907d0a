package controller

import "testing"

// countJumps presses jump on the given ticks while grounded and returns the
// number of accepted jumps.
func countJumps(cfg Config, presses map[int]bool, ticks int) int {
	st := groundedState(cfg, 0)
	jumps := 0
	for i := 0; i < ticks; i++ {
		if _, ok := Jump(cfg, &st, InputSnapshot{JumpPressed: presses[i]}, testDt); ok {
			jumps++
		}
	}
	return jumps
}

func TestJumpDebounce(t *testing.T) {
	cfg := DefaultConfig()
	cfg.JumpCooldown = 0.1

	tests := []struct {
		name    string
		presses map[int]bool
		want    int
	}{
		{"single_press", map[int]bool{0: true}, 1},
		{"same_tick_residual", map[int]bool{0: true, 1: true}, 1},
		{"under_cooldown", map[int]bool{0: true, 5: true}, 1},
		{"exactly_cooldown", map[int]bool{0: true, 6: true}, 2},
		{"after_cooldown", map[int]bool{0: true, 12: true}, 2},
		{"held_every_tick", func() map[int]bool {
			m := map[int]bool{}
			for i := 0; i < 30; i++ {
				m[i] = true
			}
			return m
		}(), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := countJumps(cfg, tt.presses, 30); got != tt.want {
				t.Fatalf("got %d jumps, want %d", got, tt.want)
			}
		})
	}
}

func TestJumpImpulse(t *testing.T) {
	cfg := DefaultConfig()
	st := groundedState(cfg, 0)
	impulse, ok := Jump(cfg, &st, InputSnapshot{JumpPressed: true}, testDt)
	if !ok || impulse != cfg.JumpHeight {
		t.Fatalf("expected impulse %v, got %v ok=%v", cfg.JumpHeight, impulse, ok)
	}
	if st.JumpCooldown.Finished() {
		t.Fatalf("cooldown should restart after a jump")
	}
}

func TestJumpGrace(t *testing.T) {
	cfg := DefaultConfig()
	cfg.JumpGrace = 0.1

	tests := []struct {
		name          string
		airTicks      int
		grace         float64
		wantAccepted  bool
		startAirborne bool
	}{
		{"inside_grace", 3, 0.1, true, false},
		{"after_grace", 10, 0.1, false, false},
		{"grace_disabled", 1, 0, false, false},
		{"never_grounded", 1, 0.1, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cfg
			c.JumpGrace = tt.grace
			st := NewState(c)
			if !tt.startAirborne {
				st.Grounded = Grounded
				Jump(c, &st, InputSnapshot{}, testDt)
			}
			st.Grounded = Airborne
			for i := 0; i < tt.airTicks-1; i++ {
				Jump(c, &st, InputSnapshot{}, testDt)
			}
			_, ok := Jump(c, &st, InputSnapshot{JumpPressed: true}, testDt)
			if ok != tt.wantAccepted {
				t.Fatalf("accepted = %v, want %v", ok, tt.wantAccepted)
			}
		})
	}
}

func TestJumpGraceSpentByJump(t *testing.T) {
	cfg := DefaultConfig()
	cfg.JumpCooldown = 0
	st := groundedState(cfg, 0)
	if _, ok := Jump(cfg, &st, InputSnapshot{JumpPressed: true}, testDt); !ok {
		t.Fatalf("expected first jump")
	}
	st.Grounded = Airborne
	if _, ok := Jump(cfg, &st, InputSnapshot{JumpPressed: true}, testDt); ok {
		t.Fatalf("a jump should spend the grace window")
	}
}
