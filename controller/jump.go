package controller

// Jump advances the jump timers and reports the vertical velocity to add.
// A press is accepted while grounded, or within JumpGrace seconds of last
// being grounded, once the cooldown has run out.
func Jump(cfg Config, st *State, in InputSnapshot, dt float64) (float64, bool) {
	st.JumpCooldown.Tick(dt)
	if st.Grounded == Grounded {
		st.SinceGrounded.Reset()
	} else {
		st.SinceGrounded.Tick(dt)
	}

	if !in.JumpPressed || !st.JumpCooldown.Finished() {
		return 0, false
	}
	if st.Grounded != Grounded && st.SinceGrounded.Finished() {
		return 0, false
	}

	st.JumpCooldown.Reset()
	st.SinceGrounded.Expire()
	return cfg.JumpHeight, true
}
