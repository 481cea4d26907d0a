package controller

// Crouch picks the collider for this tick. The same shape feeds the ground
// sensor, so collider and sensor always change together.
func Crouch(cfg Config, st *State, in InputSnapshot) (Shape, bool) {
	changed := in.Crouch != st.Crouching
	st.Crouching = in.Crouch
	if st.Crouching {
		return cfg.CrouchShape(), changed
	}
	return cfg.StandShape(), changed
}
