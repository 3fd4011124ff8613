package combat

// Sample picks the confrontation winner from the weight pair and a draw in
// [0, 1). The weights are normalised at sampling time, so a clamped pair
// that no longer sums to 1 still yields a valid weighted choice:
// [0, pAttacker) belongs to the attacker, the rest to the defender.
//
// Deterministic given draw: draw=0 always picks the attacker (for any
// non-zero attacker weight), draw approaching 1 always picks the defender.
func Sample(pAttacker, pDefender float64, attacker, defender string, draw float64) string {
	total := pAttacker + pDefender
	if total <= 0 {
		// Degenerate weights; treat as a coin flip on the raw draw.
		if draw < 0.5 {
			return attacker
		}
		return defender
	}

	if draw < pAttacker/total {
		return attacker
	}
	return defender
}
