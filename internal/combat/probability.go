// Package combat implements confrontation resolution: a pure probability
// model over two combat profiles, and a sampler that turns the resulting
// weights plus an externally supplied draw into a winner.
package combat

import "github.com/Ed1196/Dawn-REST-API/internal/model"

// Base odds before any adjustment
const (
	baseProbability = 0.5

	// Sleep exploit: an attacker catching a sleeping defender starts from
	// overwhelming odds and the weapon matchup is not consulted.
	sleepExploitAttacker = 0.9
	sleepExploitDefender = 0.1

	// One-sided gun advantage
	gunAdvantage    = 0.8
	gunDisadvantage = 0.2

	// Clamp bounds for probabilities pushed out of [0, 1]
	clampLow  = 0.05
	clampHigh = 0.95
)

// ComputeWinProbabilities computes the win weights for a confrontation
// between attacker and defender. Pure: no I/O, no randomness.
//
// Before clamping the pair always sums to exactly 1. After clamping it may
// not; the pair is used as sampling weights, not renormalised here (see
// Sample).
func ComputeWinProbabilities(attacker, defender model.CombatProfile) (pAttacker, pDefender float64) {
	pAttacker, pDefender = baseProbability, baseProbability

	if defender.Status == model.StatusSleep {
		pAttacker, pDefender = sleepExploitAttacker, sleepExploitDefender
	} else {
		pAttacker, pDefender = applyWeaponMatchup(attacker.HeldItem, defender.HeldItem)
	}

	shift := strengthShift(attacker.Strength - defender.Strength)
	pAttacker += shift
	pDefender -= shift

	shift = staminaShift(attacker.Stamina - defender.Stamina)
	pAttacker += shift
	pDefender -= shift

	return clamp(pAttacker), clamp(pDefender)
}

// applyWeaponMatchup resolves the held-item step. A gun only matters when
// exactly one side holds it.
func applyWeaponMatchup(attackerItem, defenderItem string) (float64, float64) {
	attackerGun := attackerItem == model.ItemGun
	defenderGun := defenderItem == model.ItemGun

	switch {
	case attackerGun && !defenderGun:
		return gunAdvantage, gunDisadvantage
	case defenderGun && !attackerGun:
		return gunDisadvantage, gunAdvantage
	default:
		return baseProbability, baseProbability
	}
}

// strengthShift returns the signed probability shift for the strength
// differential: positive favours the attacker. Tier bounds are inclusive.
func strengthShift(diff int) float64 {
	magnitude := diff
	if magnitude < 0 {
		magnitude = -magnitude
	}

	var shift float64
	switch {
	case magnitude == 0:
		return 0
	case magnitude <= 10:
		shift = 0.1
	case magnitude <= 20:
		shift = 0.2
	case magnitude <= 30:
		shift = 0.3
	default:
		shift = 0.4
	}

	if diff < 0 {
		return -shift
	}
	return shift
}

// staminaShift is the finer-tuned analogue of strengthShift for stamina.
// The top tier is uncapped.
func staminaShift(diff int) float64 {
	magnitude := diff
	if magnitude < 0 {
		magnitude = -magnitude
	}

	var shift float64
	switch {
	case magnitude == 0:
		return 0
	case magnitude <= 10:
		shift = 0.05
	case magnitude <= 20:
		shift = 0.1
	default:
		shift = 0.15
	}

	if diff < 0 {
		return -shift
	}
	return shift
}

// clamp pins an out-of-range probability to 0.05 or 0.95. The pair is not
// renormalised afterwards; the sampler divides by the sum instead.
func clamp(p float64) float64 {
	if p < 0 {
		return clampLow
	}
	if p > 1 {
		return clampHigh
	}
	return p
}
