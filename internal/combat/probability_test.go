package combat

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Ed1196/Dawn-REST-API/internal/model"
)

type ProbabilitySuite struct {
	suite.Suite
}

func TestProbabilitySuite(t *testing.T) {
	suite.Run(t, new(ProbabilitySuite))
}

func profile(name string, status model.Status, item string, strength, stamina int) model.CombatProfile {
	return model.CombatProfile{
		Name:     name,
		Status:   status,
		HeldItem: item,
		Strength: strength,
		Stamina:  stamina,
	}
}

func defaultProfile(name string) model.CombatProfile {
	return profile(name, model.StatusActive, model.ItemNone, 100, 100)
}

func (s *ProbabilitySuite) TestEvenMatchup() {
	pA, pD := ComputeWinProbabilities(defaultProfile("a"), defaultProfile("d"))
	s.InDelta(0.5, pA, 1e-9)
	s.InDelta(0.5, pD, 1e-9)
}

func (s *ProbabilitySuite) TestSleepingDefender() {
	defender := profile("d", model.StatusSleep, model.ItemNone, 100, 100)

	pA, pD := ComputeWinProbabilities(defaultProfile("a"), defender)
	s.InDelta(0.9, pA, 1e-9)
	s.InDelta(0.1, pD, 1e-9)
}

func (s *ProbabilitySuite) TestSleepingDefenderIgnoresWeapons() {
	// The sleep exploit skips the weapon step entirely, so the defender's
	// gun does not help.
	defender := profile("d", model.StatusSleep, model.ItemGun, 100, 100)

	pA, pD := ComputeWinProbabilities(defaultProfile("a"), defender)
	s.InDelta(0.9, pA, 1e-9)
	s.InDelta(0.1, pD, 1e-9)
}

func (s *ProbabilitySuite) TestAttackerGunAdvantage() {
	attacker := profile("a", model.StatusActive, model.ItemGun, 100, 100)

	pA, pD := ComputeWinProbabilities(attacker, defaultProfile("d"))
	s.InDelta(0.8, pA, 1e-9)
	s.InDelta(0.2, pD, 1e-9)
}

func (s *ProbabilitySuite) TestDefenderGunAdvantage() {
	defender := profile("d", model.StatusActive, model.ItemGun, 100, 100)

	pA, pD := ComputeWinProbabilities(defaultProfile("a"), defender)
	s.InDelta(0.2, pA, 1e-9)
	s.InDelta(0.8, pD, 1e-9)
}

func (s *ProbabilitySuite) TestBothGunsCancelOut() {
	attacker := profile("a", model.StatusActive, model.ItemGun, 100, 100)
	defender := profile("d", model.StatusActive, model.ItemGun, 100, 100)

	pA, pD := ComputeWinProbabilities(attacker, defender)
	s.InDelta(0.5, pA, 1e-9)
	s.InDelta(0.5, pD, 1e-9)
}

func (s *ProbabilitySuite) TestStrengthTiers() {
	cases := []struct {
		name      string
		strength  int
		expectedA float64
	}{
		{"diff 10 stays in first tier", 110, 0.6},
		{"diff 11 crosses into second tier", 111, 0.7},
		{"diff 20 stays in second tier", 120, 0.7},
		{"diff 30 stays in third tier", 130, 0.8},
		{"diff 31 hits the top tier", 131, 0.9},
		{"diff 200 still top tier", 300, 0.9},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			attacker := profile("a", model.StatusActive, model.ItemNone, tc.strength, 100)

			pA, pD := ComputeWinProbabilities(attacker, defaultProfile("d"))
			s.InDelta(tc.expectedA, pA, 1e-9)
			s.InDelta(1-tc.expectedA, pD, 1e-9)
		})
	}
}

func (s *ProbabilitySuite) TestStrengthShiftIsSigned() {
	attacker := profile("a", model.StatusActive, model.ItemNone, 80, 100)

	pA, pD := ComputeWinProbabilities(attacker, defaultProfile("d"))
	s.InDelta(0.3, pA, 1e-9)
	s.InDelta(0.7, pD, 1e-9)
}

func (s *ProbabilitySuite) TestStaminaTiers() {
	cases := []struct {
		name      string
		stamina   int
		expectedA float64
	}{
		{"diff 10", 110, 0.55},
		{"diff 20", 120, 0.6},
		{"diff 21 hits the top tier", 121, 0.65},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			attacker := profile("a", model.StatusActive, model.ItemNone, 100, tc.stamina)

			pA, pD := ComputeWinProbabilities(attacker, defaultProfile("d"))
			s.InDelta(tc.expectedA, pA, 1e-9)
			s.InDelta(1-tc.expectedA, pD, 1e-9)
		})
	}
}

func (s *ProbabilitySuite) TestClampHigh() {
	// Sleep exploit plus max strength and stamina shifts pushes the
	// attacker past 1 and the defender below 0.
	attacker := profile("a", model.StatusActive, model.ItemNone, 200, 200)
	defender := profile("d", model.StatusSleep, model.ItemNone, 100, 100)

	pA, pD := ComputeWinProbabilities(attacker, defender)
	s.InDelta(0.95, pA, 1e-9)
	s.InDelta(0.05, pD, 1e-9)
}

func (s *ProbabilitySuite) TestClampLow() {
	attacker := profile("a", model.StatusActive, model.ItemNone, 20, 20)
	defender := profile("d", model.StatusActive, model.ItemGun, 100, 100)

	pA, pD := ComputeWinProbabilities(attacker, defender)
	s.InDelta(0.05, pA, 1e-9)
	s.InDelta(0.95, pD, 1e-9)
}

func (s *ProbabilitySuite) TestPairSumsToOneOverRandomProfiles() {
	// Every step shifts the pair symmetrically, so outcomes that stay off
	// the clamp bounds must sum to exactly 1 regardless of the inputs.
	rng := rand.New(rand.NewSource(1))
	statuses := []model.Status{model.StatusActive, model.StatusSleep}
	items := []string{model.ItemNone, model.ItemGun}

	checked := 0
	for i := 0; i < 1000; i++ {
		attacker := profile("a", model.StatusActive,
			items[rng.Intn(len(items))], rng.Intn(200)+1, rng.Intn(200)+1)
		defender := profile("d", statuses[rng.Intn(len(statuses))],
			items[rng.Intn(len(items))], rng.Intn(200)+1, rng.Intn(200)+1)

		pA, pD := ComputeWinProbabilities(attacker, defender)
		if pA == 0.05 || pA == 0.95 || pD == 0.05 || pD == 0.95 {
			// A value on a clamp bound may have been clamped, and a
			// clamped pair is allowed to sum to anything.
			continue
		}

		s.InDelta(1.0, pA+pD, 1e-9)
		checked++
	}

	// The skip above must not hollow the property out.
	s.Greater(checked, 100)
}

func (s *ProbabilitySuite) TestPairSumsToOneWithoutClamping() {
	// Any combination that stays inside [0, 1] must sum to exactly 1.
	attacker := profile("a", model.StatusActive, model.ItemGun, 115, 90)
	defender := profile("d", model.StatusActive, model.ItemNone, 100, 100)

	pA, pD := ComputeWinProbabilities(attacker, defender)
	s.InDelta(1.0, pA+pD, 1e-9)
	// 0.8 + 0.2 (strength) - 0.05 (stamina)
	s.InDelta(0.95, pA, 1e-9)
	s.InDelta(0.05, pD, 1e-9)
}
