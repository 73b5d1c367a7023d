package staff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyRosterHasZeroEffects(t *testing.T) {
	assert.Equal(t, Effects{}, CalculateEffects(nil))
	assert.Zero(t, TotalSalaries(nil))
}

func TestCalculateEffectsScalesWithSkill(t *testing.T) {
	// A perfect-skill worship leader gets the full base bonuses.
	perfect := &Member{
		PositionID: "worshipLeader",
		Skills:     map[string]int{"musicalTalent": 10, "leadership": 10},
	}
	eff := CalculateEffects([]*Member{perfect})
	assert.Equal(t, 4, eff.AttendanceBonus)
	assert.Equal(t, 5, eff.MoraleBonus)

	// Half the skill, roughly half the effect (rounded per member).
	average := &Member{
		PositionID: "worshipLeader",
		Skills:     map[string]int{"musicalTalent": 5, "leadership": 5},
	}
	eff = CalculateEffects([]*Member{average})
	assert.Equal(t, 2, eff.AttendanceBonus)
	assert.Equal(t, 3, eff.MoraleBonus)
}

func TestCalculateEffectsTraitsAddFlat(t *testing.T) {
	cheerful := &Member{
		PositionID: "adminAssistant",
		Skills:     map[string]int{"organization": 10, "communication": 10},
		Traits:     []string{"cheerful"},
	}
	eff := CalculateEffects([]*Member{cheerful})
	assert.Equal(t, 5, eff.MoraleBonus, "cheerful adds +5 regardless of skill")

	difficult := &Member{
		PositionID: "adminAssistant",
		Skills:     map[string]int{"organization": 1},
		Traits:     []string{"difficult"},
	}
	eff = CalculateEffects([]*Member{difficult})
	assert.Equal(t, -5, eff.MoraleBonus)
}

func TestCalculateEffectsSkipsUnknownPosition(t *testing.T) {
	ghost := &Member{PositionID: "nosuch", Skills: map[string]int{"x": 10}}
	assert.Equal(t, Effects{}, CalculateEffects([]*Member{ghost}))
}

func TestOpenPositionsRespectsUnlocksAndCaps(t *testing.T) {
	// At attendance 20 only the always-unlocked roles are available.
	open := OpenPositions(20, nil)
	ids := positionIDs(open)
	assert.ElementsMatch(t, []string{"associatePastor", "adminAssistant"}, ids)

	// At attendance 100 everything is unlocked.
	open = OpenPositions(100, nil)
	assert.Len(t, open, len(Positions))

	// A filled single-slot position drops out.
	roster := []*Member{{PositionID: "worshipLeader"}}
	open = OpenPositions(100, roster)
	assert.NotContains(t, positionIDs(open), "worshipLeader")

	// A two-slot position survives one hire.
	roster = []*Member{{PositionID: "associatePastor"}}
	open = OpenPositions(100, roster)
	assert.Contains(t, positionIDs(open), "associatePastor")

	roster = append(roster, &Member{PositionID: "associatePastor"})
	open = OpenPositions(100, roster)
	assert.NotContains(t, positionIDs(open), "associatePastor")
}

func TestPromoteInitialState(t *testing.T) {
	c := &Candidate{
		Name:              "Dana Whitfield",
		PositionID:        "youthPastor",
		PositionTitle:     "Youth Pastor",
		Skills:            map[string]int{"youthConnection": 8},
		Traits:            []string{"cheerful"},
		SalaryExpectation: 625,
	}

	m := Promote(c, 12)
	require.NotEmpty(t, m.ID)
	assert.Equal(t, c.Name, m.Name)
	assert.Equal(t, c.SalaryExpectation, m.Salary)
	assert.Equal(t, 12, m.HiredWeek)
	assert.Equal(t, 80, m.Morale)
	assert.Equal(t, 100, m.Energy)
	assert.Equal(t, 50, m.Loyalty)
}

func TestTotalSalaries(t *testing.T) {
	roster := []*Member{{Salary: 500}, {Salary: 725}}
	assert.Equal(t, 1225, TotalSalaries(roster))
}

func positionIDs(open []*Position) []string {
	out := make([]string, 0, len(open))
	for _, p := range open {
		out = append(out, p.ID)
	}
	return out
}
