package staff

import (
	"github.com/google/uuid"
)

// Member is a hired employee.
type Member struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	PositionID    string         `json:"positionId"`
	PositionTitle string         `json:"position"`
	Skills        map[string]int `json:"skills"`
	Traits        []string       `json:"traits"`
	Salary        int            `json:"salary"` // weekly, fixed at hire
	HiredWeek     int            `json:"hiredWeek"`
	Morale        int            `json:"morale"`
	Energy        int            `json:"energy"`
	Loyalty       int            `json:"loyalty"`
}

// Promote converts a candidate into a staff member at the agreed salary.
func Promote(c *Candidate, week int) *Member {
	return &Member{
		ID:            uuid.NewString(),
		Name:          c.Name,
		PositionID:    c.PositionID,
		PositionTitle: c.PositionTitle,
		Skills:        c.Skills,
		Traits:        c.Traits,
		Salary:        c.SalaryExpectation,
		HiredWeek:     week,
		Morale:        80,
		Energy:        100,
		Loyalty:       50,
	}
}

// CountInPosition returns how many roster members hold the position.
func CountInPosition(roster []*Member, positionID string) int {
	n := 0
	for _, m := range roster {
		if m.PositionID == positionID {
			n++
		}
	}
	return n
}

// OpenPositions lists positions unlocked at the given attendance and not
// yet at their cap.
func OpenPositions(attendance int, roster []*Member) []*Position {
	var open []*Position
	for i := range Positions {
		pos := &Positions[i]
		if attendance < pos.UnlockAtAttendance {
			continue
		}
		if CountInPosition(roster, pos.ID) >= pos.MaxPositions {
			continue
		}
		open = append(open, pos)
	}
	return open
}

// TotalSalaries sums the roster's weekly pay.
func TotalSalaries(roster []*Member) int {
	total := 0
	for _, m := range roster {
		total += m.Salary
	}
	return total
}

// Effects is the additive vector the weekly tick consumes.
type Effects struct {
	AttendanceBonus int `json:"attendanceBonus"`
	ReputationBonus int `json:"reputationBonus"`
	MoraleBonus     int `json:"moraleBonus"`
	OutreachBonus   int `json:"outreachBonus"`
}

// CalculateEffects reduces the roster into one vector. Position bonuses
// scale with the member's mean skill level (avg/10, so 0.1-1.0) and round
// per member; trait morale modifiers add flat, unscaled by skill.
func CalculateEffects(roster []*Member) Effects {
	var eff Effects

	for _, m := range roster {
		pos := PositionByID(m.PositionID)
		if pos == nil {
			continue
		}

		mult := avgSkill(m.Skills) / 10.0
		eff.AttendanceBonus += scaled(pos.Effects.AttendanceBonus, mult)
		eff.ReputationBonus += scaled(pos.Effects.ReputationBonus, mult)
		eff.MoraleBonus += scaled(pos.Effects.MoraleBonus, mult)
		eff.OutreachBonus += scaled(pos.Effects.OutreachBonus, mult)

		for _, id := range m.Traits {
			if t, ok := Traits[id]; ok {
				eff.MoraleBonus += t.Effects.TeamMorale
			}
		}
	}
	return eff
}

func avgSkill(skills map[string]int) float64 {
	if len(skills) == 0 {
		return 0
	}
	sum := 0
	for _, lvl := range skills {
		sum += lvl
	}
	return float64(sum) / float64(len(skills))
}

func scaled(base int, mult float64) int {
	if base == 0 {
		return 0
	}
	return int(float64(base)*mult + 0.5)
}
