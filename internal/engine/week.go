package engine

import (
	"github.com/graceworks/steeple/internal/entropy"
	"github.com/graceworks/steeple/internal/events"
	"github.com/graceworks/steeple/internal/metrics"
	"github.com/graceworks/steeple/internal/policy"
	"github.com/graceworks/steeple/internal/staff"
)

// WeekResult summarizes one completed tick.
type WeekResult struct {
	Week             int              `json:"week"`
	Income           Income           `json:"income"`
	Expenses         Expenses         `json:"expenses"`
	Net              int              `json:"netIncome"`
	AttendanceChange int              `json:"attendanceChange"`
	ReputationChange int              `json:"reputationChange"`
	NewCandidates    int              `json:"newCandidates"`
	Congregation     CongregationResult `json:"congregation"`

	// Event is the template that fired this week, if any. A choice event
	// is pending resolution, not yet applied.
	Event *events.Template `json:"event,omitempty"`
}

// ProcessWeek advances the simulation by one week. The whole tick is one
// atomic synchronous pass; a pending choice event does not block it.
func (g *Game) ProcessWeek() WeekResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.PreviousStats = PreviousStats{
		Attendance: g.Stats.Attendance,
		Budget:     g.Stats.Budget,
		Reputation: g.Stats.Reputation,
	}

	// Staffing: age out stale candidates, then let new ones apply.
	g.Candidates = staff.ExpireCandidates(g.Candidates, g.Week)
	fresh := g.recruiter.GenerateWeekly(g.Stats.Attendance, g.Staff, g.Week)
	g.Candidates = append(g.Candidates, fresh...)

	staffEff := staff.CalculateEffects(g.Staff)

	// Congregation pass sets the raw turnout; growth applies on top below.
	cong := g.stepCongregation(staffEff)
	g.Stats.Attendance = cong.Attended

	inc := g.calcIncome()
	exp := g.calcExpenses()
	net := inc.Total - exp.Total
	g.Stats.Budget += net

	attChange := g.attendanceChange(staffEff)
	newAttendance := g.Stats.Attendance + attChange
	if newAttendance < 1 {
		newAttendance = 1
	}
	g.Stats.Attendance = newAttendance

	repChange := g.reputationChange(staffEff)
	g.Stats.Reputation = entropy.Clamp(g.Stats.Reputation+repChange, 0, 100)

	g.updateMorale(staffEff)

	g.recordFinancials(inc, exp)

	res := WeekResult{
		Week:             g.Week,
		Income:           inc,
		Expenses:         exp,
		Net:              net,
		AttendanceChange: attChange,
		ReputationChange: repChange,
		NewCandidates:    len(fresh),
		Congregation:     cong,
	}

	g.weeklyNews(res, cong)
	g.budgetWarnings(net)

	res.Event = g.rollEvents()

	metrics.WeeksProcessed.Inc()
	metrics.Attendance.Set(float64(g.Stats.Attendance))
	metrics.Budget.Set(float64(g.Stats.Budget))
	metrics.Morale.Set(float64(g.Stats.CongregationMorale))

	g.Week++
	return res
}

// attendanceChange rolls the weekly growth delta: random drift shaped by
// reputation, morale, staff, and the policy growth multiplier (growth
// only; decline is never amplified). Clamped to [-10, 15].
func (g *Game) attendanceChange(staffEff staff.Effects) int {
	change := g.rng.Range(-5, 5)

	if g.Stats.Reputation > 60 {
		change += g.rng.Range(0, 3)
	} else if g.Stats.Reputation < 40 {
		change += g.rng.Range(-3, 0)
	}

	if g.Stats.CongregationMorale > 70 {
		change += g.rng.Range(0, 2)
	} else if g.Stats.CongregationMorale < 50 {
		change += g.rng.Range(-2, 0)
	}

	change += staffEff.AttendanceBonus / 2

	if change > 0 {
		eff := policy.Combine(g.Policies)
		change = jsRound(float64(change) * eff.AttendanceGrowthModifier)
	}

	return entropy.Clamp(change, -10, 15)
}

// reputationChange rolls the weekly reputation delta, clamped to [-5, 5].
func (g *Game) reputationChange(staffEff staff.Effects) int {
	change := g.rng.Range(-2, 2)

	if g.Stats.Budget < 0 {
		change -= 2
	} else if g.Stats.Budget > 20000 {
		change++
	}

	if g.Stats.CommunityOutreach > 50 {
		change += g.rng.Range(0, 2)
	}

	change += staffEff.ReputationBonus / 3

	eff := policy.Combine(g.Policies)
	change += jsRound(float64(eff.ReputationModifier) / 10.0)

	return entropy.Clamp(change, -5, 5)
}

// updateMorale drifts congregation morale: staffed churches drift up,
// policy satisfaction bleeds in a tenth per week, and the staff morale
// bonus adds a fifth on top. The stat never settles below 30.
func (g *Game) updateMorale(staffEff staff.Effects) {
	var change int
	if staffEff.MoraleBonus > 0 {
		change = g.rng.Range(0, 2)
	} else {
		change = g.rng.Range(-1, 1)
	}

	eff := policy.Combine(g.Policies)
	change += jsRound(float64(eff.SatisfactionModifier) / 10.0)

	morale := float64(g.Stats.CongregationMorale+change) + float64(staffEff.MoraleBonus)/5.0
	if morale < 30 {
		morale = 30
	}
	if morale > 100 {
		morale = 100
	}
	g.Stats.CongregationMorale = jsRound(morale)
}
