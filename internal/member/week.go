package member

import "github.com/graceworks/steeple/internal/entropy"

// WeekContext is the read-only church-wide context a member reacts to.
type WeekContext struct {
	Week         int
	HasStaff     bool
	Reputation   int
	Morale       int
	ProgramSpend int
}

// StepResult reports what happened to one member this week.
type StepResult struct {
	Attended  bool
	Converted bool // visitor graduated to sporadic/regular
	Departed  bool
}

// visitorStaleWeeks is the tenure past which an undecided visitor gives up.
const visitorStaleWeeks = 8

// StepWeek advances one member by one week: attendance roll, satisfaction
// update, then the pattern state machine. The member is mutated in place;
// the roster itself is never touched here.
func StepWeek(m *Member, ctx WeekContext, r *entropy.Rand) StepResult {
	var res StepResult
	if m.Departed {
		return res
	}

	if r.Chance(m.Pattern.Frequency()) {
		m.LastAttended = ctx.Week
		m.TotalAttendance++
		res.Attended = true
	}

	updateSatisfaction(m, ctx, r)

	switch m.Pattern {
	case PatternVisitor:
		stepVisitor(m, ctx, &res)
	case PatternRegular:
		stepRegular(m, r)
	case PatternSporadic:
		stepSporadic(m, r, &res)
	case PatternDedicated:
		// Dedicated members have no modeled exit; only satisfaction
		// keeps evolving.
	}

	res.Departed = m.Departed
	return res
}

// updateSatisfaction applies the weekly mood delta and clamps to [0, 100].
func updateSatisfaction(m *Member, ctx WeekContext, r *entropy.Rand) {
	change := r.Range(-3, 3)

	if ctx.HasStaff {
		change += r.Range(0, 2)
	}

	if ctx.Reputation > 70 {
		change++
	} else if ctx.Reputation < 40 {
		change -= 2
	}

	if ctx.ProgramSpend >= 200 {
		change++
	} else if ctx.ProgramSpend < 50 {
		change--
	}

	// Long tenure stabilizes mood: halve the net swing.
	if m.Tenure(ctx.Week) > 20 {
		change = roundHalf(change)
	}

	m.Satisfaction = entropy.Clamp(m.Satisfaction+change, 0, 100)
}

// stepVisitor: no transition fires before 4 weeks of visiting. From week 4,
// satisfied visitors convert (>=85 regular, >=70 sporadic); unhappy or
// stale ones depart.
func stepVisitor(m *Member, ctx WeekContext, res *StepResult) {
	tenure := m.Tenure(ctx.Week)
	if tenure < 4 {
		return
	}

	switch {
	case m.Satisfaction >= 85:
		m.Pattern = PatternRegular
		res.Converted = true
	case m.Satisfaction >= 70:
		m.Pattern = PatternSporadic
		res.Converted = true
	case m.Satisfaction < 50 || tenure > visitorStaleWeeks:
		m.Departed = true
	}
}

// stepRegular: dissatisfaction drops to sporadic deterministically; the
// very happy have a 10% shot at dedication.
func stepRegular(m *Member, r *entropy.Rand) {
	if m.Satisfaction < 50 {
		m.Pattern = PatternSporadic
	} else if m.Satisfaction >= 90 && r.Chance(0.10) {
		m.Pattern = PatternDedicated
	}
}

// stepSporadic: the content re-engage (20% at >=75); the unhappy drift out
// (30% at <40).
func stepSporadic(m *Member, r *entropy.Rand, res *StepResult) {
	if m.Satisfaction >= 75 && r.Chance(0.20) {
		m.Pattern = PatternRegular
	} else if m.Satisfaction < 40 && r.Chance(0.30) {
		m.Departed = true
	}
}

// roundHalf halves n with ties rounding toward positive infinity,
// matching round(n * 0.5) in the tenure damping rule.
func roundHalf(n int) int {
	if n >= 0 {
		return (n + 1) / 2
	}
	return -((-n) / 2)
}
