package member

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/graceworks/steeple/internal/entropy"
)

func baseCtx(week int) WeekContext {
	return WeekContext{Week: week, Reputation: 50, Morale: 70, ProgramSpend: 100}
}

func TestVisitorNoTransitionBeforeFourWeeks(t *testing.T) {
	r := entropy.New(5)

	for tenure := 0; tenure < 4; tenure++ {
		m := &Member{Pattern: PatternVisitor, Satisfaction: 100, JoinedWeek: 1}
		res := StepWeek(m, baseCtx(1+tenure), r)

		assert.Equal(t, PatternVisitor, m.Pattern, "tenure %d", tenure)
		assert.False(t, res.Converted)
		assert.False(t, m.Departed)
	}
}

func TestVisitorConvertsWhenSatisfied(t *testing.T) {
	r := entropy.New(5)

	m := &Member{Pattern: PatternVisitor, Satisfaction: 95, JoinedWeek: 1}
	res := StepWeek(m, baseCtx(5), r)

	assert.Equal(t, PatternRegular, m.Pattern)
	assert.True(t, res.Converted)
	assert.False(t, m.Departed)
}

func TestVisitorConvertsToSporadicAtModerateSatisfaction(t *testing.T) {
	// Pin satisfaction into [70, 85) after the weekly delta: start at 77
	// with a neutral context so the swing stays within +-3.
	r := entropy.New(9)

	converted := 0
	for i := 0; i < 100; i++ {
		m := &Member{Pattern: PatternVisitor, Satisfaction: 77, JoinedWeek: 1}
		res := StepWeek(m, baseCtx(5), r)
		if m.Pattern == PatternSporadic {
			converted++
			assert.True(t, res.Converted)
		}
	}
	assert.Greater(t, converted, 0)
}

func TestVisitorDepartsWhenUnhappy(t *testing.T) {
	r := entropy.New(5)

	m := &Member{Pattern: PatternVisitor, Satisfaction: 10, JoinedWeek: 1}
	res := StepWeek(m, baseCtx(5), r)

	assert.True(t, m.Departed)
	assert.True(t, res.Departed)
}

func TestVisitorStalesOutAfterEightWeeks(t *testing.T) {
	r := entropy.New(5)

	// Satisfaction sits in the dead zone (50-69): no conversion, but past
	// eight weeks of tenure the visitor gives up anyway.
	m := &Member{Pattern: PatternVisitor, Satisfaction: 60, JoinedWeek: 1}
	StepWeek(m, baseCtx(10), r)

	assert.True(t, m.Departed)
}

func TestRegularDropsToSporadicWhenDissatisfied(t *testing.T) {
	r := entropy.New(5)

	m := &Member{Pattern: PatternRegular, Satisfaction: 20, JoinedWeek: 1}
	StepWeek(m, baseCtx(2), r)

	assert.Equal(t, PatternSporadic, m.Pattern)
	assert.False(t, m.Departed, "regulars drop engagement, they do not leave outright")
}

func TestDepartedMemberIsNeverMutated(t *testing.T) {
	r := entropy.New(5)

	m := &Member{Pattern: PatternRegular, Satisfaction: 55, JoinedWeek: 1, Departed: true}
	before := *m
	res := StepWeek(m, baseCtx(9), r)

	assert.Equal(t, before.Satisfaction, m.Satisfaction)
	assert.Equal(t, before.TotalAttendance, m.TotalAttendance)
	assert.False(t, res.Attended)
}

func TestStepWeekNeverUnflagsDeparture(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Int64Range(1, 1<<40).Draw(t, "seed")
		sat := rapid.IntRange(0, 100).Draw(t, "sat")
		pattern := Patterns[rapid.IntRange(0, len(Patterns)-1).Draw(t, "pattern")]
		week := rapid.IntRange(1, 30).Draw(t, "week")

		r := entropy.New(seed)
		m := &Member{Pattern: pattern, Satisfaction: sat, JoinedWeek: 1}

		for w := 1; w <= week; w++ {
			wasDeparted := m.Departed
			StepWeek(m, baseCtx(w), r)

			if wasDeparted && !m.Departed {
				t.Fatalf("departure flag cleared at week %d", w)
			}
			if m.Satisfaction < 0 || m.Satisfaction > 100 {
				t.Fatalf("satisfaction %d out of range", m.Satisfaction)
			}
		}
	})
}

func TestTenureDampensSatisfactionSwing(t *testing.T) {
	// A 21+ week member's weekly delta is halved; with a hostile context
	// (low rep, no programs) the worst single-week drop is rounded from
	// -6 to -3.
	r := entropy.New(13)
	ctx := WeekContext{Week: 30, Reputation: 20, Morale: 70, ProgramSpend: 0}

	for i := 0; i < 200; i++ {
		m := &Member{Pattern: PatternDedicated, Satisfaction: 50, JoinedWeek: 1}
		StepWeek(m, ctx, r)
		assert.GreaterOrEqual(t, m.Satisfaction, 47)
		assert.LessOrEqual(t, m.Satisfaction, 50)
	}
}

func TestRoundHalf(t *testing.T) {
	cases := map[int]int{
		0:  0,
		1:  1,
		2:  1,
		3:  2,
		4:  2,
		-1: 0,
		-2: -1,
		-3: -1,
		-4: -2,
		-5: -2,
	}
	for in, want := range cases {
		assert.Equal(t, want, roundHalf(in), "roundHalf(%d)", in)
	}
}
