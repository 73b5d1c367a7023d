package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graceworks/steeple/internal/entropy"
)

func TestCatalogSanity(t *testing.T) {
	seen := map[string]bool{}
	for _, tmpl := range Catalog {
		require.False(t, seen[tmpl.ID], "duplicate template %s", tmpl.ID)
		seen[tmpl.ID] = true

		assert.Greater(t, tmpl.Probability, 0.0)
		assert.LessOrEqual(t, tmpl.Probability, 1.0)

		switch tmpl.Type {
		case TypeChoice:
			require.NotEmpty(t, tmpl.Choices, "%s needs choices", tmpl.ID)
			require.Nil(t, tmpl.Immediate, "%s mixes choice and immediate", tmpl.ID)
			choiceIDs := map[string]bool{}
			for _, c := range tmpl.Choices {
				require.False(t, choiceIDs[c.ID], "duplicate choice %s in %s", c.ID, tmpl.ID)
				choiceIDs[c.ID] = true
				require.NotNil(t, c.Effect, "choice %s/%s has no effect", tmpl.ID, c.ID)
			}
		case TypePositive, TypeNegative:
			require.NotNil(t, tmpl.Immediate, "%s has no immediate effect", tmpl.ID)
			require.Empty(t, tmpl.Choices)
		default:
			t.Fatalf("template %s has unknown type %q", tmpl.ID, tmpl.Type)
		}
	}
}

func TestConditionsMet(t *testing.T) {
	c := Conditions{MinWeek: 5, MinAttendance: 40, MinReputation: 50, MinStaff: 2}

	ok := Snapshot{Week: 5, Attendance: 40, Reputation: 50, StaffCount: 2}
	assert.True(t, c.Met(ok))

	assert.False(t, c.Met(Snapshot{Week: 4, Attendance: 40, Reputation: 50, StaffCount: 2}))
	assert.False(t, c.Met(Snapshot{Week: 5, Attendance: 39, Reputation: 50, StaffCount: 2}))
	assert.False(t, c.Met(Snapshot{Week: 5, Attendance: 40, Reputation: 49, StaffCount: 2}))
	assert.False(t, c.Met(Snapshot{Week: 5, Attendance: 40, Reputation: 50, StaffCount: 1}))

	// Zero conditions are vacuously satisfied.
	assert.True(t, Conditions{}.Met(Snapshot{}))
}

func TestRollReturnsNilWhenNothingQualifies(t *testing.T) {
	r := entropy.New(17)

	// Week 1 with a brand new, unknown church: every template's
	// conditions gate it out, so no event can ever fire.
	snap := Snapshot{Week: 1, Attendance: 0, Reputation: 0, Budget: 0, StaffCount: 0}
	for i := 0; i < 1000; i++ {
		assert.Nil(t, Roll(snap, r))
	}
}

func TestRollFiresAtMostOne(t *testing.T) {
	r := entropy.New(29)

	// A mature church qualifies for everything; Roll still returns a
	// single template (or none).
	snap := Snapshot{Week: 50, Attendance: 200, Reputation: 90, Budget: 50000, StaffCount: 4}
	fired := 0
	for i := 0; i < 2000; i++ {
		if tmpl := Roll(snap, r); tmpl != nil {
			fired++
			assert.True(t, tmpl.Conditions.Met(snap))
		}
	}
	// All 11 templates qualify with a combined per-week hit rate around
	// 35-40%; anywhere near that is fine, zero or all would be a bug.
	assert.Greater(t, fired, 400)
	assert.Less(t, fired, 1400)
}

func TestChoiceEffectsProduceTaggedOps(t *testing.T) {
	r := entropy.New(31)

	tmpl := TemplateByID("collaborationRequest")
	require.NotNil(t, tmpl)

	accept := tmpl.ChoiceByID("accept")
	require.NotNil(t, accept)

	out := accept.Effect(r)
	assert.NotEmpty(t, out.Message)
	require.Len(t, out.Ops, 3)
	assert.Equal(t, Op{Kind: OpBudget, Amount: -200}, out.Ops[0])
	assert.Equal(t, Op{Kind: OpReputation, Amount: 8}, out.Ops[1])
	assert.Equal(t, Op{Kind: OpOutreach, Amount: 10}, out.Ops[2])

	assert.Nil(t, tmpl.ChoiceByID("nosuch"))
	assert.Nil(t, TemplateByID("nosuch"))
}

func TestImmediateEffectRangesAreBounded(t *testing.T) {
	r := entropy.New(37)

	donation := TemplateByID("anonymousDonation")
	require.NotNil(t, donation)
	for i := 0; i < 100; i++ {
		out := donation.Immediate(r)
		require.Len(t, out.Ops, 1)
		assert.Equal(t, OpBudget, out.Ops[0].Kind)
		assert.GreaterOrEqual(t, out.Ops[0].Amount, 500)
		assert.LessOrEqual(t, out.Ops[0].Amount, 2000)
	}

	repair := TemplateByID("buildingIssue")
	require.NotNil(t, repair)
	for i := 0; i < 100; i++ {
		out := repair.Immediate(r)
		require.Len(t, out.Ops, 1)
		assert.GreaterOrEqual(t, out.Ops[0].Amount, -800)
		assert.LessOrEqual(t, out.Ops[0].Amount, -300)
	}
}
