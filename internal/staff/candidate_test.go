package staff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graceworks/steeple/internal/entropy"
)

func TestExpiryIsStrictlyAfterShelfLife(t *testing.T) {
	c := &Candidate{GeneratedWeek: 10, ExpiresWeek: 13}

	assert.False(t, c.Expired(10))
	assert.False(t, c.Expired(12), "still hirable in the final week")
	assert.True(t, c.Expired(13))
	assert.True(t, c.Expired(20))
}

func TestGenerateProducesPlausibleCandidate(t *testing.T) {
	r := NewRecruiter(entropy.New(21))
	pos := PositionByID("worshipLeader")
	require.NotNil(t, pos)

	for i := 0; i < 100; i++ {
		c := r.Generate(pos, 5)

		require.NotEmpty(t, c.ID)
		require.NotEmpty(t, c.Name)
		assert.Equal(t, pos.ID, c.PositionID)
		assert.Equal(t, 5, c.GeneratedWeek)
		assert.Equal(t, 8, c.ExpiresWeek)
		assert.NotEmpty(t, c.Backstory)

		assert.Zero(t, c.SalaryExpectation%25, "salary rounds to $25")
		assert.Greater(t, c.SalaryExpectation, 0)

		primary := c.Skills[pos.PrimarySkill]
		assert.GreaterOrEqual(t, primary, 5)
		assert.LessOrEqual(t, primary, 10)

		require.NotEmpty(t, c.Traits)
		assert.LessOrEqual(t, len(c.Traits), 2)
		for _, id := range c.Traits {
			_, ok := Traits[id]
			assert.True(t, ok, "unknown trait %s", id)
		}
		if len(c.Traits) == 2 {
			assert.NotEqual(t, c.Traits[0], c.Traits[1])
		}
	}
}

func TestGenerateWeeklyOnlyOffersOpenPositions(t *testing.T) {
	r := NewRecruiter(entropy.New(33))

	// Fill every slot that attendance 20 unlocks; nothing is hirable, so
	// no candidates appear regardless of the weekly roll.
	roster := []*Member{
		{PositionID: "associatePastor"}, {PositionID: "associatePastor"},
		{PositionID: "adminAssistant"}, {PositionID: "adminAssistant"},
	}
	for i := 0; i < 50; i++ {
		assert.Empty(t, r.GenerateWeekly(20, roster, 5))
	}

	// With slots open, candidates only ever target open positions.
	for i := 0; i < 50; i++ {
		for _, c := range r.GenerateWeekly(20, nil, 5) {
			assert.Contains(t, []string{"associatePastor", "adminAssistant"}, c.PositionID)
		}
	}
}

func TestGenerateWeeklyCountBounds(t *testing.T) {
	r := NewRecruiter(entropy.New(44))
	for i := 0; i < 100; i++ {
		batch := r.GenerateWeekly(100, nil, 3)
		assert.LessOrEqual(t, len(batch), 3)
	}
}

func TestExpireCandidates(t *testing.T) {
	pool := []*Candidate{
		{ID: "a", ExpiresWeek: 5},
		{ID: "b", ExpiresWeek: 6},
		{ID: "c", ExpiresWeek: 10},
	}

	kept := ExpireCandidates(pool, 6)
	require.Len(t, kept, 1)
	assert.Equal(t, "c", kept[0].ID)

	assert.Empty(t, ExpireCandidates(nil, 1))
}
