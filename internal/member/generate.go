package member

import (
	"github.com/google/uuid"

	"github.com/graceworks/steeple/internal/entropy"
	"github.com/graceworks/steeple/internal/names"
)

// Generator samples new members from the church's demographic model.
type Generator struct {
	rng *entropy.Rand
}

// NewGenerator creates a member generator backed by the given source.
func NewGenerator(rng *entropy.Rand) *Generator {
	return &Generator{rng: rng}
}

// Overrides pin down fields that would otherwise be sampled.
type Overrides struct {
	Name        string
	Age         int // 0 = sample (members younger than 1 are not generated)
	Pattern     Pattern
	GivingLevel GivingLevel
	FamilyID    string
	InvitedBy   string
}

// New generates one member joining at the given week.
func (g *Generator) New(week int, o Overrides) *Member {
	age := o.Age
	if age == 0 {
		age = g.sampleAge()
	}

	name := o.Name
	if name == "" {
		name = names.Full(g.rng)
	}

	pattern := o.Pattern
	if pattern == "" {
		pattern = PatternVisitor
	}

	giving := o.GivingLevel
	if giving == "" {
		giving = g.sampleGivingLevel(age)
	}

	return &Member{
		ID:           uuid.NewString(),
		Name:         name,
		Age:          age,
		AgeGroup:     GroupFor(age),
		JoinedWeek:   week,
		Pattern:      pattern,
		Satisfaction: g.rng.Range(60, 80),
		GivingLevel:  giving,
		Interests:    g.sampleInterests(),
		FamilyID:     o.FamilyID,
		LastAttended: week,
		InvitedBy:    o.InvitedBy,
	}
}

// NewFamily generates a household: 1-2 adults (70% two) sharing a surname,
// plus 0-3 children, all tagged with a fresh family id and a Regular
// pattern.
func (g *Generator) NewFamily(week int) []*Member {
	familyID := uuid.NewString()
	surname := names.Last(g.rng)

	var fam []*Member

	parents := 1
	if g.rng.Chance(0.7) {
		parents = 2
	}
	for i := 0; i < parents; i++ {
		fam = append(fam, g.New(week, Overrides{
			Name:     names.First(g.rng) + " " + surname,
			Age:      g.rng.Range(28, 55),
			FamilyID: familyID,
			Pattern:  PatternRegular,
		}))
	}

	children := g.rng.Pick(4)
	for i := 0; i < children; i++ {
		fam = append(fam, g.New(week, Overrides{
			Name:        names.First(g.rng) + " " + surname,
			Age:         g.rng.Range(3, 17),
			FamilyID:    familyID,
			Pattern:     PatternRegular,
			GivingLevel: GivingNone,
		}))
	}

	return fam
}

// InitialCongregation seeds a new game: roughly 60% of the target arrives
// in families, the rest as singles (70% regular / 30% sporadic).
func (g *Generator) InitialCongregation(target, week int) []*Member {
	var members []*Member

	familyTarget := target * 6 / 10
	for count := 0; count < familyTarget; {
		fam := g.NewFamily(week)
		members = append(members, fam...)
		count += len(fam)
	}

	for len(members) < target {
		pattern := PatternRegular
		if !g.rng.Chance(0.7) {
			pattern = PatternSporadic
		}
		members = append(members, g.New(week, Overrides{Pattern: pattern}))
	}

	return members
}

// sampleAge draws from the fixed demographic distribution:
// 15% child, 10% youth, 20% young adult, 35% middle age, 20% senior.
func (g *Generator) sampleAge() int {
	roll := g.rng.Float()
	switch {
	case roll < 0.15:
		return g.rng.Range(1, 12)
	case roll < 0.25:
		return g.rng.Range(13, 17)
	case roll < 0.45:
		return g.rng.Range(18, 30)
	case roll < 0.80:
		return g.rng.Range(31, 55)
	default:
		return g.rng.Range(56, 85)
	}
}

// sampleGivingLevel draws an adult's habit: 25% non-giver, 25% occasional,
// 35% tither, 15% generous. Minors never give.
func (g *Generator) sampleGivingLevel(age int) GivingLevel {
	if age < 18 {
		return GivingNone
	}
	roll := g.rng.Float()
	switch {
	case roll < 0.25:
		return GivingNone
	case roll < 0.50:
		return GivingOccasional
	case roll < 0.85:
		return GivingTither
	default:
		return GivingGenerous
	}
}

// sampleInterests picks 1-3 distinct interests from the catalog.
func (g *Generator) sampleInterests() []string {
	count := g.rng.Range(1, 3)
	available := make([]string, len(Interests))
	copy(available, Interests)

	picked := make([]string, 0, count)
	for i := 0; i < count && len(available) > 0; i++ {
		idx := g.rng.Pick(len(available))
		picked = append(picked, available[idx])
		available = append(available[:idx], available[idx+1:]...)
	}
	return picked
}
