// Package member provides the congregation member model: the entity, its
// demographic generation, and its per-week behavioral transition.
package member

import "github.com/graceworks/steeple/internal/entropy"

// Pattern is a member's attendance behavior state.
type Pattern string

const (
	PatternVisitor   Pattern = "visitor"
	PatternSporadic  Pattern = "sporadic"
	PatternRegular   Pattern = "regular"
	PatternDedicated Pattern = "dedicated"
)

// Frequency is the weekly attendance probability for a pattern.
func (p Pattern) Frequency() float64 {
	switch p {
	case PatternVisitor:
		return 0.30
	case PatternSporadic:
		return 0.50
	case PatternRegular:
		return 0.85
	case PatternDedicated:
		return 0.95
	}
	return 0
}

// Patterns lists all attendance patterns in escalation order.
var Patterns = []Pattern{PatternVisitor, PatternSporadic, PatternRegular, PatternDedicated}

// AgeGroup buckets members for demographics and policy attraction.
type AgeGroup string

const (
	GroupChild      AgeGroup = "child"
	GroupYouth      AgeGroup = "youth"
	GroupYoungAdult AgeGroup = "youngAdult"
	GroupMiddleAge  AgeGroup = "middleAge"
	GroupSenior     AgeGroup = "senior"
)

// AgeGroups lists all buckets youngest-first.
var AgeGroups = []AgeGroup{GroupChild, GroupYouth, GroupYoungAdult, GroupMiddleAge, GroupSenior}

// GroupFor maps an age in years to its bucket.
func GroupFor(age int) AgeGroup {
	switch {
	case age <= 12:
		return GroupChild
	case age <= 17:
		return GroupYouth
	case age <= 30:
		return GroupYoungAdult
	case age <= 55:
		return GroupMiddleAge
	default:
		return GroupSenior
	}
}

// GivingLevel is a member's giving habit. The level is fixed at creation;
// minors are always non-givers.
type GivingLevel string

const (
	GivingNone       GivingLevel = "nonGiver"
	GivingOccasional GivingLevel = "occasional"
	GivingTither     GivingLevel = "tither"
	GivingGenerous   GivingLevel = "generous"
)

// GivingLevels lists all levels smallest-first.
var GivingLevels = []GivingLevel{GivingNone, GivingOccasional, GivingTither, GivingGenerous}

// WeeklyRange returns the level's weekly contribution range in dollars.
func (g GivingLevel) WeeklyRange() (min, max int) {
	switch g {
	case GivingOccasional:
		return 5, 20
	case GivingTither:
		return 25, 75
	case GivingGenerous:
		return 100, 300
	}
	return 0, 0
}

// Interests is the catalog members sample 1-3 interests from.
var Interests = []string{
	"music", "outreach", "children", "youth", "prayer",
	"bible study", "fellowship", "missions", "hospitality", "counseling",
}

// Member is one simulated congregant.
type Member struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Age             int         `json:"age"`
	AgeGroup        AgeGroup    `json:"ageGroup"`
	JoinedWeek      int         `json:"joinedWeek"`
	Pattern         Pattern     `json:"attendancePattern"`
	Satisfaction    int         `json:"satisfaction"`
	GivingLevel     GivingLevel `json:"givingLevel"`
	Interests       []string    `json:"interests"`
	FamilyID        string      `json:"familyId,omitempty"`
	LastAttended    int         `json:"lastAttended"`
	TotalAttendance int         `json:"totalAttendance"`
	InvitedBy       string      `json:"invitedBy,omitempty"`

	// Departed flags the member for removal during the tick's cleanup
	// pass. A departed member is never mutated again.
	Departed bool `json:"departed,omitempty"`
}

// Adult reports whether the member can give or invite.
func (m *Member) Adult() bool {
	return m.Age >= 18
}

// Tenure is how many weeks the member has been around as of week.
func (m *Member) Tenure(week int) int {
	return week - m.JoinedWeek
}

// Contribution rolls this week's gift for an attending member: a uniform
// draw from the giving level's range, scaled by satisfaction.
func (m *Member) Contribution(r *entropy.Rand) int {
	min, max := m.GivingLevel.WeeklyRange()
	if max == 0 {
		return 0
	}
	amount := float64(r.Range(min, max)) * float64(m.Satisfaction) / 100.0
	return int(amount + 0.5)
}
