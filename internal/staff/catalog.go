// Package staff covers the hiring pipeline and the staff effects
// aggregator: positions, skills, personality traits, time-limited
// candidates, and the roster reduction consumed by the weekly tick.
package staff

// PositionEffects are the base bonuses a position contributes to the
// weekly tick, before skill scaling. Not every position defines every
// bonus.
type PositionEffects struct {
	AttendanceBonus int `json:"attendanceBonus,omitempty"`
	ReputationBonus int `json:"reputationBonus,omitempty"`
	MoraleBonus     int `json:"moraleBonus,omitempty"`
	OutreachBonus   int `json:"outreachBonus,omitempty"`
}

// Position is one of the six hireable roles.
type Position struct {
	ID                 string          `json:"id"`
	Title              string          `json:"title"`
	Description        string          `json:"description"`
	PrimarySkill       string          `json:"primarySkill"`
	SecondarySkill     string          `json:"secondarySkill"`
	SalaryMin          int             `json:"salaryMin"`
	SalaryMax          int             `json:"salaryMax"`
	UnlockAtAttendance int             `json:"unlockAtAttendance"`
	MaxPositions       int             `json:"maxPositions"`
	Effects            PositionEffects `json:"effects"`
}

// Positions is the fixed role catalog.
var Positions = []Position{
	{
		ID: "associatePastor", Title: "Associate Pastor",
		Description:    "Assists with preaching, counseling, and pastoral care",
		PrimarySkill:   "preaching",
		SecondarySkill: "counseling",
		SalaryMin:      650, SalaryMax: 1000,
		UnlockAtAttendance: 0, MaxPositions: 2,
		Effects: PositionEffects{AttendanceBonus: 5, ReputationBonus: 2, MoraleBonus: 3},
	},
	{
		ID: "youthPastor", Title: "Youth Pastor",
		Description:    "Leads teen and young adult ministry",
		PrimarySkill:   "youthConnection",
		SecondarySkill: "creativity",
		SalaryMin:      500, SalaryMax: 850,
		UnlockAtAttendance: 50, MaxPositions: 1,
		Effects: PositionEffects{AttendanceBonus: 3},
	},
	{
		ID: "worshipLeader", Title: "Worship Leader",
		Description:    "Leads music and worship services",
		PrimarySkill:   "musicalTalent",
		SecondarySkill: "leadership",
		SalaryMin:      450, SalaryMax: 800,
		UnlockAtAttendance: 30, MaxPositions: 1,
		Effects: PositionEffects{AttendanceBonus: 4, MoraleBonus: 5},
	},
	{
		ID: "childrensDirector", Title: "Children's Director",
		Description:    "Oversees all children's programs",
		PrimarySkill:   "patience",
		SecondarySkill: "creativity",
		SalaryMin:      400, SalaryMax: 700,
		UnlockAtAttendance: 40, MaxPositions: 1,
		Effects: PositionEffects{AttendanceBonus: 3},
	},
	{
		ID: "adminAssistant", Title: "Administrative Assistant",
		Description:    "Manages office operations and communications",
		PrimarySkill:   "organization",
		SecondarySkill: "communication",
		SalaryMin:      350, SalaryMax: 600,
		UnlockAtAttendance: 0, MaxPositions: 2,
		Effects: PositionEffects{},
	},
	{
		ID: "outreachCoordinator", Title: "Outreach Coordinator",
		Description:    "Coordinates community outreach programs",
		PrimarySkill:   "communication",
		SecondarySkill: "compassion",
		SalaryMin:      400, SalaryMax: 650,
		UnlockAtAttendance: 60, MaxPositions: 1,
		Effects: PositionEffects{ReputationBonus: 5, OutreachBonus: 20},
	},
}

// PositionByID returns the catalog entry with the given id, or nil.
func PositionByID(id string) *Position {
	for i := range Positions {
		if Positions[i].ID == id {
			return &Positions[i]
		}
	}
	return nil
}

// SkillNames maps skill ids to display names.
var SkillNames = map[string]string{
	"preaching":       "Preaching",
	"counseling":      "Counseling",
	"youthConnection": "Youth Connection",
	"creativity":      "Creativity",
	"musicalTalent":   "Musical Talent",
	"leadership":      "Leadership",
	"patience":        "Patience",
	"organization":    "Organization",
	"communication":   "Communication",
	"compassion":      "Compassion",
	"administration":  "Administration",
	"peopleSkills":    "People Skills",
}

// TraitEffects are a trait's numeric modifiers. TeamMorale is the only
// field the weekly tick reads; the rest describe the hire to the player
// and future staff-lifecycle rules.
type TraitEffects struct {
	TeamMorale     int     `json:"teamMorale,omitempty"`
	Productivity   float64 `json:"productivity,omitempty"`
	ConflictChance float64 `json:"conflictChance,omitempty"`
	QuitChance     float64 `json:"quitChance,omitempty"`
	SalaryFactor   float64 `json:"salaryFactor,omitempty"`
}

// Trait is one personality trait a candidate may carry.
type Trait struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Kind        string       `json:"kind"` // positive, negative, neutral
	Description string       `json:"description"`
	Effects     TraitEffects `json:"effects"`
}

// Traits is the fixed trait catalog.
var Traits = map[string]Trait{
	"hardWorker": {
		ID: "hardWorker", Name: "Hard Worker", Kind: "positive",
		Description: "Gets more done, but may burn out faster",
		Effects:     TraitEffects{Productivity: 1.2},
	},
	"cheerful": {
		ID: "cheerful", Name: "Cheerful", Kind: "positive",
		Description: "Boosts morale of those around them",
		Effects:     TraitEffects{TeamMorale: 5},
	},
	"learner": {
		ID: "learner", Name: "Learner", Kind: "positive",
		Description: "Skills improve faster over time",
	},
	"teamPlayer": {
		ID: "teamPlayer", Name: "Team Player", Kind: "positive",
		Description: "Works well with others, reduces conflicts",
		Effects:     TraitEffects{ConflictChance: 0.5},
	},
	"dedicated": {
		ID: "dedicated", Name: "Dedicated", Kind: "positive",
		Description: "Less likely to leave, very loyal",
		Effects:     TraitEffects{QuitChance: 0.3},
	},
	"difficult": {
		ID: "difficult", Name: "Difficult", Kind: "negative",
		Description: "Creates friction with other staff",
		Effects:     TraitEffects{TeamMorale: -5, ConflictChance: 2.0},
	},
	"lazy": {
		ID: "lazy", Name: "Lazy", Kind: "negative",
		Description: "Lower productivity",
		Effects:     TraitEffects{Productivity: 0.7},
	},
	"greedy": {
		ID: "greedy", Name: "Greedy", Kind: "negative",
		Description: "Demands raises more often",
		Effects:     TraitEffects{SalaryFactor: 1.2},
	},
	"primaDonna": {
		ID: "primaDonna", Name: "Prima Donna", Kind: "negative",
		Description: "High maintenance, needs constant praise",
	},
	"flightRisk": {
		ID: "flightRisk", Name: "Flight Risk", Kind: "negative",
		Description: "May leave for better opportunities",
		Effects:     TraitEffects{QuitChance: 2.5},
	},
	"passionate": {
		ID: "passionate", Name: "Passionate", Kind: "neutral",
		Description: "High highs, low lows - inconsistent but inspired",
	},
	"introverted": {
		ID: "introverted", Name: "Introverted", Kind: "neutral",
		Description: "Great one-on-one, struggles with groups",
	},
	"extroverted": {
		ID: "extroverted", Name: "Extroverted", Kind: "neutral",
		Description: "Great with crowds, may overlook individuals",
	},
}

// traitPools groups trait ids for weighted selection.
var traitPools = map[string][]string{
	"positive": {"hardWorker", "cheerful", "learner", "teamPlayer", "dedicated"},
	"negative": {"difficult", "lazy", "greedy", "primaDonna", "flightRisk"},
	"neutral":  {"passionate", "introverted", "extroverted"},
}
