// Package policy defines the seven church policy axes and folds the
// player's selections into one combined effects vector consumed by the
// weekly tick.
package policy

// Category identifiers. Every game state carries exactly one selected
// option per category.
const (
	WorshipStyle           = "worshipStyle"
	ServiceLength          = "serviceLength"
	TheologicalStance      = "theologicalStance"
	MembershipRequirements = "membershipRequirements"
	CommunityFocus         = "communityFocus"
	DecisionMaking         = "decisionMaking"
	FinancialTransparency  = "financialTransparency"
)

// OptionEffects is the per-option contribution to the combined vector.
// Zero values are identity: 0 for additive fields, and multiplicative
// fields use 0 to mean "unset" (treated as 1.0 during combination).
type OptionEffects struct {
	ReputationModifier       int     `json:"reputationModifier,omitempty"`
	SatisfactionModifier     int     `json:"satisfactionModifier,omitempty"`
	SpiritualHealthModifier  int     `json:"spiritualHealthModifier,omitempty"`
	CommunityOutreachModifier int    `json:"communityOutreachModifier,omitempty"`
	TrustModifier            int     `json:"trustModifier,omitempty"`
	GivingModifier           float64 `json:"givingModifier,omitempty"`
	AttendanceGrowthModifier float64 `json:"attendanceGrowthModifier,omitempty"`
	ConversionRate           float64 `json:"conversionRate,omitempty"`
	RetentionBonus           float64 `json:"retentionBonus,omitempty"`
	AttractsAgeGroups        []string `json:"attractsAgeGroups,omitempty"`
	RepelsAgeGroups          []string `json:"repelsAgeGroups,omitempty"`
}

// Option is one selectable stance within a category.
type Option struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Effects     OptionEffects `json:"effects"`
}

// Category is one policy axis. Options are ordered; the distance between
// two options along this ordering drives change consequences.
type Category struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Options     []Option `json:"options"`
	Default     string   `json:"default"`
}

// Categories lists all policy axes in catalog order.
var Categories = []Category{
	{
		ID:          WorshipStyle,
		Name:        "Worship Style",
		Description: "The musical and liturgical style of your services",
		Default:     "blended",
		Options: []Option{
			{
				ID: "traditional", Name: "Traditional",
				Description: "Hymns, organ, formal liturgy",
				Effects: OptionEffects{
					AttractsAgeGroups:        []string{"senior", "middleAge"},
					RepelsAgeGroups:          []string{"youngAdult", "youth"},
					GivingModifier:           1.1,
					AttendanceGrowthModifier: 0.9,
				},
			},
			{
				ID: "contemporary", Name: "Contemporary",
				Description: "Modern worship bands, casual atmosphere",
				Effects: OptionEffects{
					AttractsAgeGroups:        []string{"youngAdult", "youth", "child"},
					RepelsAgeGroups:          []string{"senior"},
					ReputationModifier:       5,
					GivingModifier:           0.9,
					AttendanceGrowthModifier: 1.2,
				},
			},
			{
				ID: "blended", Name: "Blended",
				Description: "Mix of traditional and contemporary elements",
				Effects: OptionEffects{
					AttractsAgeGroups:        []string{"middleAge", "youngAdult"},
					ReputationModifier:       2,
					GivingModifier:           1.0,
					AttendanceGrowthModifier: 1.0,
				},
			},
		},
	},
	{
		ID:          ServiceLength,
		Name:        "Service Length",
		Description: "How long your Sunday services typically run",
		Default:     "standard",
		Options: []Option{
			{
				ID: "short", Name: "Short (45 min)",
				Description: "Quick, focused services for busy families",
				Effects: OptionEffects{
					AttractsAgeGroups:        []string{"youngAdult", "child"},
					RepelsAgeGroups:          []string{"senior"},
					SpiritualHealthModifier:  -5,
					AttendanceGrowthModifier: 1.1,
				},
			},
			{
				ID: "standard", Name: "Standard (75 min)",
				Description: "Traditional service length",
				Effects: OptionEffects{
					AttendanceGrowthModifier: 1.0,
				},
			},
			{
				ID: "long", Name: "Extended (2+ hrs)",
				Description: "Deep worship and teaching time",
				Effects: OptionEffects{
					AttractsAgeGroups:        []string{"senior", "middleAge"},
					RepelsAgeGroups:          []string{"youngAdult", "child"},
					SpiritualHealthModifier:  10,
					AttendanceGrowthModifier: 0.85,
					SatisfactionModifier:     5,
				},
			},
		},
	},
	{
		ID:          TheologicalStance,
		Name:        "Theological Stance",
		Description: "Your church's position on doctrinal matters",
		Default:     "moderate",
		Options: []Option{
			{
				ID: "conservative", Name: "Conservative",
				Description: "Traditional interpretation of scripture",
				Effects: OptionEffects{
					AttractsAgeGroups:       []string{"senior", "middleAge"},
					ReputationModifier:      -5,
					GivingModifier:          1.15,
					SpiritualHealthModifier: 5,
				},
			},
			{
				ID: "moderate", Name: "Moderate",
				Description: "Balanced approach to doctrine",
				Effects: OptionEffects{
					ReputationModifier: 5,
					GivingModifier:     1.0,
				},
			},
			{
				ID: "progressive", Name: "Progressive",
				Description: "Contemporary interpretation and inclusivity focus",
				Effects: OptionEffects{
					AttractsAgeGroups:       []string{"youngAdult", "youth"},
					RepelsAgeGroups:         []string{"senior"},
					ReputationModifier:      10,
					GivingModifier:          0.9,
					SpiritualHealthModifier: -5,
				},
			},
		},
	},
	{
		ID:          MembershipRequirements,
		Name:        "Membership Requirements",
		Description: "How people officially join your church",
		Default:     "classes",
		Options: []Option{
			{
				ID: "open", Name: "Open Door",
				Description: "Anyone can join with minimal process",
				Effects: OptionEffects{
					AttendanceGrowthModifier: 1.2,
					GivingModifier:           0.85,
					SatisfactionModifier:     -5,
					ConversionRate:           1.3,
				},
			},
			{
				ID: "classes", Name: "Classes Required",
				Description: "New member classes before joining",
				Effects: OptionEffects{
					AttendanceGrowthModifier: 1.0,
					GivingModifier:           1.0,
					SatisfactionModifier:     5,
					ConversionRate:           1.0,
				},
			},
			{
				ID: "strict", Name: "Strict Process",
				Description: "Interview, classes, and commitment covenant",
				Effects: OptionEffects{
					AttendanceGrowthModifier: 0.8,
					GivingModifier:           1.2,
					SatisfactionModifier:     10,
					ConversionRate:           0.7,
				},
			},
		},
	},
	{
		ID:          CommunityFocus,
		Name:        "Community Focus",
		Description: "Where your church directs its energy",
		Default:     "balanced",
		Options: []Option{
			{
				ID: "inward", Name: "Member Care",
				Description: "Focus on nurturing existing members",
				Effects: OptionEffects{
					SatisfactionModifier:      15,
					AttendanceGrowthModifier:  0.7,
					CommunityOutreachModifier: -10,
					RetentionBonus:            1.3,
				},
			},
			{
				ID: "balanced", Name: "Balanced",
				Description: "Equal focus on members and outreach",
				Effects: OptionEffects{
					SatisfactionModifier:     5,
					AttendanceGrowthModifier: 1.0,
					RetentionBonus:           1.0,
				},
			},
			{
				ID: "outward", Name: "Evangelism Focus",
				Description: "Prioritize reaching new people",
				Effects: OptionEffects{
					SatisfactionModifier:      -5,
					AttendanceGrowthModifier:  1.4,
					CommunityOutreachModifier: 15,
					RetentionBonus:            0.85,
				},
			},
		},
	},
	{
		ID:          DecisionMaking,
		Name:        "Decision Making",
		Description: "How major decisions are made",
		Default:     "elderBoard",
		Options: []Option{
			{
				ID: "pastorLed", Name: "Pastor-Led",
				Description: "Pastor makes final decisions",
				Effects: OptionEffects{
					SatisfactionModifier: -5,
				},
			},
			{
				ID: "elderBoard", Name: "Elder Board",
				Description: "Council of elders guide decisions",
				Effects: OptionEffects{
					SatisfactionModifier: 5,
				},
			},
			{
				ID: "congregational", Name: "Congregational Vote",
				Description: "Members vote on major decisions",
				Effects: OptionEffects{
					SatisfactionModifier: 10,
				},
			},
		},
	},
	{
		ID:          FinancialTransparency,
		Name:        "Financial Transparency",
		Description: "How open you are about church finances",
		Default:     "partial",
		Options: []Option{
			{
				ID: "private", Name: "Private",
				Description: "Only leadership sees finances",
				Effects: OptionEffects{
					GivingModifier:       0.9,
					SatisfactionModifier: -10,
					TrustModifier:        -15,
				},
			},
			{
				ID: "partial", Name: "Partial",
				Description: "Annual reports and general updates",
				Effects: OptionEffects{
					GivingModifier: 1.0,
				},
			},
			{
				ID: "full", Name: "Full Transparency",
				Description: "Detailed monthly reports available to all",
				Effects: OptionEffects{
					GivingModifier:       1.1,
					SatisfactionModifier: 5,
					TrustModifier:        10,
				},
			},
		},
	},
}

// ByID returns the category with the given id, or nil.
func ByID(id string) *Category {
	for i := range Categories {
		if Categories[i].ID == id {
			return &Categories[i]
		}
	}
	return nil
}

// OptionByID returns the option within c with the given id, or nil.
func (c *Category) OptionByID(id string) *Option {
	for i := range c.Options {
		if c.Options[i].ID == id {
			return &c.Options[i]
		}
	}
	return nil
}

// optionIndex returns the position of id in c's ordering, or -1.
func (c *Category) optionIndex(id string) int {
	for i := range c.Options {
		if c.Options[i].ID == id {
			return i
		}
	}
	return -1
}

// Distance is how far apart two options sit along the category's ordering.
// Larger moves upset more people.
func (c *Category) Distance(from, to string) int {
	a, b := c.optionIndex(from), c.optionIndex(to)
	if a < 0 || b < 0 {
		return 0
	}
	if a > b {
		return a - b
	}
	return b - a
}
