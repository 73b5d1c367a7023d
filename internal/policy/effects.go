package policy

// Selection maps each category id to its currently selected option id.
type Selection map[string]string

// Defaults returns the starting selection for a new game.
func Defaults() Selection {
	sel := make(Selection, len(Categories))
	for _, c := range Categories {
		sel[c.ID] = c.Default
	}
	return sel
}

// Change is one entry in the bounded policy change log.
type Change struct {
	CategoryID string `json:"categoryId"`
	From       string `json:"from"`
	To         string `json:"to"`
	Week       int    `json:"week"`
}

// Effects is the combined modifier vector across all seven selections.
// Additive fields start at 0, multiplicative fields at 1.0.
type Effects struct {
	ReputationModifier        int      `json:"reputationModifier"`
	SatisfactionModifier      int      `json:"satisfactionModifier"`
	SpiritualHealthModifier   int      `json:"spiritualHealthModifier"`
	CommunityOutreachModifier int      `json:"communityOutreachModifier"`
	TrustModifier             int      `json:"trustModifier"`
	GivingModifier            float64  `json:"givingModifier"`
	AttendanceGrowthModifier  float64  `json:"attendanceGrowthModifier"`
	ConversionRate            float64  `json:"conversionRate"`
	RetentionBonus            float64  `json:"retentionBonus"`
	AttractsAgeGroups         []string `json:"attractsAgeGroups"`
	RepelsAgeGroups           []string `json:"repelsAgeGroups"`
}

// Combine folds every selected option's effects into one vector.
// Additive fields sum, multiplicative fields multiply, set fields union.
// A cheap pure reduction over seven entries; recomputed on demand rather
// than cached.
func Combine(sel Selection) Effects {
	eff := Effects{
		GivingModifier:           1.0,
		AttendanceGrowthModifier: 1.0,
		ConversionRate:           1.0,
		RetentionBonus:           1.0,
	}

	attracts := map[string]bool{}
	repels := map[string]bool{}

	for i := range Categories {
		cat := &Categories[i]
		opt := cat.OptionByID(sel[cat.ID])
		if opt == nil {
			continue
		}
		e := opt.Effects

		eff.ReputationModifier += e.ReputationModifier
		eff.SatisfactionModifier += e.SatisfactionModifier
		eff.SpiritualHealthModifier += e.SpiritualHealthModifier
		eff.CommunityOutreachModifier += e.CommunityOutreachModifier
		eff.TrustModifier += e.TrustModifier

		// Zero means the option leaves the multiplier untouched.
		if e.GivingModifier != 0 {
			eff.GivingModifier *= e.GivingModifier
		}
		if e.AttendanceGrowthModifier != 0 {
			eff.AttendanceGrowthModifier *= e.AttendanceGrowthModifier
		}
		if e.ConversionRate != 0 {
			eff.ConversionRate *= e.ConversionRate
		}
		if e.RetentionBonus != 0 {
			eff.RetentionBonus *= e.RetentionBonus
		}

		for _, g := range e.AttractsAgeGroups {
			attracts[g] = true
		}
		for _, g := range e.RepelsAgeGroups {
			repels[g] = true
		}
	}

	eff.AttractsAgeGroups = sortedKeys(attracts)
	eff.RepelsAgeGroups = sortedKeys(repels)
	return eff
}

// AlignmentFor scores how well a member of the given age group fits the
// current policy mix, in [-100, 100].
func AlignmentFor(sel Selection, ageGroup string) int {
	eff := Combine(sel)
	score := 0
	for _, g := range eff.AttractsAgeGroups {
		if g == ageGroup {
			score += 20
		}
	}
	for _, g := range eff.RepelsAgeGroups {
		if g == ageGroup {
			score -= 30
		}
	}
	score += eff.SatisfactionModifier
	if score > 100 {
		score = 100
	}
	if score < -100 {
		score = -100
	}
	return score
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	// Deterministic order: walk the catalog's age group universe.
	for _, g := range []string{"child", "youth", "youngAdult", "middleAge", "senior"} {
		if set[g] {
			out = append(out, g)
		}
	}
	return out
}
