package engine

import (
	"fmt"

	"github.com/graceworks/steeple/internal/policy"
)

// PolicyResult reports what a SetPolicy call did.
type PolicyResult struct {
	Changed       bool `json:"changed"`
	MoralePenalty int  `json:"moralePenalty"`
	MembersUpset  int  `json:"membersUpset"`
}

// SetPolicy changes one category's selection. Re-selecting the current
// option is a recorded no-op with no penalty. Real changes cost morale
// scaled by how far the option moved; dramatic shifts also report a
// share of the congregation as upset.
func (g *Game) SetPolicy(categoryID, optionID string) (PolicyResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	cat := policy.ByID(categoryID)
	if cat == nil {
		return PolicyResult{}, fmt.Errorf("policy category %q: %w", categoryID, ErrNotFound)
	}
	opt := cat.OptionByID(optionID)
	if opt == nil {
		return PolicyResult{}, errRejected(fmt.Sprintf("category %q has no option %q", categoryID, optionID))
	}

	current := g.Policies[categoryID]
	if current == optionID {
		return PolicyResult{}, nil
	}

	g.Policies[categoryID] = optionID
	g.PolicyLog = append([]policy.Change{{
		CategoryID: categoryID,
		From:       current,
		To:         optionID,
		Week:       g.Week,
	}}, g.PolicyLog...)
	if len(g.PolicyLog) > maxPolicyChanges {
		g.PolicyLog = g.PolicyLog[:maxPolicyChanges]
	}

	res := PolicyResult{Changed: true, MoralePenalty: 5}
	dramatic := cat.Distance(current, optionID) > 1
	if dramatic {
		res.MoralePenalty = 15
		// Reported share of the congregation; members themselves are
		// untouched, the unrest only lands through the morale stat.
		res.MembersUpset = len(g.Congregation) / 10
	}
	g.Stats.CongregationMorale -= res.MoralePenalty
	if g.Stats.CongregationMorale < 0 {
		g.Stats.CongregationMorale = 0
	}

	if dramatic {
		g.addNews(fmt.Sprintf("Major shift in %s! Some members are concerned about the direction.", cat.Name), "negative")
	} else {
		g.addNews(fmt.Sprintf("%s policy adjusted to %s.", cat.Name, opt.Name), "normal")
	}
	return res, nil
}
