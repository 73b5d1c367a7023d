package engine

import (
	"github.com/graceworks/steeple/internal/member"
	"github.com/graceworks/steeple/internal/metrics"
	"github.com/graceworks/steeple/internal/staff"
)

// CongregationResult summarizes one weekly congregation pass.
type CongregationResult struct {
	Attended    int `json:"attendedThisWeek"`
	NewVisitors int `json:"newVisitors"`
	Conversions int `json:"conversions"`
	Departures  int `json:"departures"`
}

// stepCongregation runs the per-member week, rolls new visitors and
// invitations, then removes everyone flagged as departed. This is the
// only place the roster shrinks.
func (g *Game) stepCongregation(staffEff staff.Effects) CongregationResult {
	var res CongregationResult

	ctx := member.WeekContext{
		Week:         g.Week,
		HasStaff:     len(g.Staff) > 0,
		Reputation:   g.Stats.Reputation,
		Morale:       g.Stats.CongregationMorale,
		ProgramSpend: g.Finances.WeeklyExpenses.Programs,
	}

	for _, m := range g.Congregation {
		step := member.StepWeek(m, ctx, g.rng)
		if step.Attended {
			res.Attended++
		}
		if step.Converted {
			res.Conversions++
		}
	}

	arrivals := g.rollNewVisitors()
	res.Attended += len(arrivals)
	res.NewVisitors += len(arrivals)

	invited := g.rollInvitations()
	res.NewVisitors += len(invited)

	g.Congregation = append(g.Congregation, arrivals...)
	g.Congregation = append(g.Congregation, invited...)

	before := len(g.Congregation)
	kept := g.Congregation[:0]
	for _, m := range g.Congregation {
		if !m.Departed {
			kept = append(kept, m)
		}
	}
	g.Congregation = kept
	res.Departures = before - len(kept)

	metrics.MembersJoined.Add(float64(res.NewVisitors))
	metrics.MembersDeparted.Add(float64(res.Departures))
	return res
}

// rollNewVisitors draws this week's walk-ins. Reputation shifts the
// per-slot chance around a 30% base; roughly a third of arrivals are
// whole families visiting together.
func (g *Game) rollNewVisitors() []*member.Member {
	chance := 0.3 + float64(g.Stats.Reputation-50)/100.0

	var arrivals []*member.Member
	slots := g.rng.Pick(4) // 0-3 potential arrivals
	for i := 0; i < slots; i++ {
		if !g.rng.Chance(chance) {
			continue
		}
		if g.rng.Chance(0.3) {
			fam := g.gen.NewFamily(g.Week)
			for _, f := range fam {
				f.Pattern = member.PatternVisitor
			}
			arrivals = append(arrivals, fam...)
		} else {
			arrivals = append(arrivals, g.gen.New(g.Week, member.Overrides{Pattern: member.PatternVisitor}))
		}
	}
	return arrivals
}

// rollInvitations lets very satisfied adult members bring a friend: 5%
// per qualifying member per week.
func (g *Game) rollInvitations() []*member.Member {
	var invited []*member.Member
	for _, m := range g.Congregation {
		if m.Departed || m.Satisfaction < 85 || m.Pattern == member.PatternVisitor || !m.Adult() {
			continue
		}
		if g.rng.Chance(0.05) {
			friend := g.gen.New(g.Week, member.Overrides{Pattern: member.PatternVisitor})
			friend.InvitedBy = m.ID
			invited = append(invited, friend)
		}
	}
	return invited
}
