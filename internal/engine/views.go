package engine

import (
	"github.com/graceworks/steeple/internal/events"
	"github.com/graceworks/steeple/internal/policy"
	"github.com/graceworks/steeple/internal/staff"
)

// Accessors for the read side. Each copies under the lock so callers can
// serialize without racing the tick.

// CurrentWeek returns the week counter.
func (g *Game) CurrentWeek() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.Week
}

// CurrentStats returns the headline stats with the previous snapshot.
func (g *Game) CurrentStats() (Stats, PreviousStats) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.Stats, g.PreviousStats
}

// StaffRoster returns a copy of the staff slice.
func (g *Game) StaffRoster() []*staff.Member {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]*staff.Member, len(g.Staff))
	copy(out, g.Staff)
	return out
}

// CandidatePool returns a copy of the current candidate pool.
func (g *Game) CandidatePool() []*staff.Candidate {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]*staff.Candidate, len(g.Candidates))
	copy(out, g.Candidates)
	return out
}

// PolicyState is the policy read model.
type PolicyState struct {
	Selection policy.Selection `json:"selection"`
	Effects   policy.Effects   `json:"effects"`
	History   []policy.Change  `json:"history"`
}

// PolicyView returns the current selection, its combined effects, and the
// bounded change log.
func (g *Game) PolicyView() PolicyState {
	g.mu.Lock()
	defer g.mu.Unlock()

	sel := make(policy.Selection, len(g.Policies))
	for k, v := range g.Policies {
		sel[k] = v
	}
	hist := make([]policy.Change, len(g.PolicyLog))
	copy(hist, g.PolicyLog)

	return PolicyState{
		Selection: sel,
		Effects:   policy.Combine(g.Policies),
		History:   hist,
	}
}

// FinanceView is the money read model: the raw state, the derived
// summary, and the current balance.
type FinanceView struct {
	Finances Finances         `json:"finances"`
	Summary  FinancialSummary `json:"summary"`
	Balance  int              `json:"balance"`
}

// FinanceState returns the finances plus the derived summary.
func (g *Game) FinanceState() FinanceView {
	g.mu.Lock()
	defer g.mu.Unlock()

	f := g.Finances
	f.History = make([]FinancialRecord, len(g.Finances.History))
	copy(f.History, g.Finances.History)

	return FinanceView{
		Finances: f,
		Summary:  g.financialStats(),
		Balance:  g.Stats.Budget,
	}
}

// EventHistory returns a copy of the bounded event log.
func (g *Game) EventHistory() []events.Record {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]events.Record, len(g.EventLog))
	copy(out, g.EventLog)
	return out
}

// NewsFeed returns up to limit recent news items, newest first. A limit
// of 0 or less returns the whole feed.
func (g *Game) NewsFeed(limit int) []NewsItem {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := len(g.News)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]NewsItem, n)
	copy(out, g.News[:n])
	return out
}

// Name returns the church name.
func (g *Game) Name() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.ChurchName
}
