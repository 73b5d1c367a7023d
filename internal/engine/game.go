// Package engine ties the simulation together: the Game root aggregate,
// the weekly tick, and the player-facing mutations. Every component
// receives the one shared state and the one injected random source; there
// is no ambient global anywhere.
package engine

import (
	"math"
	"sync"

	"github.com/graceworks/steeple/internal/entropy"
	"github.com/graceworks/steeple/internal/events"
	"github.com/graceworks/steeple/internal/member"
	"github.com/graceworks/steeple/internal/policy"
	"github.com/graceworks/steeple/internal/staff"
)

// History bounds. Oldest entries are evicted first; newest sit at index 0.
const (
	maxNewsItems       = 50
	maxEventRecords    = 50
	maxPolicyChanges   = 20
	maxFinancialWeeks  = 52
	initialCongregants = 50
)

// Stats are the headline church numbers.
type Stats struct {
	Attendance         int `json:"attendance"`
	Budget             int `json:"budget"`
	Reputation         int `json:"reputation"`
	CongregationMorale int `json:"congregationMorale"`
	SpiritualHealth    int `json:"spiritualHealth"`
	CommunityOutreach  int `json:"communityOutreach"`
}

// PreviousStats snapshots the headline trio for trend display.
type PreviousStats struct {
	Attendance int `json:"attendance"`
	Budget     int `json:"budget"`
	Reputation int `json:"reputation"`
}

// ExpenseSliders are the player-adjustable weekly allocations.
type ExpenseSliders struct {
	Utilities   int `json:"utilities"`
	Programs    int `json:"programs"`
	Maintenance int `json:"maintenance"`
	Supplies    int `json:"supplies"`
}

// Income is one week's income breakdown.
type Income struct {
	Tithes    int `json:"tithes"`
	Offerings int `json:"offerings"`
	Other     int `json:"other"`
	Total     int `json:"total"`
}

// Expenses is one week's expense breakdown.
type Expenses struct {
	Salaries    int `json:"salaries"`
	Utilities   int `json:"utilities"`
	Programs    int `json:"programs"`
	Maintenance int `json:"maintenance"`
	Supplies    int `json:"supplies"`
	Total       int `json:"total"`
}

// FinancialRecord snapshots one completed tick.
type FinancialRecord struct {
	Week       int      `json:"week"`
	Income     Income   `json:"income"`
	Expenses   Expenses `json:"expenses"`
	Net        int      `json:"net"`
	Balance    int      `json:"balance"`
	Attendance int      `json:"attendance"`
}

// Finances groups the money state.
type Finances struct {
	WeeklyExpenses ExpenseSliders    `json:"weeklyExpenses"`
	LastIncome     Income            `json:"weeklyIncome"`
	LastExpenses   Expenses          `json:"lastWeeklyExpenses"`
	History        []FinancialRecord `json:"history"`
}

// NewsItem is one line in the bounded news feed.
type NewsItem struct {
	Text string `json:"text"`
	Type string `json:"type"` // normal, positive, negative, highlight
	Week int    `json:"week"`
}

// Game is the root aggregate: the entire mutable world advanced by
// ProcessWeek. It serializes as-is for save/load.
type Game struct {
	ChurchName string `json:"churchName"`
	Week       int    `json:"week"`

	Stats         Stats         `json:"stats"`
	PreviousStats PreviousStats `json:"previousStats"`

	Congregation []*member.Member   `json:"congregation"`
	Staff        []*staff.Member    `json:"staff"`
	Candidates   []*staff.Candidate `json:"candidates"`

	Policies  policy.Selection `json:"policies"`
	PolicyLog []policy.Change  `json:"policyHistory"`

	ActiveEventID string          `json:"activeEventId,omitempty"`
	EventLog      []events.Record `json:"eventHistory"`

	Finances Finances   `json:"finances"`
	News     []NewsItem `json:"news"`

	// The tick is one atomic synchronous call; the mutex keeps the HTTP
	// layer from interleaving a second tick or mutation mid-flight.
	mu sync.Mutex

	rng       *entropy.Rand
	gen       *member.Generator
	recruiter *staff.Recruiter
}

// Setup seeds the starting world for a new Game.
type Setup struct {
	ChurchName       string
	StartingBudget   int
	StartingSliders  ExpenseSliders
	CongregationSize int
}

// DefaultSetup mirrors the classic starting position.
func DefaultSetup() Setup {
	return Setup{
		ChurchName:       "Grace Community Church",
		StartingBudget:   5000,
		StartingSliders:  ExpenseSliders{Utilities: 200, Programs: 100, Maintenance: 50, Supplies: 50},
		CongregationSize: initialCongregants,
	}
}

// New creates a fresh game with an initial congregation.
func New(s Setup, rng *entropy.Rand) *Game {
	g := &Game{
		ChurchName: s.ChurchName,
		Week:       1,
		Stats: Stats{
			Attendance:         50,
			Budget:             s.StartingBudget,
			Reputation:         50,
			CongregationMorale: 70,
			SpiritualHealth:    60,
			CommunityOutreach:  30,
		},
		Policies: policy.Defaults(),
		Finances: Finances{WeeklyExpenses: s.StartingSliders},
	}
	g.PreviousStats = PreviousStats{
		Attendance: g.Stats.Attendance,
		Budget:     g.Stats.Budget,
		Reputation: g.Stats.Reputation,
	}
	g.attach(rng)

	size := s.CongregationSize
	if size <= 0 {
		size = initialCongregants
	}
	g.Congregation = g.gen.InitialCongregation(size, g.Week)
	return g
}

// attach wires the random source and the generators derived from it.
// Called on creation and again after restoring from a snapshot.
func (g *Game) attach(rng *entropy.Rand) {
	g.rng = rng
	g.gen = member.NewGenerator(rng)
	g.recruiter = staff.NewRecruiter(rng)
}

// addNews prepends a news item and evicts past the bound.
func (g *Game) addNews(text, kind string) {
	g.News = append([]NewsItem{{Text: text, Type: kind, Week: g.Week}}, g.News...)
	if len(g.News) > maxNewsItems {
		g.News = g.News[:maxNewsItems]
	}
}

// LatestNews returns the most recent news item, or nil.
func (g *Game) LatestNews() *NewsItem {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.News) == 0 {
		return nil
	}
	n := g.News[0]
	return &n
}

// Status describes the church's size bracket for display.
func (g *Game) Status() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch a := g.Stats.Attendance; {
	case a < 30:
		return "Your church is just getting started. Every new member counts!"
	case a < 75:
		return "Your church is growing steadily. Keep up the good work!"
	case a < 150:
		return "A thriving community is forming around your church."
	case a < 300:
		return "Your church has become a pillar of the community!"
	default:
		return "A megachurch in the making! Incredible growth!"
	}
}

// CongregationStats aggregates the roster.
func (g *Game) CongregationStats() member.Stats {
	g.mu.Lock()
	defer g.mu.Unlock()
	return member.Aggregate(g.Congregation, g.Week)
}

// Members returns a filtered, sorted member listing.
func (g *Game) Members(o member.ListOptions) []*member.Member {
	g.mu.Lock()
	defer g.mu.Unlock()
	return member.List(g.Congregation, o)
}

// PolicyEffects returns the current combined policy vector.
func (g *Game) PolicyEffects() policy.Effects {
	g.mu.Lock()
	defer g.mu.Unlock()
	return policy.Combine(g.Policies)
}

// StaffEffects returns the current staff reduction.
func (g *Game) StaffEffects() staff.Effects {
	g.mu.Lock()
	defer g.mu.Unlock()
	return staff.CalculateEffects(g.Staff)
}

// jsRound rounds half toward positive infinity, the rounding the original
// balance tables were tuned against.
func jsRound(x float64) int {
	return int(math.Floor(x + 0.5))
}
