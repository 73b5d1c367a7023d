package engine

import (
	"github.com/graceworks/steeple/internal/policy"
	"github.com/graceworks/steeple/internal/staff"
)

// calcIncome rolls this week's income. Tithes come from the individual
// contributions of members who attended; an empty roster falls back to a
// coarse attendance-based estimate. A 10% special offering tops it off.
func (g *Game) calcIncome() Income {
	eff := policy.Combine(g.Policies)

	var tithes float64
	if len(g.Congregation) > 0 {
		tithes = float64(g.weeklyGiving())
	} else if g.Stats.Attendance > 0 {
		tithes = float64(g.Stats.Attendance) * 25.0 * float64(g.Stats.CongregationMorale) / 100.0
	}
	tithes *= eff.GivingModifier

	offerings := 0
	if g.rng.Chance(0.10) {
		offerings = g.rng.Range(50, 200)
	}

	inc := Income{
		Tithes:    jsRound(tithes),
		Offerings: offerings,
	}
	inc.Total = inc.Tithes + inc.Offerings + inc.Other
	return inc
}

// weeklyGiving sums the contributions of members who attended this week.
func (g *Game) weeklyGiving() int {
	total := 0
	for _, m := range g.Congregation {
		if m.LastAttended == g.Week {
			total += m.Contribution(g.rng)
		}
	}
	return total
}

// calcExpenses totals salaries plus the four sliders.
func (g *Game) calcExpenses() Expenses {
	s := g.Finances.WeeklyExpenses
	exp := Expenses{
		Salaries:    staff.TotalSalaries(g.Staff),
		Utilities:   s.Utilities,
		Programs:    s.Programs,
		Maintenance: s.Maintenance,
		Supplies:    s.Supplies,
	}
	exp.Total = exp.Salaries + exp.Utilities + exp.Programs + exp.Maintenance + exp.Supplies
	return exp
}

// recordFinancials appends the completed week to the bounded history.
func (g *Game) recordFinancials(inc Income, exp Expenses) {
	rec := FinancialRecord{
		Week:       g.Week,
		Income:     inc,
		Expenses:   exp,
		Net:        inc.Total - exp.Total,
		Balance:    g.Stats.Budget,
		Attendance: g.Stats.Attendance,
	}
	g.Finances.History = append([]FinancialRecord{rec}, g.Finances.History...)
	if len(g.Finances.History) > maxFinancialWeeks {
		g.Finances.History = g.Finances.History[:maxFinancialWeeks]
	}
	g.Finances.LastIncome = inc
	g.Finances.LastExpenses = exp
}

// FinancialSummary is the derived view over the bounded history.
type FinancialSummary struct {
	AvgWeeklyIncome   int `json:"avgWeeklyIncome"`
	AvgWeeklyExpenses int `json:"avgWeeklyExpenses"`
	BestWeekNet       int `json:"bestWeekNet"`
	WorstWeekNet      int `json:"worstWeekNet"`
	WeeksTracked      int `json:"weeksTracked"`

	// RunwayWeeks is how many weeks the balance survives the current burn
	// rate; -1 means the balance is not shrinking.
	RunwayWeeks int `json:"runwayWeeks"`
}

// FinancialStats derives summary figures from the history.
func (g *Game) FinancialStats() FinancialSummary {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.financialStats()
}

func (g *Game) financialStats() FinancialSummary {
	hist := g.Finances.History
	if len(hist) == 0 {
		return FinancialSummary{RunwayWeeks: -1}
	}

	sum := FinancialSummary{
		WeeksTracked: len(hist),
		BestWeekNet:  hist[0].Net,
		WorstWeekNet: hist[0].Net,
	}
	incomeTotal, expenseTotal := 0, 0
	for _, rec := range hist {
		incomeTotal += rec.Income.Total
		expenseTotal += rec.Expenses.Total
		if rec.Net > sum.BestWeekNet {
			sum.BestWeekNet = rec.Net
		}
		if rec.Net < sum.WorstWeekNet {
			sum.WorstWeekNet = rec.Net
		}
	}
	sum.AvgWeeklyIncome = incomeTotal / len(hist)
	sum.AvgWeeklyExpenses = expenseTotal / len(hist)

	burn := sum.AvgWeeklyExpenses - sum.AvgWeeklyIncome
	if burn > 0 && g.Stats.Budget > 0 {
		sum.RunwayWeeks = g.Stats.Budget / burn
	} else {
		sum.RunwayWeeks = -1
	}
	return sum
}

// Projection previews next week's money without rolling anything.
type Projection struct {
	Income   int `json:"projectedIncome"`
	Expenses int `json:"projectedExpenses"`
	Net      int `json:"projectedNet"`
}

// ProjectedFinances estimates next week from the current roster and
// sliders, using expected values instead of random draws.
func (g *Game) ProjectedFinances() Projection {
	g.mu.Lock()
	defer g.mu.Unlock()

	eff := policy.Combine(g.Policies)

	var expected float64
	for _, m := range g.Congregation {
		min, max := m.GivingLevel.WeeklyRange()
		if max == 0 {
			continue
		}
		mid := float64(min+max) / 2.0
		expected += mid * float64(m.Satisfaction) / 100.0 * m.Pattern.Frequency()
	}
	expected *= eff.GivingModifier

	exp := g.calcExpenses()
	p := Projection{
		Income:   jsRound(expected),
		Expenses: exp.Total,
	}
	p.Net = p.Income - p.Expenses
	return p
}

// SetExpenseSliders replaces the weekly allocations. Negative values are
// rejected.
func (g *Game) SetExpenseSliders(s ExpenseSliders) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if s.Utilities < 0 || s.Programs < 0 || s.Maintenance < 0 || s.Supplies < 0 {
		return errRejected("expense allocations cannot be negative")
	}
	g.Finances.WeeklyExpenses = s
	return nil
}
