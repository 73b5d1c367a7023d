package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graceworks/steeple/internal/member"
	"github.com/graceworks/steeple/internal/staff"
)

func TestIncomeFallbackWithoutCongregation(t *testing.T) {
	g := newTestGame(20)
	g.Congregation = nil
	g.Stats.Attendance = 50
	g.Stats.CongregationMorale = 70

	inc := g.calcIncome()
	// 50 people x $25 x 70% morale, default policies leave giving at 1.0.
	assert.Equal(t, 875, inc.Tithes)
	assert.Equal(t, inc.Tithes+inc.Offerings, inc.Total)
	if inc.Offerings != 0 {
		assert.GreaterOrEqual(t, inc.Offerings, 50)
		assert.LessOrEqual(t, inc.Offerings, 200)
	}
}

func TestIncomeZeroWithNoCongregationAndNoAttendance(t *testing.T) {
	g := newTestGame(21)
	g.Congregation = nil
	g.Stats.Attendance = 0

	inc := g.calcIncome()
	assert.Zero(t, inc.Tithes)
}

func TestWeeklyGivingCountsOnlyAttendees(t *testing.T) {
	g := newTestGame(22)
	g.Week = 10
	g.Congregation = []*member.Member{
		{GivingLevel: member.GivingTither, Satisfaction: 100, LastAttended: 10},
		{GivingLevel: member.GivingGenerous, Satisfaction: 100, LastAttended: 9}, // absent this week
	}

	total := g.weeklyGiving()
	assert.GreaterOrEqual(t, total, 25)
	assert.LessOrEqual(t, total, 75, "only the attending tither contributes")
}

func TestWeeklyGivingEmptyRosterIsZero(t *testing.T) {
	g := newTestGame(23)
	g.Congregation = nil
	assert.Zero(t, g.weeklyGiving())
}

func TestCalcExpensesSumsSalariesAndSliders(t *testing.T) {
	g := newTestGame(24)
	g.Staff = []*staff.Member{{Salary: 600}, {Salary: 400}}
	g.Finances.WeeklyExpenses = ExpenseSliders{Utilities: 200, Programs: 100, Maintenance: 50, Supplies: 50}

	exp := g.calcExpenses()
	assert.Equal(t, 1000, exp.Salaries)
	assert.Equal(t, 1400, exp.Total)
}

func TestFinancialStatsEmptyHistory(t *testing.T) {
	g := newTestGame(25)
	sum := g.FinancialStats()
	assert.Zero(t, sum.WeeksTracked)
	assert.Equal(t, -1, sum.RunwayWeeks)
}

func TestFinancialStatsDerivation(t *testing.T) {
	g := newTestGame(26)
	g.Stats.Budget = 1000
	g.Finances.History = []FinancialRecord{
		{Week: 3, Income: Income{Total: 500}, Expenses: Expenses{Total: 900}, Net: -400},
		{Week: 2, Income: Income{Total: 800}, Expenses: Expenses{Total: 700}, Net: 100},
		{Week: 1, Income: Income{Total: 200}, Expenses: Expenses{Total: 800}, Net: -600},
	}

	sum := g.FinancialStats()
	assert.Equal(t, 3, sum.WeeksTracked)
	assert.Equal(t, 100, sum.BestWeekNet)
	assert.Equal(t, -600, sum.WorstWeekNet)
	assert.Equal(t, 500, sum.AvgWeeklyIncome)
	assert.Equal(t, 800, sum.AvgWeeklyExpenses)
	// Burning $300/week with $1000 in the bank.
	assert.Equal(t, 3, sum.RunwayWeeks)
}

func TestDebtWarningSurfacesInNews(t *testing.T) {
	g := newTestGame(27)
	g.Congregation = nil
	g.Stats.Attendance = 1
	g.Stats.Budget = -2000
	g.Finances.WeeklyExpenses = ExpenseSliders{Utilities: 2000, Programs: 0, Maintenance: 0, Supplies: 0}

	g.ProcessWeek()

	found := false
	for _, n := range g.News {
		if strings.Contains(n.Text, "debt") {
			found = true
		}
	}
	assert.True(t, found, "debt warning missing from news feed")
}

func TestLowFundsWarning(t *testing.T) {
	g := newTestGame(28)
	g.Stats.Budget = 500
	g.budgetWarnings(100)

	require.NotEmpty(t, g.News)
	assert.Contains(t, g.News[0].Text, "running low")
}

func TestRunwayWarning(t *testing.T) {
	g := newTestGame(29)
	g.Stats.Budget = 900
	g.News = nil
	g.budgetWarnings(-300)

	// Runway of 3 weeks triggers the warning; the low-funds alert also
	// fires at this balance.
	require.NotEmpty(t, g.News)
	joined := ""
	for _, n := range g.News {
		joined += n.Text + "\n"
	}
	assert.Contains(t, joined, "3 week")
}

func TestSetExpenseSlidersValidation(t *testing.T) {
	g := newTestGame(30)

	err := g.SetExpenseSliders(ExpenseSliders{Utilities: -1})
	assert.ErrorIs(t, err, ErrRejected)

	require.NoError(t, g.SetExpenseSliders(ExpenseSliders{Utilities: 300, Programs: 250, Maintenance: 75, Supplies: 60}))
	assert.Equal(t, 300, g.Finances.WeeklyExpenses.Utilities)
	assert.Equal(t, 250, g.Finances.WeeklyExpenses.Programs)
}

func TestProjectedFinancesUsesExpectedValues(t *testing.T) {
	g := newTestGame(31)
	g.Staff = nil
	g.Congregation = []*member.Member{
		{GivingLevel: member.GivingTither, Satisfaction: 100, Pattern: member.PatternDedicated},
	}
	g.Finances.WeeklyExpenses = ExpenseSliders{Utilities: 100}

	p := g.ProjectedFinances()
	// Midpoint 50 x 100% satisfaction x 0.95 frequency = 47.5, rounded 48.
	assert.Equal(t, 48, p.Income)
	assert.Equal(t, 100, p.Expenses)
	assert.Equal(t, -52, p.Net)
}
