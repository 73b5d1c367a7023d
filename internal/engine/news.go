package engine

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// flavorNews fills quiet weeks so the feed never goes silent.
var flavorNews = []string{
	"Another peaceful week at the church.",
	"The weekly service went smoothly.",
	"Members enjoyed fellowship after the service.",
	"The choir practiced new songs this week.",
	"Volunteers helped tidy up the church grounds.",
}

// weeklyNews picks the single most notable story of the week. Milestones
// outrank swings, which outrank staffing and congregation notes; a quiet
// week gets a random flavor line.
func (g *Game) weeklyNews(res WeekResult, cong CongregationResult) {
	var items []NewsItem

	push := func(text, kind string) {
		items = append(items, NewsItem{Text: text, Type: kind})
	}
	promote := func(text, kind string) {
		items = append([]NewsItem{{Text: text, Type: kind}}, items...)
	}

	if res.AttendanceChange > 5 {
		push(fmt.Sprintf("Attendance is surging! %d more people came this week.", res.AttendanceChange), "positive")
	} else if res.AttendanceChange < -5 {
		push(fmt.Sprintf("Attendance dropped by %d this week.", -res.AttendanceChange), "negative")
	}

	if res.Net > 500 {
		push(fmt.Sprintf("Strong giving this week: $%s over expenses.", humanize.Comma(int64(res.Net))), "positive")
	} else if res.Net < -500 {
		push(fmt.Sprintf("Expenses outpaced giving by $%s this week.", humanize.Comma(int64(-res.Net))), "negative")
	}

	if g.PreviousStats.Attendance < 100 && g.Stats.Attendance >= 100 {
		promote("Milestone: weekly attendance passed 100!", "highlight")
	}
	if g.PreviousStats.Reputation < 75 && g.Stats.Reputation >= 75 {
		promote("Milestone: the church's reputation is the talk of the town!", "highlight")
	}

	if res.NewCandidates > 0 {
		push(fmt.Sprintf("%d candidate(s) applied for open staff positions.", res.NewCandidates), "normal")
	}

	if cong.NewVisitors > 2 {
		push(fmt.Sprintf("%d new visitors checked out the church this week.", cong.NewVisitors), "positive")
	}
	if cong.Conversions > 0 {
		push(fmt.Sprintf("%d visitor(s) decided to start attending regularly!", cong.Conversions), "positive")
	}
	if cong.Departures > 2 {
		push(fmt.Sprintf("%d members have quietly stopped attending.", cong.Departures), "negative")
	}

	if len(items) == 0 {
		push(flavorNews[g.rng.Pick(len(flavorNews))], "normal")
	}

	g.addNews(items[0].Text, items[0].Type)
}

// budgetWarnings surfaces money trouble on top of the regular news item.
func (g *Game) budgetWarnings(net int) {
	if net < 0 && g.Stats.Budget > 0 {
		runway := g.Stats.Budget / -net
		if runway <= 4 {
			g.addNews(fmt.Sprintf("Warning: at this rate, funds run out in %d week(s).", runway), "negative")
		}
	}

	if g.Stats.Budget < 0 {
		g.addNews(fmt.Sprintf("The church is in debt! Balance: -$%s.", humanize.Comma(int64(-g.Stats.Budget))), "negative")
	} else if g.Stats.Budget < 1000 {
		g.addNews(fmt.Sprintf("Funds are running low. Only $%s remaining.", humanize.Comma(int64(g.Stats.Budget))), "negative")
	}
}
