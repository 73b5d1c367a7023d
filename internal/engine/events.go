package engine

import (
	"fmt"

	"github.com/graceworks/steeple/internal/entropy"
	"github.com/graceworks/steeple/internal/events"
	"github.com/graceworks/steeple/internal/metrics"
)

// rollEvents runs the weekly event draw. Immediate events apply on the
// spot; a choice event parks in the active slot until the player resolves
// it. If a choice is already pending, a freshly rolled choice event is
// discarded for the week rather than queued.
func (g *Game) rollEvents() *events.Template {
	snap := events.Snapshot{
		Week:       g.Week,
		Attendance: g.Stats.Attendance,
		Reputation: g.Stats.Reputation,
		Budget:     g.Stats.Budget,
		StaffCount: len(g.Staff),
	}

	t := events.Roll(snap, g.rng)
	if t == nil {
		return nil
	}
	metrics.EventsTriggered.WithLabelValues(string(t.Type)).Inc()

	if t.Type == events.TypeChoice {
		if g.ActiveEventID != "" {
			return nil
		}
		g.ActiveEventID = t.ID
		g.addNews(fmt.Sprintf("Decision needed: %s", t.Title), "highlight")
		return t
	}

	out := t.Immediate(g.rng)
	g.applyOutcome(out)
	g.logEvent(t, "", out.Message)

	kind := "positive"
	if t.Type == events.TypeNegative {
		kind = "negative"
	}
	g.addNews(out.Message, kind)
	return t
}

// ActiveEvent returns the pending choice event template, or nil.
func (g *Game) ActiveEvent() *events.Template {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.ActiveEventID == "" {
		return nil
	}
	return events.TemplateByID(g.ActiveEventID)
}

// ResolveChoice applies the player's pick for the pending choice event.
func (g *Game) ResolveChoice(eventID, choiceID string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.ActiveEventID == "" {
		return "", errRejected("no event is awaiting a decision")
	}
	if eventID != g.ActiveEventID {
		return "", errRejected(fmt.Sprintf("event %q is not the pending event", eventID))
	}
	t := events.TemplateByID(g.ActiveEventID)
	if t == nil {
		g.ActiveEventID = ""
		return "", fmt.Errorf("pending event template %q: %w", eventID, ErrNotFound)
	}
	choice := t.ChoiceByID(choiceID)
	if choice == nil {
		return "", errRejected(fmt.Sprintf("event %q has no choice %q", eventID, choiceID))
	}

	out := choice.Effect(g.rng)
	g.applyOutcome(out)
	g.logEvent(t, choiceID, out.Message)
	g.addNews(out.Message, "normal")
	g.ActiveEventID = ""
	return out.Message, nil
}

// applyOutcome interprets the tagged operation list against game state.
// Event effects clamp percent stats to [0, 100]; the tick's own floor of
// 30 on morale is re-applied at the next ProcessWeek.
func (g *Game) applyOutcome(out events.Outcome) {
	for _, op := range out.Ops {
		switch op.Kind {
		case events.OpBudget:
			g.Stats.Budget += op.Amount
		case events.OpReputation:
			g.Stats.Reputation = entropy.Clamp(g.Stats.Reputation+op.Amount, 0, 100)
		case events.OpMorale:
			g.Stats.CongregationMorale = entropy.Clamp(g.Stats.CongregationMorale+op.Amount, 0, 100)
		case events.OpOutreach:
			g.Stats.CommunityOutreach = entropy.Clamp(g.Stats.CommunityOutreach+op.Amount, 0, 100)
		case events.OpMaintenanceRelief:
			relieved := g.Finances.WeeklyExpenses.Maintenance - op.Amount
			if relieved < 25 {
				relieved = 25
			}
			g.Finances.WeeklyExpenses.Maintenance = relieved
		case events.OpStaffMorale:
			g.adjustStaffMorale(op.StaffIndex, op.Amount)
		}
	}
}

// adjustStaffMorale shifts one staff member's morale, or everyone's when
// index is -1. Out-of-range indexes are ignored; the roster may have
// shrunk since the event was rolled.
func (g *Game) adjustStaffMorale(index, amount int) {
	if index == -1 {
		for _, s := range g.Staff {
			s.Morale = entropy.Clamp(s.Morale+amount, 0, 100)
		}
		return
	}
	if index < 0 || index >= len(g.Staff) {
		return
	}
	s := g.Staff[index]
	s.Morale = entropy.Clamp(s.Morale+amount, 0, 100)
}

// logEvent appends to the bounded event history.
func (g *Game) logEvent(t *events.Template, choiceID, message string) {
	rec := events.Record{
		EventID:  t.ID,
		Title:    t.Title,
		Type:     t.Type,
		Week:     g.Week,
		ChoiceID: choiceID,
		Message:  message,
	}
	g.EventLog = append([]events.Record{rec}, g.EventLog...)
	if len(g.EventLog) > maxEventRecords {
		g.EventLog = g.EventLog[:maxEventRecords]
	}
}
