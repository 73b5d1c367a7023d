// Package events implements the random event engine: a fixed template
// catalog evaluated weekly against state thresholds, with at most one
// event firing per week. Event effects are a closed set of tagged
// operations interpreted by the game core, never ad-hoc callbacks poking
// at state.
package events

import "github.com/graceworks/steeple/internal/entropy"

// Type classifies a template.
type Type string

const (
	TypePositive Type = "positive"
	TypeNegative Type = "negative"
	TypeChoice   Type = "choice"
)

// OpKind enumerates the effect operations an event can request.
type OpKind string

const (
	OpBudget            OpKind = "budget"            // Amount added to budget
	OpReputation        OpKind = "reputation"        // Amount added to reputation (clamped by core)
	OpMorale            OpKind = "morale"            // Amount added to congregation morale
	OpOutreach          OpKind = "outreach"          // Amount added to community outreach
	OpMaintenanceRelief OpKind = "maintenanceRelief" // Amount subtracted from the weekly maintenance slider
	OpStaffMorale       OpKind = "staffMorale"       // Amount added to one staff member's morale (StaffIndex -1 = whole roster)
)

// Op is one tagged effect operation.
type Op struct {
	Kind       OpKind `json:"kind"`
	Amount     int    `json:"amount"`
	StaffIndex int    `json:"staffIndex,omitempty"` // only for OpStaffMorale; -1 = all
}

// Outcome is what an effect function produces: the operations to apply
// and the message shown to the player.
type Outcome struct {
	Ops     []Op   `json:"ops"`
	Message string `json:"message"`
}

// Conditions are minimum thresholds; a zero field is vacuously satisfied.
type Conditions struct {
	MinWeek       int `json:"minWeek,omitempty"`
	MinAttendance int `json:"minAttendance,omitempty"`
	MinReputation int `json:"minReputation,omitempty"`
	MinBudget     int `json:"minBudget,omitempty"`
	MinStaff      int `json:"minStaff,omitempty"`
}

// Snapshot is the read-only state slice conditions are checked against.
type Snapshot struct {
	Week       int
	Attendance int
	Reputation int
	Budget     int
	StaffCount int
}

// Met reports whether every set threshold is satisfied.
func (c Conditions) Met(s Snapshot) bool {
	if c.MinWeek > 0 && s.Week < c.MinWeek {
		return false
	}
	if c.MinAttendance > 0 && s.Attendance < c.MinAttendance {
		return false
	}
	if c.MinReputation > 0 && s.Reputation < c.MinReputation {
		return false
	}
	if c.MinBudget > 0 && s.Budget < c.MinBudget {
		return false
	}
	if c.MinStaff > 0 && s.StaffCount < c.MinStaff {
		return false
	}
	return true
}

// Choice is one player option on a choice event.
type Choice struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	Description string `json:"description"`

	Effect func(r *entropy.Rand) Outcome `json:"-"`
}

// Template is an immutable catalog entry.
type Template struct {
	ID          string     `json:"id"`
	Type        Type       `json:"type"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Probability float64    `json:"probability"`
	Conditions  Conditions `json:"conditions"`

	// Immediate is set for positive/negative templates.
	Immediate func(r *entropy.Rand) Outcome `json:"-"`

	// Choices is set for choice templates.
	Choices []Choice `json:"choices,omitempty"`
}

// ChoiceByID returns the template's choice with the given id, or nil.
func (t *Template) ChoiceByID(id string) *Choice {
	for i := range t.Choices {
		if t.Choices[i].ID == id {
			return &t.Choices[i]
		}
	}
	return nil
}

// Roll evaluates the catalog for this week: conditions first, then one
// Bernoulli trial per passing template, then a uniform pick among the
// winners. At most one template ever fires.
func Roll(s Snapshot, r *entropy.Rand) *Template {
	var pool []*Template
	for _, t := range Catalog {
		if t.Conditions.Met(s) && r.Chance(t.Probability) {
			pool = append(pool, t)
		}
	}
	if len(pool) == 0 {
		return nil
	}
	return pool[r.Pick(len(pool))]
}

// Record is one bounded-history entry.
type Record struct {
	EventID  string `json:"eventId"`
	Title    string `json:"title"`
	Type     Type   `json:"type"`
	Week     int    `json:"week"`
	ChoiceID string `json:"choiceId,omitempty"`
	Message  string `json:"message"`
}

// TemplateByID returns the catalog entry with the given id, or nil.
func TemplateByID(id string) *Template {
	for _, t := range Catalog {
		if t.ID == id {
			return t
		}
	}
	return nil
}
