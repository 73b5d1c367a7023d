package engine

import (
	"fmt"

	"github.com/graceworks/steeple/internal/staff"
)

// HireCandidate moves a candidate onto the roster at their expected
// salary. The position cap is re-checked at hire time; the candidate pool
// may be stale relative to the roster.
func (g *Game) HireCandidate(candidateID string) (*staff.Member, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	idx := g.candidateIndex(candidateID)
	if idx < 0 {
		return nil, fmt.Errorf("candidate %q: %w", candidateID, ErrNotFound)
	}
	c := g.Candidates[idx]

	pos := staff.PositionByID(c.PositionID)
	if pos == nil {
		return nil, fmt.Errorf("position %q: %w", c.PositionID, ErrNotFound)
	}
	if staff.CountInPosition(g.Staff, pos.ID) >= pos.MaxPositions {
		return nil, errRejected(fmt.Sprintf("all %s positions are filled", pos.Title))
	}

	hired := staff.Promote(c, g.Week)
	g.Staff = append(g.Staff, hired)
	g.Candidates = append(g.Candidates[:idx], g.Candidates[idx+1:]...)

	g.addNews(fmt.Sprintf("%s joined the staff as %s.", hired.Name, hired.PositionTitle), "positive")
	return hired, nil
}

// FireStaff removes a staff member. The rest of the roster takes a
// morale hit watching a colleague go.
func (g *Game) FireStaff(staffID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	idx := -1
	for i, s := range g.Staff {
		if s.ID == staffID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("staff member %q: %w", staffID, ErrNotFound)
	}

	fired := g.Staff[idx]
	g.Staff = append(g.Staff[:idx], g.Staff[idx+1:]...)
	for _, s := range g.Staff {
		s.Morale -= 5
		if s.Morale < 0 {
			s.Morale = 0
		}
	}

	g.addNews(fmt.Sprintf("%s is no longer on staff.", fired.Name), "negative")
	return nil
}

// PassOnCandidate drops a candidate from the pool without hiring.
func (g *Game) PassOnCandidate(candidateID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	idx := g.candidateIndex(candidateID)
	if idx < 0 {
		return fmt.Errorf("candidate %q: %w", candidateID, ErrNotFound)
	}
	g.Candidates = append(g.Candidates[:idx], g.Candidates[idx+1:]...)
	return nil
}

func (g *Game) candidateIndex(id string) int {
	for i, c := range g.Candidates {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// OpenPositions lists positions currently hirable at this attendance.
func (g *Game) OpenPositions() []*staff.Position {
	g.mu.Lock()
	defer g.mu.Unlock()
	return staff.OpenPositions(g.Stats.Attendance, g.Staff)
}
