package api

import (
	"net/http"
	"strconv"

	"github.com/graceworks/steeple/internal/engine"
	"github.com/graceworks/steeple/internal/member"
	"github.com/graceworks/steeple/internal/policy"
	"github.com/graceworks/steeple/internal/staff"
)

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	g := s.Game()
	stats, prev := g.CurrentStats()
	writeJSON(w, map[string]any{
		"churchName":    g.Name(),
		"week":          g.CurrentWeek(),
		"stats":         stats,
		"previousStats": prev,
		"status":        g.Status(),
		"activeEvent":   g.ActiveEvent(),
		"latestNews":    g.LatestNews(),
	})
}

func (s *Server) handleCongregation(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Game().CongregationStats())
}

func (s *Server) handleMembers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := member.ListOptions{
		Pattern:  member.Pattern(q.Get("pattern")),
		AgeGroup: member.AgeGroup(q.Get("ageGroup")),
		SortBy:   q.Get("sort"),
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil {
		opts.Limit = limit
	}
	writeJSON(w, map[string]any{"members": s.Game().Members(opts)})
}

func (s *Server) handleStaff(w http.ResponseWriter, r *http.Request) {
	g := s.Game()
	writeJSON(w, map[string]any{
		"staff":   g.StaffRoster(),
		"effects": g.StaffEffects(),
	})
}

func (s *Server) handleCandidates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{"candidates": s.Game().CandidatePool()})
}

func (s *Server) handlePositions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"positions": staff.Positions,
		"open":      s.Game().OpenPositions(),
	})
}

func (s *Server) handlePolicies(w http.ResponseWriter, r *http.Request) {
	state := s.Game().PolicyView()
	writeJSON(w, map[string]any{
		"categories": policy.Categories,
		"selection":  state.Selection,
		"effects":    state.Effects,
		"history":    state.History,
	})
}

func (s *Server) handleFinances(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Game().FinanceState())
}

func (s *Server) handleProjection(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Game().ProjectedFinances())
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	g := s.Game()
	writeJSON(w, map[string]any{
		"active":  g.ActiveEvent(),
		"history": g.EventHistory(),
	})
}

func (s *Server) handleNews(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if n, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil {
		limit = n
	}
	writeJSON(w, map[string]any{"news": s.Game().NewsFeed(limit)})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := 52
	if n, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && n > 0 {
		limit = n
	}
	rows, err := s.DB.History(s.currentSlot(), limit)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, map[string]any{"history": rows})
}

func (s *Server) handleSaves(w http.ResponseWriter, r *http.Request) {
	slots, err := s.DB.ListSaves()
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, map[string]any{"saves": slots})
}

// Admin handlers.

func (s *Server) handleProcessWeek(w http.ResponseWriter, r *http.Request) {
	g := s.Game()
	res := g.ProcessWeek()
	if err := s.DB.RecordWeek(s.currentSlot(), g, res); err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, res)
}

func (s *Server) handleSetPolicy(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Category string `json:"category"`
		Option   string `json:"option"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	res, err := s.Game().SetPolicy(req.Category, req.Option)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, res)
}

func (s *Server) handleSetExpenses(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Utilities   int `json:"utilities"`
		Programs    int `json:"programs"`
		Maintenance int `json:"maintenance"`
		Supplies    int `json:"supplies"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	err := s.Game().SetExpenseSliders(engine.ExpenseSliders{
		Utilities:   req.Utilities,
		Programs:    req.Programs,
		Maintenance: req.Maintenance,
		Supplies:    req.Supplies,
	})
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, map[string]bool{"ok": true})
}

func (s *Server) handleHire(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CandidateID string `json:"candidateId"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	hired, err := s.Game().HireCandidate(req.CandidateID)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, map[string]any{"hired": hired})
}

func (s *Server) handleFire(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StaffID string `json:"staffId"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.Game().FireStaff(req.StaffID); err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, map[string]bool{"ok": true})
}

func (s *Server) handlePass(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CandidateID string `json:"candidateId"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.Game().PassOnCandidate(req.CandidateID); err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, map[string]bool{"ok": true})
}

func (s *Server) handleChoice(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EventID  string `json:"eventId"`
		ChoiceID string `json:"choiceId"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	msg, err := s.Game().ResolveChoice(req.EventID, req.ChoiceID)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, map[string]string{"message": msg})
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	slot := s.bodySlot(r)
	if err := s.DB.SaveGame(slot, s.Game()); err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, map[string]string{"slot": slot})
}

func (s *Server) handleLoad(w http.ResponseWriter, r *http.Request) {
	slot := s.bodySlot(r)
	g, err := s.DB.LoadGame(slot, s.NewRand())
	if err != nil {
		writeEngineError(w, err)
		return
	}
	s.swapGame(g, slot)
	writeJSON(w, map[string]any{"slot": slot, "week": g.CurrentWeek()})
}

// bodySlot reads an optional {"slot": "..."} body, defaulting to the
// server's active slot.
func (s *Server) bodySlot(r *http.Request) string {
	var req struct {
		Slot string `json:"slot"`
	}
	if err := decodeBody(r, &req); err == nil && req.Slot != "" {
		return req.Slot
	}
	return s.currentSlot()
}
