package staff

import (
	"github.com/google/uuid"

	"github.com/graceworks/steeple/internal/entropy"
	"github.com/graceworks/steeple/internal/names"
)

// candidateShelfLife is how many weeks an unhired candidate stays on the
// market.
const candidateShelfLife = 3

// Candidate is an unhired applicant with a shelf life.
type Candidate struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	PositionID        string         `json:"positionId"`
	PositionTitle     string         `json:"position"`
	Skills            map[string]int `json:"skills"`
	Traits            []string       `json:"traits"`
	SalaryExpectation int            `json:"salaryExpectation"`
	Backstory         string         `json:"backstory"`
	GeneratedWeek     int            `json:"generatedWeek"`
	ExpiresWeek       int            `json:"expiresWeek"`
}

// Expired reports whether the candidate is past their shelf life.
// Expiry is strictly-after: a candidate hired in their final week is
// still valid.
func (c *Candidate) Expired(week int) bool {
	return c.ExpiresWeek <= week
}

// Recruiter generates weekly candidates.
type Recruiter struct {
	rng *entropy.Rand
}

// NewRecruiter creates a candidate generator backed by the given source.
func NewRecruiter(rng *entropy.Rand) *Recruiter {
	return &Recruiter{rng: rng}
}

// GenerateWeekly produces 0-3 candidates for positions that are unlocked
// at the current attendance and still under their cap.
func (r *Recruiter) GenerateWeekly(attendance int, roster []*Member, week int) []*Candidate {
	count := r.rng.Pick(4)
	if count == 0 {
		return nil
	}

	open := OpenPositions(attendance, roster)
	if len(open) == 0 {
		return nil
	}

	out := make([]*Candidate, 0, count)
	for i := 0; i < count; i++ {
		pos := open[r.rng.Pick(len(open))]
		out = append(out, r.Generate(pos, week))
	}
	return out
}

// Generate builds one candidate for a position.
func (r *Recruiter) Generate(pos *Position, week int) *Candidate {
	skills := map[string]int{
		pos.PrimarySkill:   r.rng.Range(5, 10),
		pos.SecondarySkill: r.rng.Range(3, 8),
		"administration":   r.rng.Range(3, 8),
		"peopleSkills":     r.rng.Range(3, 8),
	}

	return &Candidate{
		ID:                uuid.NewString(),
		Name:              names.Full(r.rng),
		PositionID:        pos.ID,
		PositionTitle:     pos.Title,
		Skills:            skills,
		Traits:            r.sampleTraits(),
		SalaryExpectation: r.salaryExpectation(pos, skills),
		Backstory:         r.backstory(pos.ID),
		GeneratedWeek:     week,
		ExpiresWeek:       week + candidateShelfLife,
	}
}

// salaryExpectation scales the position range by the candidate's primary
// skill, adds +/-15% noise, and rounds to the nearest $25.
func (r *Recruiter) salaryExpectation(pos *Position, skills map[string]int) int {
	span := float64(pos.SalaryMax - pos.SalaryMin)

	primary := skills[pos.PrimarySkill]
	if primary == 0 {
		primary = 5
	}
	skillFactor := float64(primary-1) / 9.0

	noise := r.rng.Float()*0.3 - 0.15

	salary := float64(pos.SalaryMin) + span*skillFactor + span*noise
	return int(salary/25.0+0.5) * 25
}

// sampleTraits picks 1-2 distinct traits (60% one): 50% from the positive
// pool, 30% neutral, 20% negative.
func (r *Recruiter) sampleTraits() []string {
	count := 1
	if !r.rng.Chance(0.6) {
		count = 2
	}

	var picked []string
	for i := 0; i < count; i++ {
		var pool []string
		roll := r.rng.Float()
		switch {
		case roll < 0.5:
			pool = traitPools["positive"]
		case roll < 0.8:
			pool = traitPools["neutral"]
		default:
			pool = traitPools["negative"]
		}

		for attempts := 0; attempts < 10; attempts++ {
			id := pool[r.rng.Pick(len(pool))]
			if !contains(picked, id) {
				picked = append(picked, id)
				break
			}
		}
	}
	return picked
}

func (r *Recruiter) backstory(positionID string) string {
	lines, ok := backstories[positionID]
	if !ok {
		return "Seeking a new opportunity in ministry."
	}
	return lines[r.rng.Pick(len(lines))]
}

// ExpireCandidates drops everyone past their shelf life and returns the
// survivors.
func ExpireCandidates(pool []*Candidate, week int) []*Candidate {
	out := pool[:0]
	for _, c := range pool {
		if !c.Expired(week) {
			out = append(out, c)
		}
	}
	return out
}

var backstories = map[string][]string{
	"associatePastor": {
		"Recently graduated from seminary, eager to serve.",
		"Has 5 years experience at a small rural church.",
		"Former missionary returning to pastoral ministry.",
		"Transitioning from a career in counseling.",
		"Grew up in this denomination, feels called to ministry.",
	},
	"youthPastor": {
		"Just finished youth ministry internship.",
		"Former Young Life leader with great energy.",
		"Has a heart for reaching the next generation.",
		"College campus ministry background.",
		"Was a youth group kid who wants to give back.",
	},
	"worshipLeader": {
		"Classically trained musician seeking ministry role.",
		"Led worship at a church plant for 3 years.",
		"Professional musician feeling called to serve.",
		"Self-taught guitarist with a passion for worship.",
		"Former choir director at a large church.",
	},
	"childrensDirector": {
		"Elementary school teacher transitioning to ministry.",
		"Parent volunteer who's ready to lead.",
		"Has run VBS programs for 10 years.",
		"Early childhood education background.",
		"Sunday school teacher with big ideas.",
	},
	"adminAssistant": {
		"Office management experience in corporate sector.",
		"Looking for meaningful work in a church setting.",
		"Organized and detail-oriented church member.",
		"Former executive assistant seeking change.",
		"Recent graduate with admin skills.",
	},
	"outreachCoordinator": {
		"Non-profit background with community focus.",
		"Passionate about serving the underserved.",
		"Former social worker with big vision.",
		"Has organized multiple community events.",
		"Believes the church should be the hands and feet.",
	},
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
