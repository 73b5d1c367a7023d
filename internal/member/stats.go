package member

import "sort"

// Stats is an aggregate snapshot of the congregation.
type Stats struct {
	Total           int                 `json:"total"`
	ByPattern       map[Pattern]int     `json:"byPattern"`
	ByAgeGroup      map[AgeGroup]int    `json:"byAgeGroup"`
	ByGiving        map[GivingLevel]int `json:"byGiving"`
	AvgSatisfaction int                 `json:"avgSatisfaction"`
	ActiveThisWeek  int                 `json:"activeThisWeek"`
}

// Aggregate computes congregation statistics. An empty roster yields a
// zero-valued aggregate with initialized (empty) maps, never an error.
func Aggregate(roster []*Member, week int) Stats {
	s := Stats{
		ByPattern:  map[Pattern]int{},
		ByAgeGroup: map[AgeGroup]int{},
		ByGiving:   map[GivingLevel]int{},
	}
	if len(roster) == 0 {
		return s
	}

	sum := 0
	for _, m := range roster {
		s.Total++
		s.ByPattern[m.Pattern]++
		s.ByAgeGroup[m.AgeGroup]++
		s.ByGiving[m.GivingLevel]++
		sum += m.Satisfaction
		if m.LastAttended == week {
			s.ActiveThisWeek++
		}
	}
	s.AvgSatisfaction = (sum + len(roster)/2) / len(roster)
	return s
}

// ListOptions filters and orders a member listing.
type ListOptions struct {
	Pattern  Pattern  // "" = all
	AgeGroup AgeGroup // "" = all
	SortBy   string   // "satisfaction", "name", "joined"
	Limit    int      // 0 = no limit
}

// List returns a filtered, sorted copy of the roster. The input slice is
// never reordered.
func List(roster []*Member, o ListOptions) []*Member {
	out := make([]*Member, 0, len(roster))
	for _, m := range roster {
		if o.Pattern != "" && m.Pattern != o.Pattern {
			continue
		}
		if o.AgeGroup != "" && m.AgeGroup != o.AgeGroup {
			continue
		}
		out = append(out, m)
	}

	switch o.SortBy {
	case "satisfaction":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Satisfaction > out[j].Satisfaction })
	case "name":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	case "joined":
		sort.SliceStable(out, func(i, j int) bool { return out[i].JoinedWeek > out[j].JoinedWeek })
	}

	if o.Limit > 0 && len(out) > o.Limit {
		out = out[:o.Limit]
	}
	return out
}
