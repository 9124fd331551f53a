package roster

import (
	"sort"
	"strings"
)

// PlayerFilter holds the active view predicates, combined with AND semantics.
// The zero value of each field means "no filter".
type PlayerFilter struct {
	Name        string // case-insensitive substring
	Category    string // exact
	Position    string // exact
	Competition string // exact
	Year        *int   // exact
}

// Apply returns the records matching every active predicate, preserving
// input order. With no predicate active the input is returned unchanged.
func (f PlayerFilter) Apply(recs []Record) []Record {
	if !f.active() {
		return recs
	}
	out := make([]Record, 0, len(recs))
	for _, rec := range recs {
		if f.matches(rec) {
			out = append(out, rec)
		}
	}
	return out
}

func (f PlayerFilter) active() bool {
	return f.Name != "" || f.Category != "" || f.Position != "" || f.Competition != "" || f.Year != nil
}

func (f PlayerFilter) matches(rec Record) bool {
	if f.Name != "" {
		v := rec[ColName]
		if v.IsMissing() || !strings.Contains(strings.ToLower(v.Text()), strings.ToLower(f.Name)) {
			return false
		}
	}
	if !matchExact(rec[ColCategory], f.Category) {
		return false
	}
	if !matchExact(rec[ColPosition], f.Position) {
		return false
	}
	if !matchExact(rec[ColCompetition], f.Competition) {
		return false
	}
	if f.Year != nil {
		n, ok := rec[ColYear].Int()
		if !ok || n != *f.Year {
			return false
		}
	}
	return true
}

// matchExact matches missing values only when the predicate is inactive.
func matchExact(v Value, want string) bool {
	if want == "" {
		return true
	}
	return !v.IsMissing() && v.Text() == want
}

// SortPlayers returns a copy sorted for display: year ascending then name
// ascending, missing values last. Sorting is a presentation concern layered
// on top of filtering, which preserves input order.
func SortPlayers(recs []Record) []Record {
	out := append([]Record(nil), recs...)
	sort.SliceStable(out, func(i, j int) bool {
		yi, oki := out[i][ColYear].Int()
		yj, okj := out[j][ColYear].Int()
		switch {
		case oki && !okj:
			return true
		case !oki && okj:
			return false
		case oki && okj && yi != yj:
			return yi < yj
		}
		return lessText(out[i][ColName], out[j][ColName])
	})
	return out
}

// SortTitles returns a copy sorted by year descending, missing years last.
func SortTitles(recs []Record) []Record {
	out := append([]Record(nil), recs...)
	sort.SliceStable(out, func(i, j int) bool {
		yi, oki := out[i][ColYear].Int()
		yj, okj := out[j][ColYear].Int()
		switch {
		case oki && !okj:
			return true
		case !oki && okj:
			return false
		}
		return yi > yj
	})
	return out
}

func lessText(a, b Value) bool {
	if a.IsMissing() != b.IsMissing() {
		return !a.IsMissing()
	}
	return a.Text() < b.Text()
}

// Summary aggregates the display totals for a filtered view. Missing numeric
// values count as zero.
type Summary struct {
	Convocations int `json:"convocations"`
	Goals        int `json:"goals"`
	Minutes      int `json:"minutes"`
	Titles       int `json:"titles"`
}

// Summarize totals goals and minutes over the filtered records; titleCount is
// the unfiltered size of the titles collection.
func Summarize(filtered []Record, titleCount int) Summary {
	s := Summary{Convocations: len(filtered), Titles: titleCount}
	for _, rec := range filtered {
		if n, ok := rec[ColGoals].Int(); ok {
			s.Goals += n
		}
		if n, ok := rec[ColMinutes].Int(); ok {
			s.Minutes += n
		}
	}
	return s
}
