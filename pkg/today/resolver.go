package today

import (
	"strings"
	"time"

	"studypal/pkg/plan/types"
)

const dateLayout = "2006-01-02"

// Result carries the tasks surfaced for "today" plus the coordinates of the
// day they came from. Breaks are excluded; callers that need break placement
// re-read the raw day at (WeekIndex, DayIndex).
type Result struct {
	Entries   []types.Task `json:"entries"`
	WeekIndex int          `json:"weekIndex"`
	DayIndex  int          `json:"dayIndex"`
}

// MatchExact reports whether a stored day date names the given YYYY-MM-DD
// day. Containment, not equality: plan generators sometimes emit a full
// timestamp with the date embedded in it.
func MatchExact(dayDate, ymd string) bool {
	return dayDate == ymd || strings.Contains(dayDate, ymd)
}

// Resolve picks the day whose tasks to surface for today.
//
// Ladder, first match wins:
//  1. exact (or embedded-timestamp) date match, in week/day order;
//  2. nearest parseable date on or after today — ties keep the first
//     candidate found, i.e. the lowest (week, day) pair;
//  3. the first day of the first week;
//  4. nil when the plan has no days at all.
//
// The ladder exists because the plan is generated once for a range that may
// not include today (expired plan, future start, clock skew) and the caller
// must still get something sensible to show.
func Resolve(plan *types.StudyPlan, now time.Time) *Result {
	if plan == nil || len(plan.Weeks) == 0 {
		return nil
	}
	ymd := now.Format(dateLayout)

	for wi, w := range plan.Weeks {
		for di, d := range w.Days {
			if MatchExact(d.Date, ymd) {
				return dayResult(d, wi, di)
			}
		}
	}

	todayDate, _ := time.Parse(dateLayout, ymd)
	bestDiff := -1
	bestW, bestD := -1, -1
	for wi, w := range plan.Weeks {
		for di, d := range w.Days {
			parsed, err := parseDayDate(d.Date)
			if err != nil {
				continue
			}
			diff := int(parsed.Sub(todayDate).Hours() / 24)
			if diff < 0 {
				continue
			}
			if bestDiff < 0 || diff < bestDiff {
				bestDiff, bestW, bestD = diff, wi, di
			}
		}
	}
	if bestW >= 0 {
		return dayResult(plan.Weeks[bestW].Days[bestD], bestW, bestD)
	}

	for wi, w := range plan.Weeks {
		if len(w.Days) > 0 {
			return dayResult(w.Days[0], wi, 0)
		}
	}
	return nil
}

// parseDayDate accepts a bare YYYY-MM-DD or a longer string starting with
// one (e.g. an RFC 3339 timestamp).
func parseDayDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if len(s) > len(dateLayout) {
		s = s[:len(dateLayout)]
	}
	return time.Parse(dateLayout, s)
}

func dayResult(d types.Day, wi, di int) *Result {
	tasks := make([]types.Task, 0, len(d.Entries))
	for _, e := range d.Entries {
		if e.IsBreak() || e.Task == nil {
			continue
		}
		tasks = append(tasks, *e.Task)
	}
	return &Result{Entries: tasks, WeekIndex: wi, DayIndex: di}
}
