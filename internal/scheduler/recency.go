package scheduler

import (
	"sort"
	"time"

	"github.com/mealweek/mealweek/internal/domain"
)

// recencyIndex answers "when was this recipe last used?" without
// rescanning the history log. It indexes history by recipe ID into
// sorted date lists and is additionally fed the in-progress plan's own
// assignments, so the variability window covers both prior weeks and
// earlier slots of the current week.
type recencyIndex struct {
	uses map[string][]time.Time
}

func newRecencyIndex(history []domain.HistoryEntry) *recencyIndex {
	ix := &recencyIndex{uses: make(map[string][]time.Time)}
	for _, e := range history {
		ix.uses[e.RecipeID] = append(ix.uses[e.RecipeID], dateOnly(e.Date))
	}
	for id := range ix.uses {
		dates := ix.uses[id]
		sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	}
	return ix
}

// noteUse records an assignment made while building the current plan.
// History can already hold uses dated inside the planning week, such as
// when a previously accepted week is regenerated, so the date is
// inserted at its sorted position rather than appended.
func (ix *recencyIndex) noteUse(recipeID string, on time.Time) {
	on = dateOnly(on)
	dates := ix.uses[recipeID]
	i := sort.Search(len(dates), func(i int) bool { return dates[i].After(on) })
	dates = append(dates, time.Time{})
	copy(dates[i+1:], dates[i:])
	dates[i] = on
	ix.uses[recipeID] = dates
}

// lastUsedOnOrBefore returns the most recent use of the recipe on or
// before the given date, and whether any such use exists.
func (ix *recencyIndex) lastUsedOnOrBefore(recipeID string, on time.Time) (time.Time, bool) {
	dates := ix.uses[recipeID]
	on = dateOnly(on)
	// First index whose date is after `on`; the use we want precedes it.
	i := sort.Search(len(dates), func(i int) bool { return dates[i].After(on) })
	if i == 0 {
		return time.Time{}, false
	}
	return dates[i-1], true
}

// usedWithin reports whether the recipe was used inside the sliding
// window of windowDays days ending at `on`. A use on `on` itself
// counts. A window of zero disables the repeat check entirely.
func (ix *recencyIndex) usedWithin(recipeID string, on time.Time, windowDays int) bool {
	if windowDays <= 0 {
		return false
	}
	last, ok := ix.lastUsedOnOrBefore(recipeID, on)
	if !ok {
		return false
	}
	return daysBetween(last, dateOnly(on)) < windowDays
}

// dateOnly truncates a timestamp to its calendar date in UTC.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the whole days from a to b, both date-truncated.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
