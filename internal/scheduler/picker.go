package scheduler

import (
	"math/rand"
	"time"

	"github.com/mealweek/mealweek/internal/domain"
)

// pickLeastRecentlyUsed selects from candidates the recipe whose most
// recent use is oldest; recipes never used at all beat every dated
// use. Ties are broken by a draw from the seeded generator rather than
// by ID order, so plans do not skew toward alphabetically early
// recipes while staying reproducible for a given seed.
//
// Candidates must be non-empty and canonically sorted; exactly one
// random draw is consumed per call regardless of tie width.
func pickLeastRecentlyUsed(rng *rand.Rand, candidates []domain.Recipe, on time.Time, ix *recencyIndex) domain.Recipe {
	var best []domain.Recipe
	var bestDate time.Time
	bestNever := false

	for _, r := range candidates {
		last, used := ix.lastUsedOnOrBefore(r.ID, on)
		never := !used
		switch {
		case len(best) == 0,
			never && !bestNever,
			never == bestNever && !never && last.Before(bestDate):
			best = best[:0]
			best = append(best, r)
			bestNever = never
			bestDate = last
		case never == bestNever && (never || last.Equal(bestDate)):
			best = append(best, r)
		}
	}

	return best[rng.Intn(len(best))]
}
