package compatibility

import (
	"math"

	"github.com/gdugdh24/roomies-backend/internal/domain"
)

const neutralTrait = 50

// multipliers differ between the composite score and the older single-number score.
type multipliers struct {
	trait           float64
	level           float64
	petsMismatch    float64
	smokingMismatch float64
	sameStyle       float64
}

var (
	compositeMultipliers = multipliers{trait: 1.5, level: 1.5, petsMismatch: 30, smokingMismatch: 20, sameStyle: 90}
	legacyMultipliers    = multipliers{trait: 2.0, level: 2.0, petsMismatch: 50, smokingMismatch: 30, sameStyle: 80}
)

func multipliersFor(mode domain.ScoringMode) multipliers {
	if mode == domain.ScoringLegacy {
		return legacyMultipliers
	}
	return compositeMultipliers
}

// distanceScore maps an absolute difference to max(0, 100 - diff*k).
func distanceScore(a, b int, k float64) float64 {
	return math.Max(0, 100-math.Abs(float64(a-b))*k)
}

// TraitScore is the mean per-trait similarity of two Big Five sets.
func TraitScore(a, b domain.Traits, mode domain.ScoringMode) float64 {
	k := multipliersFor(mode).trait
	av, bv := a.Values(), b.Values()

	total := 0.0
	for i := range av {
		total += distanceScore(traitOrNeutral(av[i]), traitOrNeutral(bv[i]), k)
	}
	return total / float64(len(av))
}

func traitOrNeutral(v *int) int {
	if v == nil {
		return neutralTrait
	}
	return *v
}
