package compatibility

import (
	"strings"

	"github.com/gdugdh24/roomies-backend/internal/domain"
)

const (
	quietHoursMismatch   = 50
	differentStyleScore  = 60
	defaultLocationScore = 100
	differentCityScore   = 60
)

// BasicLifestyleScore averages the five coarse lifestyle terms.
func BasicLifestyleScore(a, b domain.LifestyleFlags, mode domain.ScoringMode) float64 {
	m := multipliersFor(mode)

	total := distanceScore(a.CleanlinessLevel, b.CleanlinessLevel, m.level)
	total += distanceScore(a.SocialLevel, b.SocialLevel, m.level)
	total += flagScore(a.QuietHours, b.QuietHours, quietHoursMismatch)
	total += flagScore(a.PetsAllowed, b.PetsAllowed, m.petsMismatch)
	total += flagScore(a.SmokingAllowed, b.SmokingAllowed, m.smokingMismatch)

	return total / 5
}

func flagScore(a, b bool, mismatch float64) float64 {
	if a == b {
		return 100
	}
	return mismatch
}

func CommunicationScore(a, b domain.CommunicationStyle, mode domain.ScoringMode) float64 {
	if a == b {
		return multipliersFor(mode).sameStyle
	}
	return differentStyleScore
}

// LocationScore only penalises when both users named a city and they differ.
func LocationScore(a, b *string) float64 {
	if a == nil || b == nil {
		return defaultLocationScore
	}
	ca, cb := strings.TrimSpace(*a), strings.TrimSpace(*b)
	if ca == "" || cb == "" {
		return defaultLocationScore
	}
	if strings.EqualFold(ca, cb) {
		return 100
	}
	return differentCityScore
}
