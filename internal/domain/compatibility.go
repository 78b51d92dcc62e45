package domain

type ScoringMode string

const (
	ScoringComposite ScoringMode = "composite"
	ScoringLegacy    ScoringMode = "legacy"
)

// Breakdown keeps the unrounded component scores, each in [0,100].
type Breakdown struct {
	LifestyleDetail float64 `json:"lifestyle_detail"`
	BasicLifestyle  float64 `json:"basic_lifestyle"`
	Personality     float64 `json:"personality"`
	Communication   float64 `json:"communication"`
	Location        float64 `json:"location"`
}

type LegacyBreakdown struct {
	Personality    float64 `json:"personality"`
	BasicLifestyle float64 `json:"basic_lifestyle"`
	Communication  float64 `json:"communication"`
	Location       float64 `json:"location"`
}

// CompatibilityResult is computed on demand. Defined is false when either user
// has no personality profile; all scores are zero in that case.
//
// CompatibilityScore measures how livable the pair is, SimilarityScore how alike
// they are. The two use different weights and are not interchangeable.
type CompatibilityResult struct {
	Defined            bool             `json:"defined"`
	Mode               ScoringMode      `json:"mode"`
	CompatibilityScore int              `json:"compatibility_score"`
	SimilarityScore    int              `json:"similarity_score"`
	Breakdown          Breakdown        `json:"breakdown"`
	Legacy             *LegacyBreakdown `json:"legacy,omitempty"`
}

func UndefinedCompatibility() *CompatibilityResult {
	return &CompatibilityResult{Defined: false, Mode: ScoringComposite}
}
