package compatibility

import (
	"math"
	"strings"

	"github.com/gdugdh24/roomies-backend/internal/domain"
)

// NeutralDetailScore is returned when two answer maps share no comparable attribute.
const NeutralDetailScore = 50

// comparer scores two raw answers for one attribute. ok is false when either
// answer is not a known value, in which case the attribute is skipped.
type comparer interface {
	compare(a, b string) (score float64, ok bool)
}

type attribute struct {
	key string
	cmp comparer
}

// LifestyleDetailScore averages the per-attribute scores of every attribute
// answered by both users. Attributes missing on either side are skipped.
func LifestyleDetailScore(a, b domain.LifestyleAnswers) float64 {
	total, compared := 0.0, 0
	for _, attr := range lifestyleAttributes {
		va, okA := a[attr.key]
		vb, okB := b[attr.key]
		if !okA || !okB {
			continue
		}
		score, ok := attr.cmp.compare(va, vb)
		if !ok {
			continue
		}
		total += score
		compared++
	}

	if compared == 0 {
		return NeutralDetailScore
	}
	return total / float64(compared)
}

// AttributeKeys lists the lifestyle attributes the scorer understands.
func AttributeKeys() []string {
	keys := make([]string, 0, len(lifestyleAttributes))
	for _, attr := range lifestyleAttributes {
		keys = append(keys, attr.key)
	}
	return keys
}

func normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func parseEnum[T ~string](values []T, raw string) (T, bool) {
	v := T(normalize(raw))
	for _, known := range values {
		if known == v {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func parsePair[T ~string](values []T, a, b string) (T, T, bool) {
	va, okA := parseEnum(values, a)
	vb, okB := parseEnum(values, b)
	return va, vb, okA && okB
}

// exactMatch gives full marks for equal answers and a fixed partial credit otherwise.
type exactMatch[T ~string] struct {
	values  []T
	partial float64
}

func (e exactMatch[T]) compare(a, b string) (float64, bool) {
	va, vb, ok := parsePair(e.values, a, b)
	if !ok {
		return 0, false
	}
	if va == vb {
		return 100, true
	}
	return e.partial, true
}

// ordinal places each answer on a 0-100 intensity axis.
type ordinal[T ~string] struct {
	anchors map[T]float64
}

func (o ordinal[T]) compare(a, b string) (float64, bool) {
	va, okA := o.anchors[T(normalize(a))]
	vb, okB := o.anchors[T(normalize(b))]
	if !okA || !okB {
		return 0, false
	}
	return math.Max(0, 100-math.Abs(va-vb)), true
}

type pair[T ~string] struct {
	a, b T
}

// pairTable scores unordered answers from an explicit table. Only one orientation
// of each pair needs to be listed; the swapped pair is tried before the fallback.
type pairTable[T ~string] struct {
	values   []T
	scores   map[pair[T]]float64
	fallback float64
}

func (p pairTable[T]) compare(a, b string) (float64, bool) {
	va, vb, ok := parsePair(p.values, a, b)
	if !ok {
		return 0, false
	}
	return p.lookup(va, vb), true
}

func (p pairTable[T]) lookup(a, b T) float64 {
	if a == b {
		return 100
	}
	if s, ok := p.scores[pair[T]{a, b}]; ok {
		return s
	}
	if s, ok := p.scores[pair[T]{b, a}]; ok {
		return s
	}
	return p.fallback
}

// custom is for attributes with their own three-way rule.
type custom[T ~string] struct {
	values []T
	score  func(a, b T) float64
}

func (c custom[T]) compare(a, b string) (float64, bool) {
	va, vb, ok := parsePair(c.values, a, b)
	if !ok {
		return 0, false
	}
	return c.score(va, vb), true
}
