// Package analyzer implements the deterministic rule-based engine behind
// resume analysis, interview question generation, answer evaluation and
// session report aggregation. All entry points are pure functions of their
// inputs; the only randomness (question shuffling and answer score spread)
// comes from an optional rand source so callers can make runs reproducible.
package analyzer

import "math/rand"

const TotalQuestions = 18

// DifficultyLevel classifies interview questions. Assignment is positional
// (first 6 basic, next 6 intermediate, last 6 advanced), not semantic.
type DifficultyLevel string

const (
	DifficultyBasic        DifficultyLevel = "BASIC"
	DifficultyIntermediate DifficultyLevel = "INTERMEDIATE"
	DifficultyAdvanced     DifficultyLevel = "ADVANCED"
)

// Analyzer evaluates resumes and interview answers against static rubric
// tables. The zero value is fully deterministic: question order beyond the
// intro trio is left as generated and answer scores sit at the midpoint of
// their quality band.
type Analyzer struct {
	rng *rand.Rand
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithRand supplies a random source used for question shuffling and for
// spreading answer scores within their quality band. Pass a seeded source
// for reproducible output.
func WithRand(r *rand.Rand) Option {
	return func(a *Analyzer) { a.rng = r }
}

func New(opts ...Option) *Analyzer {
	a := &Analyzer{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// DifficultyForPosition returns the difficulty tier for a zero-based question
// index. Sessions hold exactly 18 questions split 6/6/6.
func DifficultyForPosition(i int) DifficultyLevel {
	switch {
	case i < 6:
		return DifficultyBasic
	case i < 12:
		return DifficultyIntermediate
	default:
		return DifficultyAdvanced
	}
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
