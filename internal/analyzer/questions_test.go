package analyzer

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateQuestionsCountAndIntro(t *testing.T) {
	a := New()

	for _, role := range []string{"Backend Developer", "Frontend Developer", "Data Scientist", "Unknown Role"} {
		t.Run(role, func(t *testing.T) {
			questions := a.GenerateQuestions("some resume text", role)

			require.Len(t, questions, TotalQuestions)
			assert.Equal(t, introQuestions[0], questions[0])
			assert.Equal(t, introQuestions[1], questions[1])
			assert.Equal(t, introQuestions[2], questions[2])
		})
	}
}

func TestGenerateQuestionsDeterministicWithoutRand(t *testing.T) {
	a := New()
	first := a.GenerateQuestions("resume", "Backend Developer")
	second := a.GenerateQuestions("resume", "Backend Developer")

	assert.Equal(t, first, second)
}

func TestGenerateQuestionsShuffleKeepsIntroFixed(t *testing.T) {
	a := New(WithRand(rand.New(rand.NewSource(42))))
	questions := a.GenerateQuestions("resume", "Backend Developer")

	require.Len(t, questions, TotalQuestions)
	assert.Equal(t, introQuestions[0], questions[0])
	assert.Equal(t, introQuestions[1], questions[1])
	assert.Equal(t, introQuestions[2], questions[2])
}

func TestGenerateQuestionsSameSeedSameOrder(t *testing.T) {
	first := New(WithRand(rand.New(rand.NewSource(7)))).GenerateQuestions("resume", "DevOps Engineer")
	second := New(WithRand(rand.New(rand.NewSource(7)))).GenerateQuestions("resume", "DevOps Engineer")

	assert.Equal(t, first, second)
}

func TestGenerateQuestionsNoDuplicatesForKnownRole(t *testing.T) {
	a := New()
	questions := a.GenerateQuestions("resume", "Backend Developer")

	seen := make(map[string]bool, len(questions))
	for _, q := range questions {
		assert.False(t, seen[q], "duplicate question: %s", q)
		seen[q] = true
	}
}

func TestDifficultyForPosition(t *testing.T) {
	tests := []struct {
		index int
		want  DifficultyLevel
	}{
		{0, DifficultyBasic},
		{5, DifficultyBasic},
		{6, DifficultyIntermediate},
		{11, DifficultyIntermediate},
		{12, DifficultyAdvanced},
		{17, DifficultyAdvanced},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DifficultyForPosition(tt.index), "index %d", tt.index)
	}
}
