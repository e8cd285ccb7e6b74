package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func longAnswer() string {
	return strings.Repeat("I solved this with a clear process and measurable results. ", 5)
}

func resultsWithScore(score int, n int) []QuestionResult {
	results := make([]QuestionResult, 0, n)
	for i := 0; i < n; i++ {
		results = append(results, QuestionResult{
			Number:     i + 1,
			Question:   "Describe your approach to testing and code design.",
			Difficulty: DifficultyForPosition(i),
			Answer:     longAnswer(),
			Score:      score,
		})
	}
	return results
}

func TestBuildReportNoAnswers(t *testing.T) {
	a := New()

	results := make([]QuestionResult, TotalQuestions)
	for i := range results {
		results[i] = QuestionResult{
			Number:     i + 1,
			Question:   "Tell me about yourself and what made you interested in this role.",
			Difficulty: DifficultyForPosition(i),
		}
	}

	report := a.BuildReport("Backend Developer", results)

	assert.Equal(t, 0, report.TotalScore)
	assert.Equal(t, 0, report.AnsweredQuestions)
	assert.Equal(t, TierRequiresPreparation, report.PerformanceTier)
	assert.Equal(t, "More Preparation Needed", report.ReadinessLevel)
	assert.Equal(t, 1, report.CommunicationRating)
}

func TestBuildReportCountsPartitionAnswered(t *testing.T) {
	a := New()

	results := []QuestionResult{
		{Number: 1, Question: "Q1 about code", Difficulty: DifficultyBasic, Answer: longAnswer(), Score: 90},
		{Number: 2, Question: "Q2 about teamwork", Difficulty: DifficultyBasic, Answer: longAnswer(), Score: 65},
		{Number: 3, Question: "Q3 about design", Difficulty: DifficultyIntermediate, Answer: longAnswer(), Score: 40},
		{Number: 4, Question: "Q4 unanswered", Difficulty: DifficultyAdvanced},
	}

	report := a.BuildReport("Backend Developer", results)

	assert.Equal(t, 3, report.AnsweredQuestions)
	assert.Equal(t, report.AnsweredQuestions,
		report.CorrectAnswers+report.PartialAnswers+report.IncorrectAnswers)
	assert.Equal(t, 1, report.CorrectAnswers)
	assert.Equal(t, 1, report.PartialAnswers)
	assert.Equal(t, 1, report.IncorrectAnswers)
	assert.Equal(t, (90+65+40)/3, report.TotalScore)
}

func TestBuildReportPerformanceTiers(t *testing.T) {
	a := New()

	tests := []struct {
		score int
		tier  string
	}{
		{90, TierOutstanding},
		{85, TierOutstanding},
		{75, TierStrong},
		{60, TierSatisfactory},
		{45, TierNeedsImprovement},
		{20, TierRequiresPreparation},
	}

	for _, tt := range tests {
		report := a.BuildReport("Backend Developer", resultsWithScore(tt.score, TotalQuestions))
		assert.Equal(t, tt.tier, report.PerformanceTier, "score %d", tt.score)
	}
}

func TestBuildReportReadinessLevels(t *testing.T) {
	a := New()

	report := a.BuildReport("Backend Developer", resultsWithScore(85, TotalQuestions))
	assert.Equal(t, "Ready for Senior Roles", report.ReadinessLevel)

	report = a.BuildReport("Backend Developer", resultsWithScore(52, TotalQuestions))
	assert.Equal(t, "Ready for Entry-Level Roles", report.ReadinessLevel)
}

func TestBuildReportCommunicationRating(t *testing.T) {
	a := New()

	// Every answer is substantial, so the rating tops out.
	report := a.BuildReport("Backend Developer", resultsWithScore(70, 10))
	assert.Equal(t, 5, report.CommunicationRating)
}

func TestBuildReportNarrativeAndRecommendations(t *testing.T) {
	a := New()
	report := a.BuildReport("Backend Developer", resultsWithScore(88, TotalQuestions))

	require.NotEmpty(t, report.OverallFeedback)
	assert.Contains(t, report.OverallFeedback, "DETAILED BREAKDOWN")
	assert.Contains(t, report.OverallFeedback, "NEXT STEPS")
	assert.NotEmpty(t, report.Recommendations)
	assert.NotEmpty(t, report.StrengthAreas)
}

func TestIsTechnicalQuestion(t *testing.T) {
	tests := []struct {
		question string
		want     bool
	}{
		{"How do you design a database schema?", true},
		{"Explain your approach to testing.", true},
		{"Tell me about a time you disagreed with a colleague.", false},
		{"How do you stay motivated when working on long-term projects?", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsTechnicalQuestion(tt.question), tt.question)
	}
}

func TestQuestionCategory(t *testing.T) {
	tests := []struct {
		question string
		want     string
	}{
		{"Tell me about yourself and what made you interested in this role.", "Introduction"},
		{"Tell me about a mistake you made and what you learned from it.", "Behavioral"},
		{"How would you design a rate limiter?", "System Design"},
		{"How do you implement authentication in an api?", "Technical"},
		{"What's your approach to debugging production incidents?", "Problem Solving"},
		{"How do you motivate people?", "General"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, QuestionCategory(tt.question), tt.question)
	}
}
