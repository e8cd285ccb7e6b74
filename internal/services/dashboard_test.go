package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resumentor/internal/models"
)

func points(scores ...int) []models.ScorePoint {
	out := make([]models.ScorePoint, 0, len(scores))
	for _, s := range scores {
		out = append(out, models.ScorePoint{Date: "2026-01-01", Score: s})
	}
	return out
}

func TestComputeTrend(t *testing.T) {
	tests := []struct {
		name      string
		points    []models.ScorePoint
		direction string
	}{
		{"too few points", points(50, 60, 70), "insufficient_data"},
		{"improving", points(40, 45, 70, 80), "improving"},
		{"declining", points(80, 75, 50, 45), "declining"},
		{"stable", points(60, 62, 61, 60), "stable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trend := computeTrend(tt.points)
			assert.Equal(t, tt.direction, trend.Direction)
		})
	}
}

func TestComputeTrendDelta(t *testing.T) {
	trend := computeTrend(points(40, 40, 60, 60))
	assert.Equal(t, 20, trend.Delta)
	assert.Equal(t, "improving", trend.Direction)
}

func TestLastN(t *testing.T) {
	all := points(1, 2, 3, 4, 5)

	trimmed := lastN(all, 3)
	assert.Len(t, trimmed, 3)
	assert.Equal(t, 3, trimmed[0].Score)
	assert.Equal(t, 5, trimmed[2].Score)

	assert.Len(t, lastN(all, 10), 5)
}

func TestFeedbackThemes(t *testing.T) {
	themes := feedbackThemes(points(80, 85), points(30, 40))
	assert.Len(t, themes, 2)
	assert.Contains(t, themes[0], "consistently rank well")
	assert.Contains(t, themes[1], "preparation")

	empty := feedbackThemes(nil, nil)
	assert.Len(t, empty, 1)
}
