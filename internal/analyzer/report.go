package analyzer

import (
	"fmt"
	"strings"
)

// QuestionResult is one persisted question row fed into report aggregation.
// Unanswered questions carry an empty Answer and are excluded from scoring.
type QuestionResult struct {
	Number     int
	Question   string
	Difficulty DifficultyLevel
	Answer     string
	Score      int
}

// Report is the aggregated outcome of one interview session.
type Report struct {
	JobRole             string   `json:"job_role"`
	TotalScore          int      `json:"total_score"`
	TotalQuestions      int      `json:"total_questions"`
	AnsweredQuestions   int      `json:"answered_questions"`
	CorrectAnswers      int      `json:"correct_answers"`
	PartialAnswers      int      `json:"partial_answers"`
	IncorrectAnswers    int      `json:"incorrect_answers"`
	AverageScore        float64  `json:"average_score_per_question"`
	BasicScore          int      `json:"basic_questions_score"`
	IntermediateScore   int      `json:"intermediate_questions_score"`
	AdvancedScore       int      `json:"advanced_questions_score"`
	TechnicalScore      int      `json:"technical_score"`
	BehavioralScore     int      `json:"behavioral_score"`
	CommunicationRating int      `json:"communication_rating"`
	PerformanceTier     string   `json:"performance_tier"`
	ReadinessLevel      string   `json:"interview_readiness_level"`
	StrengthAreas       []string `json:"strength_areas"`
	ImprovementAreas    []string `json:"improvement_areas"`
	TopPerformingAreas  []string `json:"top_performing_areas"`
	SkillGaps           []string `json:"skill_gaps_identified"`
	Recommendations     []string `json:"actionable_recommendations"`
	OverallFeedback     string   `json:"overall_feedback"`
}

// Performance tiers by total score. These cut points are deliberately
// different from the per-answer correctness thresholds (80/50).
const (
	TierOutstanding         = "OUTSTANDING"
	TierStrong              = "STRONG"
	TierSatisfactory        = "SATISFACTORY"
	TierNeedsImprovement    = "NEEDS_IMPROVEMENT"
	TierRequiresPreparation = "REQUIRES_PREPARATION"
)

var technicalQuestionMarkers = []string{"code", "design", "implement", "api",
	"database", "system", "architecture", "testing"}

// IsTechnicalQuestion classifies a question as technical (vs behavioral) by
// fixed keyword substrings.
func IsTechnicalQuestion(question string) bool {
	return containsAny(strings.ToLower(question), technicalQuestionMarkers...)
}

// QuestionCategory labels a question for report display.
func QuestionCategory(question string) string {
	q := strings.ToLower(question)
	switch {
	case containsAny(q, "tell me about yourself", "walk me through"):
		return "Introduction"
	case containsAny(q, "challenge", "mistake", "disagree"):
		return "Behavioral"
	case containsAny(q, "design", "architect"):
		return "System Design"
	case containsAny(q, "code", "implement", "api"):
		return "Technical"
	case containsAny(q, "approach", "strategy"):
		return "Problem Solving"
	case containsAny(q, "team", "lead"):
		return "Leadership"
	default:
		return "General"
	}
}

// BuildReport aggregates the per-question results of a completed session.
// With no answered questions the total score floors at 0 and the tier is
// REQUIRES_PREPARATION.
func (a *Analyzer) BuildReport(jobRole string, results []QuestionResult) Report {
	answered := make([]QuestionResult, 0, len(results))
	for _, r := range results {
		if strings.TrimSpace(r.Answer) != "" {
			answered = append(answered, r)
		}
	}

	totalScore := 0
	correct, partial, incorrect := 0, 0, 0
	if len(answered) > 0 {
		sum := 0
		for _, r := range answered {
			sum += r.Score
			switch {
			case r.Score >= 80:
				correct++
			case r.Score >= 50:
				partial++
			default:
				incorrect++
			}
		}
		totalScore = sum / len(answered)
	}

	basicScore := averageByDifficulty(answered, DifficultyBasic)
	intermediateScore := averageByDifficulty(answered, DifficultyIntermediate)
	advancedScore := averageByDifficulty(answered, DifficultyAdvanced)
	technicalScore := averageByCategory(answered, true)
	behavioralScore := averageByCategory(answered, false)
	commRating := communicationRating(answered)

	report := Report{
		JobRole:             jobRole,
		TotalScore:          totalScore,
		TotalQuestions:      len(results),
		AnsweredQuestions:   len(answered),
		CorrectAnswers:      correct,
		PartialAnswers:      partial,
		IncorrectAnswers:    incorrect,
		AverageScore:        roundTenth(meanScore(answered)),
		BasicScore:          basicScore,
		IntermediateScore:   intermediateScore,
		AdvancedScore:       advancedScore,
		TechnicalScore:      technicalScore,
		BehavioralScore:     behavioralScore,
		CommunicationRating: commRating,
	}

	switch {
	case totalScore >= 85:
		report.PerformanceTier = TierOutstanding
	case totalScore >= 70:
		report.PerformanceTier = TierStrong
	case totalScore >= 55:
		report.PerformanceTier = TierSatisfactory
	case totalScore >= 40:
		report.PerformanceTier = TierNeedsImprovement
	default:
		report.PerformanceTier = TierRequiresPreparation
	}

	switch {
	case totalScore >= 75 && basicScore >= 80:
		report.ReadinessLevel = "Ready for Senior Roles"
	case totalScore >= 65 && basicScore >= 70:
		report.ReadinessLevel = "Ready for Mid-Level Roles"
	case totalScore >= 50:
		report.ReadinessLevel = "Ready for Entry-Level Roles"
	default:
		report.ReadinessLevel = "More Preparation Needed"
	}

	report.StrengthAreas = strengthAreas(basicScore, intermediateScore, advancedScore,
		technicalScore, behavioralScore, commRating)
	report.ImprovementAreas = improvementAreas(basicScore, intermediateScore, advancedScore,
		technicalScore, behavioralScore, commRating)
	report.TopPerformingAreas = topPerformingAreas(basicScore, intermediateScore, advancedScore,
		technicalScore, behavioralScore)
	report.SkillGaps = reportSkillGaps(basicScore, advancedScore, technicalScore,
		behavioralScore, incorrect, len(answered))
	report.Recommendations = recommendations(totalScore, jobRole)
	report.OverallFeedback = buildReportNarrative(report)

	return report
}

func meanScore(answered []QuestionResult) float64 {
	if len(answered) == 0 {
		return 0
	}
	sum := 0
	for _, r := range answered {
		sum += r.Score
	}
	return float64(sum) / float64(len(answered))
}

func roundTenth(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}

func averageByDifficulty(answered []QuestionResult, level DifficultyLevel) int {
	sum, n := 0, 0
	for _, r := range answered {
		if r.Difficulty == level {
			sum += r.Score
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / n
}

func averageByCategory(answered []QuestionResult, technical bool) int {
	sum, n := 0, 0
	for _, r := range answered {
		if IsTechnicalQuestion(r.Question) == technical {
			sum += r.Score
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / n
}

// communicationRating maps the fraction of substantial answers (30+ words)
// to a 1-5 rating.
func communicationRating(answered []QuestionResult) int {
	if len(answered) == 0 {
		return 1
	}
	substantial := 0
	for _, r := range answered {
		if wordCount(r.Answer) >= 30 {
			substantial++
		}
	}
	ratio := float64(substantial) / float64(len(answered))
	switch {
	case ratio >= 0.8:
		return 5
	case ratio >= 0.6:
		return 4
	case ratio >= 0.4:
		return 3
	case ratio >= 0.2:
		return 2
	default:
		return 1
	}
}

func strengthAreas(basic, intermediate, advanced, technical, behavioral, comm int) []string {
	var strengths []string
	if basic >= 80 {
		strengths = append(strengths, "Strong foundation in basics")
	}
	if intermediate >= 75 {
		strengths = append(strengths, "Good grasp of intermediate concepts")
	}
	if advanced >= 70 {
		strengths = append(strengths, "Handles advanced topics well")
	}
	if behavioral >= 75 {
		strengths = append(strengths, "Excellent soft skills & communication")
	}
	if technical >= 75 {
		strengths = append(strengths, "Strong technical knowledge")
	}
	if comm >= 4 {
		strengths = append(strengths, "Clear and structured responses")
	}
	if len(strengths) == 0 {
		strengths = append(strengths, "Shows willingness to learn")
	}
	return strengths
}

func improvementAreas(basic, intermediate, advanced, technical, behavioral, comm int) []string {
	var improvements []string
	if basic < 70 {
		improvements = append(improvements, "Review fundamental concepts")
	}
	if intermediate < 60 {
		improvements = append(improvements, "Practice intermediate-level problems")
	}
	if advanced < 50 {
		improvements = append(improvements, "Study advanced topics more deeply")
	}
	if behavioral < 60 {
		improvements = append(improvements, "Work on behavioral interview skills")
	}
	if technical < 60 {
		improvements = append(improvements, "Strengthen technical foundations")
	}
	if comm < 3 {
		improvements = append(improvements, "Practice structuring your answers better")
	}
	return improvements
}

func topPerformingAreas(basic, intermediate, advanced, technical, behavioral int) []string {
	var areas []string
	best := basic
	if intermediate > best {
		best = intermediate
	}
	if advanced > best {
		best = advanced
	}
	if basic == best {
		areas = append(areas, fmt.Sprintf("Fundamentals (%d%%)", basic))
	}
	if intermediate == best {
		areas = append(areas, fmt.Sprintf("Applied Knowledge (%d%%)", intermediate))
	}
	if technical > behavioral {
		areas = append(areas, "Technical Questions")
	} else {
		areas = append(areas, "Behavioral Questions")
	}
	return areas
}

func reportSkillGaps(basic, advanced, technical, behavioral, incorrect, answeredCount int) []string {
	var gaps []string
	if advanced < basic-20 {
		gaps = append(gaps, "Gap between basic understanding and advanced application")
	}
	if technical < 60 {
		gaps = append(gaps, "Technical depth needs improvement")
	}
	if behavioral < 60 {
		gaps = append(gaps, "Storytelling and examples could be stronger")
	}
	if answeredCount > 0 && incorrect > answeredCount/3 {
		gaps = append(gaps, "Significant knowledge gaps in core areas")
	}
	return gaps
}

func recommendations(totalScore int, jobRole string) []string {
	switch {
	case totalScore < 50:
		return []string{
			fmt.Sprintf("Take structured courses on %s fundamentals", jobRole),
			"Practice with online coding platforms daily",
			"Build 2-3 portfolio projects demonstrating key skills",
		}
	case totalScore < 70:
		return []string{
			"Focus on weak areas identified in this assessment",
			"Practice explaining your thought process out loud",
			"Prepare STAR-format stories for behavioral questions",
		}
	default:
		return []string{
			"Polish your answers with more quantifiable metrics",
			"Practice system design discussions",
			"Consider targeting senior or lead positions",
		}
	}
}

func buildReportNarrative(r Report) string {
	var b strings.Builder

	switch {
	case r.TotalScore >= 85:
		b.WriteString("OUTSTANDING PERFORMANCE\n\n")
		b.WriteString("Congratulations! You've demonstrated exceptional interview skills. ")
		b.WriteString("Your responses showed deep technical knowledge, clear communication, and strong problem-solving abilities. ")
		b.WriteString("You're well-prepared for senior-level positions.\n\n")
	case r.TotalScore >= 70:
		b.WriteString("STRONG PERFORMANCE\n\n")
		b.WriteString("Great job! You've shown solid technical competence and good communication skills. ")
		b.WriteString("With some refinement in specific areas, you'll be ready for challenging roles. ")
		b.WriteString("Focus on adding more depth and examples to your answers.\n\n")
	case r.TotalScore >= 55:
		b.WriteString("SATISFACTORY PERFORMANCE\n\n")
		b.WriteString("You've demonstrated foundational knowledge but have room for growth. ")
		b.WriteString("Your answers covered basics but lacked depth in some areas. ")
		b.WriteString("Practice explaining concepts more thoroughly with real examples.\n\n")
	case r.TotalScore >= 40:
		b.WriteString("NEEDS IMPROVEMENT\n\n")
		b.WriteString("Your performance indicates gaps in preparation. ")
		b.WriteString("Several answers were too brief or missed key technical points. ")
		b.WriteString("Dedicate time to strengthening fundamentals and practicing structured responses.\n\n")
	default:
		b.WriteString("MORE PREPARATION NEEDED\n\n")
		b.WriteString("Your responses suggest you need more study and practice before interviews. ")
		b.WriteString("Focus on core concepts, take online courses, and practice with the STAR method. ")
		b.WriteString("Don't be discouraged - everyone starts somewhere!\n\n")
	}

	total := r.TotalQuestions
	correctRate := 0.0
	partialRate := 0.0
	incorrectRate := 0.0
	if total > 0 {
		correctRate = float64(r.CorrectAnswers) * 100 / float64(total)
		partialRate = float64(r.PartialAnswers) * 100 / float64(total)
		incorrectRate = float64(r.IncorrectAnswers) * 100 / float64(total)
	}

	b.WriteString("DETAILED BREAKDOWN\n")
	fmt.Fprintf(&b, "- Questions Answered: %d of %d\n", r.AnsweredQuestions, total)
	fmt.Fprintf(&b, "- Strong Answers (80%%+): %d (%.1f%%)\n", r.CorrectAnswers, correctRate)
	fmt.Fprintf(&b, "- Partial Answers (50-79%%): %d (%.1f%%)\n", r.PartialAnswers, partialRate)
	fmt.Fprintf(&b, "- Weak Answers (<50%%): %d (%.1f%%)\n\n", r.IncorrectAnswers, incorrectRate)

	b.WriteString("PERSONALIZED RECOMMENDATIONS\n")
	if r.CorrectAnswers < total/2 {
		b.WriteString("- Technical Depth: review core concepts for your target role\n")
		b.WriteString("- Practice: use the STAR method (Situation, Task, Action, Result) for behavioral questions\n")
	}
	if r.PartialAnswers > r.CorrectAnswers {
		b.WriteString("- Completeness: your answers often missed key details - practice expanding your responses\n")
		b.WriteString("- Examples: include more specific, quantifiable achievements\n")
	}
	if r.IncorrectAnswers > 3 {
		b.WriteString("- Fundamentals: focus on strengthening your core knowledge\n")
		b.WriteString("- Confidence: practice speaking about technical topics out loud\n")
	}
	if r.TotalScore >= 70 {
		b.WriteString("- Polish: work on adding metrics and specific outcomes to your stories\n")
		b.WriteString("- Leadership: start incorporating examples of mentoring or leading initiatives\n")
	}

	b.WriteString("\nNEXT STEPS\n")
	switch {
	case r.TotalScore >= 70:
		b.WriteString("- Apply to roles confidently - you're interview-ready!\n")
		b.WriteString("- Consider targeting senior or lead positions\n")
	case r.TotalScore >= 50:
		b.WriteString("- Continue practicing with mock interviews\n")
		b.WriteString("- Review feedback on weaker questions and prepare better answers\n")
	default:
		b.WriteString("- Take structured courses on your target technology stack\n")
		b.WriteString("- Practice daily with interview prep platforms\n")
		b.WriteString("- Build projects to gain practical experience\n")
	}

	return b.String()
}
