package analyzer

import (
	"regexp"
	"strings"
)

// AnswerEvaluation holds the outcome of scoring one interview answer. Score
// and Feedback are derived in a single pass from the same clarity,
// conciseness and relevance tallies.
type AnswerEvaluation struct {
	Score        int    `json:"score"`
	Feedback     string `json:"feedback"`
	Clarity      int    `json:"clarity"`
	Conciseness  int    `json:"conciseness"`
	Relevance    int    `json:"relevance"`
	HasExample   bool   `json:"has_example"`
	HasMetrics   bool   `json:"has_metrics"`
	HasStructure bool   `json:"has_structure"`
}

const emptyAnswerFeedback = "No answer provided. It's important to attempt an answer, even if you're unsure. " +
	"Try to share your thought process or ask clarifying questions if needed.\n\n" +
	"Tip: saying 'I'm not sure, but here's how I would approach it...' shows problem-solving skills."

var (
	jargonRe       = regexp.MustCompile(`\b(API|SDK|MVP|OOP|DRY|SOLID|REST)\b`)
	answerMetricRe = regexp.MustCompile(`\d+%|\d+ times|\d+ users|\d+ years|\d+ months`)
	sentenceRe     = regexp.MustCompile(`[.!?]+`)
)

var fillerWords = []string{"basically", "actually", "really", "very", "literally", "honestly", "just"}

var exampleMarkers = []string{"for example", "for instance", "specifically", "in my experience", "when i", "i once"}

var structureMarkers = []string{"first", "second", "finally", "additionally", "to begin", "in conclusion"}

var technicalQuestionKeywords = []string{"api", "database", "code", "design", "architecture",
	"testing", "deploy", "optimize", "implement", "debug",
	"kubernetes", "docker", "react", "java", "python"}

var questionStopWords = map[string]bool{
	"what": true, "how": true, "why": true, "when": true, "where": true,
	"which": true, "who": true, "tell": true, "describe": true, "explain": true,
	"your": true, "you": true, "can": true, "could": true, "would": true,
	"about": true, "the": true, "a": true, "an": true,
}

// EvaluateAnswer scores a candidate answer against the question using the
// additive clarity/conciseness/relevance rubric. An empty answer yields the
// fixed no-answer template and a score of 0 regardless of question. The
// resume text is accepted for interface stability but unused by the rubric.
func (a *Analyzer) EvaluateAnswer(question, answer, resumeText string) AnswerEvaluation {
	if strings.TrimSpace(answer) == "" {
		return AnswerEvaluation{Score: 0, Feedback: emptyAnswerFeedback}
	}

	answerLower := strings.ToLower(answer)
	questionLower := strings.ToLower(question)
	wc := wordCount(answer)
	sentences := 0
	for _, s := range sentenceRe.Split(answer, -1) {
		if strings.TrimSpace(s) != "" {
			sentences++
		}
	}
	if sentences == 0 {
		sentences = 1
	}

	// Clarity: jargon handling, transitions, sentence length.
	clarity := 0
	var clarityNotes []string
	hasJargon := jargonRe.MatchString(answer)
	hasExplanation := containsAny(answerLower, "which means", "this is", "essentially", "in other words")
	if hasJargon && !hasExplanation {
		clarityNotes = append(clarityNotes, "Consider explaining technical acronyms briefly.")
		clarity--
	} else if hasJargon && hasExplanation {
		clarity += 2
	}

	hasStructure := containsAny(answerLower, structureMarkers...)
	if hasStructure {
		clarity += 2
	} else if wc > 80 {
		clarityNotes = append(clarityNotes, "Longer responses benefit from clear structure (First, Then, Finally).")
	}

	avgWordsPerSentence := float64(wc) / float64(sentences)
	if avgWordsPerSentence > 30 {
		clarityNotes = append(clarityNotes, "Some sentences are quite long - shorter sentences improve readability.")
		clarity--
	} else if avgWordsPerSentence >= 12 && avgWordsPerSentence <= 20 {
		clarity++
	}

	// Conciseness: length bands and filler density.
	conciseness := 0
	var concisenessNotes []string
	switch {
	case wc < 20:
		concisenessNotes = append(concisenessNotes, "Response is too brief - expand with more details and examples.")
		conciseness -= 2
	case wc >= 40 && wc <= 150:
		conciseness += 2
	case wc > 200:
		concisenessNotes = append(concisenessNotes, "Response could be more concise - focus on key points.")
		conciseness--
	default:
		concisenessNotes = append(concisenessNotes, "Good start, but could use a bit more detail.")
		conciseness++
	}

	fillerCount := 0
	for _, f := range fillerWords {
		if strings.Contains(answerLower, f) {
			fillerCount++
		}
	}
	if fillerCount >= 3 {
		concisenessNotes = append(concisenessNotes, "Reduce filler words (basically, actually, etc.) for stronger impact.")
		conciseness--
	}

	// Relevance: question-topic coverage plus question-type checks.
	relevance := 0
	var relevanceNotes []string
	topics := extractKeyTopics(questionLower)
	addressed := 0
	for _, topic := range topics {
		if strings.Contains(answerLower, topic) {
			addressed++
		}
	}
	relevanceRate := 0.5
	if len(topics) > 0 {
		relevanceRate = float64(addressed) / float64(len(topics))
	}
	switch {
	case relevanceRate >= 0.6:
		relevance += 2
	case relevanceRate >= 0.3:
		relevance++
		relevanceNotes = append(relevanceNotes, "Your answer partially addresses the question.")
	default:
		relevanceNotes = append(relevanceNotes, "Make sure to directly address what's being asked.")
		relevance--
	}

	hasExample := containsAny(answerLower, exampleMarkers...)
	hasMetrics := answerMetricRe.MatchString(answer)
	if hasExample {
		relevance++
	}
	if hasMetrics {
		relevance++
	}

	if containsAny(questionLower, "tell me about yourself", "walk me through") && !hasStructure {
		relevanceNotes = append(relevanceNotes, "Structure your background chronologically or thematically.")
	}

	if containsAny(questionLower, "challenge", "mistake", "difficult", "failure") {
		hasLearning := containsAny(answerLower, "learned", "realized", "improved", "outcome", "grew", "taught me")
		if !hasLearning {
			relevanceNotes = append(relevanceNotes, "Emphasize what you learned from this experience.")
			relevance--
		}
	}

	if containsAny(questionLower, "approach", "strategy", "how do you", "your process") {
		hasProcess := containsAny(answerLower, "step", "process", "typically", "approach", "method", "framework")
		if !hasProcess {
			relevanceNotes = append(relevanceNotes, "Outline your systematic approach or methodology.")
			relevance--
		}
	}

	if containsAny(questionLower, technicalQuestionKeywords...) {
		expected := expectedTerms(questionLower)
		found := 0
		for _, term := range expected {
			if strings.Contains(answerLower, term) {
				found++
			}
		}
		if found < len(expected)/3 {
			relevanceNotes = append(relevanceNotes, "Include more technical specifics relevant to the question.")
			relevance--
		} else if found >= len(expected)/2 {
			relevance++
		}
	}

	quality := clarity + conciseness + relevance

	eval := AnswerEvaluation{
		Clarity:      clarity,
		Conciseness:  conciseness,
		Relevance:    relevance,
		HasExample:   hasExample,
		HasMetrics:   hasMetrics,
		HasStructure: hasStructure,
	}
	eval.Score = a.scoreFromQuality(quality, wc, hasExample)
	eval.Feedback = buildAnswerFeedback(quality, clarity, conciseness, relevance,
		clarityNotes, concisenessNotes, relevanceNotes, hasExample, hasMetrics, hasStructure, wc)
	return eval
}

// scoreFromQuality maps the overall quality tally to a 0-100 score. Each
// quality band owns a sub-range; a configured random source spreads scores
// within the band, otherwise the band midpoint is used.
func (a *Analyzer) scoreFromQuality(quality, wc int, hasExample bool) int {
	var base, spread int
	switch {
	case quality >= 5:
		base, spread = 85, 15
	case quality >= 2:
		base, spread = 70, 15
	case quality >= 0:
		base, spread = 55, 15
	default:
		base, spread = 35, 20
	}

	score := base + spread/2
	if a.rng != nil {
		score = base + a.rng.Intn(spread)
	}

	if wc < 15 {
		score -= 15
		if score < 20 {
			score = 20
		}
	} else if wc >= 40 && wc <= 150 {
		score += 5
	}
	if hasExample {
		score += 5
	}

	return clampScore(score)
}

func buildAnswerFeedback(quality, clarity, conciseness, relevance int,
	clarityNotes, concisenessNotes, relevanceNotes []string,
	hasExample, hasMetrics, hasStructure bool, wc int) string {

	var b strings.Builder

	switch {
	case quality >= 5:
		b.WriteString("EXCELLENT RESPONSE\n\n")
	case quality >= 2:
		b.WriteString("GOOD ANSWER\n\n")
	case quality >= 0:
		b.WriteString("DECENT RESPONSE\n\n")
	default:
		b.WriteString("NEEDS IMPROVEMENT\n\n")
	}

	b.WriteString("DETAILED ANALYSIS\n\n")

	writeRating(&b, "Clarity", clarity,
		"Your response was clear and easy to follow.",
		"Response was reasonably clear.", clarityNotes)
	writeRating(&b, "Conciseness", conciseness,
		"Well-balanced response length.",
		"Acceptable length.", concisenessNotes)
	writeRating(&b, "Relevance", relevance,
		"Directly addressed the question asked.",
		"Mostly on topic.", relevanceNotes)

	b.WriteString("\nFROM YOUR ANSWER:\n")
	if hasExample {
		b.WriteString("+ Good use of examples to illustrate points\n")
	} else {
		b.WriteString("- Missing concrete examples - add real scenarios\n")
	}
	if hasMetrics {
		b.WriteString("+ Included quantifiable metrics\n")
	} else {
		b.WriteString("- No metrics found - add numbers to show impact\n")
	}
	if hasStructure {
		b.WriteString("+ Well-structured with clear transitions\n")
	} else if wc > 60 {
		b.WriteString("- Could benefit from structural markers\n")
	}

	b.WriteString("\nACTIONABLE TIP:\n")
	switch {
	case !hasExample:
		b.WriteString("Use the STAR method (Situation, Task, Action, Result) - describe a specific situation, your task, the actions you took, and the measurable results.")
	case !hasMetrics:
		b.WriteString("Quantify your impact wherever possible (e.g., 'reduced load time by 40%', 'managed team of 5', 'processed 10K daily transactions').")
	case !hasStructure && wc > 50:
		b.WriteString("Structure longer answers with signpost phrases: 'First...', 'Additionally...', 'Finally...' to guide the interviewer.")
	case clarity < 1:
		b.WriteString("Break complex ideas into shorter sentences. Define technical terms briefly when first used.")
	case conciseness < 1:
		b.WriteString("Aim for 50-150 words per response. Cut filler words and focus on your strongest points.")
	default:
		b.WriteString("Excellent foundation! Continue practicing to maintain this quality. Consider preparing 3-5 achievement stories you can adapt to different questions.")
	}

	return b.String()
}

// writeRating renders one three-star sub-rating line with remediation notes
// when the tally falls below the top band.
func writeRating(b *strings.Builder, label string, score int, excellentMsg, goodMsg string, notes []string) {
	b.WriteString(label + ": ")
	switch {
	case score >= 2:
		b.WriteString("*** Excellent - " + excellentMsg + "\n")
	case score >= 0:
		b.WriteString("**- Good - ")
		if len(notes) > 0 {
			b.WriteString(strings.Join(notes, " ") + "\n")
		} else {
			b.WriteString(goodMsg + "\n")
		}
	default:
		b.WriteString("*-- Needs Work - " + strings.Join(notes, " ") + "\n")
	}
}

// extractKeyTopics pulls non-stopword tokens longer than three characters
// from the question text.
func extractKeyTopics(question string) []string {
	var topics []string
	for _, word := range wordSplitRe.Split(question, -1) {
		cleaned := strings.Map(func(r rune) rune {
			if r >= 'a' && r <= 'z' {
				return r
			}
			return -1
		}, word)
		if len(cleaned) > 3 && !questionStopWords[cleaned] {
			topics = append(topics, cleaned)
		}
	}
	return topics
}

// expectedTerms returns the vocabulary a solid answer to a technical
// question is expected to touch, keyed by topic keywords in the question.
func expectedTerms(question string) []string {
	switch {
	case containsAny(question, "api", "rest"):
		return []string{"http", "endpoint", "status", "json", "request", "response", "method", "post", "get"}
	case containsAny(question, "database", "query"):
		return []string{"index", "query", "table", "join", "performance", "normalization", "sql", "optimization"}
	case containsAny(question, "react", "frontend"):
		return []string{"component", "state", "props", "render", "hook", "lifecycle", "dom", "effect"}
	case containsAny(question, "testing", "test"):
		return []string{"unit", "integration", "coverage", "mock", "assert", "edge case", "scenario", "automation"}
	case containsAny(question, "deploy", "ci/cd"):
		return []string{"pipeline", "build", "release", "environment", "automation", "rollback", "container"}
	case strings.Contains(question, "security"):
		return []string{"authentication", "authorization", "encryption", "vulnerability", "owasp", "token", "secure"}
	case containsAny(question, "kubernetes", "docker"):
		return []string{"container", "pod", "service", "deployment", "image", "cluster", "orchestration", "yaml"}
	default:
		return []string{"approach", "solution", "implement", "design", "process", "best practice"}
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
