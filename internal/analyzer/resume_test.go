package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const backendResume = `John Doe
john.doe@example.com | 555-123-4567 | linkedin.com/in/johndoe
San Francisco, CA

Summary
Backend Developer with 6 years of experience building distributed systems.

Skills
Java, Spring Boot, REST API, SQL, Git, Microservices, Database design,
Maven, JUnit, Docker, Kubernetes, AWS, Redis, Kafka

Experience
Senior Backend Developer, Acme Corp
- Developed REST API services handling 2M+ requests daily
- Designed microservices architecture, reduced latency by 45%
- Implemented caching with Redis, improved throughput by 30%
- Led a team of 4 engineers and mentored junior developers
- Built CI/CD pipelines with Jenkins, automated deployments

Education
B.S. Computer Science, State University

Projects
- Created an event-driven order system with Kafka and Spring Boot
- Optimized SQL queries, reduced report generation time by 60%

Certifications
AWS Certified Solutions Architect

Achievements
- Increased system uptime to 99.95%
- Delivered 12 major releases with zero rollback`

func TestAnalyzeResumeBackendDeveloper(t *testing.T) {
	a := New()
	result := a.AnalyzeResume(backendResume, "Backend Developer", "")

	assert.GreaterOrEqual(t, result.ATSScore, 55)
	assert.LessOrEqual(t, result.ATSScore, 100)
	assert.Contains(t, []string{"GOOD", "STRONG", "EXCELLENT"}, result.ResumeStrength)

	requiredHits := 0
	for _, skill := range []string{"java", "spring boot", "rest api", "sql", "git",
		"microservices", "database", "maven", "junit"} {
		for _, m := range result.MatchedKeywords {
			if m == skill {
				requiredHits++
				break
			}
		}
	}
	assert.GreaterOrEqual(t, requiredHits, 5)

	assert.NotEmpty(t, result.Suggestions)
	assert.NotEmpty(t, result.OverallFeedback)
	assert.NotEmpty(t, result.CompetitiveAnalysis)
	assert.LessOrEqual(t, len(result.TopMatchedSkills), 5)
	assert.LessOrEqual(t, len(result.CriticalMissingSkills), 5)
}

func TestAnalyzeResumeIsIdempotent(t *testing.T) {
	a := New()
	first := a.AnalyzeResume(backendResume, "Backend Developer", "needs java and sql")
	second := a.AnalyzeResume(backendResume, "Backend Developer", "needs java and sql")

	assert.Equal(t, first, second)
}

func TestAnalyzeResumeScoresStayInRange(t *testing.T) {
	a := New()

	tests := []struct {
		name    string
		text    string
		jobRole string
	}{
		{"empty resume", "", "Backend Developer"},
		{"single word", "hello", "Frontend Developer"},
		{"unknown role", backendResume, "Underwater Basket Weaver"},
		{"strong resume", backendResume, "Backend Developer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := a.AnalyzeResume(tt.text, tt.jobRole, "")

			assert.GreaterOrEqual(t, result.ATSScore, 0)
			assert.LessOrEqual(t, result.ATSScore, 100)
			assert.GreaterOrEqual(t, result.ATSFriendlinessScore, 0)
			assert.LessOrEqual(t, result.ATSFriendlinessScore, 100)
			assert.GreaterOrEqual(t, result.StructureScore, 0)
			assert.LessOrEqual(t, result.StructureScore, 100)
			assert.GreaterOrEqual(t, result.ExperienceScore, 0)
			assert.LessOrEqual(t, result.ExperienceScore, 100)
			assert.GreaterOrEqual(t, result.SoftSkillsScore, 0)
			assert.LessOrEqual(t, result.SoftSkillsScore, 100)
			assert.Equal(t, tt.jobRole, result.JobRole)
		})
	}
}

func TestAnalyzeResumePartitionsKeywords(t *testing.T) {
	a := New()
	result := a.AnalyzeResume(backendResume, "Backend Developer", "")

	profile := profileForRole("Backend Developer")
	total := len(profile.required) + len(profile.preferred)
	assert.Equal(t, total, len(result.MatchedKeywords)+len(result.MissingKeywords))

	requiredSet := make(map[string]bool)
	for _, s := range profile.required {
		requiredSet[s] = true
	}
	for _, s := range result.CriticalMissingSkills {
		assert.True(t, requiredSet[s], "critical missing skill %q must be a required skill", s)
	}
}

func TestKeywordDensityMatchesPartition(t *testing.T) {
	a := New()
	result := a.AnalyzeResume(backendResume, "Backend Developer", "")

	total := len(result.MatchedKeywords) + len(result.MissingKeywords)
	require.Positive(t, total)
	assert.Equal(t, len(result.MatchedKeywords)*100/total, result.KeywordDensityScore)
}

func TestContainsSkillMatchesWholeWords(t *testing.T) {
	assert.True(t, containsSkill("worked with java and sql", "java"))
	assert.False(t, containsSkill("worked with javascript", "java"))
	assert.True(t, containsSkill("ci/cd pipelines with rest api design", "rest api"))
}

func TestProfileForRoleFallsBackToGeneric(t *testing.T) {
	known := profileForRole("Senior Backend Developer")
	assert.Contains(t, known.required, "java")

	unknown := profileForRole("Chief Vibes Officer")
	assert.Equal(t, genericProfile.required, unknown.required)
}
