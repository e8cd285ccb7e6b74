package analyzer

import (
	"fmt"
	"regexp"
	"strings"
)

// ResumeAnalysis is the full scoring breakdown for one resume against one
// target role. It is persisted as JSON alongside the resume record.
type ResumeAnalysis struct {
	ATSScore              int      `json:"ats_score"`
	JobRole               string   `json:"job_role"`
	MatchedKeywords       []string `json:"matched_keywords"`
	MissingKeywords       []string `json:"missing_keywords"`
	Suggestions           []string `json:"suggestions"`
	SkillGaps             []string `json:"skill_gaps"`
	OverallFeedback       string   `json:"overall_feedback"`
	KeywordMatchPercent   int      `json:"keyword_match_percentage"`
	StructureScore        int      `json:"structure_score"`
	ExperienceScore       int      `json:"experience_score"`
	SoftSkillsScore       int      `json:"soft_skills_score"`
	ResumeStrength        string   `json:"resume_strength"`
	TopMatchedSkills      []string `json:"top_matched_skills"`
	CriticalMissingSkills []string `json:"critical_missing_skills"`
	CompetitiveAnalysis   string   `json:"competitive_analysis"`

	ATSFriendlinessScore     int      `json:"ats_friendliness_score"`
	FormattingScore          int      `json:"formatting_score"`
	ParsabilityScore         int      `json:"parsability_score"`
	ContactInfoScore         int      `json:"contact_info_score"`
	SectionOrganizationScore int      `json:"section_organization_score"`
	KeywordDensityScore      int      `json:"keyword_density_score"`
	ATSIssues                []string `json:"ats_issues"`
	ATSTips                  []string `json:"ats_tips"`
}

var (
	phoneRe        = regexp.MustCompile(`\d{3}[-.]?\d{3}[-.]?\d{4}`)
	phoneLooseRe   = regexp.MustCompile(`\(?\d{3}\)?[-.]?\s?\d{3}[-.]?\d{4}`)
	metricRe       = regexp.MustCompile(`\d+%|\$\d+|\d+\+|\d+ years?`)
	impactMetricRe = regexp.MustCompile(`\d+%|\$\d+`)
	cityStateRe    = regexp.MustCompile(`\b[A-Z][a-z]+,\s*[A-Z]{2}\b`)
	wordSplitRe    = regexp.MustCompile(`\s+`)
)

// containsSkill reports whether the skill appears in the text as a whole
// word, case-insensitively.
func containsSkill(text, skill string) bool {
	re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(strings.ToLower(skill)) + `\b`)
	if err != nil {
		return false
	}
	return re.MatchString(text)
}

func wordCount(text string) int {
	return len(wordSplitRe.Split(strings.TrimSpace(text), -1))
}

// AnalyzeResume scores raw resume text against the requirement profile of the
// target role. The job description is optional and may be empty. The result
// is deterministic: identical inputs always produce identical output.
func (a *Analyzer) AnalyzeResume(resumeText, jobRole, jobDescription string) ResumeAnalysis {
	textLower := strings.ToLower(resumeText)
	profile := profileForRole(jobRole)

	matched := []string{}
	missing := []string{}
	for _, skill := range profile.required {
		if containsSkill(textLower, skill) {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	for _, skill := range profile.preferred {
		if containsSkill(textLower, skill) {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	matchedSoft := []string{}
	for _, skill := range softSkills {
		if containsSkill(textLower, skill) {
			matchedSoft = append(matchedSoft, skill)
		}
	}

	structureRate := analyzeStructure(resumeText)
	experienceRate := analyzeExperience(resumeText)

	atsScore := calculateATSScore(matched, profile, matchedSoft, structureRate, experienceRate)

	totalKeywords := len(profile.required) + len(profile.preferred)
	keywordMatchPercent := 0
	if totalKeywords > 0 {
		keywordMatchPercent = len(matched) * 100 / totalKeywords
	}

	softScore := len(matchedSoft) * 100 / 5
	if softScore > 100 {
		softScore = 100
	}

	strength := "NEEDS_IMPROVEMENT"
	switch {
	case atsScore >= 85:
		strength = "EXCELLENT"
	case atsScore >= 70:
		strength = "STRONG"
	case atsScore >= 55:
		strength = "GOOD"
	case atsScore >= 40:
		strength = "AVERAGE"
	}

	topMatched := matched
	if len(topMatched) > 5 {
		topMatched = topMatched[:5]
	}

	requiredSet := make(map[string]bool, len(profile.required))
	for _, s := range profile.required {
		requiredSet[s] = true
	}
	criticalMissing := []string{}
	for _, s := range missing {
		if requiredSet[s] && len(criticalMissing) < 5 {
			criticalMissing = append(criticalMissing, s)
		}
	}

	friendliness := calculateATSFriendliness(resumeText, matched, missing)

	return ResumeAnalysis{
		ATSScore:              atsScore,
		JobRole:               jobRole,
		MatchedKeywords:       matched,
		MissingKeywords:       missing,
		Suggestions:           generateSuggestions(resumeText, matched, missing, jobRole),
		SkillGaps:             identifySkillGaps(missing, requiredSet, jobRole),
		OverallFeedback:       generateResumeFeedback(atsScore, len(matched), len(missing), jobRole),
		KeywordMatchPercent:   keywordMatchPercent,
		StructureScore:        int(structureRate*100 + 0.5),
		ExperienceScore:       int(experienceRate*100 + 0.5),
		SoftSkillsScore:       softScore,
		ResumeStrength:        strength,
		TopMatchedSkills:      topMatched,
		CriticalMissingSkills: criticalMissing,
		CompetitiveAnalysis:   generateCompetitiveAnalysis(atsScore, len(matched), len(missing), jobRole),

		ATSFriendlinessScore:     friendliness.overall,
		FormattingScore:          friendliness.formatting,
		ParsabilityScore:         friendliness.parsability,
		ContactInfoScore:         friendliness.contactInfo,
		SectionOrganizationScore: friendliness.sectionOrg,
		KeywordDensityScore:      friendliness.keywordDensity,
		ATSIssues:                friendliness.issues,
		ATSTips:                  friendliness.tips,
	}
}

// calculateATSScore combines the weighted sub-scores into the headline 0-100
// score. Weights: required 30, preferred 15, structure 15, experience 12,
// soft skills 8, plus a base credit of 15 and a small match bonus.
func calculateATSScore(matched []string, profile roleProfile, matchedSoft []string, structureRate, experienceRate float64) int {
	matchedSet := make(map[string]bool, len(matched))
	for _, s := range matched {
		matchedSet[s] = true
	}

	score := 15.0

	requiredMatched := 0
	for _, s := range profile.required {
		if matchedSet[s] {
			requiredMatched++
		}
	}
	requiredRate := 0.5
	if len(profile.required) > 0 {
		requiredRate = float64(requiredMatched) / float64(len(profile.required))
	}
	score += requiredRate * 30

	preferredMatched := 0
	for _, s := range profile.preferred {
		if matchedSet[s] {
			preferredMatched++
		}
	}
	preferredRate := 0.5
	if len(profile.preferred) > 0 {
		half := len(profile.preferred) / 2
		if half < 1 {
			half = 1
		}
		preferredRate = float64(preferredMatched) / float64(half)
		if preferredRate > 1 {
			preferredRate = 1
		}
	}
	score += preferredRate * 15

	score += structureRate * 15
	score += experienceRate * 12

	softRate := float64(len(matchedSoft)) / 3.0
	if softRate > 1 {
		softRate = 1
	}
	score += softRate * 8

	if len(matched) >= 3 {
		score += 5
	} else if len(matched) >= 1 {
		score += 3
	}

	return clampScore(int(score + 0.5))
}

// analyzeStructure rates section headings, contact info and length on [0,1].
func analyzeStructure(text string) float64 {
	textLower := strings.ToLower(text)
	score := 0.0

	sections := []string{"experience", "education", "skills", "projects", "summary",
		"objective", "certifications", "achievements"}
	sectionCount := 0
	for _, s := range sections {
		if strings.Contains(textLower, s) {
			sectionCount++
		}
	}
	sectionRate := float64(sectionCount) / 5.0
	if sectionRate > 1 {
		sectionRate = 1
	}
	score += sectionRate * 0.4

	hasEmail := strings.Contains(text, "@") && (strings.Contains(textLower, ".com") ||
		strings.Contains(textLower, ".edu") || strings.Contains(textLower, ".org"))
	if hasEmail {
		score += 0.2
	}
	if phoneRe.MatchString(text) {
		score += 0.2
	}
	if strings.Contains(textLower, "linkedin") {
		score += 0.1
	}

	wc := wordCount(text)
	if wc >= 300 && wc <= 1500 {
		score += 0.1
	} else if wc >= 200 && wc <= 2000 {
		score += 0.05
	}

	if score > 1 {
		score = 1
	}
	return score
}

var actionVerbs = []string{
	"developed", "implemented", "designed", "created", "managed",
	"led", "built", "improved", "increased", "reduced", "achieved",
	"delivered", "launched", "optimized", "automated", "integrated",
}

// analyzeExperience rates action-verb and metric density on [0,1].
func analyzeExperience(text string) float64 {
	textLower := strings.ToLower(text)
	score := 0.0

	verbCount := 0
	for _, v := range actionVerbs {
		if strings.Contains(textLower, v) {
			verbCount++
		}
	}
	verbRate := float64(verbCount) / 8.0
	if verbRate > 1 {
		verbRate = 1
	}
	score += verbRate * 0.4

	metricCount := len(metricRe.FindAllString(text, -1))
	metricRate := float64(metricCount) / 5.0
	if metricRate > 1 {
		metricRate = 1
	}
	score += metricRate * 0.4

	if strings.Contains(textLower, "years of experience") ||
		strings.Contains(textLower, "years experience") {
		score += 0.2
	}

	if score > 1 {
		score = 1
	}
	return score
}

type atsFriendliness struct {
	overall        int
	formatting     int
	parsability    int
	contactInfo    int
	sectionOrg     int
	keywordDensity int
	issues         []string
	tips           []string
}

// calculateATSFriendliness runs the independent machine-readability
// heuristics and combines them with fixed 20/25/15/20/20 weights.
func calculateATSFriendliness(text string, matched, missing []string) atsFriendliness {
	textLower := strings.ToLower(text)
	issues := []string{}
	tips := []string{}

	formatting := 100
	if strings.ContainsAny(text, "│║═┌") {
		formatting -= 25
		issues = append(issues, "Resume contains special characters/table formatting that may confuse ATS")
	}
	if strings.ContainsAny(text, "■▪●○") {
		formatting -= 10
		issues = append(issues, "Decorative bullet characters may not be parsed correctly")
	}
	if len(strings.Split(text, "\n")) < 15 {
		formatting -= 15
		issues = append(issues, "Resume appears too short or may have formatting issues")
	}
	wc := wordCount(text)
	if wc >= 200 && wc <= 800 {
		formatting += 10
		if formatting > 100 {
			formatting = 100
		}
	}
	if formatting < 20 {
		formatting = 20
	}

	foundRequired := 0
	for _, s := range []string{"experience", "education", "skills"} {
		if strings.Contains(textLower, s) {
			foundRequired++
		}
	}
	foundOptional := 0
	for _, s := range []string{"summary", "objective", "projects", "certifications", "achievements"} {
		if strings.Contains(textLower, s) {
			foundOptional++
		}
	}
	optionalPart := float64(foundOptional) / 2.0 * 40
	if optionalPart > 40 {
		optionalPart = 40
	}
	parsability := int(float64(foundRequired)/3.0*60 + optionalPart)
	if foundRequired < 3 {
		issues = append(issues, "Missing standard sections: Experience, Education, or Skills")
		tips = append(tips, "Add clear section headers like 'Work Experience', 'Education', 'Skills'")
	}

	contactInfo := 0
	hasEmail := strings.Contains(text, "@") && (strings.Contains(textLower, ".com") ||
		strings.Contains(textLower, ".edu") || strings.Contains(textLower, ".org") ||
		strings.Contains(textLower, ".io"))
	if hasEmail {
		contactInfo += 35
	} else {
		issues = append(issues, "No email address found")
	}
	if phoneLooseRe.MatchString(text) {
		contactInfo += 30
	} else {
		issues = append(issues, "No phone number found")
	}
	if strings.Contains(textLower, "linkedin") {
		contactInfo += 20
	} else {
		tips = append(tips, "Add your LinkedIn profile URL")
	}
	hasLocation := strings.Contains(textLower, "city") || strings.Contains(textLower, "state") ||
		cityStateRe.MatchString(text)
	if strings.Contains(textLower, "github") || hasLocation {
		contactInfo += 15
	}
	if contactInfo > 100 {
		contactInfo = 100
	}

	sectionOrg := 30
	expPos := strings.Index(textLower, "experience")
	eduPos := strings.Index(textLower, "education")
	skillPos := strings.Index(textLower, "skills")
	if expPos >= 0 && eduPos >= 0 && skillPos >= 0 {
		sectionOrg = 70
		if expPos < eduPos {
			sectionOrg += 15
		}
		if skillPos > 0 {
			sectionOrg += 15
		}
	} else if expPos >= 0 || eduPos >= 0 {
		sectionOrg = 50
		issues = append(issues, "Consider adding clear section dividers")
	} else {
		issues = append(issues, "Resume structure is unclear - add standard sections")
	}
	if sectionOrg > 100 {
		sectionOrg = 100
	}

	keywordDensity := 50
	if total := len(matched) + len(missing); total > 0 {
		keywordDensity = len(matched) * 100 / total
	}
	if keywordDensity < 50 {
		issues = append(issues, "Low keyword match - resume may be filtered by ATS")
		tips = append(tips, "Include more role-specific keywords from the job description")
	} else if keywordDensity >= 80 {
		tips = append(tips, "Excellent keyword optimization!")
	}

	overall := int(float64(formatting)*0.20 + float64(parsability)*0.25 +
		float64(contactInfo)*0.15 + float64(sectionOrg)*0.20 + float64(keywordDensity)*0.20)

	if len(tips) == 0 {
		if overall >= 80 {
			tips = append(tips, "Your resume is well-optimized for ATS systems")
		} else {
			tips = append(tips,
				"Use standard fonts like Arial, Calibri, or Times New Roman",
				"Avoid images, graphics, or complex tables")
		}
	}

	return atsFriendliness{
		overall:        overall,
		formatting:     formatting,
		parsability:    parsability,
		contactInfo:    contactInfo,
		sectionOrg:     sectionOrg,
		keywordDensity: keywordDensity,
		issues:         issues,
		tips:           tips,
	}
}

var (
	softSkillBuckets = []string{"communication", "teamwork", "leadership", "problem-solving",
		"collaboration", "adaptability", "critical thinking", "time management"}
	toolBuckets = []string{"git", "docker", "kubernetes", "jenkins", "aws", "azure", "gcp",
		"jira", "confluence", "slack", "figma", "postman"}
	powerVerbs = []string{"spearheaded", "orchestrated", "revolutionized", "pioneered", "architected"}
)

// generateSuggestions emits templated placement advice for missing keywords
// plus generic ATS formatting, metrics and power-verb tips.
func generateSuggestions(text string, matched, missing []string, jobRole string) []string {
	suggestions := []string{}
	textLower := strings.ToLower(text)

	if len(missing) > 0 {
		technical, soft, tools := categorizeMissingSkills(missing)
		suggestions = append(suggestions, "MISSING KEYWORDS - HOW TO ADD THEM NATURALLY")
		if len(technical) > 0 {
			show := technical
			if len(show) > 4 {
				show = show[:4]
			}
			suggestions = append(suggestions,
				fmt.Sprintf("Technical Skills (%s):", strings.Join(show, ", ")),
				"   Add to Skills section: group by category (Languages, Frameworks, Tools)",
				"   Integrate in Experience: 'Developed REST APIs using Spring Boot...'",
				"   Include in Projects: 'Built microservice architecture with Docker/Kubernetes'")
		}
		if len(soft) > 0 {
			show := soft
			if len(show) > 3 {
				show = show[:3]
			}
			suggestions = append(suggestions,
				fmt.Sprintf("Soft Skills (%s):", strings.Join(show, ", ")),
				"   Show through achievements: 'Led cross-functional team of 5 engineers'",
				"   Quantify impact: 'Mentored 3 junior developers, reducing onboarding time by 40%'")
		}
		if len(tools) > 0 {
			show := tools
			if len(show) > 3 {
				show = show[:3]
			}
			suggestions = append(suggestions,
				fmt.Sprintf("Tools & Platforms (%s):", strings.Join(show, ", ")),
				"   Add a dedicated Tools section under Skills",
				"   Reference in achievements: 'Automated CI/CD pipeline using Jenkins/GitHub Actions'")
		}
	}

	suggestions = append(suggestions, "WHERE TO PLACE KEYWORDS:")
	if !strings.Contains(textLower, "summary") && !strings.Contains(textLower, "objective") {
		suggestions = append(suggestions,
			"Professional Summary (add at top): '[Years] experienced [Role] skilled in [Top 3-4 Keywords]'")
	} else {
		suggestions = append(suggestions,
			"Professional Summary: front-load with your strongest matching keywords")
	}
	if !strings.Contains(textLower, "technical skills") && !strings.Contains(textLower, "core competencies") {
		suggestions = append(suggestions,
			"Skills Section: organize by category (Languages, Frameworks, Tools, Databases)")
	}
	suggestions = append(suggestions,
		"Experience Section: aim for 2-3 keywords per bullet point")

	if !impactMetricRe.MatchString(text) {
		suggestions = append(suggestions,
			"ADD METRICS: 'Improved API response time by 60%', 'Processed 1M+ daily transactions', 'Reduced infrastructure costs by $50K annually'")
	}

	hasPowerVerb := false
	for _, v := range powerVerbs {
		if strings.Contains(textLower, v) {
			hasPowerVerb = true
			break
		}
	}
	if !hasPowerVerb {
		suggestions = append(suggestions,
			"USE POWER VERBS: replace 'Worked on' with 'Architected', 'Spearheaded', 'Engineered'")
	}

	if !strings.Contains(textLower, "project") && !strings.Contains(textLower, "portfolio") {
		suggestions = append(suggestions,
			"ADD PROJECTS SECTION: Project Name | Technologies Used, with metrics and links")
	}
	if !strings.Contains(textLower, "certification") && !strings.Contains(textLower, "certified") {
		suggestions = append(suggestions,
			"CERTIFICATIONS: consider AWS Certified, Google Cloud, Azure, Kubernetes (CKA)")
	}
	if !strings.Contains(textLower, "linkedin") {
		suggestions = append(suggestions,
			"ADD LINKEDIN URL: customize it as linkedin.com/in/yourname and keep keywords consistent")
	}
	if len(matched) >= 8 {
		suggestions = append(suggestions,
			fmt.Sprintf("STRONG KEYWORD PRESENCE: your resume already matches %d key terms - focus on demonstrating impact with them", len(matched)))
	}

	suggestions = append(suggestions,
		"ATS-FRIENDLY FORMATTING: standard fonts, no tables or graphics, standard section headers, save as PDF or DOCX")

	return suggestions
}

// categorizeMissingSkills splits missing skills into technical/soft/tool
// buckets by substring match against fixed lists.
func categorizeMissingSkills(missing []string) (technical, soft, tools []string) {
	for _, skill := range missing {
		skillLower := strings.ToLower(skill)
		bucketed := false
		for _, s := range softSkillBuckets {
			if strings.Contains(skillLower, s) {
				soft = append(soft, skill)
				bucketed = true
				break
			}
		}
		if !bucketed {
			for _, t := range toolBuckets {
				if strings.Contains(skillLower, t) {
					tools = append(tools, skill)
					bucketed = true
					break
				}
			}
		}
		if !bucketed {
			technical = append(technical, skill)
		}
	}
	return technical, soft, tools
}

// identifySkillGaps partitions missing skills into critical (required) and
// nice-to-have groups.
func identifySkillGaps(missing []string, requiredSet map[string]bool, jobRole string) []string {
	if len(missing) == 0 {
		return []string{fmt.Sprintf("You have strong coverage of essential skills for %s", jobRole)}
	}

	critical := []string{}
	niceToHave := []string{}
	for _, skill := range missing {
		if requiredSet[skill] {
			critical = append(critical, skill)
		} else {
			niceToHave = append(niceToHave, skill)
		}
	}

	gaps := []string{}
	if len(critical) > 0 {
		gaps = append(gaps,
			"Critical Gaps (Must Address): "+strings.Join(critical, ", "),
			"These are core requirements - consider online courses, certifications, or project experience")
	}
	if len(niceToHave) > 0 {
		if len(niceToHave) > 5 {
			niceToHave = niceToHave[:5]
		}
		gaps = append(gaps,
			"Nice-to-Have Gaps: "+strings.Join(niceToHave, ", "),
			"These boost competitiveness but aren't dealbreakers")
	}
	return gaps
}

func generateResumeFeedback(atsScore, matched, missing int, jobRole string) string {
	var b strings.Builder
	switch {
	case atsScore >= 85:
		b.WriteString("EXCELLENT MATCH\n\n")
		fmt.Fprintf(&b, "Your resume is exceptionally well-aligned with %s requirements. ", jobRole)
		fmt.Fprintf(&b, "You demonstrate strong technical expertise with %d matching skills. ", matched)
		b.WriteString("Your profile stands out among applicants, and you're likely to pass ATS screening with flying colors.\n\n")
		b.WriteString("Competitive Advantage: top 15% of applicants for this role.")
	case atsScore >= 70:
		b.WriteString("STRONG CANDIDATE\n\n")
		fmt.Fprintf(&b, "Your resume shows solid alignment with %s requirements. ", jobRole)
		fmt.Fprintf(&b, "With %d relevant skills, you have a good foundation. ", matched)
		fmt.Fprintf(&b, "However, addressing %d key missing skills could significantly improve your chances.\n\n", minInt(missing, 3))
		b.WriteString("Market Position: top 35% of applicants.")
	case atsScore >= 50:
		b.WriteString("MODERATE MATCH\n\n")
		fmt.Fprintf(&b, "Your resume has partial alignment with %s requirements. ", jobRole)
		fmt.Fprintf(&b, "While you have %d relevant skills, the role expects more specialized expertise. ", matched)
		fmt.Fprintf(&b, "Focus on acquiring %d critical skills through courses or projects before applying.\n\n", minInt(missing, 5))
		b.WriteString("Market Position: average applicant pool.")
	default:
		b.WriteString("NEEDS IMPROVEMENT\n\n")
		fmt.Fprintf(&b, "Your resume shows limited alignment with %s requirements. ", jobRole)
		b.WriteString("There are significant skill gaps that need addressing. Consider:\n")
		b.WriteString("- Taking online courses in core technologies\n")
		b.WriteString("- Building portfolio projects demonstrating required skills\n")
		b.WriteString("- Seeking entry-level or adjacent roles to build experience\n\n")
		b.WriteString("Recommendation: strengthen your profile before applying to this role.")
	}
	return b.String()
}

func generateCompetitiveAnalysis(atsScore, matched, missing int, jobRole string) string {
	var b strings.Builder
	switch {
	case atsScore >= 85:
		b.WriteString("TOP TIER CANDIDATE\n\n")
		fmt.Fprintf(&b, "Your resume places you in the top 10-15%% of applicants for %s positions. ", jobRole)
		fmt.Fprintf(&b, "With %d matching skills and strong ATS optimization, you're highly likely to pass automated screening systems.\n\n", matched)
		b.WriteString("Expected Callback Rate: 60-80%\n")
		b.WriteString("Recommended: apply to senior-level positions and negotiate confidently.")
	case atsScore >= 70:
		b.WriteString("COMPETITIVE CANDIDATE\n\n")
		fmt.Fprintf(&b, "Your resume is well-positioned among applicants for %s roles. ", jobRole)
		fmt.Fprintf(&b, "You have %d relevant skills, putting you ahead of average candidates. ", matched)
		fmt.Fprintf(&b, "Addressing %d key skill gaps could elevate you to top-tier status.\n\n", minInt(missing, 3))
		b.WriteString("Expected Callback Rate: 35-55%\n")
		b.WriteString("Recommended: target mid to senior-level positions.")
	case atsScore >= 55:
		b.WriteString("MODERATE CANDIDATE\n\n")
		fmt.Fprintf(&b, "Your resume shows potential but faces competition for %s positions. ", jobRole)
		fmt.Fprintf(&b, "With %d matching skills, you meet basic requirements but need %d additional skills to stand out.\n\n", matched, missing)
		b.WriteString("Expected Callback Rate: 15-30%\n")
		b.WriteString("Recommended: focus on skill development before applying widely.")
	case atsScore >= 40:
		b.WriteString("BELOW AVERAGE FIT\n\n")
		fmt.Fprintf(&b, "Your resume shows limited alignment with typical %s job requirements. ", jobRole)
		b.WriteString("Many applications may be filtered out by ATS systems. Consider:\n")
		b.WriteString("- Taking relevant courses or certifications\n")
		b.WriteString("- Gaining project experience in missing skill areas\n")
		b.WriteString("- Targeting entry-level or adjacent roles\n\n")
		b.WriteString("Expected Callback Rate: 5-15%\n")
		b.WriteString("Recommended: build skills before applying.")
	default:
		b.WriteString("SIGNIFICANT PREPARATION NEEDED\n\n")
		fmt.Fprintf(&b, "Your current resume is unlikely to pass ATS screening for %s positions. ", jobRole)
		b.WriteString("This isn't a reflection of your potential - it means the resume needs substantial revision.\n\n")
		b.WriteString("Action Plan:\n")
		fmt.Fprintf(&b, "1. Complete online courses in core %s technologies\n", jobRole)
		b.WriteString("2. Build 2-3 portfolio projects demonstrating key skills\n")
		b.WriteString("3. Obtain relevant certifications\n")
		b.WriteString("4. Consider internships or entry-level adjacent roles\n\n")
		b.WriteString("Expected Callback Rate: <5%\n")
		b.WriteString("Recommended: invest 3-6 months in skill building.")
	}
	return b.String()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
