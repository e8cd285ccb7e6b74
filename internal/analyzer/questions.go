package analyzer

// GenerateQuestions produces the ordered list of exactly 18 interview
// questions for a session: 3 fixed intro questions, the role-specific bank,
// behavioral questions, then generic filler until 18 are available. When the
// Analyzer carries a random source, everything after the intro trio is
// shuffled; without one the generated order is kept as-is.
//
// The resume text is accepted for interface stability but question content
// depends only on the role.
func (a *Analyzer) GenerateQuestions(resumeText, jobRole string) []string {
	profile := profileForRole(jobRole)

	questions := make([]string, 0, TotalQuestions+len(fillerQuestions))
	questions = append(questions, introQuestions...)

	roleQuestions := profile.questions
	if len(roleQuestions) == 0 {
		roleQuestions = genericTechnicalQuestions
	}
	questions = append(questions, roleQuestions...)
	questions = append(questions, behavioralQuestions...)

	for len(questions) < TotalQuestions {
		questions = append(questions, fillerQuestions...)
	}

	if a.rng != nil {
		tail := questions[len(introQuestions):]
		a.rng.Shuffle(len(tail), func(i, j int) {
			tail[i], tail[j] = tail[j], tail[i]
		})
	}

	return questions[:TotalQuestions]
}
