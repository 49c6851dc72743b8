package interview

import "strings"

const shortAnswerThreshold = 100

var roleFeedback = map[string][]string{
	"software engineer": {
		"Great job on the technical questions!",
		"Consider discussing your problem-solving process in more detail.",
		"Keep practicing coding challenges to improve your speed and accuracy.",
	},
	"data scientist": {
		"Good work on the data analysis questions!",
		"Consider discussing more about your approach to data cleaning and feature engineering.",
		"Practice explaining complex statistical concepts in simple terms.",
	},
	"product manager": {
		"Good job on the product thinking questions!",
		"Consider discussing more about stakeholder management.",
		"Practice creating clear and concise product requirements.",
	},
}

var genericFeedback = []string{
	"You're doing great!",
	"Keep practicing to improve your interview skills.",
}

// Feedback builds the end-of-session remarks for s.
func Feedback(s *Session) []string {
	out := []string{"You completed all the interview questions!"}

	lengths := s.AnswerLengths()
	total := 0
	for _, n := range lengths {
		total += n
	}
	if len(lengths) > 0 && float64(total)/float64(len(lengths)) < shortAnswerThreshold {
		out = append(out, "Consider providing more detailed answers with specific examples.")
	}

	role := strings.ToLower(strings.TrimSpace(s.Settings.RoleOrDefault()))
	if lines, ok := roleFeedback[role]; ok {
		return append(out, lines...)
	}
	return append(out, genericFeedback...)
}
