package domain

import "strings"

// Normalize trims s, lowercases it and collapses whitespace runs to a single space.
func Normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// Response is what the user submitted for one question. Selection carries a
// clicked option (a name or a flag code); Text carries free-text input.
type Response struct {
	Selection string `json:"selection,omitempty"`
	Text      string `json:"text,omitempty"`
}

// label is the raw value that is judged and recorded as "picked".
func (r Response) label() string {
	if r.Selection != "" {
		return r.Selection
	}
	return r.Text
}

// Evaluate judges response against target for the given question type.
// It never fails: unknown or blank responses are simply incorrect.
func Evaluate(questionType QuestionType, target Country, response Response) bool {
	switch questionType {
	case QuestionFlagToName:
		return Normalize(response.label()) == Normalize(target.Name)
	default:
		return response.Selection == target.Code
	}
}
