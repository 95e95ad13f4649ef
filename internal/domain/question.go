package domain

import "strings"

// AnswerMode selects between option buttons and free-text input.
type AnswerMode string

const (
	AnswerModeMCQ   AnswerMode = "mcq"
	AnswerModeInput AnswerMode = "input"
)

// Valid reports whether m is a known answer mode.
func (m AnswerMode) Valid() bool {
	return m == AnswerModeMCQ || m == AnswerModeInput
}

// QuestionType is the question direction.
type QuestionType string

const (
	QuestionFlagToName   QuestionType = "flagToName"
	QuestionNameToFlag   QuestionType = "nameToFlag"
	QuestionTypeThenPick QuestionType = "typeThenPick"
)

// Valid reports whether t is a known question type.
func (t QuestionType) Valid() bool {
	switch t {
	case QuestionFlagToName, QuestionNameToFlag, QuestionTypeThenPick:
		return true
	}
	return false
}

// QuestionPhase tags which variant a Question holds.
type QuestionPhase string

const (
	// PhaseChoosing: the user still has to pick the country to be quizzed on.
	PhaseChoosing QuestionPhase = "choosing"
	// PhaseAnswering: the target is fixed and the question can be answered.
	PhaseAnswering QuestionPhase = "answering"
)

// Question is a tagged union. An answering question carries its Target.
// A choosing question carries none; its candidates are the session pool
// and Choose turns it into a new answering question.
type Question struct {
	Phase  QuestionPhase `json:"phase"`
	Target *Country      `json:"target,omitempty"`
}

func NewAnsweringQuestion(target Country) Question {
	t := target
	return Question{Phase: PhaseAnswering, Target: &t}
}

func NewChoosingQuestion() Question {
	return Question{Phase: PhaseChoosing}
}

// Answering returns the target when the question is in the answering phase.
func (q Question) Answering() (Country, bool) {
	if q.Phase != PhaseAnswering || q.Target == nil {
		return Country{}, false
	}
	return *q.Target, true
}

// Choose resolves selection against candidates, by exact code first and
// then by normalized name, and returns the answering question for it.
func (q Question) Choose(candidates []Country, selection string) (Question, error) {
	if q.Phase != PhaseChoosing {
		return q, NewInvalidInputError("question target is already chosen")
	}
	trimmed := strings.TrimSpace(selection)
	for _, c := range candidates {
		if c.Code == trimmed {
			return NewAnsweringQuestion(c), nil
		}
	}
	want := Normalize(selection)
	if want != "" {
		for _, c := range candidates {
			if Normalize(c.Name) == want {
				return NewAnsweringQuestion(c), nil
			}
		}
	}
	return q, NewUnknownCountryError(selection)
}
