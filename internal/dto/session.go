package dto

// StartSessionRequest starts a quiz session.
// @Description Request body for starting a quiz
type StartSessionRequest struct {
	Region       string `json:"region" example:"Americas"`
	Subregion    string `json:"subregion" example:"all"`
	AnswerMode   string `json:"answer_mode" example:"mcq"`
	QuestionType string `json:"question_type" example:"flagToName"`
	Count        int    `json:"count" example:"10"`
}

// ChooseRequest picks the country for a type-then-pick question, by code or name.
type ChooseRequest struct {
	Selection string `json:"selection" example:"br"`
}

// AnswerRequest submits an answer. Selection is a clicked option (country
// name or flag code); Text is free-text input.
// @Description Request body for answering the current question
type AnswerRequest struct {
	Selection string `json:"selection,omitempty" example:"Canada"`
	Text      string `json:"text,omitempty" example:" canada "`
}

// StartDeckRequest opens a learn-mode deck or changes its filter.
type StartDeckRequest struct {
	Region    string `json:"region" example:"Europe"`
	Subregion string `json:"subregion" example:"all"`
}
