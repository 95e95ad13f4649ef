package validation

import (
	"strings"
	"unicode/utf8"

	"flag-quiz/internal/domain"
	"flag-quiz/internal/dto"
	"flag-quiz/internal/util"
)

const (
	maxSelectorLength = 64
	maxAnswerLength   = 200
)

// Validator provides request validation functionality
type Validator struct {
	maxCount int
}

// NewValidator creates a new validator instance. maxCount bounds the
// requested number of questions.
func NewValidator(maxCount int) *Validator {
	return &Validator{maxCount: maxCount}
}

// ValidateID validates a session or deck id path parameter.
func (v *Validator) ValidateID(id string) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if strings.TrimSpace(id) == "" {
		errors = append(errors, domain.NewMissingFieldError("id"))
	} else if !util.IsULID(id) {
		errors = append(errors, domain.NewInvalidFormatError("id", id))
	}
	return errors
}

// ValidateStartSessionRequest validates the quiz menu selection. Blank
// fields fall back to defaults later and are accepted here.
func (v *Validator) ValidateStartSessionRequest(req *dto.StartSessionRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	errors = append(errors, v.validateSelectors(req.Region, req.Subregion)...)

	if req.AnswerMode != "" && !domain.AnswerMode(req.AnswerMode).Valid() {
		errors = append(errors, domain.NewInvalidFormatError("answer_mode", req.AnswerMode))
	}
	if req.QuestionType != "" && !domain.QuestionType(req.QuestionType).Valid() {
		errors = append(errors, domain.NewInvalidFormatError("question_type", req.QuestionType))
	}
	if req.Count < 0 || (v.maxCount > 0 && req.Count > v.maxCount) {
		errors = append(errors, domain.NewOutOfRangeError("count", req.Count, 1, v.maxCount))
	}

	return errors
}

// ValidateChooseRequest requires a non-blank selection.
func (v *Validator) ValidateChooseRequest(req *dto.ChooseRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if strings.TrimSpace(req.Selection) == "" {
		errors = append(errors, domain.NewMissingFieldError("selection"))
	} else if utf8.RuneCountInString(req.Selection) > maxAnswerLength {
		errors = append(errors, domain.NewOutOfRangeError("selection", utf8.RuneCountInString(req.Selection), 1, maxAnswerLength))
	}
	return errors
}

// ValidateAnswerRequest only bounds the length: a blank answer is a valid,
// incorrect answer.
func (v *Validator) ValidateAnswerRequest(req *dto.AnswerRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if n := utf8.RuneCountInString(req.Selection); n > maxAnswerLength {
		errors = append(errors, domain.NewOutOfRangeError("selection", n, 0, maxAnswerLength))
	}
	if n := utf8.RuneCountInString(req.Text); n > maxAnswerLength {
		errors = append(errors, domain.NewOutOfRangeError("text", n, 0, maxAnswerLength))
	}
	return errors
}

// ValidateDeckRequest validates a learn-mode filter.
func (v *Validator) ValidateDeckRequest(req *dto.StartDeckRequest) domain.ValidationErrors {
	return v.validateSelectors(req.Region, req.Subregion)
}

func (v *Validator) validateSelectors(region, subregion string) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if n := utf8.RuneCountInString(region); n > maxSelectorLength {
		errors = append(errors, domain.NewOutOfRangeError("region", n, 0, maxSelectorLength))
	}
	if n := utf8.RuneCountInString(subregion); n > maxSelectorLength {
		errors = append(errors, domain.NewOutOfRangeError("subregion", n, 0, maxSelectorLength))
	}
	return errors
}
