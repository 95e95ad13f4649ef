package domain

import (
	"fmt"
	"strings"
)

// DefaultFlagBaseURL is the public flag CDN the widget has always used.
const DefaultFlagBaseURL = "https://flagcdn.com/w320"

// FlagURL builds the image address for a flag code.
func FlagURL(baseURL, code string) string {
	if code == "" {
		return ""
	}
	return strings.TrimRight(baseURL, "/") + "/" + code + ".png"
}

// OptionView is one clickable choice.
type OptionView struct {
	Label   string `json:"label"`
	Value   string `json:"value"`
	FlagURL string `json:"flag_url,omitempty"`
}

// OutcomeView is the feedback shown after an answer.
type OutcomeView struct {
	Correct        bool   `json:"correct"`
	Message        string `json:"message"`
	Picked         string `json:"picked"`
	CorrectName    string `json:"correct_name"`
	CorrectCode    string `json:"correct_code"`
	CorrectFlagURL string `json:"correct_flag_url"`
}

// SessionView is everything a client needs to draw the current screen.
type SessionView struct {
	ID            string       `json:"id"`
	State         SessionState `json:"state"`
	LevelLabel    string       `json:"level_label"`
	ModeLabel     string       `json:"mode_label"`
	QuestionIndex int          `json:"question_index"`
	Total         int          `json:"total"`
	Score         int          `json:"score"`
	Prompt        string       `json:"prompt,omitempty"`
	FlagURL       string       `json:"flag_url,omitempty"`
	Options       []OptionView `json:"options,omitempty"`
	ExpectsText   bool         `json:"expects_text"`
	Choosing      bool         `json:"choosing"`
	Candidates    []OptionView `json:"candidates,omitempty"`
	Outcome       *OutcomeView `json:"outcome,omitempty"`
	Summary       *SummaryView `json:"summary,omitempty"`
}

// ReviewView is a review record with its flag address resolved.
type ReviewView struct {
	ReviewRecord
	FlagURL    string `json:"flag_url"`
	LevelLabel string `json:"level_label"`
}

// SummaryView is the result screen.
type SummaryView struct {
	Score   int          `json:"score"`
	Total   int          `json:"total"`
	Records []ReviewView `json:"records"`
	Missed  []ReviewView `json:"missed"`
}

// LevelLabel renders "region • subregion".
func LevelLabel(region, subregion string) string {
	return fmt.Sprintf("%s • %s", region, subregion)
}

// ModeLabel renders the answer mode and direction, e.g. "Options • Flag→Name".
func ModeLabel(cfg SessionConfig) string {
	mode := "Options"
	if cfg.EffectiveAnswerMode() == AnswerModeInput {
		mode = "Type"
	}
	var direction string
	switch cfg.QuestionType {
	case QuestionNameToFlag:
		direction = "Name→Flag"
	case QuestionTypeThenPick:
		direction = "Type→Pick"
	default:
		direction = "Flag→Name"
	}
	return mode + " • " + direction
}

// RenderSession is a pure projection of a session onto a view.
func RenderSession(s *Session, flagBaseURL string) SessionView {
	view := SessionView{
		ID:         s.ID,
		State:      s.State,
		LevelLabel: LevelLabel(s.Config.Region, s.Config.Subregion),
		ModeLabel:  ModeLabel(s.Config),
		Total:      s.Total(),
		Score:      s.Score,
	}

	switch s.State {
	case StateFinished:
		view.QuestionIndex = s.Total()
		summary := RenderSummary(s.Summary(), flagBaseURL)
		view.Summary = &summary
		return view
	case StateConfiguring:
		return view
	}

	view.QuestionIndex = s.Pointer + 1
	q, ok := s.Current()
	if !ok {
		return view
	}

	target, answering := q.Answering()
	if !answering {
		view.Choosing = true
		view.Prompt = "Choose a country to be quizzed on"
		for _, c := range s.Candidates() {
			view.Candidates = append(view.Candidates, OptionView{Label: c.Name, Value: c.Code})
		}
		return view
	}

	if s.Config.QuestionType == QuestionFlagToName {
		view.Prompt = "Which country has this flag?"
		view.FlagURL = FlagURL(flagBaseURL, target.Code)
	} else {
		view.Prompt = fmt.Sprintf("Pick the flag of: %s", target.Name)
	}

	if s.Config.EffectiveAnswerMode() == AnswerModeInput {
		view.ExpectsText = true
	} else {
		for _, opt := range s.Options {
			if s.Config.QuestionType == QuestionFlagToName {
				view.Options = append(view.Options, OptionView{Label: opt, Value: opt})
			} else {
				view.Options = append(view.Options, OptionView{Label: "Select", Value: opt, FlagURL: FlagURL(flagBaseURL, opt)})
			}
		}
	}

	if s.State == StateAnswered && s.LastOutcome != nil {
		view.Outcome = renderOutcome(*s.LastOutcome, flagBaseURL)
	}
	return view
}

func renderOutcome(o Outcome, flagBaseURL string) *OutcomeView {
	msg := "Correct!"
	if !o.Correct {
		msg = fmt.Sprintf("Oops! Correct answer: %s", o.CorrectName)
	}
	return &OutcomeView{
		Correct:        o.Correct,
		Message:        msg,
		Picked:         o.Picked,
		CorrectName:    o.CorrectName,
		CorrectCode:    o.CorrectCode,
		CorrectFlagURL: FlagURL(flagBaseURL, o.CorrectCode),
	}
}

// RenderSummary resolves flag addresses and level labels for the result screen.
func RenderSummary(sum Summary, flagBaseURL string) SummaryView {
	view := SummaryView{
		Score:   sum.Score,
		Total:   sum.Total,
		Records: make([]ReviewView, 0, len(sum.Records)),
		Missed:  make([]ReviewView, 0, len(sum.Missed)),
	}
	for _, r := range sum.Records {
		view.Records = append(view.Records, renderReview(r, flagBaseURL))
	}
	for _, r := range sum.Missed {
		view.Missed = append(view.Missed, renderReview(r, flagBaseURL))
	}
	return view
}

func renderReview(r ReviewRecord, flagBaseURL string) ReviewView {
	return ReviewView{
		ReviewRecord: r,
		FlagURL:      FlagURL(flagBaseURL, r.CorrectCode),
		LevelLabel:   LevelLabel(r.Region, r.Subregion),
	}
}
