package domain

// DefaultQuestionCount is used when a session is started without a count.
const DefaultQuestionCount = 10

// SessionState is the position of a session in the quiz state machine.
type SessionState string

const (
	StateConfiguring SessionState = "configuring"
	StateInQuestion  SessionState = "in_question"
	StateAnswered    SessionState = "answered"
	StateFinished    SessionState = "finished"
)

// SessionConfig holds the choices made on the menu screen. Play-again
// reuses it unchanged.
type SessionConfig struct {
	Region       string       `json:"region"`
	Subregion    string       `json:"subregion"`
	AnswerMode   AnswerMode   `json:"answer_mode"`
	QuestionType QuestionType `json:"question_type"`
	Count        int          `json:"count"`
	OptionCount  int          `json:"option_count"`
}

func (c SessionConfig) withDefaults() SessionConfig {
	c.Region = NormalizeSelector(c.Region)
	c.Subregion = NormalizeSelector(c.Subregion)
	if !c.AnswerMode.Valid() {
		c.AnswerMode = AnswerModeMCQ
	}
	if !c.QuestionType.Valid() {
		c.QuestionType = QuestionFlagToName
	}
	if c.Count <= 0 {
		c.Count = DefaultQuestionCount
	}
	if c.OptionCount <= 0 {
		c.OptionCount = DefaultOptionCount
	}
	return c
}

// EffectiveAnswerMode is the mode actually presented. Free text only
// applies to flag-to-name questions; flag answers are always picked.
func (c SessionConfig) EffectiveAnswerMode() AnswerMode {
	if c.QuestionType == QuestionFlagToName && c.AnswerMode == AnswerModeInput {
		return AnswerModeInput
	}
	return AnswerModeMCQ
}

// ReviewRecord is the stored outcome of one answered question.
type ReviewRecord struct {
	Region       string       `json:"region"`
	Subregion    string       `json:"subregion"`
	CorrectName  string       `json:"correct_name"`
	CorrectCode  string       `json:"correct_code"`
	QuestionType QuestionType `json:"question_type"`
	AnswerMode   AnswerMode   `json:"answer_mode"`
	Picked       string       `json:"picked"`
	Typed        string       `json:"typed,omitempty"`
	WasCorrect   bool         `json:"was_correct"`
}

// Outcome is the result of one submission, shown until the user advances.
type Outcome struct {
	QuestionIndex int    `json:"question_index"`
	Correct       bool   `json:"correct"`
	Picked        string `json:"picked"`
	CorrectName   string `json:"correct_name"`
	CorrectCode   string `json:"correct_code"`
}

// Summary is the end-of-game score and review list.
type Summary struct {
	Score   int            `json:"score"`
	Total   int            `json:"total"`
	Records []ReviewRecord `json:"records"`
	Missed  []ReviewRecord `json:"missed"`
}

// Session is one quiz run. It is exclusively owned by whoever holds it and
// every transition is a method on it.
type Session struct {
	ID          string         `json:"id"`
	Config      SessionConfig  `json:"config"`
	State       SessionState   `json:"state"`
	Pool        []Country      `json:"pool"`
	Questions   []Question     `json:"questions"`
	Pointer     int            `json:"pointer"`
	Score       int            `json:"score"`
	Options     []string       `json:"options,omitempty"`
	LastOutcome *Outcome       `json:"last_outcome,omitempty"`
	Review      []ReviewRecord `json:"review"`
}

// StartSession filters the catalog, builds the quiz and enters the first
// question. It fails with an insufficient pool error when fewer than two
// countries match.
func StartSession(rng Randomizer, catalog *Catalog, id string, cfg SessionConfig) (*Session, error) {
	cfg = cfg.withDefaults()

	pool := FilterPool(catalog, cfg.Region, cfg.Subregion)
	if err := EnsurePlayable(pool, cfg.Region, cfg.Subregion); err != nil {
		return nil, err
	}

	var questions []Question
	if cfg.QuestionType == QuestionTypeThenPick {
		questions = BuildChoosingQuestions(len(pool), cfg.Count)
	} else {
		questions = BuildQuestions(rng, pool, cfg.Count)
	}

	s := &Session{
		ID:        id,
		Config:    cfg,
		State:     StateInQuestion,
		Pool:      pool,
		Questions: questions,
		Review:    []ReviewRecord{},
	}
	s.prepareQuestion(rng)
	return s, nil
}

// PlayAgain starts a fresh session with the same id and configuration.
func (s *Session) PlayAgain(rng Randomizer, catalog *Catalog) (*Session, error) {
	return StartSession(rng, catalog, s.ID, s.Config)
}

// Current returns the question being asked or answered.
func (s *Session) Current() (Question, bool) {
	if s.State != StateInQuestion && s.State != StateAnswered {
		return Question{}, false
	}
	if s.Pointer < 0 || s.Pointer >= len(s.Questions) {
		return Question{}, false
	}
	return s.Questions[s.Pointer], true
}

// Total is the quiz length.
func (s *Session) Total() int {
	return len(s.Questions)
}

// Candidates lists the countries the user may choose from while the
// current question is in the choosing phase.
func (s *Session) Candidates() []Country {
	q, ok := s.Current()
	if !ok || q.Phase != PhaseChoosing {
		return nil
	}
	return s.Pool
}

// Choose binds the current type-then-pick question to the selected country.
func (s *Session) Choose(rng Randomizer, selection string) error {
	q, ok := s.Current()
	if !ok || s.State != StateInQuestion || q.Phase != PhaseChoosing {
		return NewInvalidTransitionError("choose a country", s.State)
	}
	chosen, err := q.Choose(s.Pool, selection)
	if err != nil {
		return err
	}
	s.Questions[s.Pointer] = chosen
	s.prepareQuestion(rng)
	return nil
}

// Submit judges response against the current target. A question can be
// answered once; the second submit is rejected without touching the score.
func (s *Session) Submit(response Response) (Outcome, error) {
	switch s.State {
	case StateInQuestion:
	case StateAnswered:
		return Outcome{}, NewAlreadyAnsweredError(s.Pointer)
	default:
		return Outcome{}, NewInvalidTransitionError("submit an answer", s.State)
	}

	q, _ := s.Current()
	target, ok := q.Answering()
	if !ok {
		return Outcome{}, NewInvalidTransitionError("submit an answer before choosing a country", s.State)
	}

	correct := Evaluate(s.Config.QuestionType, target, response)
	if correct {
		s.Score++
	}

	picked := response.label()
	if s.Config.QuestionType != QuestionFlagToName {
		picked = response.Selection
	}
	record := ReviewRecord{
		Region:       target.Region,
		Subregion:    target.Subregion,
		CorrectName:  target.Name,
		CorrectCode:  target.Code,
		QuestionType: s.Config.QuestionType,
		AnswerMode:   s.Config.EffectiveAnswerMode(),
		Picked:       picked,
		WasCorrect:   correct,
	}
	if record.AnswerMode == AnswerModeInput && response.Selection == "" {
		record.Typed = response.Text
	}
	s.Review = append(s.Review, record)

	outcome := Outcome{
		QuestionIndex: s.Pointer,
		Correct:       correct,
		Picked:        picked,
		CorrectName:   target.Name,
		CorrectCode:   target.Code,
	}
	s.LastOutcome = &outcome
	s.State = StateAnswered
	return outcome, nil
}

// Advance moves past an answered question, finishing after the last one.
func (s *Session) Advance(rng Randomizer) error {
	if s.State != StateAnswered {
		return NewInvalidTransitionError("advance", s.State)
	}
	s.Pointer++
	s.LastOutcome = nil
	if s.Pointer >= len(s.Questions) {
		s.State = StateFinished
		s.Options = nil
		return nil
	}
	s.State = StateInQuestion
	s.prepareQuestion(rng)
	return nil
}

// Quit discards the quiz and returns to the menu.
func (s *Session) Quit() {
	s.State = StateConfiguring
	s.Pool = nil
	s.Questions = nil
	s.Pointer = 0
	s.Score = 0
	s.Options = nil
	s.LastOutcome = nil
	s.Review = []ReviewRecord{}
}

// Summary reports the score and the review list in answer order.
func (s *Session) Summary() Summary {
	records := make([]ReviewRecord, len(s.Review))
	copy(records, s.Review)
	missed := []ReviewRecord{}
	for _, r := range records {
		if !r.WasCorrect {
			missed = append(missed, r)
		}
	}
	return Summary{
		Score:   s.Score,
		Total:   s.Total(),
		Records: records,
		Missed:  missed,
	}
}

// prepareQuestion generates the option set for the current question once,
// so every render of the same question shows the same choices.
func (s *Session) prepareQuestion(rng Randomizer) {
	s.Options = nil
	q, ok := s.Current()
	if !ok {
		return
	}
	target, ok := q.Answering()
	if !ok {
		return
	}
	if s.Config.EffectiveAnswerMode() == AnswerModeInput {
		return
	}
	if s.Config.QuestionType == QuestionFlagToName {
		s.Options = BuildNameOptions(rng, s.Pool, target.Name, s.Config.OptionCount)
		return
	}
	s.Options = BuildFlagOptions(rng, s.Pool, target.Code, s.Config.OptionCount)
}
