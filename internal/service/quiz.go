package service

import (
	"context"

	"flag-quiz/internal/domain"
	"flag-quiz/internal/dto"
	"flag-quiz/internal/logger"
	"flag-quiz/internal/util"

	"go.uber.org/zap"
)

// QuizOptions are the quiz settings taken from configuration.
type QuizOptions struct {
	OptionCount  int
	DefaultCount int
	MaxCount     int
	FlagBaseURL  string
}

// QuizService drives quiz sessions. Every call loads the latest snapshot,
// applies one transition and stores it again; calls for the same session
// id never interleave.
type QuizService interface {
	Start(ctx context.Context, req *dto.StartSessionRequest) (*domain.SessionView, error)
	Get(ctx context.Context, id string) (*domain.SessionView, error)
	Choose(ctx context.Context, id string, req *dto.ChooseRequest) (*domain.SessionView, error)
	Answer(ctx context.Context, id string, req *dto.AnswerRequest) (*domain.SessionView, error)
	Advance(ctx context.Context, id string) (*domain.SessionView, error)
	PlayAgain(ctx context.Context, id string) (*domain.SessionView, error)
	Summary(ctx context.Context, id string) (*domain.SummaryView, error)
	Quit(ctx context.Context, id string) error
}

type quizService struct {
	catalog *domain.Catalog
	store   SessionStore
	rng     domain.Randomizer
	opts    QuizOptions
	locks   *keyedMutex
	newID   func() string
}

// NewQuizService creates a new instance of quizService
func NewQuizService(catalog *domain.Catalog, store SessionStore, rng domain.Randomizer, opts QuizOptions) QuizService {
	if opts.OptionCount <= 0 {
		opts.OptionCount = domain.DefaultOptionCount
	}
	if opts.DefaultCount <= 0 {
		opts.DefaultCount = domain.DefaultQuestionCount
	}
	if opts.FlagBaseURL == "" {
		opts.FlagBaseURL = domain.DefaultFlagBaseURL
	}
	return &quizService{
		catalog: catalog,
		store:   store,
		rng:     rng,
		opts:    opts,
		locks:   newKeyedMutex(),
		newID:   util.NewULID,
	}
}

func (s *quizService) Start(ctx context.Context, req *dto.StartSessionRequest) (*domain.SessionView, error) {
	count := req.Count
	if count <= 0 {
		count = s.opts.DefaultCount
	}
	if s.opts.MaxCount > 0 && count > s.opts.MaxCount {
		return nil, domain.ValidationErrors{domain.NewOutOfRangeError("count", req.Count, 1, s.opts.MaxCount)}
	}

	cfg := domain.SessionConfig{
		Region:       req.Region,
		Subregion:    req.Subregion,
		AnswerMode:   domain.AnswerMode(req.AnswerMode),
		QuestionType: domain.QuestionType(req.QuestionType),
		Count:        count,
		OptionCount:  s.opts.OptionCount,
	}

	session, err := domain.StartSession(s.rng, s.catalog, s.newID(), cfg)
	if err != nil {
		logger.Get().Info("Session not started",
			zap.String("region", cfg.Region),
			zap.String("subregion", cfg.Subregion),
			zap.Error(err),
		)
		return nil, err
	}

	if err := s.store.Put(ctx, session); err != nil {
		return nil, err
	}

	logger.Get().Info("Session started",
		zap.String("session_id", session.ID),
		zap.String("region", session.Config.Region),
		zap.String("subregion", session.Config.Subregion),
		zap.String("question_type", string(session.Config.QuestionType)),
		zap.String("answer_mode", string(session.Config.EffectiveAnswerMode())),
		zap.Int("pool_size", len(session.Pool)),
		zap.Int("total", session.Total()),
	)
	return s.render(session), nil
}

func (s *quizService) Get(ctx context.Context, id string) (*domain.SessionView, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.render(session), nil
}

func (s *quizService) Choose(ctx context.Context, id string, req *dto.ChooseRequest) (*domain.SessionView, error) {
	return s.transition(ctx, id, "choose", func(session *domain.Session) (*domain.Session, error) {
		return session, session.Choose(s.rng, req.Selection)
	})
}

func (s *quizService) Answer(ctx context.Context, id string, req *dto.AnswerRequest) (*domain.SessionView, error) {
	return s.transition(ctx, id, "answer", func(session *domain.Session) (*domain.Session, error) {
		outcome, err := session.Submit(domain.Response{Selection: req.Selection, Text: req.Text})
		if err != nil {
			return nil, err
		}
		logger.Get().Debug("Answer judged",
			zap.String("session_id", id),
			zap.Int("question_index", outcome.QuestionIndex),
			zap.Bool("correct", outcome.Correct),
			zap.Int("score", session.Score),
		)
		return session, nil
	})
}

func (s *quizService) Advance(ctx context.Context, id string) (*domain.SessionView, error) {
	return s.transition(ctx, id, "advance", func(session *domain.Session) (*domain.Session, error) {
		if err := session.Advance(s.rng); err != nil {
			return nil, err
		}
		if session.State == domain.StateFinished {
			logger.Get().Info("Session finished",
				zap.String("session_id", id),
				zap.Int("score", session.Score),
				zap.Int("total", session.Total()),
			)
		}
		return session, nil
	})
}

func (s *quizService) PlayAgain(ctx context.Context, id string) (*domain.SessionView, error) {
	return s.transition(ctx, id, "play_again", func(session *domain.Session) (*domain.Session, error) {
		return session.PlayAgain(s.rng, s.catalog)
	})
}

func (s *quizService) Summary(ctx context.Context, id string) (*domain.SummaryView, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	view := domain.RenderSummary(session.Summary(), s.opts.FlagBaseURL)
	return &view, nil
}

func (s *quizService) Quit(ctx context.Context, id string) error {
	unlock := s.locks.Lock(id)
	defer unlock()

	if _, err := s.store.Get(ctx, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	logger.Get().Info("Session quit", zap.String("session_id", id))
	return nil
}

// transition applies fn to the stored session under the per-id lock. A
// failed transition leaves the stored snapshot untouched.
func (s *quizService) transition(ctx context.Context, id, action string, fn func(*domain.Session) (*domain.Session, error)) (*domain.SessionView, error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	from := session.State

	next, err := fn(session)
	if err != nil {
		logger.Get().Debug("Transition rejected",
			zap.String("session_id", id),
			zap.String("action", action),
			zap.String("state", string(from)),
			zap.Error(err),
		)
		return nil, err
	}

	if err := s.store.Put(ctx, next); err != nil {
		return nil, err
	}

	logger.Get().Debug("Transition applied",
		zap.String("session_id", id),
		zap.String("action", action),
		zap.String("from", string(from)),
		zap.String("to", string(next.State)),
	)
	return s.render(next), nil
}

func (s *quizService) render(session *domain.Session) *domain.SessionView {
	view := domain.RenderSession(session, s.opts.FlagBaseURL)
	return &view
}
