package service

import (
	"context"

	"flag-quiz/internal/domain"
	"flag-quiz/internal/dto"
	"flag-quiz/internal/logger"
	"flag-quiz/internal/util"

	"go.uber.org/zap"
)

// LearnService drives learn-mode flashcard decks.
type LearnService interface {
	Start(ctx context.Context, req *dto.StartDeckRequest) (*domain.DeckView, error)
	Get(ctx context.Context, id string) (*domain.DeckView, error)
	Next(ctx context.Context, id string) (*domain.DeckView, error)
	Prev(ctx context.Context, id string) (*domain.DeckView, error)
	Filter(ctx context.Context, id string, req *dto.StartDeckRequest) (*domain.DeckView, error)
	Delete(ctx context.Context, id string) error
}

type learnService struct {
	catalog     *domain.Catalog
	store       DeckStore
	rng         domain.Randomizer
	flagBaseURL string
	locks       *keyedMutex
	newID       func() string
}

func NewLearnService(catalog *domain.Catalog, store DeckStore, rng domain.Randomizer, flagBaseURL string) LearnService {
	if flagBaseURL == "" {
		flagBaseURL = domain.DefaultFlagBaseURL
	}
	return &learnService{
		catalog:     catalog,
		store:       store,
		rng:         rng,
		flagBaseURL: flagBaseURL,
		locks:       newKeyedMutex(),
		newID:       util.NewULID,
	}
}

// Start opens a deck. An empty selection is not an error; the deck shows
// its empty state instead.
func (s *learnService) Start(ctx context.Context, req *dto.StartDeckRequest) (*domain.DeckView, error) {
	deck := domain.NewDeck(s.rng, s.catalog, s.newID(), req.Region, req.Subregion)
	if err := s.store.Put(ctx, deck); err != nil {
		return nil, err
	}
	logger.Get().Debug("Deck opened",
		zap.String("deck_id", deck.ID),
		zap.String("region", deck.Region),
		zap.String("subregion", deck.Subregion),
		zap.Int("available", len(deck.Pool)),
	)
	return s.render(deck), nil
}

func (s *learnService) Get(ctx context.Context, id string) (*domain.DeckView, error) {
	deck, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.render(deck), nil
}

func (s *learnService) Next(ctx context.Context, id string) (*domain.DeckView, error) {
	return s.update(ctx, id, (*domain.Deck).Next)
}

func (s *learnService) Prev(ctx context.Context, id string) (*domain.DeckView, error) {
	return s.update(ctx, id, (*domain.Deck).Prev)
}

func (s *learnService) Filter(ctx context.Context, id string, req *dto.StartDeckRequest) (*domain.DeckView, error) {
	return s.update(ctx, id, func(d *domain.Deck) {
		d.Refilter(s.rng, s.catalog, req.Region, req.Subregion)
	})
}

func (s *learnService) Delete(ctx context.Context, id string) error {
	unlock := s.locks.Lock(id)
	defer unlock()

	if _, err := s.store.Get(ctx, id); err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}

func (s *learnService) update(ctx context.Context, id string, fn func(*domain.Deck)) (*domain.DeckView, error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	deck, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	fn(deck)
	if err := s.store.Put(ctx, deck); err != nil {
		return nil, err
	}
	return s.render(deck), nil
}

func (s *learnService) render(deck *domain.Deck) *domain.DeckView {
	view := domain.RenderDeck(deck, s.flagBaseURL)
	return &view
}
