package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"flag-quiz/internal/cache"
	"flag-quiz/internal/domain"
	"flag-quiz/internal/logger"

	"go.uber.org/zap"
)

// SessionStore keeps quiz sessions between requests.
type SessionStore interface {
	Get(ctx context.Context, id string) (*domain.Session, error)
	Put(ctx context.Context, session *domain.Session) error
	Delete(ctx context.Context, id string) error
}

// DeckStore keeps learn-mode decks between requests.
type DeckStore interface {
	Get(ctx context.Context, id string) (*domain.Deck, error)
	Put(ctx context.Context, deck *domain.Deck) error
	Delete(ctx context.Context, id string) error
}

// snapshotStore stores JSON snapshots of T in a domain.Cache. Every write
// refreshes the TTL, so idle sessions expire and active ones do not.
type snapshotStore[T any] struct {
	cache    domain.Cache
	ttl      time.Duration
	key      func(id string) string
	notFound func(id string) error
}

func (s *snapshotStore[T]) get(ctx context.Context, id string) (*T, error) {
	key := s.key(id)
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, s.notFound(id)
		}
		logger.Get().Error("Failed to read snapshot", zap.String("key", key), zap.Error(err))
		return nil, domain.NewInternalError(fmt.Sprintf("failed to read %s from cache", key), err)
	}

	var v T
	if err := json.Unmarshal([]byte(data), &v); err != nil {
		logger.Get().Error("Corrupt snapshot in cache, dropping it", zap.String("key", key), zap.Error(err))
		_ = s.cache.Delete(ctx, key)
		return nil, s.notFound(id)
	}
	return &v, nil
}

func (s *snapshotStore[T]) put(ctx context.Context, id string, v *T) error {
	key := s.key(id)
	data, err := json.Marshal(v)
	if err != nil {
		return domain.NewInternalError("failed to marshal snapshot", err)
	}
	if err := s.cache.Set(ctx, key, string(data), s.ttl); err != nil {
		logger.Get().Error("Failed to write snapshot", zap.String("key", key), zap.Error(err))
		return domain.NewInternalError(fmt.Sprintf("failed to write %s to cache", key), err)
	}
	return nil
}

func (s *snapshotStore[T]) delete(ctx context.Context, id string) error {
	if err := s.cache.Delete(ctx, s.key(id)); err != nil {
		return domain.NewInternalError("failed to delete snapshot", err)
	}
	return nil
}

type sessionStore struct {
	store snapshotStore[domain.Session]
}

// NewSessionStore stores sessions under cache.SessionKey with the given TTL.
func NewSessionStore(c domain.Cache, ttl time.Duration) SessionStore {
	return &sessionStore{store: snapshotStore[domain.Session]{
		cache:    c,
		ttl:      ttl,
		key:      cache.SessionKey,
		notFound: func(id string) error { return domain.NewSessionNotFoundError(id) },
	}}
}

func (s *sessionStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	return s.store.get(ctx, id)
}

func (s *sessionStore) Put(ctx context.Context, session *domain.Session) error {
	return s.store.put(ctx, session.ID, session)
}

func (s *sessionStore) Delete(ctx context.Context, id string) error {
	return s.store.delete(ctx, id)
}

type deckStore struct {
	store snapshotStore[domain.Deck]
}

// NewDeckStore stores decks under cache.DeckKey with the given TTL.
func NewDeckStore(c domain.Cache, ttl time.Duration) DeckStore {
	return &deckStore{store: snapshotStore[domain.Deck]{
		cache:    c,
		ttl:      ttl,
		key:      cache.DeckKey,
		notFound: func(id string) error { return domain.NewNotFoundError("Deck not found with ID: " + id) },
	}}
}

func (s *deckStore) Get(ctx context.Context, id string) (*domain.Deck, error) {
	return s.store.get(ctx, id)
}

func (s *deckStore) Put(ctx context.Context, deck *domain.Deck) error {
	return s.store.put(ctx, deck.ID, deck)
}

func (s *deckStore) Delete(ctx context.Context, id string) error {
	return s.store.delete(ctx, id)
}
