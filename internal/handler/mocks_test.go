package handler_test

import (
	"context"
	"errors"
	"time"

	"flag-quiz/internal/domain"
	"flag-quiz/internal/dto"
	"flag-quiz/internal/handler"
	"flag-quiz/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// --- Manual Mocks ---

// MockCatalogService
type MockCatalogService struct {
	CatalogFunc    func() *domain.Catalog
	RegionsFunc    func() *dto.RegionsResponse
	SubregionsFunc func(region string) *dto.SubregionsResponse
	PoolFunc       func(region, subregion string) *dto.PoolResponse
}

func (m *MockCatalogService) Catalog() *domain.Catalog {
	if m.CatalogFunc != nil {
		return m.CatalogFunc()
	}
	panic("MockCatalogService.CatalogFunc not implemented")
}
func (m *MockCatalogService) Regions() *dto.RegionsResponse {
	if m.RegionsFunc != nil {
		return m.RegionsFunc()
	}
	panic("MockCatalogService.RegionsFunc not implemented")
}
func (m *MockCatalogService) Subregions(region string) *dto.SubregionsResponse {
	if m.SubregionsFunc != nil {
		return m.SubregionsFunc(region)
	}
	panic("MockCatalogService.SubregionsFunc not implemented")
}
func (m *MockCatalogService) Pool(region, subregion string) *dto.PoolResponse {
	if m.PoolFunc != nil {
		return m.PoolFunc(region, subregion)
	}
	panic("MockCatalogService.PoolFunc not implemented")
}

// MockQuizService
type MockQuizService struct {
	StartFunc     func(ctx context.Context, req *dto.StartSessionRequest) (*domain.SessionView, error)
	GetFunc       func(ctx context.Context, id string) (*domain.SessionView, error)
	ChooseFunc    func(ctx context.Context, id string, req *dto.ChooseRequest) (*domain.SessionView, error)
	AnswerFunc    func(ctx context.Context, id string, req *dto.AnswerRequest) (*domain.SessionView, error)
	AdvanceFunc   func(ctx context.Context, id string) (*domain.SessionView, error)
	PlayAgainFunc func(ctx context.Context, id string) (*domain.SessionView, error)
	SummaryFunc   func(ctx context.Context, id string) (*domain.SummaryView, error)
	QuitFunc      func(ctx context.Context, id string) error
}

func (m *MockQuizService) Start(ctx context.Context, req *dto.StartSessionRequest) (*domain.SessionView, error) {
	if m.StartFunc != nil {
		return m.StartFunc(ctx, req)
	}
	panic("MockQuizService.StartFunc not implemented")
}
func (m *MockQuizService) Get(ctx context.Context, id string) (*domain.SessionView, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	panic("MockQuizService.GetFunc not implemented")
}
func (m *MockQuizService) Choose(ctx context.Context, id string, req *dto.ChooseRequest) (*domain.SessionView, error) {
	if m.ChooseFunc != nil {
		return m.ChooseFunc(ctx, id, req)
	}
	panic("MockQuizService.ChooseFunc not implemented")
}
func (m *MockQuizService) Answer(ctx context.Context, id string, req *dto.AnswerRequest) (*domain.SessionView, error) {
	if m.AnswerFunc != nil {
		return m.AnswerFunc(ctx, id, req)
	}
	panic("MockQuizService.AnswerFunc not implemented")
}
func (m *MockQuizService) Advance(ctx context.Context, id string) (*domain.SessionView, error) {
	if m.AdvanceFunc != nil {
		return m.AdvanceFunc(ctx, id)
	}
	panic("MockQuizService.AdvanceFunc not implemented")
}
func (m *MockQuizService) PlayAgain(ctx context.Context, id string) (*domain.SessionView, error) {
	if m.PlayAgainFunc != nil {
		return m.PlayAgainFunc(ctx, id)
	}
	panic("MockQuizService.PlayAgainFunc not implemented")
}
func (m *MockQuizService) Summary(ctx context.Context, id string) (*domain.SummaryView, error) {
	if m.SummaryFunc != nil {
		return m.SummaryFunc(ctx, id)
	}
	panic("MockQuizService.SummaryFunc not implemented")
}
func (m *MockQuizService) Quit(ctx context.Context, id string) error {
	if m.QuitFunc != nil {
		return m.QuitFunc(ctx, id)
	}
	panic("MockQuizService.QuitFunc not implemented")
}

// MockLearnService
type MockLearnService struct {
	StartFunc  func(ctx context.Context, req *dto.StartDeckRequest) (*domain.DeckView, error)
	GetFunc    func(ctx context.Context, id string) (*domain.DeckView, error)
	NextFunc   func(ctx context.Context, id string) (*domain.DeckView, error)
	PrevFunc   func(ctx context.Context, id string) (*domain.DeckView, error)
	FilterFunc func(ctx context.Context, id string, req *dto.StartDeckRequest) (*domain.DeckView, error)
	DeleteFunc func(ctx context.Context, id string) error
}

func (m *MockLearnService) Start(ctx context.Context, req *dto.StartDeckRequest) (*domain.DeckView, error) {
	if m.StartFunc != nil {
		return m.StartFunc(ctx, req)
	}
	panic("MockLearnService.StartFunc not implemented")
}
func (m *MockLearnService) Get(ctx context.Context, id string) (*domain.DeckView, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	panic("MockLearnService.GetFunc not implemented")
}
func (m *MockLearnService) Next(ctx context.Context, id string) (*domain.DeckView, error) {
	if m.NextFunc != nil {
		return m.NextFunc(ctx, id)
	}
	panic("MockLearnService.NextFunc not implemented")
}
func (m *MockLearnService) Prev(ctx context.Context, id string) (*domain.DeckView, error) {
	if m.PrevFunc != nil {
		return m.PrevFunc(ctx, id)
	}
	panic("MockLearnService.PrevFunc not implemented")
}
func (m *MockLearnService) Filter(ctx context.Context, id string, req *dto.StartDeckRequest) (*domain.DeckView, error) {
	if m.FilterFunc != nil {
		return m.FilterFunc(ctx, id, req)
	}
	panic("MockLearnService.FilterFunc not implemented")
}
func (m *MockLearnService) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	panic("MockLearnService.DeleteFunc not implemented")
}

// MockCache only answers Ping.
type MockCache struct {
	PingErr error
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	return "", domain.ErrCacheMiss
}
func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	return errors.New("not supported")
}
func (m *MockCache) Delete(ctx context.Context, key string) error {
	return nil
}
func (m *MockCache) Ping(ctx context.Context) error {
	return m.PingErr
}

const validID = "01HGZ8VNRYXS8QKNJV5GRWPWDQ"

type testServices struct {
	catalog *MockCatalogService
	quiz    *MockQuizService
	learn   *MockLearnService
	cache   *MockCache
}

func newTestApp(t interface{ Helper() }) (*fiber.App, *testServices) {
	t.Helper()
	svc := &testServices{
		catalog: &MockCatalogService{},
		quiz:    &MockQuizService{},
		learn:   &MockLearnService{},
		cache:   &MockCache{},
	}
	catalog, err := domain.NewCatalog([]domain.Country{
		{Name: "Canada", Code: "ca", Region: "Americas", Subregion: "Northern America"},
		{Name: "Brazil", Code: "br", Region: "Americas", Subregion: "South America"},
	})
	if err != nil {
		panic(err)
	}

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	handler.RegisterRoutes(app, handler.Handlers{
		Catalog:    handler.NewCatalogHandler(svc.catalog),
		Quiz:       handler.NewQuizHandler(svc.quiz),
		Learn:      handler.NewLearnHandler(svc.learn),
		Health:     handler.NewHealthHandler(svc.cache, catalog),
		Validation: middleware.NewValidationMiddleware(50),
	})
	return app, svc
}
