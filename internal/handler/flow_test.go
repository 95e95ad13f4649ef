package handler_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"flag-quiz/internal/adapter"
	"flag-quiz/internal/domain"
	"flag-quiz/internal/handler"
	"flag-quiz/internal/middleware"
	"flag-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const flowFlagBase = "http://flags.test"

// newFlowApp wires the real services over the in-memory cache.
func newFlowApp(t *testing.T) (*fiber.App, map[string]string) {
	t.Helper()
	countries := []domain.Country{
		{Name: "Canada", Code: "ca", Region: "Americas", Subregion: "Northern America"},
		{Name: "Mexico", Code: "mx", Region: "Americas", Subregion: "Central America"},
		{Name: "Brazil", Code: "br", Region: "Americas", Subregion: "South America"},
		{Name: "France", Code: "fr", Region: "Europe", Subregion: "Western Europe"},
	}
	catalog, err := domain.NewCatalog(countries)
	require.NoError(t, err)

	names := make(map[string]string, len(countries))
	for _, c := range countries {
		names[c.Code] = c.Name
	}

	cache := adapter.NewMemoryCacheAdapter()
	rng := domain.NewLockedRand()
	quiz := service.NewQuizService(catalog, service.NewSessionStore(cache, 0), rng, service.QuizOptions{
		OptionCount:  4,
		DefaultCount: 10,
		MaxCount:     50,
		FlagBaseURL:  flowFlagBase,
	})
	learn := service.NewLearnService(catalog, service.NewDeckStore(cache, 0), rng, flowFlagBase)

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Use(middleware.RequestLogger())
	handler.RegisterRoutes(app, handler.Handlers{
		Catalog:    handler.NewCatalogHandler(service.NewCatalogService(catalog)),
		Quiz:       handler.NewQuizHandler(quiz),
		Learn:      handler.NewLearnHandler(learn),
		Health:     handler.NewHealthHandler(cache, catalog),
		Validation: middleware.NewValidationMiddleware(50),
	})
	return app, names
}

func decodeView(t *testing.T, body []byte) domain.SessionView {
	t.Helper()
	var view domain.SessionView
	require.NoError(t, json.Unmarshal(body, &view))
	return view
}

func TestFlow_TypedAnswersToSummary(t *testing.T) {
	app, names := newFlowApp(t)

	resp, body := doRequest(t, app, http.MethodPost, "/api/sessions",
		`{"region":"Americas","answer_mode":"input","question_type":"flagToName","count":2}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	view := decodeView(t, body)
	id := view.ID
	assert.Equal(t, 2, view.Total)
	assert.Equal(t, "Americas • all", view.LevelLabel)

	for i := 1; i <= 2; i++ {
		require.Equal(t, domain.StateInQuestion, view.State)
		require.True(t, view.ExpectsText)
		assert.Equal(t, i, view.QuestionIndex)

		code := strings.TrimSuffix(strings.TrimPrefix(view.FlagURL, flowFlagBase+"/"), ".png")
		name, ok := names[code]
		require.True(t, ok, "flag url %q", view.FlagURL)

		// case and surrounding whitespace are ignored
		answer := fmt.Sprintf(`{"text":"  %s "}`, strings.ToUpper(name))
		resp, body = doRequest(t, app, http.MethodPost, "/api/sessions/"+id+"/answer", answer)
		require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
		view = decodeView(t, body)
		assert.Equal(t, domain.StateAnswered, view.State)
		require.NotNil(t, view.Outcome)
		assert.True(t, view.Outcome.Correct)
		assert.Equal(t, i, view.Score)

		// a second answer to the same question is rejected
		resp, _ = doRequest(t, app, http.MethodPost, "/api/sessions/"+id+"/answer", answer)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)

		resp, body = doRequest(t, app, http.MethodPost, "/api/sessions/"+id+"/advance", "")
		require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
		view = decodeView(t, body)
	}

	assert.Equal(t, domain.StateFinished, view.State)
	require.NotNil(t, view.Summary)
	assert.Equal(t, 2, view.Summary.Score)
	assert.Len(t, view.Summary.Records, 2)
	assert.Empty(t, view.Summary.Missed)

	resp, body = doRequest(t, app, http.MethodPost, "/api/sessions/"+id+"/play-again", "")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	view = decodeView(t, body)
	assert.Equal(t, id, view.ID)
	assert.Equal(t, 0, view.Score)
	assert.Equal(t, domain.StateInQuestion, view.State)

	resp, _ = doRequest(t, app, http.MethodDelete, "/api/sessions/"+id, "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp, _ = doRequest(t, app, http.MethodGet, "/api/sessions/"+id, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestFlow_WrongOptionGoesToMissed(t *testing.T) {
	app, names := newFlowApp(t)

	resp, body := doRequest(t, app, http.MethodPost, "/api/sessions", `{"region":"Americas","count":1}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	view := decodeView(t, body)
	require.Len(t, view.Options, 3)

	code := strings.TrimSuffix(strings.TrimPrefix(view.FlagURL, flowFlagBase+"/"), ".png")
	var wrong string
	for _, opt := range view.Options {
		if opt.Value != names[code] {
			wrong = opt.Value
			break
		}
	}
	require.NotEmpty(t, wrong)

	resp, body = doRequest(t, app, http.MethodPost, "/api/sessions/"+view.ID+"/answer",
		fmt.Sprintf(`{"selection":%q}`, wrong))
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	view = decodeView(t, body)
	require.NotNil(t, view.Outcome)
	assert.False(t, view.Outcome.Correct)
	assert.Equal(t, names[code], view.Outcome.CorrectName)

	resp, body = doRequest(t, app, http.MethodGet, "/api/sessions/"+view.ID+"/summary", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var summary domain.SummaryView
	require.NoError(t, json.Unmarshal(body, &summary))
	assert.Equal(t, 0, summary.Score)
	require.Len(t, summary.Missed, 1)
	assert.Equal(t, wrong, summary.Missed[0].Picked)
}

func TestFlow_StartRejectsSmallPool(t *testing.T) {
	app, _ := newFlowApp(t)

	resp, body := doRequest(t, app, http.MethodPost, "/api/sessions", `{"region":"Europe"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, string(body), string(domain.CodeInsufficientPool))
}

func TestFlow_LearnDeckWraps(t *testing.T) {
	app, _ := newFlowApp(t)

	resp, body := doRequest(t, app, http.MethodPost, "/api/learn", `{"region":"Americas","subregion":"South America"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var deck domain.DeckView
	require.NoError(t, json.Unmarshal(body, &deck))
	assert.Equal(t, 1, deck.Available)
	assert.Equal(t, "Brazil", deck.Name)

	resp, body = doRequest(t, app, http.MethodPost, "/api/learn/"+deck.ID+"/next", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var next domain.DeckView
	require.NoError(t, json.Unmarshal(body, &next))
	assert.Equal(t, "Brazil", next.Name)
}
