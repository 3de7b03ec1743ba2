package httpserver_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"moviecredits/actor"
	"moviecredits/credit"
	"moviecredits/httpserver"
	"moviecredits/movie"
	"moviecredits/pkg/config"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Port = 8080
	return cfg
}

type apiResponse struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

func decodeAPIResponse(t testing.TB, rec *httptest.ResponseRecorder) apiResponse {
	t.Helper()
	var resp apiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "body: %s", rec.Body.String())
	return resp
}

func decodeBody(t testing.TB, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), "body: %s", rec.Body.String())
}

func newJSONRequest(method, path, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func serve(server *httpserver.Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	server.Router.ServeHTTP(rec, req)
	return rec
}

type MockMovieService struct {
	mock.Mock
}

func (m *MockMovieService) ListMovies(ctx context.Context) ([]movie.Movie, error) {
	args := m.Called(ctx)
	return args.Get(0).([]movie.Movie), args.Error(1)
}

func (m *MockMovieService) AddMovie(ctx context.Context, mv movie.Movie) (movie.Movie, error) {
	args := m.Called(ctx, mv)
	return args.Get(0).(movie.Movie), args.Error(1)
}

func (m *MockMovieService) GetMovie(ctx context.Context, id int64) (movie.Movie, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(movie.Movie), args.Error(1)
}

func (m *MockMovieService) UpdateMovie(ctx context.Context, id int64, p movie.Patch) (movie.Movie, error) {
	args := m.Called(ctx, id, p)
	return args.Get(0).(movie.Movie), args.Error(1)
}

func (m *MockMovieService) DeleteMovie(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockActorService struct {
	mock.Mock
}

func (m *MockActorService) ListActors(ctx context.Context) ([]actor.Actor, error) {
	args := m.Called(ctx)
	return args.Get(0).([]actor.Actor), args.Error(1)
}

func (m *MockActorService) AddActor(ctx context.Context, a actor.Actor) (actor.Actor, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(actor.Actor), args.Error(1)
}

func (m *MockActorService) GetActor(ctx context.Context, id int64) (actor.Actor, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(actor.Actor), args.Error(1)
}

func (m *MockActorService) UpdateActor(ctx context.Context, id int64, p actor.Patch) (actor.Actor, error) {
	args := m.Called(ctx, id, p)
	return args.Get(0).(actor.Actor), args.Error(1)
}

func (m *MockActorService) DeleteActor(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCreditService struct {
	mock.Mock
}

func (m *MockCreditService) ListCredits(ctx context.Context) ([]credit.Credit, error) {
	args := m.Called(ctx)
	return args.Get(0).([]credit.Credit), args.Error(1)
}

func (m *MockCreditService) AddCredit(ctx context.Context, c credit.Credit) (credit.Credit, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(credit.Credit), args.Error(1)
}

func (m *MockCreditService) GetCredit(ctx context.Context, id int64) (credit.Credit, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(credit.Credit), args.Error(1)
}

func (m *MockCreditService) DeleteCredit(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
