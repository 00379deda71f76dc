package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kdfca/academy/internal/api"
	"github.com/kdfca/academy/internal/api/apierr"
	"github.com/kdfca/academy/internal/api/response"
	"github.com/kdfca/academy/internal/factory"
	"github.com/kdfca/academy/internal/middleware"
	"github.com/kdfca/academy/internal/model"
	"github.com/kdfca/academy/internal/testutil"
	"github.com/kdfca/academy/internal/validation"
)

// testServer wires the router to a test app with a mock clock and in-memory storage
type testServer struct {
	handler http.Handler
	app     *factory.TestApp
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServerWithPolicy(t, validation.DefaultPolicy())
}

func newTestServerWithPolicy(t *testing.T, policy validation.Policy) *testServer {
	t.Helper()

	app := factory.NewTestAppWithPolicy(policy)
	t.Cleanup(func() { _ = app.Close(t.Context()) })

	router := api.NewRouter(api.RouterConfig{
		Logger:              testutil.NopLogger(),
		Store:               app.Store,
		RegistrationService: app.RegistrationService,
		AccountService:      app.AccountService,
	})

	return &testServer{handler: router, app: app}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	switch b := body.(type) {
	case nil:
		reqBody = bytes.NewBuffer(nil)
	case string:
		reqBody = bytes.NewBufferString(b)
	default:
		data, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(data)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

var janeDoe = map[string]any{
	"name":       "Jane Doe",
	"age":        16,
	"position":   "Forward",
	"experience": 3,
	"phone":      "555-0100",
	"email":      "jane@example.com",
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", decode[response.Health](t, rr).Status)
	assert.NotEmpty(t, rr.Header().Get(middleware.RequestIDHeader))
}

func TestRequestIDEchoed(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-123")
	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	assert.Equal(t, "req-123", rr.Header().Get(middleware.RequestIDHeader))
}

func TestRegisterPlayerFlow(t *testing.T) {
	ts := newTestServer(t)

	// Submit
	rr := ts.request(http.MethodPost, "/api/v1/registrations", janeDoe)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	player := decode[response.Player](t, rr)
	assert.NotZero(t, player.ID)
	assert.Equal(t, "pending", player.Status)
	assert.Equal(t, 16, player.Age)

	// Review
	rr = ts.request(http.MethodPatch, fmt.Sprintf("/api/v1/registrations/%d/status", player.ID), map[string]string{"status": "accepted"})
	require.Equal(t, http.StatusNoContent, rr.Code)

	// Read back
	rr = ts.request(http.MethodGet, "/api/v1/registrations", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	players := decode[response.Collection[response.Player]](t, rr)
	require.Len(t, players.Items, 1)
	assert.Equal(t, "accepted", players.Items[0].Status)
	assert.Equal(t, "idle", players.Status)
}

func TestRegisterPlayerValidationFailure(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/registrations", map[string]any{
		"name":       "J",
		"age":        "",
		"position":   "Striker",
		"experience": 2,
		"phone":      "555-0100",
		"email":      "jane@example",
	})
	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	resp := decode[apierr.ErrorResponse](t, rr)
	assert.Equal(t, apierr.CodeValidationFailed, resp.Error.Code)
	assert.Equal(t, validation.KindInvalidFormat, resp.Error.Fields.Kind("name"))
	assert.Equal(t, validation.KindRequired, resp.Error.Fields.Kind("age"))
	assert.Equal(t, validation.KindInvalidFormat, resp.Error.Fields.Kind("position"))
	assert.Equal(t, validation.KindInvalidFormat, resp.Error.Fields.Kind("email"))
	assert.False(t, resp.Error.Fields.Has("experience"))

	rr = ts.request(http.MethodGet, "/api/v1/registrations", nil)
	assert.Empty(t, decode[response.Collection[response.Player]](t, rr).Items)
}

func TestStatusUpdateUnknownIDIsNoContent(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPatch, "/api/v1/coaches/42/status", map[string]string{"status": "rejected"})
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestStatusUpdateRejectsBadInput(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPatch, "/api/v1/registrations/1/status", map[string]string{"status": "archived"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidStatus, decode[apierr.ErrorResponse](t, rr).Error.Code)

	rr = ts.request(http.MethodPatch, "/api/v1/registrations/abc/status", map[string]string{"status": "accepted"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidRequest, decode[apierr.ErrorResponse](t, rr).Error.Code)
}

func TestMalformedBody(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/coaches", "{not json")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidRequest, decode[apierr.ErrorResponse](t, rr).Error.Code)
}

func TestOversizedBodyRejected(t *testing.T) {
	ts := newTestServer(t)

	huge := `{"text":"` + strings.Repeat("a", 128<<10) + `"}`
	rr := ts.request(http.MethodPost, "/api/v1/todos", huge)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestApplyCoachAndMembers(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/registrations", janeDoe)
	require.Equal(t, http.StatusCreated, rr.Code)

	ts.app.MockClock.Advance(time.Second)
	rr = ts.request(http.MethodPost, "/api/v1/coaches", map[string]any{
		"name":           "Kassa Degefa",
		"specialization": "Youth Development",
		"experience":     "20",
		"certifications": "UEFA Pro License",
		"phone":          "555-0199",
		"email":          "kassa@kdfca.org",
		"qualifications": "Former national team captain",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	coach := decode[response.Coach](t, rr)
	assert.Equal(t, "Former national team captain", coach.Qualifications)

	rr = ts.request(http.MethodGet, "/api/v1/members", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	members := decode[response.Members](t, rr)
	require.Len(t, members.Players, 1)
	require.Len(t, members.Coaches, 1)
	assert.Equal(t, "Jane Doe", members.Players[0].Name)
	assert.Equal(t, coach.ID, members.Coaches[0].ID)
}

func TestSignUp(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/users", map[string]string{
		"firstname":       "Abebe",
		"lastname":        "Bikila",
		"email":           "abebe@example.com",
		"password":        "Password1!",
		"confirmPassword": "Password1!",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	assert.NotContains(t, rr.Body.String(), "password_hash")
	assert.NotContains(t, rr.Body.String(), "Password1!")

	user := decode[response.User](t, rr)
	assert.Equal(t, 5, user.PasswordStrength)

	rr = ts.request(http.MethodGet, "/api/v1/users", nil)
	users := decode[response.Collection[response.User]](t, rr)
	require.Len(t, users.Items, 1)
	assert.Equal(t, "idle", users.Status)
}

func TestSignUpMismatch(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/users", map[string]string{
		"firstname":       "Abebe",
		"lastname":        "Bikila",
		"email":           "abebe@example.com",
		"password":        "Password1!",
		"confirmPassword": "Password2!",
	})
	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	fields := decode[apierr.ErrorResponse](t, rr).Error.Fields
	assert.Equal(t, validation.KindMismatch, fields.Kind("confirmPassword"))
}

func TestSignUpErrorAndClear(t *testing.T) {
	ts := newTestServer(t)

	long := "Aa1!" + strings.Repeat("x", 80)
	rr := ts.request(http.MethodPost, "/api/v1/users", map[string]string{
		"firstname":       "Abebe",
		"lastname":        "Bikila",
		"email":           "abebe@example.com",
		"password":        long,
		"confirmPassword": long,
	})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/users", nil)
	users := decode[response.Collection[response.User]](t, rr)
	assert.Equal(t, "error", users.Status)
	assert.NotEmpty(t, users.Error)

	rr = ts.request(http.MethodDelete, "/api/v1/users/error", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/users", nil)
	users = decode[response.Collection[response.User]](t, rr)
	assert.Equal(t, "idle", users.Status)
	assert.Empty(t, users.Error)
}

func TestPasswordStrength(t *testing.T) {
	ts := newTestServerWithPolicy(t, validation.Policy{MinPasswordStrength: 3})

	rr := ts.request(http.MethodPost, "/api/v1/password/strength", map[string]string{"password": "abc"})
	require.Equal(t, http.StatusOK, rr.Code)

	strength := decode[response.PasswordStrength](t, rr)
	assert.Equal(t, 1, strength.Score)
	assert.Equal(t, validation.MaxPasswordStrength, strength.Max)
	assert.False(t, strength.SubmitEnabled)

	rr = ts.request(http.MethodPost, "/api/v1/password/strength", map[string]string{"password": "Abcdef1!"})
	strength = decode[response.PasswordStrength](t, rr)
	assert.Equal(t, 5, strength.Score)
	assert.True(t, strength.SubmitEnabled)
}

func TestTodoScenario(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/todos", map[string]string{"text": "   "})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/todos", map[string]string{"text": "Buy cleats"})
	require.Equal(t, http.StatusCreated, rr.Code)
	todo := decode[response.Todo](t, rr)
	assert.Equal(t, "Buy cleats", todo.Text)
	assert.False(t, todo.Completed)

	rr = ts.request(http.MethodPost, fmt.Sprintf("/api/v1/todos/%d/toggle", todo.ID), nil)
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/todos", nil)
	todos := decode[response.Collection[response.Todo]](t, rr)
	require.Len(t, todos.Items, 1)
	assert.True(t, todos.Items[0].Completed)

	ts.request(http.MethodPost, "/api/v1/todos", map[string]string{"text": "Book the pitch"})
	rr = ts.request(http.MethodDelete, fmt.Sprintf("/api/v1/todos/%d", todo.ID), nil)
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/todos", nil)
	todos = decode[response.Collection[response.Todo]](t, rr)
	require.Len(t, todos.Items, 1)
	assert.Equal(t, "Book the pitch", todos.Items[0].Text)

	rr = ts.request(http.MethodDelete, "/api/v1/todos", nil)
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/todos", nil)
	assert.Empty(t, decode[response.Collection[response.Todo]](t, rr).Items)
}

func TestCounter(t *testing.T) {
	ts := newTestServer(t)

	for _, step := range []struct {
		path string
		want int
	}{
		{"/api/v1/counter/increment", 1},
		{"/api/v1/counter/increment", 2},
		{"/api/v1/counter/decrement", 1},
		{"/api/v1/counter/reset", 0},
	} {
		rr := ts.request(http.MethodPost, step.path, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, step.want, decode[response.Counter](t, rr).Value, step.path)
	}

	rr := ts.request(http.MethodGet, "/api/v1/counter", nil)
	assert.Equal(t, 0, decode[response.Counter](t, rr).Value)
}

func TestUnknownRouteAndMethod(t *testing.T) {
	ts := newTestServer(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/v1/nope"},
		{http.MethodPut, "/api/v1/counter"},
		{http.MethodGet, "/elsewhere"},
	} {
		rr := ts.request(tc.method, tc.path, nil)
		require.Equal(t, http.StatusNotFound, rr.Code, tc.path)
		assert.Equal(t, apierr.CodeNotFound, decode[apierr.ErrorResponse](t, rr).Error.Code, tc.path)
	}
}

func TestPurgeResetsEverything(t *testing.T) {
	ts := newTestServer(t)

	require.Equal(t, http.StatusCreated, ts.request(http.MethodPost, "/api/v1/registrations", janeDoe).Code)
	require.Equal(t, http.StatusCreated, ts.request(http.MethodPost, "/api/v1/todos", map[string]string{"text": "Buy cleats"}).Code)
	require.Equal(t, http.StatusCreated, ts.request(http.MethodPost, "/api/v1/users", map[string]string{
		"firstname":       "Abebe",
		"lastname":        "Bikila",
		"email":           "abebe@example.com",
		"password":        "Password1!",
		"confirmPassword": "Password1!",
	}).Code)
	ts.request(http.MethodPost, "/api/v1/counter/increment", nil)
	require.NoError(t, ts.app.Store.Flush(t.Context()))

	rr := ts.request(http.MethodDelete, "/api/v1/store", nil)
	require.Equal(t, http.StatusNoContent, rr.Code)

	for _, path := range []string{"/api/v1/registrations", "/api/v1/coaches", "/api/v1/users", "/api/v1/todos"} {
		rr = ts.request(http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, rr.Code, path)
		assert.Empty(t, decode[response.Collection[json.RawMessage]](t, rr).Items, path)
	}

	rr = ts.request(http.MethodGet, "/api/v1/counter", nil)
	assert.Equal(t, 0, decode[response.Counter](t, rr).Value)

	for _, kind := range model.CollectionKinds {
		_, err := ts.app.Memory.Load(t.Context(), string(kind))
		assert.ErrorIs(t, err, model.ErrSnapshotNotFound, kind)
	}
}
