package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rohits-web03/notedrop/internal/repositories"
	"github.com/rohits-web03/notedrop/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() http.Handler {
	users := repositories.NewMemoryUserRepository()
	notes := repositories.NewMemoryNoteRepository()
	authSvc := services.NewAuthService(users, []byte("test-secret"), time.Hour)
	noteSvc := services.NewNoteService(notes)
	return SetupRouter(authSvc, noteSvc)
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Count   *int            `json:"count"`
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body any) (int, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec.Code, env
}

func signupAndToken(t *testing.T, router http.Handler, email string) string {
	t.Helper()
	status, env := doJSON(t, router, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"email":     email,
		"password":  "Test@1234",
		"firstName": "A",
		"lastName":  "B",
	})
	require.Equal(t, http.StatusCreated, status)

	var result struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	require.NotEmpty(t, result.Token)
	return result.Token
}

func TestHealth(t *testing.T) {
	router := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestNoteLifecycle(t *testing.T) {
	router := newTestRouter()
	token := signupAndToken(t, router, "a@x.com")

	// create
	status, env := doJSON(t, router, http.MethodPost, "/api/notes", token, map[string]string{
		"title":   "T",
		"content": "C",
	})
	require.Equal(t, http.StatusCreated, status)
	require.True(t, env.Success)

	var note struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &note))
	require.NotEmpty(t, note.ID)

	// get by id
	status, env = doJSON(t, router, http.MethodGet, "/api/notes/"+note.ID, token, nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &note))
	assert.Equal(t, "T", note.Title)

	// update
	status, env = doJSON(t, router, http.MethodPut, "/api/notes/"+note.ID, token, map[string]string{
		"title": "T2",
	})
	require.Equal(t, http.StatusOK, status)

	status, env = doJSON(t, router, http.MethodGet, "/api/notes/"+note.ID, token, nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &note))
	assert.Equal(t, "T2", note.Title)

	// delete, then everything 404s
	status, env = doJSON(t, router, http.MethodDelete, "/api/notes/"+note.ID, token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)

	status, _ = doJSON(t, router, http.MethodGet, "/api/notes/"+note.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = doJSON(t, router, http.MethodDelete, "/api/notes/"+note.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestNotesRequireToken(t *testing.T) {
	router := newTestRouter()

	status, env := doJSON(t, router, http.MethodGet, "/api/notes", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.False(t, env.Success)

	status, _ = doJSON(t, router, http.MethodGet, "/api/notes", "not-a-real-token", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestCrossUserIsolation(t *testing.T) {
	router := newTestRouter()
	tokenA := signupAndToken(t, router, "a@x.com")
	tokenB := signupAndToken(t, router, "b@x.com")

	status, env := doJSON(t, router, http.MethodPost, "/api/notes", tokenA, map[string]string{
		"title": "A's note",
	})
	require.Equal(t, http.StatusCreated, status)

	var note struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &note))

	status, _ = doJSON(t, router, http.MethodGet, "/api/notes/"+note.ID, tokenB, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = doJSON(t, router, http.MethodPut, "/api/notes/"+note.ID, tokenB, map[string]string{"title": "hijack"})
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = doJSON(t, router, http.MethodDelete, "/api/notes/"+note.ID, tokenB, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, env = doJSON(t, router, http.MethodGet, "/api/notes", tokenB, nil)
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, env.Count)
	assert.Equal(t, 0, *env.Count)
}

func TestListAndSearch(t *testing.T) {
	router := newTestRouter()
	token := signupAndToken(t, router, "a@x.com")

	for _, title := range []string{"Groceries", "Work log"} {
		status, _ := doJSON(t, router, http.MethodPost, "/api/notes", token, map[string]string{
			"title":   title,
			"content": "some text",
		})
		require.Equal(t, http.StatusCreated, status)
	}

	status, env := doJSON(t, router, http.MethodGet, "/api/notes", token, nil)
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, env.Count)
	assert.Equal(t, 2, *env.Count)

	status, env = doJSON(t, router, http.MethodGet, "/api/notes/search?q=groc", token, nil)
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, env.Count)
	assert.Equal(t, 1, *env.Count)
}

func TestSignupConflictAndValidation(t *testing.T) {
	router := newTestRouter()
	signupAndToken(t, router, "a@x.com")

	status, env := doJSON(t, router, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"email":     "A@X.com",
		"password":  "Test@1234",
		"firstName": "A",
		"lastName":  "B",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, env.Success)

	status, _ = doJSON(t, router, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"email":     "bad-email",
		"password":  "Test@1234",
		"firstName": "A",
		"lastName":  "B",
	})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestProfileRoundTrip(t *testing.T) {
	router := newTestRouter()
	token := signupAndToken(t, router, "a@x.com")

	status, env := doJSON(t, router, http.MethodGet, "/api/auth/profile", token, nil)
	require.Equal(t, http.StatusOK, status)

	var user struct {
		Email     string `json:"email"`
		FirstName string `json:"firstName"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &user))
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, "A", user.FirstName)

	status, env = doJSON(t, router, http.MethodPut, "/api/auth/profile", token, map[string]string{
		"firstName": "Alice",
	})
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &user))
	assert.Equal(t, "Alice", user.FirstName)

	// profile without a token is rejected
	status, _ = doJSON(t, router, http.MethodGet, "/api/auth/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestLoginFlow(t *testing.T) {
	router := newTestRouter()
	signupAndToken(t, router, "a@x.com")

	status, env := doJSON(t, router, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "a@x.com",
		"password": "Test@1234",
	})
	require.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)

	status, env = doJSON(t, router, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "a@x.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid email or password", env.Message)

	status, env = doJSON(t, router, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "missing@x.com",
		"password": "Test@1234",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid email or password", env.Message)
}
