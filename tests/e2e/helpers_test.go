//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/flashdeck-backend/internal/adapter/postgres"
	cardrepo "github.com/heartmarshall/flashdeck-backend/internal/adapter/postgres/card"
	folderrepo "github.com/heartmarshall/flashdeck-backend/internal/adapter/postgres/folder"
	sessionrepo "github.com/heartmarshall/flashdeck-backend/internal/adapter/postgres/session"
	"github.com/heartmarshall/flashdeck-backend/internal/adapter/postgres/testhelper"
	userrepo "github.com/heartmarshall/flashdeck-backend/internal/adapter/postgres/user"
	authpkg "github.com/heartmarshall/flashdeck-backend/internal/auth"
	"github.com/heartmarshall/flashdeck-backend/internal/config"
	authsvc "github.com/heartmarshall/flashdeck-backend/internal/service/auth"
	"github.com/heartmarshall/flashdeck-backend/internal/service/deck"
	"github.com/heartmarshall/flashdeck-backend/internal/transport/middleware"
	"github.com/heartmarshall/flashdeck-backend/internal/transport/rest"
	"github.com/jackc/pgx/v5/pgxpool"
)

const sessionCookieName = "flashdeck_session"

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.JWTManager
}

// setupTestServer wires the full application against a containerized
// Postgres and serves it over httptest. Auth, CORS, and recovery middleware
// run exactly as in production; only the bcrypt cost is lowered.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	pool := testhelper.SetupTestDB(t)

	txm := postgres.NewTxManager(pool)
	users := userrepo.New(pool)
	folders := folderrepo.New(pool)
	cards := cardrepo.New(pool)
	sessions := sessionrepo.New(pool)

	authCfg := config.AuthConfig{
		JWTSecret:        "test-secret-at-least-32-chars-long!!",
		JWTIssuer:        "test-issuer",
		AccessTokenTTL:   15 * time.Minute,
		SessionTTL:       720 * time.Hour,
		SessionCookie:    sessionCookieName,
		CookieSecure:     false,
		PasswordHashCost: bcrypt.MinCost,
		MinPasswordLen:   6,
	}

	jwtMgr := authpkg.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, sessions, txm, jwtMgr, authCfg)
	deckService := deck.NewService(logger, folders, cards, txm)

	router := rest.NewRouter(&rest.RouterDeps{
		Auth:    rest.NewAuthHandler(authService, authCfg, logger),
		Folders: rest.NewFolderHandler(deckService, logger),
		Cards:   rest.NewCardHandler(deckService, logger),
		Health:  rest.NewHealthHandler(pool, "test-version"),
		Version: "test",
	})

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Auth(authService, authCfg.SessionCookie),
	)(router)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    jwtMgr,
	}
}

// do sends a JSON request. A non-empty bearer token is sent in the
// Authorization header; any cookies are attached as-is. The caller owns
// the response body.
func (ts *testServer) do(t *testing.T, method, path string, payload any, bearer string, cookies ...*http.Cookie) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err, "marshal request body")
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, body)
	require.NoError(t, err, "create request")
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err, "do request")
	return resp
}

func decodeObj(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	var result map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result), "decode response object")
	return result
}

func decodeList(t *testing.T, resp *http.Response) []any {
	t.Helper()
	defer resp.Body.Close()

	var result []any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result), "decode response array")
	return result
}

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == sessionCookieName {
			return c
		}
	}
	return nil
}

type testAccount struct {
	Email   string
	Token   string
	Cookie  *http.Cookie
	UserID  uuid.UUID
	Name    string
	ResBody map[string]any
}

// signupAccount registers a fresh user through the API and returns the
// issued credentials. Emails are unique per call so tests can share one
// database container.
func signupAccount(t *testing.T, ts *testServer) *testAccount {
	t.Helper()

	email := fmt.Sprintf("e2e-%s@example.com", uuid.NewString()[:8])
	resp := ts.do(t, http.MethodPost, "/auth/signup", map[string]string{
		"email":    email,
		"name":     "E2E User",
		"password": "secret1",
	}, "")

	require.Equal(t, http.StatusCreated, resp.StatusCode, "signup should succeed")
	cookie := sessionCookie(resp)
	body := decodeObj(t, resp)

	token, _ := body["token"].(string)
	require.NotEmpty(t, token, "expected access token in signup response")

	user, ok := body["user"].(map[string]any)
	require.True(t, ok, "expected user object in signup response")
	userID, err := uuid.Parse(user["id"].(string))
	require.NoError(t, err, "parse user id")

	return &testAccount{
		Email:   email,
		Token:   token,
		Cookie:  cookie,
		UserID:  userID,
		Name:    "E2E User",
		ResBody: body,
	}
}

// createFolder creates a folder through the API and returns its id.
func createFolder(t *testing.T, ts *testServer, token, name string) uuid.UUID {
	t.Helper()

	resp := ts.do(t, http.MethodPost, "/folders/create_folder", map[string]string{
		"folder_name": name,
	}, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode, "create folder should succeed")

	body := decodeObj(t, resp)
	folder, ok := body["folder"].(map[string]any)
	require.True(t, ok, "expected folder object in response")

	id, err := uuid.Parse(folder["id"].(string))
	require.NoError(t, err, "parse folder id")
	return id
}

// createCard creates a card through the API and returns its id.
func createCard(t *testing.T, ts *testServer, token string, folderID uuid.UUID, question, answer string) uuid.UUID {
	t.Helper()

	resp := ts.do(t, http.MethodPost, "/cards/create_card", map[string]string{
		"folder_id": folderID.String(),
		"question":  question,
		"answer":    answer,
	}, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode, "create card should succeed")

	body := decodeObj(t, resp)
	card, ok := body["card"].(map[string]any)
	require.True(t, ok, "expected card object in response")

	id, err := uuid.Parse(card["id"].(string))
	require.NoError(t, err, "parse card id")
	return id
}
