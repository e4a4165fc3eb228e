package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bobcathub/internal/model"
	"bobcathub/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSessions struct {
	tokens   map[uint64]string
	extended int
}

func (f *fakeSessions) Get(ctx context.Context, userID uint64) (string, error) {
	tok, ok := f.tokens[userID]
	if !ok {
		return "", context.Canceled
	}
	return tok, nil
}

func (f *fakeSessions) Extend(ctx context.Context, userID uint64) error {
	f.extended++
	return nil
}

func newAuthRouter(t *testing.T, tokens *pkg.TokenManager, sessions SessionStore, roles ...model.Role) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("/student")
	group.Use(Auth(tokens, sessions))
	if len(roles) > 0 {
		group.Use(RequireRole("Access denied.", roles...))
	}
	group.GET("/dashboard", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetUint64(ContextUserIDKey),
		})
	})
	return r
}

func TestAuthRejectsMissingToken(t *testing.T) {
	tokens := pkg.NewTokenManager("access", "refresh")
	r := newAuthRouter(t, tokens, &fakeSessions{tokens: map[uint64]string{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/student/dashboard", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Please login to access this page.", body["msg"])
	assert.Equal(t, LoginPath, body["login"])
	assert.Equal(t, "/student/dashboard", body["next"])
}

func TestAuthAcceptsStoredToken(t *testing.T) {
	tokens := pkg.NewTokenManager("access", "refresh")
	pair, err := tokens.GeneratePair(7, model.RoleStudent)
	require.NoError(t, err)

	sessions := &fakeSessions{tokens: map[uint64]string{7: pair.AccessToken}}
	r := newAuthRouter(t, tokens, sessions)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/student/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":7`)
	assert.Equal(t, 1, sessions.extended)
}

func TestAuthRejectsSupersededToken(t *testing.T) {
	tokens := pkg.NewTokenManager("access", "refresh")
	old, err := tokens.GeneratePair(7, model.RoleStudent)
	require.NoError(t, err)

	// A later login replaced the stored token.
	sessions := &fakeSessions{tokens: map[uint64]string{7: "a-newer-token"}}
	r := newAuthRouter(t, tokens, sessions)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/student/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+old.AccessToken)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Account has been logged in elsewhere")
}

func TestRequireRoleForbidsWrongRole(t *testing.T) {
	tokens := pkg.NewTokenManager("access", "refresh")
	pair, err := tokens.GeneratePair(7, model.RoleStudent)
	require.NoError(t, err)

	sessions := &fakeSessions{tokens: map[uint64]string{7: pair.AccessToken}}
	r := newAuthRouter(t, tokens, sessions, model.RoleAdmin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/student/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Access denied.", body["msg"])
	assert.Equal(t, "/", body["redirect"])
}

func TestRequireRoleAdmitsListedRoles(t *testing.T) {
	tokens := pkg.NewTokenManager("access", "refresh")
	pair, err := tokens.GeneratePair(7, model.RoleClub)
	require.NoError(t, err)

	sessions := &fakeSessions{tokens: map[uint64]string{7: pair.AccessToken}}
	r := newAuthRouter(t, tokens, sessions, model.RoleClub, model.RoleAdmin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/student/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
