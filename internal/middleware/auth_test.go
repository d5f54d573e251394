package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/patient_decisions_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "test-secret-key-that-is-long-enough"
	testIssuer = "patient-decisions"
)

func signToken(t *testing.T, claims middleware.ActorClaims, secret string) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func newAuthRouter() *gin.Engine {
	return newAuthRouterWithIssuer(testIssuer)
}

func newAuthRouterWithIssuer(issuer string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.AuthMiddleware(testSecret, issuer))
	r.GET("/whoami", func(c *gin.Context) {
		actor, ok := middleware.GetActorFromCtx(c.Request.Context())
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, actor)
	})
	return r
}

func serve(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, "/whoami", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validClaims() middleware.ActorClaims {
	return middleware.ActorClaims{
		Name:  "Test Clinician",
		Roles: []string{"clinician"},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "actor-1",
			Issuer:    testIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	w := serve(newAuthRouter(), "Bearer "+signToken(t, validClaims(), testSecret))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"actor-1"`)
	assert.Contains(t, w.Body.String(), `"roles":["clinician"]`)
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
	noSubject := validClaims()
	noSubject.Subject = ""
	otherIssuer := validClaims()
	otherIssuer.Issuer = "someone-else"

	tests := map[string]string{
		"missing header": "",
		"wrong scheme":   "Basic abc",
		"bad signature":  "Bearer " + signToken(t, validClaims(), "another-secret"),
		"expired":        "Bearer " + signToken(t, expired, testSecret),
		"no subject":     "Bearer " + signToken(t, noSubject, testSecret),
		"wrong issuer":   "Bearer " + signToken(t, otherIssuer, testSecret),
	}

	for name, header := range tests {
		t.Run(name, func(t *testing.T) {
			w := serve(newAuthRouter(), header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestAuthMiddleware_NoIssuerConfiguredAcceptsAnyIssuer(t *testing.T) {
	claims := validClaims()
	claims.Issuer = "external-idp"

	w := serve(newAuthRouterWithIssuer(""), "Bearer "+signToken(t, claims, testSecret))

	assert.Equal(t, http.StatusOK, w.Code)
}
