package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-room-booking/internal/utils"
)

const testSecret = "unit-test-secret"

func runProtected(t *testing.T, authHeader string) (*httptest.ResponseRecorder, any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seenUserID any
	next := func(c echo.Context) error {
		seenUserID = c.Get("user_id")
		return c.String(http.StatusOK, "ok")
	}
	require.NoError(t, JWTAuth(testSecret)(next)(c))
	return rec, seenUserID
}

func TestJWTAuthRejectsMissingToken(t *testing.T) {
	rec, seen := runProtected(t, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, seen)

	rec, _ = runProtected(t, "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthRejectsBadSignature(t *testing.T) {
	tok, err := utils.NewAccessToken("some-other-secret", "HS256", 42, 5)
	require.NoError(t, err)

	rec, seen := runProtected(t, "Bearer "+tok.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, seen)
}

func TestJWTAuthRejectsGarbage(t *testing.T) {
	rec, _ := runProtected(t, "Bearer not.a.jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthAcceptsValidTokenAndSetsSubject(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, "HS256", 42, 5)
	require.NoError(t, err)

	rec, seen := runProtected(t, "Bearer "+tok.Token)
	require.Equal(t, http.StatusOK, rec.Code)

	// JSON numbers come back as float64 from MapClaims.
	sub, ok := seen.(float64)
	require.True(t, ok, "subject claim should be a number, got %T", seen)
	assert.Equal(t, float64(42), sub)
}

func TestJWTAuthAcceptsAllConfiguredHMACAlgorithms(t *testing.T) {
	for _, alg := range []string{"HS256", "HS384", "HS512"} {
		tok, err := utils.NewAccessToken(testSecret, alg, 7, 5)
		require.NoError(t, err)
		rec, _ := runProtected(t, "Bearer "+tok.Token)
		assert.Equal(t, http.StatusOK, rec.Code, "alg %s", alg)
	}
}

func TestJWTAuthRejectsExpiredToken(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, "HS256", 42, -5)
	require.NoError(t, err)

	rec, _ := runProtected(t, "Bearer "+tok.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
