package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const testSecret = "test-secret"

func signToken(t *testing.T, sub uint64, role string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":  sub,
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func runProtected(t *testing.T, authHeader string, mws ...echo.MiddlewareFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	h := func(c echo.Context) error { return c.String(http.StatusOK, "ok") }
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestJWTAuthMissingToken(t *testing.T) {
	rec := runProtected(t, "", JWTAuth(testSecret))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestJWTAuthBadSignature(t *testing.T) {
	tok := signToken(t, 7, "user")
	rec := runProtected(t, "Bearer "+tok, JWTAuth("other-secret"))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestJWTAuthValidToken(t *testing.T) {
	tok := signToken(t, 7, "user")
	rec := runProtected(t, "Bearer "+tok, JWTAuth(testSecret))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
}

func TestRequireRole(t *testing.T) {
	cases := []struct {
		role    string
		allowed []string
		want    int
	}{
		{"admin", []string{"admin"}, http.StatusOK},
		{"user", []string{"admin"}, http.StatusForbidden},
		{"user", []string{"user", "admin"}, http.StatusOK},
		{"", []string{"admin"}, http.StatusForbidden},
	}
	for _, tc := range cases {
		tok := signToken(t, 1, tc.role)
		rec := runProtected(t, "Bearer "+tok, JWTAuth(testSecret), RequireRole(tc.allowed...))
		if rec.Code != tc.want {
			t.Errorf("role=%q allowed=%v: status = %d, want %d", tc.role, tc.allowed, rec.Code, tc.want)
		}
	}
}
