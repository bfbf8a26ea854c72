package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"agrimarket-delivery/internal/domain"
)

const testSecret = "test-secret"

func sign(t *testing.T, secret string, claims Claims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return tok
}

func validClaims() Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "agrimarket",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID: 42,
		Role:   "buyer",
	}
}

func TestNewAuthenticator_RequiresSecret(t *testing.T) {
	t.Parallel()

	a, err := NewAuthenticator("  ", "", nil)
	require.ErrorIs(t, err, ErrNoSecret)
	require.Nil(t, a)
}

func TestAuthenticator_Parse(t *testing.T) {
	t.Parallel()

	a, err := NewAuthenticator(testSecret, "agrimarket", nil)
	require.NoError(t, err)

	subjectOnly := validClaims()
	subjectOnly.UserID = 0
	subjectOnly.Subject = "7"
	subjectOnly.Role = "admin"

	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	wrongIssuer := validClaims()
	wrongIssuer.Issuer = "elsewhere"

	noUser := validClaims()
	noUser.UserID = 0

	badSubject := validClaims()
	badSubject.UserID = 0
	badSubject.Subject = "alice"

	cases := []struct {
		name    string
		token   string
		want    domain.Caller
		wantErr bool
	}{
		{name: "user_id claim", token: sign(t, testSecret, validClaims()), want: domain.Caller{UserID: 42, Role: "buyer"}},
		{name: "subject fallback", token: sign(t, testSecret, subjectOnly), want: domain.Caller{UserID: 7, Role: domain.RoleAdmin}},
		{name: "expired", token: sign(t, testSecret, expired), wantErr: true},
		{name: "wrong issuer", token: sign(t, testSecret, wrongIssuer), wantErr: true},
		{name: "wrong secret", token: sign(t, "other", validClaims()), wantErr: true},
		{name: "no user", token: sign(t, testSecret, noUser), wantErr: true},
		{name: "non-numeric subject", token: sign(t, testSecret, badSubject), wantErr: true},
		{name: "garbage", token: "not-a-jwt", wantErr: true},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := a.Parse(tc.token)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestAuthenticator_Handler(t *testing.T) {
	t.Parallel()

	a, err := NewAuthenticator(testSecret, "", nil)
	require.NoError(t, err)

	var seen domain.Caller
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, ok := CallerFrom(r.Context())
		require.True(t, ok)
		seen = c
		w.WriteHeader(http.StatusNoContent)
	})
	h := a.Handler()(next)

	t.Run("valid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/delivery-schedule", nil)
		req.Header.Set("Authorization", "Bearer "+sign(t, testSecret, validClaims()))
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		require.Equal(t, http.StatusNoContent, rr.Code)
		require.Equal(t, int64(42), seen.UserID)
	})

	for _, header := range []string{"", "Bearer", "Basic abc", "Bearer nope"} {
		req := httptest.NewRequest(http.MethodGet, "/delivery-schedule", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		require.Equal(t, http.StatusUnauthorized, rr.Code, header)
		require.Contains(t, rr.Body.String(), `"error"`)
		require.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
	}
}

func TestCallerFrom_Missing(t *testing.T) {
	t.Parallel()

	_, ok := CallerFrom(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	require.False(t, ok)
}
