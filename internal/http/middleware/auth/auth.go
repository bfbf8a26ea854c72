// Package auth resolves the caller identity from a bearer JWT.
package auth

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"agrimarket-delivery/internal/domain"
	"agrimarket-delivery/internal/logx"
)

// ErrNoSecret is returned when the middleware is built without a signing secret.
var ErrNoSecret = errors.New("auth: JWT secret is empty")

// Claims are the JWT claims issued by the marketplace.
// The user id is read from user_id, falling back to the subject.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"user_id,omitempty"`
	Role   string `json:"role,omitempty"`
}

// Authenticator validates HS256 tokens signed with a shared secret.
type Authenticator struct {
	secret []byte
	issuer string
	logger logx.Logger
}

func NewAuthenticator(secret, issuer string, logger logx.Logger) (*Authenticator, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrNoSecret
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Authenticator{secret: []byte(secret), issuer: issuer, logger: logger}, nil
}

// Parse validates tokenStr and returns the caller it identifies.
func (a *Authenticator) Parse(tokenStr string) (domain.Caller, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if a.issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.issuer))
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, opts...)
	if err != nil {
		return domain.Caller{}, err
	}
	if !token.Valid {
		return domain.Caller{}, errors.New("invalid token")
	}

	userID := claims.UserID
	if userID == 0 && claims.Subject != "" {
		userID, err = strconv.ParseInt(claims.Subject, 10, 64)
		if err != nil {
			return domain.Caller{}, errors.New("token subject is not a user id")
		}
	}
	if userID <= 0 {
		return domain.Caller{}, errors.New("token carries no user id")
	}
	return domain.Caller{UserID: userID, Role: domain.Role(claims.Role)}, nil
}

// Handler returns chi-style middleware that rejects requests without a valid bearer token.
func (a *Authenticator) Handler() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			scheme, tokenStr, ok := strings.Cut(header, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(tokenStr) == "" {
				a.reject(w, r, "missing or invalid Authorization header")
				return
			}

			caller, err := a.Parse(strings.TrimSpace(tokenStr))
			if err != nil {
				a.logger.Debug("token rejected",
					logx.String("path", r.URL.Path),
					logx.Err(err))
				a.reject(w, r, "invalid or expired token")
				return
			}
			next.ServeHTTP(w, r.WithContext(WithCaller(r.Context(), caller)))
		})
	}
}

func (a *Authenticator) reject(w http.ResponseWriter, r *http.Request, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.WriteHeader(http.StatusUnauthorized)
	if _, err := io.WriteString(w, `{"error":"`+msg+`"}`); err != nil {
		a.logger.Debug("auth response write failed",
			logx.String("path", r.URL.Path),
			logx.Err(err))
	}
}

type callerKey struct{}

// WithCaller stores the caller in ctx.
func WithCaller(ctx context.Context, c domain.Caller) context.Context {
	return context.WithValue(ctx, callerKey{}, c)
}

// CallerFrom returns the caller stored by the middleware.
func CallerFrom(ctx context.Context) (domain.Caller, bool) {
	c, ok := ctx.Value(callerKey{}).(domain.Caller)
	return c, ok
}
