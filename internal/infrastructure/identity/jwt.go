package identity

import (
	"context"
	"errors"
	"time"

	"coatingshop/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// HSProvider signs and verifies HS256 access tokens carrying the caller's
// identity. Tokens come from the identity provider in production and from
// cmd/issue-token locally.
type HSProvider struct {
	secret   []byte
	issuer   string
	audience string
	now      func() time.Time
}

func NewHSProvider(secret, issuer, audience string) *HSProvider {
	return &HSProvider{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		now:      time.Now,
	}
}

type customClaims struct {
	Role          string `json:"role"`
	Email         string `json:"email,omitempty"`
	EmailVerified bool   `json:"email_verified"`
	jwt.RegisteredClaims
}

func (p *HSProvider) Sign(_ context.Context, actor usecase.Actor, ttl time.Duration) (string, time.Time, error) {
	now := p.now()
	exp := now.Add(ttl)

	role := actor.Role
	if role == "" {
		role = usecase.RoleCustomer
	}
	claims := customClaims{
		Role:          role,
		Email:         actor.Email,
		EmailVerified: actor.EmailVerified,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    p.issuer,
			Subject:   actor.UserID,
			Audience:  []string{p.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(p.secret)
	return signed, exp, err
}

func (p *HSProvider) Verify(_ context.Context, token string) (usecase.Actor, error) {
	parsed, err := jwt.ParseWithClaims(token, &customClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return p.secret, nil
	},
		jwt.WithAudience(p.audience),
		jwt.WithIssuer(p.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(p.now),
	)
	if err != nil {
		return usecase.Actor{}, errors.Join(ErrInvalidToken, err)
	}
	cc, ok := parsed.Claims.(*customClaims)
	if !ok || !parsed.Valid || cc.Subject == "" {
		return usecase.Actor{}, ErrInvalidToken
	}
	return usecase.Actor{
		UserID:        cc.Subject,
		Role:          cc.Role,
		Email:         cc.Email,
		EmailVerified: cc.EmailVerified,
	}, nil
}
