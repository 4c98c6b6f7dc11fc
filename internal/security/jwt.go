package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"jobzee/internal/common"
	"jobzee/internal/domain/account"
)

// TokenProvider issues and verifies the signed session credential asserting
// (account id, email, role). The signing secret is required at construction;
// there is deliberately no fallback value.
type TokenProvider struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenProvider(secret string, ttl time.Duration) *TokenProvider {
	if secret == "" {
		panic("security: token secret must not be empty")
	}
	return &TokenProvider{secret: []byte(secret), ttl: ttl}
}

type Claims struct {
	AccountID string       `json:"account_id"`
	Email     string       `json:"email"`
	Role      account.Role `json:"role"`
	jwt.RegisteredClaims
}

func (p *TokenProvider) Generate(accountID common.UUID, email string, role account.Role) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(p.ttl)
	claims := Claims{
		AccountID: accountID.String(),
		Email:     email,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(p.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Parse returns the decoded claims, or an error on any signature or expiry
// failure. Callers treat every failure uniformly as an authentication failure.
func (p *TokenProvider) Parse(tokenString string) (*Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return p.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return &claims, nil
}
