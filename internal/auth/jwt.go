package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the identity asserted by an access token. The subject
// is the account id in decimal; VerifyAccessToken parses it once so
// nothing downstream re-interprets the string.
type Claims struct {
	Rol string `json:"rol"`
	jwt.RegisteredClaims
}

type Manager struct {
	secret    []byte
	accessTTL time.Duration
}

func NewManager(secret string, accessTTL time.Duration) *Manager {
	return &Manager{
		secret:    []byte(secret),
		accessTTL: accessTTL,
	}
}

// GenerateAccessToken issues an HS256 token whose subject is the
// account identifier. Expiry is fixed at issue time; there is no
// refresh flow, expired callers log in again.
func (m *Manager) GenerateAccessToken(userID int64, rol string) (string, error) {
	now := time.Now().UTC()

	claims := Claims{
		Rol: rol,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
			Subject:   strconv.FormatInt(userID, 10),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// VerifyAccessToken parses and validates a token and returns the
// account id from its subject claim.
func (m *Manager) VerifyAccessToken(tokenStr string) (int64, *Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		// Enforce HS256
		_, ok := t.Method.(*jwt.SigningMethodHMAC)

		if !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})

	if err != nil {
		return 0, nil, err
	}

	claims, ok := token.Claims.(*Claims)

	if !ok || !token.Valid {
		return 0, nil, errors.New("invalid token")
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)

	if err != nil {
		return 0, nil, errors.New("invalid subject claim")
	}

	return userID, claims, nil
}
