package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nikahlink/backend/internal/types"
)

const tokenLifetime = 24 * time.Hour

// SessionService issues and verifies the HMAC-signed session tokens
// that gate access to profile data. It holds no state beyond the
// secret and is safe for concurrent use.
type SessionService struct {
	jwtSecret string
}

var _ ISessionService = (*SessionService)(nil)

func NewSessionService(jwtSecret string) *SessionService {
	return &SessionService{jwtSecret: jwtSecret}
}

// IssueToken signs a session token for the given identity.
func (s *SessionService) IssueToken(email, role string) (string, error) {
	now := time.Now()
	claims := &types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
		},
		Email: email,
		Role:  role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken verifies signature and expiry and returns the decoded
// identity. Expired tokens map to ErrTokenExpired, everything else
// that fails verification to ErrInvalidToken.
func (s *SessionService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	claims := &types.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	if !token.Valid || claims.Email == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
