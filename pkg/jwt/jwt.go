package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims mirror the identity a session carries: user id, username and the
// password hash the token was issued against.
type Claims struct {
	UserID       string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"password"`
	jwt.RegisteredClaims
}

type Service struct {
	secretKey  []byte
	expiration time.Duration
}

// NewService builds an HS256 token service. A zero expiration issues
// tokens without an exp claim.
func NewService(secretKey string, expiration time.Duration) *Service {
	return &Service{
		secretKey:  []byte(secretKey),
		expiration: expiration,
	}
}

func (s *Service) GenerateToken(userID, username, passwordHash string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:       userID,
		Username:     username,
		PasswordHash: passwordHash,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if s.expiration > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.expiration))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
