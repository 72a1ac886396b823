// Package auth issues and verifies the access tokens the HTTP layer trusts
// for tenant and role identity.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	uservo "github.com/heliox-inc/heliox/internal/domain/user/valueobjects"
	"github.com/heliox-inc/heliox/internal/shared/config"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims carries the identity the middleware projects into the request
// context: user, tenant, and role.
type Claims struct {
	UserID    uint   `json:"uid"`
	CompanyID uint   `json:"cid"`
	Role      string `json:"role"`
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret     []byte
	accessExp  time.Duration
	refreshExp time.Duration
}

func NewJWTService(cfg config.JWTConfig) *JWTService {
	return &JWTService{
		secret:     []byte(cfg.Secret),
		accessExp:  time.Duration(cfg.AccessExpMinutes) * time.Minute,
		refreshExp: time.Duration(cfg.RefreshExpDays) * 24 * time.Hour,
	}
}

func (s *JWTService) GenerateAccessToken(userID, companyID uint, role uservo.Role) (string, error) {
	return s.generate(userID, companyID, role, TokenTypeAccess, s.accessExp)
}

func (s *JWTService) GenerateRefreshToken(userID, companyID uint, role uservo.Role) (string, error) {
	return s.generate(userID, companyID, role, TokenTypeRefresh, s.refreshExp)
}

func (s *JWTService) generate(userID, companyID uint, role uservo.Role, tokenType string, exp time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:    userID,
		CompanyID: companyID,
		Role:      role.String(),
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(exp)),
			Subject:   fmt.Sprintf("%d", userID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
