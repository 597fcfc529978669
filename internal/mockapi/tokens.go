package mockapi

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"bookcalendar/internal/domain"
)

// TokenService issues and validates the HS256 access/refresh pairs the
// mock backend hands out at login.
type TokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	issuer     string
}

// Claims carried by a mock access token.
type Claims struct {
	NickName  string `json:"nickName"`
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

var ErrTokenInvalid = errors.New("token invalid")

func NewTokenService(secret string, accessTTL, refreshTTL time.Duration) *TokenService {
	if accessTTL <= 0 {
		accessTTL = 30 * time.Minute
	}
	if refreshTTL <= 0 {
		refreshTTL = 30 * 24 * time.Hour
	}
	return &TokenService{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		issuer:     "bookcalendar-mock",
	}
}

// GeneratePair signs a fresh access/refresh pair for nickName.
func (s *TokenService) GeneratePair(nickName string) (domain.TokenPair, error) {
	access, err := s.sign(nickName, s.accessTTL, "access")
	if err != nil {
		return domain.TokenPair{}, err
	}
	refresh, err := s.sign(nickName, s.refreshTTL, "refresh")
	if err != nil {
		return domain.TokenPair{}, err
	}
	return domain.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *TokenService) sign(nickName string, ttl time.Duration, typ string) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		NickName:  nickName,
		TokenType: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.issuer,
			Subject:   nickName,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ParseAccess validates an access token and returns its claims.
func (s *TokenService) ParseAccess(tokenStr string) (Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid || claims.TokenType != "access" {
		return Claims{}, ErrTokenInvalid
	}
	return claims, nil
}
