package token

import (
	"errors"
	"time"

	"shoppos/internal/domain/model"

	"github.com/golang-jwt/jwt/v4"
)

// Claimのキー（middleware.AuthJWTと揃える）
const (
	ClaimSubject      = "sub"
	ClaimName         = "name"
	ClaimRole         = "role"
	ClaimShopID       = "shop_id"
	ClaimTokenVersion = "tv"
)

type JWTIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

func NewJWTIssuer(secret string, accessTTL time.Duration) *JWTIssuer {
	return &JWTIssuer{secret: []byte(secret), accessTTL: accessTTL}
}

// HS256でアクセストークンを発行
func (i *JWTIssuer) Issue(user model.User, now time.Time) (string, time.Time, error) {
	if user.ShopID == nil || *user.ShopID == "" {
		return "", time.Time{}, errors.New("user has no shop")
	}
	expiresAt := now.Add(i.accessTTL)

	claims := jwt.MapClaims{
		ClaimSubject:      user.ID,
		ClaimName:         user.Name,
		ClaimRole:         string(user.Role),
		ClaimShopID:       *user.ShopID,
		ClaimTokenVersion: user.TokenVersion,
		"iat":             now.Unix(),
		"exp":             expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}
