package server

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	pkgerrors "github.com/orgball2608/insta-shop-sync/pkg/errors"
)

const stateTTL = 15 * time.Minute

type stateClaims struct {
	Shop string `json:"shop"`
	jwt.RegisteredClaims
}

// signState binds the OAuth round trip to a shop.
func signState(shop, secret string, now time.Time) (string, error) {
	claims := stateClaims{
		Shop: shop,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(stateTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func verifyState(state, secret string, now time.Time) (string, error) {
	if state == "" {
		return "", pkgerrors.InvalidArgument("state is required")
	}

	claims := &stateClaims{}
	_, err := jwt.ParseWithClaims(state, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithTimeFunc(func() time.Time { return now }))
	if err != nil {
		return "", pkgerrors.WrapWithCode(err, pkgerrors.CodeInvalidArgument, "invalid state")
	}
	if claims.ExpiresAt == nil {
		return "", pkgerrors.InvalidArgument("state carries no expiry")
	}
	if claims.Shop == "" {
		return "", pkgerrors.InvalidArgument("state carries no shop")
	}
	return claims.Shop, nil
}
