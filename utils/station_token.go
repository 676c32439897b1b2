package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Station tokens are issued by the attendance/auth service; this side only
// signs them for development and verifies them on requests. Claims carry the
// physical station plus the staff member's display name (the string used for
// closed_by / opened_by attribution).

var jwtSecret []byte

func init() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		// Development fallback, matches .env.example
		secret = "StationSecretKey2024"
	}
	jwtSecret = []byte(secret)
}

type StationClaims struct {
	Station string `json:"station"`
	Staff   string `json:"staff"`
	jwt.RegisteredClaims
}

func GenerateStationToken(station, staff string) (string, error) {
	claims := &StationClaims{
		Station: station,
		Staff:   staff,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 24)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "BurgerStationApp",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

func ParseStationToken(tokenString string) (*StationClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &StationClaims{}, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(*StationClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
