package mockapi

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"femee-arena-client/internal/model"
)

// tokenTTL is the bearer token lifetime issued by the mock backend.
const tokenTTL = time.Hour

// Claims are the JWT claims carried by mock bearer tokens.
type Claims struct {
	UserID      int64             `json:"user_id"`
	Email       string            `json:"email"`
	Nome        string            `json:"nome"`
	TipoUsuario model.TipoUsuario `json:"tipo_usuario"`
	jwt.RegisteredClaims
}

func newToken(secret string, u user) (string, time.Time, error) {
	now := time.Now().UTC()
	expires := now.Add(tokenTTL)
	claims := Claims{
		UserID:      u.ID,
		Email:       u.Email,
		Nome:        u.Nome,
		TipoUsuario: u.TipoUsuario,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.Email,
			Issuer:    "femee-mockapi",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	return signed, expires, err
}

func parseToken(secret, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
