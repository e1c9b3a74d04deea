package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TicketClaims sont les claims du jeton court-vécu utilisé par le handshake WebSocket.
// Le client ne peut pas poser de header Authorization sur une connexion WS,
// il échange donc son apiToken contre ce ticket passé en query string.
type TicketClaims struct {
	UserID uint     `json:"userId"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}

// GenerateTicket signe un ticket HS256 valable ttl.
func GenerateTicket(userID uint, roles []string, secret string, ttl time.Duration) (string, error) {
	claims := &TicketClaims{
		UserID: userID,
		Roles:  roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseTicket vérifie la signature et l'expiration du ticket.
func ParseTicket(tokenStr, secret string) (*TicketClaims, error) {
	claims := &TicketClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
