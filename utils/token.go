package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

// TokenVerifier checks access tokens issued by the auth provider. The
// provider signs them HS256 with the shared project signing key, so they can
// be verified locally without a round trip.
type TokenVerifier struct {
	config *Config
}

func NewTokenVerifier(config *Config) *TokenVerifier {
	return &TokenVerifier{config: config}
}

type viewerClaims struct {
	jwt.StandardClaims
	Email    string                 `json:"email"`
	Metadata map[string]interface{} `json:"user_metadata"`
}

// Viewer is the authenticated user identity carried through a request.
type Viewer struct {
	UserID   uuid.UUID              `json:"user_id"`
	Email    string                 `json:"email"`
	Metadata map[string]interface{} `json:"user_metadata"`
}

func (t *TokenVerifier) VerifyToken(tokenString string) (Viewer, error) {
	token, err := jwt.ParseWithClaims(tokenString, &viewerClaims{}, func(tk *jwt.Token) (interface{}, error) {
		if _, ok := tk.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("invalid authentication token, format error")
		}
		return []byte(t.config.SigningKey), nil
	})

	if err != nil {
		return Viewer{}, fmt.Errorf("invalid authentication token, %v", err.Error())
	}

	claims, ok := token.Claims.(*viewerClaims)
	if !ok {
		return Viewer{}, fmt.Errorf("invalid authentication token, token is not OK")
	}

	if claims.ExpiresAt != 0 && claims.ExpiresAt < time.Now().Unix() {
		return Viewer{}, fmt.Errorf("token is expired")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Viewer{}, fmt.Errorf("invalid authentication token, bad subject")
	}

	return Viewer{
		UserID:   userID,
		Email:    claims.Email,
		Metadata: claims.Metadata,
	}, nil
}

// MetadataString pulls a string field out of the provider's free-form user
// metadata, falling back to empty when absent or not a string.
func (v Viewer) MetadataString(key string) string {
	if v.Metadata == nil {
		return ""
	}
	s, _ := v.Metadata[key].(string)
	return s
}
