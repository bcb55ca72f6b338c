package utils

import (
	"encoding/base64"
	"encoding/json"

	"github.com/golang-jwt/jwt"
)

// DecodeUserInfo decodes the base64url JSON claims the API gateway forwards
// after validating the caller's token.
func DecodeUserInfo(encoded string) (jwt.MapClaims, error) {
	payload, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, err
	}

	claims := jwt.MapClaims{}
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, err
	}

	return claims, nil
}

// EncodeUserInfo is the inverse of DecodeUserInfo, used by tests and local tooling.
func EncodeUserInfo(claims jwt.MapClaims) (string, error) {
	payload, err := json.Marshal(claims)
	if err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(payload), nil
}
