package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"courtside/config"

	"github.com/golang-jwt/jwt"
)

// AuthCachePrefix namespaces cached token hashes in the auth Redis DB.
const AuthCachePrefix = "auth:"

func secretKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = "courtside-dev"
	}
	return []byte(secret)
}

// GenerateToken creates a signed JWT token carrying the user id and role.
// The token expires after the specified duration.
func GenerateToken(userID, role string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// HashToken computes a SHA-256 hash of the token string.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// ExtractClaimsFromToken validates a token and returns the user id and role claims.
func ExtractClaimsFromToken(tokenString string) (string, string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
	if err != nil || !token.Valid {
		return "", "", errors.New("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", errors.New("invalid token claims")
	}
	userID, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	if userID == "" {
		return "", "", errors.New("token missing subject")
	}
	return userID, role, nil
}
