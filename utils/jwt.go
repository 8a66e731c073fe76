package utils

import (
	"errors"
	"time"

	"tourdesk/config"

	"github.com/golang-jwt/jwt"
)

// devSecret signs tokens in development only; production refuses to start without JWT_SECRET.
const devSecret = "tourdesk-dev-secret"

// SessionClaims is what the access_token cookie carries.
type SessionClaims struct {
	UserID string
	Role   string
}

func secretKey() []byte {
	if config.AppConfig.JWTSecret != "" {
		return []byte(config.AppConfig.JWTSecret)
	}
	return []byte(devSecret)
}

// GenerateToken creates a signed JWT for the given user and role.
// The token expires after the specified duration.
func GenerateToken(userID, role string, duration time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"iat":     now.Unix(),
		"exp":     now.Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// ParseSessionToken validates the token and extracts user_id and role.
func ParseSessionToken(tokenString string) (*SessionClaims, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	userID, _ := claims["user_id"].(string)
	role, _ := claims["role"].(string)
	if userID == "" || role == "" {
		return nil, errors.New("token does not carry a user and role")
	}
	return &SessionClaims{UserID: userID, Role: role}, nil
}
