package token

import (
	"errors"
	"fmt"
	"time"

	db "github.com/pranav244872/jobboard/db/sqlc"

	// The official Go JWT library for working with JSON Web Tokens.
	"github.com/golang-jwt/jwt/v5"
)

const minSecretKeySize = 32

var (
	ErrInvalidToken = errors.New("token is invalid")
	ErrExpiredToken = errors.New("token has expired")
)

// Payload is the identity carried by a verified token.
type Payload struct {
	UserID    int64       `json:"user_id"`
	Role      db.UserRole `json:"role"`
	ExpiresAt time.Time   `json:"expires_at"`
}

// JWTMaker is a struct that handles creation and verification of JWT tokens.
type JWTMaker struct {
	secretKey string // A secret key used to sign and verify JWTs.
}

// NewJWTMaker creates a new JWTMaker with the provided secret key.
// The key must be at least 32 characters long to ensure strong encryption.
func NewJWTMaker(secretKey string) (*JWTMaker, error) {
	if len(secretKey) < minSecretKeySize {
		return nil, fmt.Errorf("invalid key size: must be at least %d characters", minSecretKeySize)
	}
	return &JWTMaker{secretKey}, nil
}

// CreateToken generates a JWT token for a specific user.
// The service itself never logs anyone in; tokens are minted by the
// account service or by operators through the CLI.
func (maker *JWTMaker) CreateToken(userID int64, role db.UserRole, duration time.Duration) (string, error) {
	now := time.Now()
	payload := jwt.MapClaims{
		"user_id": userID,                   // Custom claim: the user's ID
		"role":    string(role),             // Custom claim: the user's role
		"exp":     now.Add(duration).Unix(), // Standard claim: expiration time
		"iat":     now.Unix(),               // Standard claim: issued at time
	}

	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)
	return jwtToken.SignedString([]byte(maker.secretKey))
}

// VerifyToken checks if the given JWT token is valid and not expired.
// If valid, it returns the identity stored inside the token.
func (maker *JWTMaker) VerifyToken(tokenString string) (*Payload, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Only HMAC (HS256) tokens signed with our key are accepted.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(maker.secretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return payloadFromClaims(claims)
}

// payloadFromClaims converts the raw claims into a Payload.
// JSON numbers decode as float64, so the user ID needs a cast.
func payloadFromClaims(claims jwt.MapClaims) (*Payload, error) {
	userID, ok := claims["user_id"].(float64)
	if !ok || userID <= 0 {
		return nil, fmt.Errorf("%w: missing user_id claim", ErrInvalidToken)
	}

	role, _ := claims["role"].(string)
	if !db.UserRole(role).Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidToken, role)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, fmt.Errorf("%w: missing exp claim", ErrInvalidToken)
	}

	return &Payload{
		UserID:    int64(userID),
		Role:      db.UserRole(role),
		ExpiresAt: exp.Time,
	}, nil
}
