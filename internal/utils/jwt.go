package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/todo-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// BearerPrefix is the mandatory, case-sensitive scheme prefix of the
// "Authorization" header value.
const BearerPrefix = "Bearer "

var (
	// ErrInvalidJWTParams is returned by GenerateJWTToken when one of its
	// parameters is empty or zero.
	ErrInvalidJWTParams = errors.New("invalid params for generating JWT Token")

	// ErrEmptySubject is returned by ValidateAndParseJWTToken when the token
	// verifies but carries no "sub" claim.
	ErrEmptySubject = errors.New("empty subject error")

	// ErrNoBearerPrefix is returned by ParseBearerToken when the header value
	// does not start with [BearerPrefix].
	ErrNoBearerPrefix = errors.New("authorization header has no bearer prefix")
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token with the given parameters.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// All parameters are required. Returns [ErrInvalidJWTParams] if any of them
// are empty or zero.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("my-service", "0190c0de-...", time.Hour, "secret")
func GenerateJWTToken(issuer, userID string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || userID == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, ErrInvalidJWTParams
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, UserID: userID}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signing method check (HS256 only)
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim presence and check
//
// A token that passes validation but has an empty subject yields
// [ErrEmptySubject]. Every other failure is returned wrapped and carries
// the reason reported by the jwt library.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	userID, err := token.Claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if userID == "" {
		return models.Token{}, ErrEmptySubject
	}

	return models.Token{Token: token, SignedString: tokenString, UserID: userID}, nil
}

// ParseBearerToken strips the case-sensitive [BearerPrefix] from an
// "Authorization" header value. Whatever follows the prefix is returned
// untouched, even an empty string, and is left to token validation.
func ParseBearerToken(authorizationHeader string) (string, error) {
	token, found := strings.CutPrefix(authorizationHeader, BearerPrefix)
	if !found {
		return "", ErrNoBearerPrefix
	}
	return token, nil
}
