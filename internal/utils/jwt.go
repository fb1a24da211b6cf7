package utils

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/white/fluxx-sales/config"
	"github.com/white/fluxx-sales/internal/models"
)

var ErrNoSigningKey = errors.New("jwt: configure a shared secret or an RSA key pair")

// JWTService handles JWT token generation and validation. It signs with RS256
// when a key pair is configured and falls back to HS256 with a shared secret.
type JWTService struct {
	method    jwt.SigningMethod
	signKey   interface{}
	verifyKey interface{}
	kid       string
	expiry    time.Duration
	issuer    string
	now       func() time.Time
}

// AccessTokenClaims represents the claims in an access token
type AccessTokenClaims struct {
	UserID      string `json:"sub"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	Department  string `json:"department"`
	ReferenceID string `json:"referenceid"`
	jwt.RegisteredClaims
}

// NewJWTService creates a new JWT service
func NewJWTService(cfg config.JWTConfig) (*JWTService, error) {
	s := &JWTService{
		expiry: time.Duration(cfg.AccessTokenExpiry) * time.Minute,
		issuer: cfg.Issuer,
		now:    time.Now,
	}
	if s.expiry <= 0 {
		s.expiry = 8 * time.Hour
	}

	switch {
	case cfg.PrivateKeyPath != "" && cfg.PublicKeyPath != "":
		privateKey, publicKey, err := loadRSAKeys(cfg.PrivateKeyPath, cfg.PublicKeyPath)
		if err != nil {
			return nil, err
		}
		s.method, s.signKey, s.verifyKey = jwt.SigningMethodRS256, privateKey, publicKey
		s.kid = keyID(publicKey)
	case cfg.SharedSecret != "":
		secret := []byte(cfg.SharedSecret)
		s.method, s.signKey, s.verifyKey = jwt.SigningMethodHS256, secret, secret
	default:
		return nil, ErrNoSigningKey
	}
	return s, nil
}

func loadRSAKeys(privatePath, publicPath string) (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKeyData, err := os.ReadFile(privatePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read private key: %w", err)
	}
	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM(privateKeyData)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	publicKeyData, err := os.ReadFile(publicPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read public key: %w", err)
	}
	publicKey, err := jwt.ParseRSAPublicKeyFromPEM(publicKeyData)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse public key: %w", err)
	}
	return privateKey, publicKey, nil
}

// Expiry is the lifetime of issued access tokens.
func (s *JWTService) Expiry() time.Duration { return s.expiry }

// GenerateAccessToken signs an access token for user.
func (s *JWTService) GenerateAccessToken(user *models.User) (string, error) {
	now := s.now()
	claims := AccessTokenClaims{
		UserID:      user.ID.Hex(),
		Email:       user.Email,
		Name:        user.FullName(),
		Role:        user.Role,
		Department:  user.Department,
		ReferenceID: user.ReferenceID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			Issuer:    s.issuer,
		},
	}

	token := jwt.NewWithClaims(s.method, claims)
	if s.kid != "" {
		token.Header["kid"] = s.kid
	}
	return token.SignedString(s.signKey)
}

// ValidateAccessToken validates an access token and returns the claims
func (s *JWTService) ValidateAccessToken(tokenString string) (*AccessTokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AccessTokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != s.method.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.verifyKey, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AccessTokenClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}
