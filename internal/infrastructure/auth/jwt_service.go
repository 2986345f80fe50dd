package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Devdynamow/Ecommerce-backend-New/domain"
)

// JWTServiceImpl implements domain.TokenService
type JWTServiceImpl struct {
	secretKey []byte
	issuer    string
	tokenTTL  time.Duration
}

// NewJWTService creates a new JWT service
func NewJWTService(secretKey, issuer string, ttl time.Duration) domain.TokenService {
	return &JWTServiceImpl{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		tokenTTL:  ttl,
	}
}

// generateJTI creates a unique JWT ID
func (j *JWTServiceImpl) generateJTI() string {
	bytes := make([]byte, 16)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

// Issue implements domain.TokenService
func (j *JWTServiceImpl) Issue(userID string, isAdmin, isSeller bool, subjectID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":   userID,
		"is_admin":  isAdmin,
		"is_seller": isSeller,
		"sub":       subjectID,
		"iss":       j.issuer,
		"iat":       now.Unix(),
		"exp":       now.Add(j.tokenTTL).Unix(),
		"jti":       j.generateJTI(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// Validate implements domain.TokenService
func (j *JWTServiceImpl) Validate(tokenString string) (*domain.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrTokenMalformed
		}
		return j.secretKey, nil
	})

	if err != nil || !token.Valid {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}
	if time.Unix(int64(exp), 0).Before(time.Now()) {
		return nil, domain.ErrTokenExpired
	}

	iat, _ := claims["iat"].(float64)
	isAdmin, _ := claims["is_admin"].(bool)
	isSeller, _ := claims["is_seller"].(bool)
	subjectID, _ := claims["sub"].(string)

	return &domain.TokenClaims{
		UserID:    userID,
		IsAdmin:   isAdmin,
		IsSeller:  isSeller,
		SubjectID: subjectID,
		IssuedAt:  int64(iat),
		ExpiresAt: int64(exp),
	}, nil
}
