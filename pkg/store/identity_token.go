package store

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"techstore/pkg/domain"
)

// ErrInvalidIdentityRecord indicates a persisted identity that failed
// signature or shape checks and must be discarded.
var ErrInvalidIdentityRecord = errors.New("invalid identity record")

type identityClaims struct {
	Email string          `json:"email"`
	Name  string          `json:"name"`
	Role  domain.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// IdentityCodec signs and verifies the persisted identity record
// (HMAC-SHA256 JWT). Signing means a tampered record restores to
// logged-out instead of being trusted verbatim.
type IdentityCodec struct {
	secret []byte
}

// NewIdentityCodec builds a codec from a shared secret.
func NewIdentityCodec(secret string) *IdentityCodec {
	return &IdentityCodec{secret: []byte(secret)}
}

// Encode produces the signed record for a signed-in user.
func (c *IdentityCodec) Encode(u domain.User) (string, error) {
	claims := identityClaims{
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  u.ID,
			IssuedAt: jwt.NewNumericDate(time.Now().UTC()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Decode verifies a persisted record and returns the identity it carries.
func (c *IdentityCodec) Decode(record string) (domain.User, error) {
	claims := &identityClaims{}
	token, err := jwt.ParseWithClaims(record, claims, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return domain.User{}, ErrInvalidIdentityRecord
	}
	if claims.Subject == "" || claims.Email == "" {
		return domain.User{}, ErrInvalidIdentityRecord
	}
	role := claims.Role
	if role != domain.RoleAdmin {
		role = domain.RoleUser
	}
	return domain.User{
		ID:    claims.Subject,
		Email: claims.Email,
		Name:  claims.Name,
		Role:  role,
	}, nil
}
