package domain

import (
	"github.com/golang-jwt/jwt"
	"github.com/x-xyz/goauction/base/ctx"
)

// JwtCustomClaims carries the lowercased caller address
type JwtCustomClaims struct {
	Address string `json:"data"` // name data for backward compatibility
	jwt.StandardClaims
}

type AuthUsecase interface {
	SignToken(ctx ctx.Ctx, address Address) (string, error)
	// ParseToken returns ErrUnauthorized for tokens it did not sign or that expired
	ParseToken(ctx ctx.Ctx, token string) (Address, error)
}
