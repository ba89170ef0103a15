package models

import "github.com/golang-jwt/jwt/v5"

// UserClaims carries the authenticated identity through the request. The
// ledger core only ever reads the opaque UserID.
type UserClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}
