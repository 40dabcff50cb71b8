package models

import "github.com/golang-jwt/jwt/v5"

// Token bundles a parsed JWT with its signed string form.
type Token struct {
	Token        *jwt.Token
	SignedString string
	UserID       int64
}
