package domain

import "github.com/golang-jwt/jwt/v5"

// Claims do token de acesso às rotas de escrita do agregador
type Claims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}
