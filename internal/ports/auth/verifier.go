package auth

import "context"

// AuthVerifier valida un bearer token y devuelve la identidad que trae.
// Implementaciones: adapters/auth/jwtauth (HS256 local) y adapters/auth/odin (IAM remoto).
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
