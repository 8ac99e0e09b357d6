package ports

import (
	"context"

	"github.com/jhoicas/SmartOps-api/internal/domain/entity"
)

// PasswordHasher hashea y verifica contraseñas. En producción es bcrypt con cost 12.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(hash, plain string) bool
}

// PrincipalCache guarda la identidad resuelta de un usuario por un tiempo acotado.
// Get devuelve (nil, nil) si no hay entrada. Los errores de la caché no deben
// impedir la resolución contra el repositorio.
type PrincipalCache interface {
	Get(ctx context.Context, userID int64) (*entity.Principal, error)
	Set(ctx context.Context, p entity.Principal) error
	Delete(ctx context.Context, userID int64) error
}
