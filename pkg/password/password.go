// Package password hashea y verifica contraseñas con bcrypt.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Cost factor de trabajo usado en producción.
const Cost = 12

// Hasher hashea con un cost fijo. Los tests usan bcrypt.MinCost.
type Hasher struct {
	cost int
}

// New construye un Hasher con el cost de producción.
func New() *Hasher {
	return &Hasher{cost: Cost}
}

// NewWithCost construye un Hasher con un cost explícito.
func NewWithCost(cost int) *Hasher {
	return &Hasher{cost: cost}
}

// Hash devuelve el hash salado de plain.
func (h *Hasher) Hash(plain string) (string, error) {
	if plain == "" {
		return "", errors.New("password vacío")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify compara plain con el hash almacenado.
func (h *Hasher) Verify(hash, plain string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
