package cache

import (
	"context"

	"github.com/jhoicas/SmartOps-api/internal/domain/entity"
)

// Nop es la caché vacía que se usa cuando no hay Redis configurado.
// Cada petición resuelve la identidad contra el repositorio.
type Nop struct{}

func (Nop) Get(context.Context, int64) (*entity.Principal, error) { return nil, nil }
func (Nop) Set(context.Context, entity.Principal) error           { return nil }
func (Nop) Delete(context.Context, int64) error                   { return nil }
