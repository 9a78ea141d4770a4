package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Campus-api/internal/domain/entity"
)

// UserRepository define el puerto del almacén de credenciales. Toda operación recibe el
// esquema dueño: nunca se consulta un principal fuera de su espacio de nombres.
type UserRepository interface {
	Create(ctx context.Context, schema string, user *entity.User) error
	GetByID(ctx context.Context, schema, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, schema, email string) (*entity.User, error)
	GetByRegistrationNumber(ctx context.Context, schema, registrationNumber string) (*entity.User, error)
	GetDefaultAdmin(ctx context.Context, schema string) (*entity.User, error)
	// CountWithPrefix cuenta números de registro que empiezan con prefix + "-".
	CountWithPrefix(ctx context.Context, schema, prefix string) (int, error)
	Count(ctx context.Context, schema string) (int, error)
	// CountJoinedByMonth principales creados desde since, por mes UTC ("2006-01").
	CountJoinedByMonth(ctx context.Context, schema string, since time.Time) (map[string]int, error)
	// UpdatePassword reemplaza el hash y cierra el primer login pendiente.
	UpdatePassword(ctx context.Context, schema, id, passwordHash string) error
	// ConsumeBootstrap apaga bootstrap_pending si seguía activo y no vencido en now.
	// Devuelve false si otro login ya lo consumió.
	ConsumeBootstrap(ctx context.Context, schema, id string, now time.Time) (bool, error)
}
