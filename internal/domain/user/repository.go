package user

import (
	"context"
)

type UserRepository interface {
	// Create returns ErrCPFExists, ErrEmailExists or ErrRegistrationNumberExists
	// when the matching unique constraint rejects the row.
	Create(ctx context.Context, newUser User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByCPF(ctx context.Context, cpf string) (User, error)
}
