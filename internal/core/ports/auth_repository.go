package ports

import (
	"context"

	"github.com/bikeworks/assembly-tracker/internal/core/domain"
)

// AuthRepository defines the persistence operations behind login.
type AuthRepository interface {
	// FindByUsername returns domain.ErrEmployeeNotFound when no row matches.
	FindByUsername(ctx context.Context, username string) (*domain.Employee, error)
	// OpenSession stores the token on the employee and inserts a new active
	// assembly record in a single transaction. It returns
	// domain.ErrSessionAlreadyOpen if the employee already has an open record.
	OpenSession(ctx context.Context, employee *domain.Employee, token, bikeID string) (*domain.AssemblyRecord, error)
}
