package ports

import (
	"context"

	"github.com/bikeworks/assembly-tracker/internal/core/domain"
)

// SessionRepository handles the assembly record lifecycle after login.
type SessionRepository interface {
	// FindOpenSession returns the most recent open record for the employee,
	// or domain.ErrSessionNotFound.
	FindOpenSession(ctx context.Context, employeeID int64) (*domain.AssemblyRecord, error)
	// CloseSession stamps the logout time in one statement and returns the
	// logged duration in seconds when it was computed.
	CloseSession(ctx context.Context, recordID int64) (*int64, error)
	// ReassignBike updates every active record of the employee and returns the
	// number of rows touched.
	ReassignBike(ctx context.Context, employeeID int64, bikeID string) (int64, error)
}
