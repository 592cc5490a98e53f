package ports

import "context"

type SessionService interface {
	Logout(ctx context.Context, employeeID int64) error
	ReassignBike(ctx context.Context, employeeID int64, bikeID string) error
}
