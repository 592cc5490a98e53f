package ports

import "context"

// LoginInput carries the credentials and the bike selected at the station.
type LoginInput struct {
	Username     string
	Password     string
	SelectedBike string
}

type AuthService interface {
	Login(ctx context.Context, input LoginInput) (string, error)
}

// LoginThrottle limits repeated failed logins per username.
type LoginThrottle interface {
	Blocked(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}
