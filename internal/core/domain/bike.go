package domain

import "time"

// Bike is a unit on the assembly line. Read-only from this service.
type Bike struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Model     string    `json:"model"`
	CreatedAt time.Time `json:"created_at"`
}
