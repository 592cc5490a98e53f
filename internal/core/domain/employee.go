package domain

// RoleEmployee is the only role whose sessions accrue logged duration.
const RoleEmployee = "employee"

// Employee models an operator on the assembly floor. Rows are created out-of-band;
// this service only rewrites Token on login.
type Employee struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
	Token        string `json:"token,omitempty"`
}
