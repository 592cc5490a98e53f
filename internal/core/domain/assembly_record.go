package domain

import (
	"fmt"
	"time"
)

// AssemblyRecord is one login-to-logout interval of an employee against a bike.
type AssemblyRecord struct {
	ID             int64      `json:"id"`
	EmployeeID     int64      `json:"employee_id"`
	BikeID         string     `json:"bike_id"`
	Role           string     `json:"role"`
	ActiveLogin    bool       `json:"active_login"`
	LoggedInTime   time.Time  `json:"logged_in_time"`
	LoggedOutTime  *time.Time `json:"logged_out_time"`
	LoggedDuration *string    `json:"logged_duration"`
}

// IsOpen reports whether the record still represents an active login.
func (r *AssemblyRecord) IsOpen() bool {
	return r.ActiveLogin && r.LoggedOutTime == nil
}

// AccruesDuration reports whether closing the record computes a logged duration.
func (r *AssemblyRecord) AccruesDuration() bool {
	return r.Role == RoleEmployee
}

// FormatDuration renders whole seconds as HH:MM:SS. Hours are not wrapped at 24.
func FormatDuration(seconds int64) string {
	sign := ""
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%s%02d:%02d:%02d", sign, h, m, s)
}
