package domain

// BikeProduction is the total logged duration accrued on one bike.
type BikeProduction struct {
	BikeID              string  `json:"bike_id"`
	TotalLoggedDuration *string `json:"total_logged_duration"`
}
