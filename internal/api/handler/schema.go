package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// bikeRef accepts a bike identifier sent either as a JSON string or a JSON
// number; the floor terminals send both.
type bikeRef string

func (b *bikeRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*b = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*b = bikeRef(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("bike id must be a string or number")
	}
	*b = bikeRef(n.String())
	return nil
}

// employeeRef accepts an employee id as a JSON number or a numeric string.
type employeeRef int64

func (e *employeeRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*e = 0
		return nil
	}
	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("employee id must be an integer")
	}
	*e = employeeRef(id)
	return nil
}

type loginRequest struct {
	Username     string  `json:"username" example:"jdoe"`
	Password     string  `json:"password" example:"secret"`
	SelectedBike bikeRef `json:"selectedBike" swaggertype:"string" example:"B1"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type logoutRequest struct {
	EmployeeID employeeRef `json:"employeeId" validate:"required,gt=0" swaggertype:"integer" example:"7"`
}

type reassignBikeRequest struct {
	BikeID     bikeRef     `json:"bikeId" validate:"required" swaggertype:"string" example:"B2"`
	EmployeeID employeeRef `json:"employeeId" validate:"required,gt=0" swaggertype:"integer" example:"7"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type productionRangeQuery struct {
	FromDate string `query:"fromDate" validate:"required,datetime=2006-01-02"`
	ToDate   string `query:"toDate" validate:"required,datetime=2006-01-02"`
}

type productionDateQuery struct {
	SpecificDate string `query:"specificDate" validate:"required,datetime=2006-01-02"`
}
