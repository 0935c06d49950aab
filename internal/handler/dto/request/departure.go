package request

import (
	"swiss-virtual-airline/internal/domain/flight"
	"swiss-virtual-airline/internal/usecase"
)

type AddFlightRequest struct {
	FlightNumber  string `json:"flightNumber" binding:"required"`
	Destination   string `json:"destination"`
	ScheduledTime string `json:"scheduledTime"`
	EstimatedTime string `json:"estimatedTime"`
	Gate          string `json:"gate"`
	Terminal      string `json:"terminal"`
	Status        string `json:"status"`
}

func (r AddFlightRequest) ToRecord() flight.Record {
	return flight.Record{
		FlightNumber:  r.FlightNumber,
		Destination:   r.Destination,
		ScheduledTime: r.ScheduledTime,
		EstimatedTime: r.EstimatedTime,
		Gate:          r.Gate,
		Terminal:      r.Terminal,
		Status:        r.Status,
	}
}

// UpdateFlightRequest is a merge-patch: absent fields keep their value.
type UpdateFlightRequest struct {
	Destination   *string `json:"destination"`
	ScheduledTime *string `json:"scheduledTime"`
	EstimatedTime *string `json:"estimatedTime"`
	Gate          *string `json:"gate"`
	Terminal      *string `json:"terminal"`
	Status        *string `json:"status"`
}

func (r UpdateFlightRequest) ToPatch() usecase.FlightPatch {
	return usecase.FlightPatch{
		Destination:   r.Destination,
		ScheduledTime: r.ScheduledTime,
		EstimatedTime: r.EstimatedTime,
		Gate:          r.Gate,
		Terminal:      r.Terminal,
		Status:        r.Status,
	}
}
