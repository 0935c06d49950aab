package request

type AwardPointsRequest struct {
	UserID           string `json:"userId" binding:"required"`
	Points           int    `json:"points" binding:"required"`
	FlightCompletion bool   `json:"isFlightCompletion"`
}

type CompleteFlightRequest struct {
	BookingID string `json:"bookingId" binding:"required"`
	Points    *int   `json:"points,omitempty"`
}
