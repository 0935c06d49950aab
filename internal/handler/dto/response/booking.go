package response

import (
	"time"

	"swiss-virtual-airline/internal/domain/booking"
)

type BookingResponse struct {
	ID            string    `json:"id"`
	FlightNumber  string    `json:"flightNumber"`
	UserID        string    `json:"userId"`
	Username      string    `json:"username"`
	BookedAt      time.Time `json:"bookedAt"`
	Status        string    `json:"status"`
	PointsAwarded bool      `json:"pointsAwarded"`
	PointsEarned  int       `json:"pointsEarned"`
}

func FromBooking(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID(),
		FlightNumber:  b.FlightNumber(),
		UserID:        b.UserID(),
		Username:      b.UserName(),
		BookedAt:      b.BookedAt(),
		Status:        string(b.Status()),
		PointsAwarded: b.PointsAwarded(),
		PointsEarned:  b.PointsEarned(),
	}
}

func FromBookings(bookings []*booking.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, FromBooking(b))
	}
	return out
}

type BookingMutationResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Booking BookingResponse `json:"booking"`
}
