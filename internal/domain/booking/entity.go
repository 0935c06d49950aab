package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrAlreadyAwarded = errors.New("points already awarded")

type Status string

const StatusConfirmed Status = "confirmed"

// idPrefix survives from the legacy booking ids; uniqueness now comes from
// the UUID, not the creation timestamp.
const idPrefix = "SW-"

func NewBookingID() string {
	return idPrefix + uuid.NewString()
}

type Booking struct {
	id            string
	flightNumber  string
	userID        string
	userName      string
	bookedAt      time.Time
	status        Status
	pointsAwarded bool
	pointsEarned  int
}

func NewBooking(flightNumber, userID, userName string, now time.Time) *Booking {
	return &Booking{
		id:           NewBookingID(),
		flightNumber: flightNumber,
		userID:       userID,
		userName:     userName,
		bookedAt:     now,
		status:       StatusConfirmed,
	}
}

// MarkAwarded flips the points-awarded flag false→true exactly once.
// pointsEarned is immutable after the first successful call.
func (b *Booking) MarkAwarded(points int) error {
	if b.pointsAwarded {
		return ErrAlreadyAwarded
	}
	b.pointsAwarded = true
	b.pointsEarned = points
	return nil
}

func (b *Booking) Clone() *Booking {
	clone := *b
	return &clone
}

func (b *Booking) ID() string           { return b.id }
func (b *Booking) FlightNumber() string { return b.flightNumber }
func (b *Booking) UserID() string       { return b.userID }
func (b *Booking) UserName() string     { return b.userName }
func (b *Booking) BookedAt() time.Time  { return b.bookedAt }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) PointsAwarded() bool  { return b.pointsAwarded }
func (b *Booking) PointsEarned() int    { return b.pointsEarned }
