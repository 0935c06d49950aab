package usecase

import (
	"context"
	"crypto/subtle"

	"swiss-virtual-airline/internal/domain/booking"
	"swiss-virtual-airline/internal/domain/user"
	"swiss-virtual-airline/internal/pkg/clock"
	"swiss-virtual-airline/internal/pkg/config"
	"swiss-virtual-airline/internal/pkg/errs"
	"swiss-virtual-airline/internal/pkg/metrics"
)

type BookingLedger interface {
	Append(b *booking.Booking)
	ListAll() []*booking.Booking
	ListByUser(userID string) []*booking.Booking
	RemoveOwned(id, userID string, anyOwner bool) error
	MarkAwarded(id, userID string, points int) (*booking.Booking, error)
}

type BookingUseCase interface {
	Create(ctx context.Context, requester user.Identity, flightNumber string) (*booking.Booking, error)
	ListForUser(ctx context.Context, userID string) []*booking.Booking
	ListAll(ctx context.Context) []*booking.Booking
	Cancel(ctx context.Context, bookingID string, requester user.Identity) error
	CreateForBot(ctx context.Context, secret, flightNumber, discordID, username string) (*booking.Booking, error)
}

type bookingUseCaseImpl struct {
	ledger    BookingLedger
	catalog   FlightCatalog
	admins    AdminPolicy
	botSecret string
	clock     clock.Clock
	metrics   *metrics.Metrics
}

func NewBookingUseCase(
	ledger BookingLedger,
	catalog FlightCatalog,
	admins AdminPolicy,
	cfg config.BotConfig,
	clock clock.Clock,
	metrics *metrics.Metrics,
) BookingUseCase {
	return &bookingUseCaseImpl{
		ledger:    ledger,
		catalog:   catalog,
		admins:    admins,
		botSecret: cfg.SecretToken,
		clock:     clock,
		metrics:   metrics,
	}
}

// Create appends a confirmed booking after checking the flight exists at
// call time. Neither the catalog nor the rewards ledger is touched.
func (u *bookingUseCaseImpl) Create(_ context.Context, requester user.Identity, flightNumber string) (*booking.Booking, error) {
	if !u.catalog.Exists(flightNumber) {
		u.metrics.ErrorsCount.WithLabelValues("booking_create").Inc()
		return nil, errs.ErrFlightNotFound
	}

	b := booking.NewBooking(flightNumber, requester.ID, requester.Username, u.clock.Now())
	u.ledger.Append(b)
	u.metrics.BookingsCreated.Inc()
	return b, nil
}

func (u *bookingUseCaseImpl) ListForUser(_ context.Context, userID string) []*booking.Booking {
	return u.ledger.ListByUser(userID)
}

func (u *bookingUseCaseImpl) ListAll(_ context.Context) []*booking.Booking {
	return u.ledger.ListAll()
}

// Cancel removes the booking outright. Only the owner may cancel; admins may
// cancel any booking.
func (u *bookingUseCaseImpl) Cancel(_ context.Context, bookingID string, requester user.Identity) error {
	return u.ledger.RemoveOwned(bookingID, requester.ID, u.admins.IsAdmin(requester.ID))
}

// CreateForBot authenticates the companion bot by shared secret. The
// comparison is constant time.
func (u *bookingUseCaseImpl) CreateForBot(ctx context.Context, secret, flightNumber, discordID, username string) (*booking.Booking, error) {
	if subtle.ConstantTimeCompare([]byte(secret), []byte(u.botSecret)) != 1 {
		return nil, errs.ErrInvalidBotToken
	}

	return u.Create(ctx, user.Identity{ID: discordID, Username: username}, flightNumber)
}
