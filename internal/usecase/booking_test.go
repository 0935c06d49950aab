//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"swiss-virtual-airline/internal/domain/booking"
	"swiss-virtual-airline/internal/domain/flight"
	"swiss-virtual-airline/internal/domain/user"
	"swiss-virtual-airline/internal/infra/memstore"
	"swiss-virtual-airline/internal/pkg/clock"
	"swiss-virtual-airline/internal/pkg/config"
	"swiss-virtual-airline/internal/pkg/errs"
	"swiss-virtual-airline/internal/pkg/metrics"
	"swiss-virtual-airline/internal/usecase"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
)

type BookingUseCaseTestSuite struct {
	suite.Suite
	flights  *memstore.FlightStore
	bookings *memstore.BookingStore
	clock    *clock.MockClock
	useCase  usecase.BookingUseCase
}

func (s *BookingUseCaseTestSuite) SetupTest() {
	cfg := config.NewTestConfig()

	s.flights = memstore.NewFlightStore()
	s.bookings = memstore.NewBookingStore()
	s.clock = clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	s.flights.Append(flight.Record{FlightNumber: "LX318", Destination: "London", Status: "On Time"})

	s.useCase = usecase.NewBookingUseCase(
		s.bookings,
		s.flights,
		usecase.NewAllowListAdminPolicy(cfg.Rewards),
		cfg.Bot,
		s.clock,
		metrics.New("test", prometheus.NewRegistry()),
	)
}

func TestBookingUseCaseSuite(t *testing.T) {
	suite.Run(t, new(BookingUseCaseTestSuite))
}

func pilot() user.Identity {
	return user.Identity{ID: "user-1", Username: "pilot"}
}

func (s *BookingUseCaseTestSuite) TestCreate() {
	s.Run("success: books an existing flight", func() {
		b, err := s.useCase.Create(context.Background(), pilot(), "LX318")
		s.Require().NoError(err)

		s.Equal("LX318", b.FlightNumber())
		s.Equal("user-1", b.UserID())
		s.Equal("pilot", b.UserName())
		s.Equal(booking.StatusConfirmed, b.Status())
		s.Equal(s.clock.Now(), b.BookedAt())
		s.Equal(1, s.bookings.Len())
	})

	s.Run("error: unknown flight", func() {
		_, err := s.useCase.Create(context.Background(), pilot(), "LX999")
		s.ErrorIs(err, errs.ErrFlightNotFound)
	})

	s.Run("booking survives the flight leaving the board", func() {
		b, err := s.useCase.Create(context.Background(), pilot(), "LX318")
		s.Require().NoError(err)

		s.Require().NoError(s.flights.Remove("LX318"))

		listed := s.useCase.ListForUser(context.Background(), "user-1")
		ids := make([]string, 0, len(listed))
		for _, lb := range listed {
			ids = append(ids, lb.ID())
		}
		s.Contains(ids, b.ID())
	})
}

func (s *BookingUseCaseTestSuite) TestCancel() {
	b, err := s.useCase.Create(context.Background(), pilot(), "LX318")
	s.Require().NoError(err)

	s.Run("error: someone else's booking", func() {
		err := s.useCase.Cancel(context.Background(), b.ID(), user.Identity{ID: "user-2"})
		s.ErrorIs(err, errs.ErrNotBookingOwner)
	})

	s.Run("admin may cancel any booking", func() {
		other, err := s.useCase.Create(context.Background(), user.Identity{ID: "user-2", Username: "other"}, "LX318")
		s.Require().NoError(err)

		s.NoError(s.useCase.Cancel(context.Background(), other.ID(), user.Identity{ID: "admin-1"}))
	})

	s.Run("success: owner cancels", func() {
		s.NoError(s.useCase.Cancel(context.Background(), b.ID(), pilot()))
		s.Empty(s.useCase.ListForUser(context.Background(), "user-1"))
	})

	s.Run("error: already cancelled", func() {
		err := s.useCase.Cancel(context.Background(), b.ID(), pilot())
		s.ErrorIs(err, errs.ErrBookingNotFound)
	})
}

func (s *BookingUseCaseTestSuite) TestCreateForBot() {
	s.Run("success: valid shared secret", func() {
		b, err := s.useCase.CreateForBot(context.Background(), "test-bot-secret", "LX318", "discord-9", "botuser")
		s.Require().NoError(err)

		s.Equal("discord-9", b.UserID())
		s.Equal("botuser", b.UserName())
	})

	s.Run("error: wrong secret", func() {
		_, err := s.useCase.CreateForBot(context.Background(), "wrong", "LX318", "discord-9", "botuser")
		s.ErrorIs(err, errs.ErrInvalidBotToken)
	})

	s.Run("error: unknown flight with valid secret", func() {
		_, err := s.useCase.CreateForBot(context.Background(), "test-bot-secret", "LX999", "discord-9", "botuser")
		s.ErrorIs(err, errs.ErrFlightNotFound)
	})
}
