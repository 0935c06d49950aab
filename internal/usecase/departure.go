package usecase

import (
	"context"
	"time"

	"swiss-virtual-airline/internal/domain/flight"
	"swiss-virtual-airline/internal/pkg/clock"
	"swiss-virtual-airline/internal/pkg/config"
	"swiss-virtual-airline/internal/pkg/errs"
	"swiss-virtual-airline/internal/pkg/patch"
)

type FlightCatalog interface {
	List() []flight.Record
	ReplaceAll(records []flight.Record) int
	Append(rec flight.Record)
	Exists(flightNumber string) bool
	Merge(flightNumber string, apply func(*flight.Record)) (flight.Record, error)
	Remove(flightNumber string) error
}

// FlightPatch carries a merge-patch: nil fields are left untouched.
type FlightPatch struct {
	Destination   *string
	ScheduledTime *string
	EstimatedTime *string
	Gate          *string
	Terminal      *string
	Status        *string
}

type DepartureUseCase interface {
	List(ctx context.Context) []flight.Record
	ReplaceAll(ctx context.Context, records []flight.Record) int
	Add(ctx context.Context, rec flight.Record) flight.Record
	Update(ctx context.Context, flightNumber string, p FlightPatch) (flight.Record, error)
	Remove(ctx context.Context, flightNumber string) error
}

type departureUseCaseImpl struct {
	catalog FlightCatalog
	loc     *time.Location
	clock   clock.Clock
}

func NewDepartureUseCase(catalog FlightCatalog, cfg config.DeparturesConfig, clock clock.Clock) (DepartureUseCase, error) {
	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return nil, errs.Wrap(err, "invalid departures timezone")
	}
	return &departureUseCaseImpl{
		catalog: catalog,
		loc:     loc,
		clock:   clock,
	}, nil
}

func (d *departureUseCaseImpl) List(_ context.Context) []flight.Record {
	return d.catalog.List()
}

func (d *departureUseCaseImpl) ReplaceAll(_ context.Context, records []flight.Record) int {
	return d.catalog.ReplaceAll(records)
}

// Add normalizes bare "HH:MM" times to timestamps for today before the
// record hits the board.
func (d *departureUseCaseImpl) Add(_ context.Context, rec flight.Record) flight.Record {
	now := d.clock.Now()
	rec.ScheduledTime = flight.NormalizeClockTime(rec.ScheduledTime, d.loc, now)
	rec.EstimatedTime = flight.NormalizeClockTime(rec.EstimatedTime, d.loc, now)
	d.catalog.Append(rec)
	return rec
}

func (d *departureUseCaseImpl) Update(_ context.Context, flightNumber string, p FlightPatch) (flight.Record, error) {
	return d.catalog.Merge(flightNumber, func(r *flight.Record) {
		r.Destination = patch.Coalesce(p.Destination, r.Destination)
		r.ScheduledTime = patch.Coalesce(p.ScheduledTime, r.ScheduledTime)
		r.EstimatedTime = patch.Coalesce(p.EstimatedTime, r.EstimatedTime)
		r.Gate = patch.Coalesce(p.Gate, r.Gate)
		r.Terminal = patch.Coalesce(p.Terminal, r.Terminal)
		r.Status = patch.Coalesce(p.Status, r.Status)
	})
}

func (d *departureUseCaseImpl) Remove(_ context.Context, flightNumber string) error {
	return d.catalog.Remove(flightNumber)
}
