package contracts

import (
	"context"
	"sefasevim-service/internal/pkg/dto/responses"
	"time"
)

type AvailabilityUsecase interface {
	// ResolveForDate returns the bookable hour slots for the given calendar
	// date, falling back to the built-in default schedule when the stored
	// working hours cannot be fetched.
	ResolveForDate(ctx context.Context, date time.Time) (*responses.Availability, error)

	// OffersSlot reports whether the given slot label is currently offered
	// for the date. Booking submissions are validated through this before
	// being persisted.
	OffersSlot(ctx context.Context, date time.Time, slot string) (bool, error)
}
