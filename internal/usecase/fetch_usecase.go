package usecase

import (
	"context"
	"time"

	"agenda/internal/domain/service"

	"github.com/google/uuid"
)

// FetchOutput carries the two bounded event windows read from the provider.
type FetchOutput struct {
	// Past holds the most recent events that already started, newest first.
	Past []service.RawEvent

	// Upcoming holds the next events from now on, soonest first.
	Upcoming []service.RawEvent
}

// FetchUsecase defines the interface for reading the bounded event windows
// from the calendar provider on behalf of a user. A rejected access token is
// refreshed once; a second rejection surfaces as reauthentication required.
type FetchUsecase interface {
	// FetchWindows reads both windows relative to the given instant.
	FetchWindows(ctx context.Context, userID uuid.UUID, now time.Time) (*FetchOutput, error)
}
