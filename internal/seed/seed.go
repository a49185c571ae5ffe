package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/avstrong/hotel/internal/hotel"
)

type inventory interface {
	AddRoom(ctx context.Context, number, roomType string, price float64) (*hotel.Room, error)
	FindRoom(ctx context.Context, number string) (*hotel.Room, bool)
}

// Rooms loads the demonstration inventory. Rooms already present keep their
// state, so seeding twice is harmless.
func Rooms(ctx context.Context, l zerolog.Logger, inv inventory) error {
	rooms := []struct {
		Number string
		Type   string
		Price  float64
	}{
		{Number: "101", Type: "Single", Price: 100.0},
		{Number: "102", Type: "Double", Price: 150.0},
		{Number: "201", Type: "Suite", Price: 300.0},
	}

	for _, r := range rooms {
		if _, ok := inv.FindRoom(ctx, r.Number); ok {
			continue
		}

		if _, err := inv.AddRoom(ctx, r.Number, r.Type, r.Price); err != nil {
			return fmt.Errorf("add sample room %s: %w", r.Number, err)
		}
	}

	l.Info().Int("rooms", len(rooms)).Msg("sample rooms loaded")

	return nil
}
