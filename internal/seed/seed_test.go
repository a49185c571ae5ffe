package seed_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/avstrong/hotel/internal/hotel"
	"github.com/avstrong/hotel/internal/seed"
)

func TestRooms(t *testing.T) {
	//nolint:exhaustruct
	h := hotel.New(hotel.Config{Name: "Grand Hotel", L: zerolog.Nop()})

	if err := seed.Rooms(context.Background(), zerolog.Nop(), h); err != nil {
		t.Fatalf("seed: %v", err)
	}

	want := map[string]float64{"101": 100.0, "102": 150.0, "201": 300.0}

	rooms := h.Rooms(context.Background())
	if len(rooms) != len(want) {
		t.Fatalf("want %d rooms, got %d", len(want), len(rooms))
	}

	for number, price := range want {
		room, ok := h.FindRoom(context.Background(), number)
		if !ok {
			t.Fatalf("room %s not seeded", number)
		}

		if room.Price != price {
			t.Fatalf("room %s: want price %v, got %v", number, price, room.Price)
		}
	}
}

func TestRoomsIsIdempotent(t *testing.T) {
	//nolint:exhaustruct
	h := hotel.New(hotel.Config{Name: "Grand Hotel", L: zerolog.Nop()})

	if err := seed.Rooms(context.Background(), zerolog.Nop(), h); err != nil {
		t.Fatalf("seed: %v", err)
	}

	// An occupied room must survive a re-seed untouched.
	if _, err := h.BookRoom(
		context.Background(),
		"John Doe",
		"101",
		time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 17, 0, 0, 0, 0, time.UTC),
	); err != nil {
		t.Fatalf("book room: %v", err)
	}

	if err := seed.Rooms(context.Background(), zerolog.Nop(), h); err != nil {
		t.Fatalf("re-seed: %v", err)
	}

	if got := len(h.Rooms(context.Background())); got != 3 {
		t.Fatalf("re-seed must not duplicate rooms, got %d", got)
	}

	room, _ := h.FindRoom(context.Background(), "101")
	if room.Available {
		t.Fatalf("re-seed must not reset room state")
	}
}
