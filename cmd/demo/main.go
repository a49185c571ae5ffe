// Command demo runs a scripted walkthrough of the reservation manager
// without any user interaction.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/avstrong/hotel/internal/hotel"
	"github.com/avstrong/hotel/internal/idgen/sequence"
	"github.com/avstrong/hotel/internal/logger"
)

func section(title string) {
	fmt.Printf("\n--- %s ---\n", title)
}

func main() {
	_ = godotenv.Load()

	l := logger.New(os.Getenv("APP_ENV"))
	ctx := context.Background()

	divider := strings.Repeat("=", 60)

	fmt.Println(divider)
	fmt.Println("Hotel Reservation Manager - Demonstration")
	fmt.Println(divider)

	h := hotel.New(hotel.Config{
		Name:  "Grand Plaza Hotel",
		L:     l,
		IDGen: sequence.New(),
	})
	fmt.Printf("\nCreated hotel: %s\n", h.Name())

	section("Adding Rooms")

	rooms := []struct {
		Number string
		Type   string
		Price  float64
	}{
		{"101", "Single", 100.0},
		{"102", "Double", 150.0},
		{"103", "Double", 150.0},
		{"201", "Suite", 300.0},
		{"202", "Suite", 300.0},
	}

	for _, r := range rooms {
		if _, err := h.AddRoom(ctx, r.Number, r.Type, r.Price); err != nil {
			l.Error().Err(err).Str("room", r.Number).Msg("Failed to add room")
			os.Exit(1)
		}
	}

	fmt.Printf("Added %d rooms\n", len(h.Rooms(ctx)))

	section("Available Rooms")

	for _, room := range h.AvailableRooms(ctx) {
		fmt.Printf("  %s\n", room)
	}

	section("Creating Bookings")

	today := time.Now().UTC().Truncate(24 * time.Hour)

	stays := []struct {
		Guest    string
		Room     string
		From, To int // offsets in days from today
	}{
		{Guest: "Alice Johnson", Room: "101", From: 1, To: 3},
		{Guest: "Bob Smith", Room: "201", From: 2, To: 5},
		{Guest: "Carol White", Room: "102", From: 1, To: 2},
	}

	var cancelTarget *hotel.Booking

	for _, s := range stays {
		booking, err := h.BookRoom(ctx, s.Guest, s.Room, today.AddDate(0, 0, s.From), today.AddDate(0, 0, s.To))
		if err != nil {
			l.Error().Err(err).Str("guest", s.Guest).Msg("Failed to book room")
			os.Exit(1)
		}

		fmt.Printf("  %s\n", booking)

		if s.Guest == "Bob Smith" {
			cancelTarget = booking
		}
	}

	section("Available Rooms After Bookings")

	available := h.AvailableRooms(ctx)
	fmt.Printf("  %d room(s) available:\n", len(available))

	for _, room := range available {
		fmt.Printf("    %s\n", room)
	}

	section("All Current Bookings")

	for _, booking := range h.Bookings(ctx) {
		fmt.Printf("  %s\n", booking)
	}

	var revenue float64

	for _, booking := range h.Bookings(ctx) {
		revenue += booking.TotalCost
	}

	section("Statistics")
	fmt.Printf("  Total rooms: %d\n", len(h.Rooms(ctx)))
	fmt.Printf("  Occupied rooms: %d\n", len(h.Rooms(ctx))-len(available))
	fmt.Printf("  Total bookings: %d\n", len(h.Bookings(ctx)))
	fmt.Printf("  Total revenue: $%.2f\n", revenue)

	section("Cancelling Booking")
	fmt.Printf("  Cancelling: %s\n", cancelTarget)

	if err := h.CancelBooking(ctx, cancelTarget.ID); err != nil {
		l.Error().Err(err).Int("booking_id", cancelTarget.ID).Msg("Failed to cancel booking")
		os.Exit(1)
	}

	section("Available Rooms After Cancellation")

	available = h.AvailableRooms(ctx)
	fmt.Printf("  %d room(s) available:\n", len(available))

	for _, room := range available {
		fmt.Printf("    %s\n", room)
	}

	fmt.Printf("\n%s\n", divider)
	fmt.Println("Demo completed successfully!")
	fmt.Println(divider)
}
