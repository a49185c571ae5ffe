package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/avstrong/hotel/internal/hotel"
)

func (m *Menu) addRoomAction(ctx context.Context) error {
	fmt.Fprintln(m.out, "\n--- Add a Room ---")

	number, ok := m.prompt("Enter room number: ")
	if !ok {
		return nil
	}

	// The core accepts duplicate numbers; uniqueness is this shell's rule.
	if _, exists := m.hotel.FindRoom(ctx, number); exists {
		fmt.Fprintf(m.out, "Error: Room %s already exists.\n", number)

		return nil
	}

	roomType, ok := m.prompt("Enter room type (e.g., Single, Double, Suite): ")
	if !ok {
		return nil
	}

	rawPrice, ok := m.prompt("Enter price per night: $")
	if !ok {
		return nil
	}

	price, err := strconv.ParseFloat(rawPrice, 64)
	if err != nil {
		fmt.Fprintln(m.out, "Error: Invalid price.")

		return nil
	}

	room, err := m.hotel.AddRoom(ctx, number, roomType, price)
	if err != nil {
		fmt.Fprintf(m.out, "Error: %v\n", err)

		return nil
	}

	fmt.Fprintf(m.out, "Successfully added: %s\n", room)

	return nil
}

func (m *Menu) availableRoomsAction(ctx context.Context) error {
	fmt.Fprintln(m.out, "\n--- Available Rooms ---")

	rooms := m.hotel.AvailableRooms(ctx)
	if len(rooms) == 0 {
		fmt.Fprintln(m.out, "No rooms available.")

		return nil
	}

	for _, room := range rooms {
		fmt.Fprintln(m.out, room)
	}

	return nil
}

func (m *Menu) bookRoomAction(ctx context.Context) error {
	fmt.Fprintln(m.out, "\n--- Book a Room ---")

	rooms := m.hotel.AvailableRooms(ctx)
	if len(rooms) == 0 {
		fmt.Fprintln(m.out, "No rooms available for booking.")

		return nil
	}

	fmt.Fprintln(m.out, "Available rooms:")

	for _, room := range rooms {
		fmt.Fprintf(m.out, "  %s\n", room)
	}

	roomNumber, ok := m.prompt("\nEnter room number to book: ")
	if !ok {
		return nil
	}

	guestName, ok := m.prompt("Enter guest name: ")
	if !ok {
		return nil
	}

	checkIn, ok, valid := m.promptDate("Enter check-in date (YYYY-MM-DD): ")
	if !ok || !valid {
		return nil
	}

	checkOut, ok, valid := m.promptDate("Enter check-out date (YYYY-MM-DD): ")
	if !ok || !valid {
		return nil
	}

	booking, err := m.hotel.BookRoom(ctx, guestName, roomNumber, checkIn, checkOut)
	if err != nil {
		fmt.Fprintf(m.out, "Error: %v\n", err)
		fmt.Fprintln(m.out, "Booking failed.")

		return nil
	}

	fmt.Fprintf(m.out, "Successfully created: %s\n", booking)

	return nil
}

// promptDate reads one date in the fixed textual format. ok mirrors prompt;
// valid is false when the line did not parse, after reporting the error.
func (m *Menu) promptDate(label string) (date time.Time, ok, valid bool) {
	raw, ok := m.prompt(label)
	if !ok {
		return time.Time{}, false, false
	}

	date, err := time.Parse(hotel.DateLayout, raw)
	if err != nil {
		fmt.Fprintln(m.out, "Error: Invalid date format. Use YYYY-MM-DD.")

		return time.Time{}, true, false
	}

	return date, true, true
}

func (m *Menu) allBookingsAction(ctx context.Context) error {
	fmt.Fprintln(m.out, "\n--- All Bookings ---")

	bookings := m.hotel.Bookings(ctx)
	if len(bookings) == 0 {
		fmt.Fprintln(m.out, "No bookings found.")

		return nil
	}

	for _, booking := range bookings {
		fmt.Fprintln(m.out, booking)
	}

	return nil
}

func (m *Menu) cancelBookingAction(ctx context.Context) error {
	fmt.Fprintln(m.out, "\n--- Cancel a Booking ---")

	bookings := m.hotel.Bookings(ctx)
	if len(bookings) == 0 {
		fmt.Fprintln(m.out, "No bookings to cancel.")

		return nil
	}

	fmt.Fprintln(m.out, "Current bookings:")

	for _, booking := range bookings {
		fmt.Fprintf(m.out, "  %s\n", booking)
	}

	rawID, ok := m.prompt("\nEnter booking ID to cancel: ")
	if !ok {
		return nil
	}

	bookingID, err := strconv.Atoi(rawID)
	if err != nil {
		fmt.Fprintln(m.out, "Error: Invalid booking ID.")

		return nil
	}

	if err := m.hotel.CancelBooking(ctx, bookingID); err != nil {
		if errors.Is(err, hotel.ErrNotFound) {
			fmt.Fprintf(m.out, "Error: %v\n", err)
		}

		fmt.Fprintln(m.out, "Cancellation failed.")

		return nil
	}

	fmt.Fprintf(m.out, "Successfully cancelled booking #%d.\n", bookingID)

	return nil
}
