package hotel

import (
	"fmt"
	"time"
)

// DateLayout is the textual date format the shells parse before handing
// dates to the core.
const DateLayout = "2006-01-02"

type Room struct {
	Number    string
	Type      string
	Price     float64
	Available bool
}

func (r *Room) String() string {
	status := "Available"
	if !r.Available {
		status = "Booked"
	}

	return fmt.Sprintf("Room %s (%s) - $%.2f/night - %s", r.Number, r.Type, r.Price, status)
}

type Booking struct {
	ID        int
	GuestName string
	Room      *Room
	CheckIn   time.Time
	CheckOut  time.Time
	// NightlyRate is the room price at booking time. TotalCost is derived
	// from it once; a later change to the room never reprices the booking.
	NightlyRate float64
	TotalCost   float64
}

func newBooking(id int, guestName string, room *Room, checkIn, checkOut time.Time) *Booking {
	booking := &Booking{
		ID:          id,
		GuestName:   guestName,
		Room:        room,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		NightlyRate: room.Price,
	}
	booking.TotalCost = float64(booking.Nights()) * booking.NightlyRate

	return booking
}

// Nights is the whole-day difference between check-out and check-in.
func (b *Booking) Nights() int {
	return int(b.CheckOut.Sub(b.CheckIn) / (24 * time.Hour))
}

func (b *Booking) String() string {
	return fmt.Sprintf(
		"Booking #%d: %s - Room %s - %s to %s - $%.2f",
		b.ID,
		b.GuestName,
		b.Room.Number,
		b.CheckIn.Format(DateLayout),
		b.CheckOut.Format(DateLayout),
		b.TotalCost,
	)
}
