package hotel

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/avstrong/hotel/internal/idgen/sequence"
)

type idGenerator interface {
	NextID(ctx context.Context) (int, error)
}

type Config struct {
	Name  string
	L     zerolog.Logger
	IDGen idGenerator
}

// Hotel owns the room inventory and the booking ledger for one property and
// is the sole authority for booking-id allocation. The mutex serializes the
// book/cancel mutation sequence, so a room can never be double-booked by
// concurrent callers.
type Hotel struct {
	mu       sync.Mutex
	name     string
	l        zerolog.Logger
	idGen    idGenerator
	rooms    []*Room
	bookings []*Booking
}

func New(conf Config) *Hotel {
	idGen := conf.IDGen
	if idGen == nil {
		idGen = sequence.New()
	}

	//nolint:exhaustruct
	return &Hotel{
		name:  conf.Name,
		l:     conf.L,
		idGen: idGen,
	}
}

func (h *Hotel) Name() string {
	return h.name
}

// AddRoom creates a room and appends it to the inventory in insertion order.
// It performs no duplicate-number check; callers wanting uniqueness must
// probe with FindRoom first.
func (h *Hotel) AddRoom(_ context.Context, number, roomType string, price float64) (*Room, error) {
	if strings.TrimSpace(number) == "" {
		return nil, fmt.Errorf("room number cannot be empty: %w", ErrInvalidInput)
	}

	if price <= 0 {
		return nil, fmt.Errorf("price must be positive: %w", ErrInvalidInput)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	room := &Room{
		Number:    number,
		Type:      roomType,
		Price:     price,
		Available: true,
	}
	h.rooms = append(h.rooms, room)

	h.l.Debug().
		Str("room", room.Number).
		Str("type", room.Type).
		Float64("price", room.Price).
		Msg("room added")

	return room, nil
}

// FindRoom returns the first room with the given number, scanning in
// insertion order.
func (h *Hotel) FindRoom(_ context.Context, number string) (*Room, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.findRoom(number)
}

// findRoom must be called with the mutex held.
func (h *Hotel) findRoom(number string) (*Room, bool) {
	for _, room := range h.rooms {
		if room.Number == number {
			return room, true
		}
	}

	return nil, false
}

// Rooms returns a snapshot of the whole inventory in insertion order.
func (h *Hotel) Rooms(_ context.Context) []*Room {
	h.mu.Lock()
	defer h.mu.Unlock()

	rooms := make([]*Room, len(h.rooms))
	copy(rooms, h.rooms)

	return rooms
}

// AvailableRooms returns a fresh snapshot of the rooms currently available,
// in insertion order.
func (h *Hotel) AvailableRooms(_ context.Context) []*Room {
	h.mu.Lock()
	defer h.mu.Unlock()

	var available []*Room

	for _, room := range h.rooms {
		if room.Available {
			available = append(available, room)
		}
	}

	return available
}

// BookRoom runs the validation pipeline in a fixed order (guest name, room
// lookup, availability, date range) and commits the booking only when every
// check passes: the id is allocated, the booking is appended to the ledger,
// and the room is flipped to unavailable in one step under the mutex. A
// rejected booking leaves no trace, not even a consumed id.
func (h *Hotel) BookRoom(
	ctx context.Context,
	guestName, roomNumber string,
	checkIn, checkOut time.Time,
) (*Booking, error) {
	if strings.TrimSpace(guestName) == "" {
		return nil, fmt.Errorf("guest name cannot be empty: %w", ErrInvalidInput)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.findRoom(roomNumber)
	if !ok {
		return nil, fmt.Errorf("room %s not found: %w", roomNumber, ErrNotFound)
	}

	if !room.Available {
		return nil, fmt.Errorf("room %s: %w", roomNumber, ErrUnavailable)
	}

	if !checkOut.After(checkIn) {
		return nil, fmt.Errorf("check-out date must be after check-in date: %w", ErrInvalidRange)
	}

	id, err := h.idGen.NextID(ctx)
	if err != nil {
		return nil, ErrNextID
	}

	booking := newBooking(id, guestName, room, checkIn, checkOut)
	h.bookings = append(h.bookings, booking)
	room.Available = false

	h.l.Info().
		Int("booking_id", booking.ID).
		Str("guest", booking.GuestName).
		Str("room", room.Number).
		Float64("total_cost", booking.TotalCost).
		Msg("booking created")

	return booking, nil
}

// CancelBooking removes the booking with the given id from the ledger and
// flips its room back to available. A miss mutates nothing. A cancelled
// booking's id is never reused.
func (h *Hotel) CancelBooking(_ context.Context, bookingID int) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i, booking := range h.bookings {
		if booking.ID != bookingID {
			continue
		}

		booking.Room.Available = true
		h.bookings = append(h.bookings[:i], h.bookings[i+1:]...)

		h.l.Info().
			Int("booking_id", bookingID).
			Str("room", booking.Room.Number).
			Msg("booking cancelled")

		return nil
	}

	return fmt.Errorf("booking #%d not found: %w", bookingID, ErrNotFound)
}

// Bookings returns a snapshot of the active ledger in creation order.
// Cancelled bookings are absent; there is no archived record of them.
func (h *Hotel) Bookings(_ context.Context) []*Booking {
	h.mu.Lock()
	defer h.mu.Unlock()

	bookings := make([]*Booking, len(h.bookings))
	copy(bookings, h.bookings)

	return bookings
}
