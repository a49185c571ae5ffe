package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/avstrong/hotel/internal/hotel"
)

const exitChoice = "6"

type handlerFunc func(ctx context.Context) error

type middleware func(next handlerFunc) handlerFunc

type Conf struct {
	L     zerolog.Logger
	In    io.Reader
	Out   io.Writer
	Hotel *hotel.Hotel
}

type action struct {
	label string
	run   handlerFunc
}

// Menu is the interactive shell around the hotel core. Every menu choice
// maps onto exactly one core operation; all input parsing and the
// duplicate-room-number check live here, not in the core.
type Menu struct {
	l       zerolog.Logger
	in      *bufio.Scanner
	out     io.Writer
	hotel   *hotel.Hotel
	actions map[string]action
	order   []string
}

func New(conf Conf) (*Menu, error) {
	if conf.Hotel == nil {
		return nil, ErrNoHotel
	}

	//nolint:exhaustruct
	menu := &Menu{
		l:     conf.L,
		in:    bufio.NewScanner(conf.In),
		out:   conf.Out,
		hotel: conf.Hotel,
	}

	menu.addActions()

	return menu, nil
}

func (m *Menu) addActions() {
	m.actions = make(map[string]action)

	m.register("1", "Add a room", m.applyMiddlewares(m.addRoomAction, m.accessLog("add_room"), m.recoverPanics()))
	m.register("2", "View available rooms", m.applyMiddlewares(m.availableRoomsAction, m.accessLog("available_rooms"), m.recoverPanics()))
	m.register("3", "Book a room", m.applyMiddlewares(m.bookRoomAction, m.accessLog("book_room"), m.recoverPanics()))
	m.register("4", "View all bookings", m.applyMiddlewares(m.allBookingsAction, m.accessLog("all_bookings"), m.recoverPanics()))
	m.register("5", "Cancel a booking", m.applyMiddlewares(m.cancelBookingAction, m.accessLog("cancel_booking"), m.recoverPanics()))
}

func (m *Menu) register(choice, label string, run handlerFunc) {
	m.actions[choice] = action{label: label, run: run}
	m.order = append(m.order, choice)
}

func (m *Menu) printMenu() {
	divider := strings.Repeat("=", 50)

	fmt.Fprintf(m.out, "\n%s\n", divider)
	fmt.Fprintf(m.out, "%s\n", m.hotel.Name())
	fmt.Fprintf(m.out, "%s\n", divider)

	for _, choice := range m.order {
		fmt.Fprintf(m.out, "%s. %s\n", choice, m.actions[choice].label)
	}

	fmt.Fprintf(m.out, "%s. Exit\n", exitChoice)
	fmt.Fprintf(m.out, "%s\n", divider)
}

// prompt writes the label and reads one trimmed line. ok is false when the
// input stream is exhausted.
func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)

	if !m.in.Scan() {
		return "", false
	}

	return strings.TrimSpace(m.in.Text()), true
}

// Run drives the menu loop until the caller exits, the input ends, or the
// context is cancelled. A rejected operation prints its reason and the loop
// keeps going.
func (m *Menu) Run(ctx context.Context) error {
	fmt.Fprintf(m.out, "Welcome to %s!\n", m.hotel.Name())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		m.printMenu()

		choice, ok := m.prompt(fmt.Sprintf("Enter your choice (1-%s): ", exitChoice))
		if !ok {
			return nil
		}

		if choice == exitChoice {
			fmt.Fprintf(m.out, "\nThank you for visiting %s!\n", m.hotel.Name())

			return nil
		}

		act, ok := m.actions[choice]
		if !ok {
			fmt.Fprintln(m.out, "\nInvalid choice. Please try again.")

			continue
		}

		if err := act.run(ctx); err != nil {
			return fmt.Errorf("run action %q: %w", choice, err)
		}
	}
}
