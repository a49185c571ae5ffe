package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/avstrong/hotel/internal/config"
	"github.com/avstrong/hotel/internal/hotel"
	"github.com/avstrong/hotel/internal/idgen/sequence"
	"github.com/avstrong/hotel/internal/seed"
	"github.com/avstrong/hotel/internal/transport/cli"
)

func Run(l zerolog.Logger, conf config.Config) error {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGHUP,
	)
	defer cancel()

	h := hotel.New(hotel.Config{
		Name:  conf.HotelName,
		L:     l,
		IDGen: sequence.New(),
	})

	if conf.SeedRooms {
		if err := seed.Rooms(ctx, l, h); err != nil {
			return fmt.Errorf("seed sample rooms: %w", err)
		}
	}

	menu, err := cli.New(cli.Conf{
		L:     l,
		In:    os.Stdin,
		Out:   os.Stdout,
		Hotel: h,
	})
	if err != nil {
		return fmt.Errorf("init menu: %w", err)
	}

	l.Info().Str("hotel", conf.HotelName).Msg("Application is running...")

	if err := menu.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("run menu: %w", err)
	}

	l.Info().Msg("Application stopped gracefully")

	return nil
}
