package config

import (
	"os"
	"strconv"
)

type Config struct {
	AppEnv    string
	HotelName string
	SeedRooms bool
}

func Load() Config {
	return Config{
		AppEnv:    env("APP_ENV", "dev"),
		HotelName: env("HOTEL_NAME", "Grand Hotel"),
		SeedRooms: envBool("SEED_ROOMS", true),
	}
}

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}

	return def
}
