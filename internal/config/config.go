package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const defaultListenAddr = ":3333"
const defaultTimeZone = "UTC"

type Config struct {
	ListenAddr string
	// Location defines what "calendar day" means for statement date
	// queries. Defaults to UTC.
	Location *time.Location
}

func Load() (Config, error) {
	addr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if addr == "" {
		addr = defaultListenAddr
	}

	tz := strings.TrimSpace(os.Getenv("TIME_ZONE"))
	if tz == "" {
		tz = defaultTimeZone
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return Config{}, fmt.Errorf("load time zone %q: %w", tz, err)
	}

	return Config{
		ListenAddr: addr,
		Location:   loc,
	}, nil
}
