package tz

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // zones must resolve in scratch images too
)

// Load resolves an IANA zone name. Empty and "UTC" give time.UTC.
func Load(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "UTC") {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("tz: load %s: %w", name, err)
	}
	return loc, nil
}
