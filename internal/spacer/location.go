package spacer

import (
	"time"
	_ "time/tzdata" // zone names resolve on hosts without a zoneinfo database

	spacererrors "github.com/mrz1836/spacer/internal/errors"
)

// LoadLocation resolves an IANA zone name. An empty name returns nil,
// meaning local time without a zone abbreviation.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		return nil, nil //nolint:nilnil // nil location selects local time
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, spacererrors.Wrapf(spacererrors.ErrUnknownTimezone, "%q", name)
	}
	return loc, nil
}
