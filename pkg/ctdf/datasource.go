package ctdf

import "context"

// DepartureSource produces the current departures for the monitored stop.
type DepartureSource interface {
	GetName() string
	Departures(ctx context.Context) ([]Departure, error)
}
