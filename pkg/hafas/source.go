package hafas

import (
	"context"
	"time"

	"github.com/travigo/stopboard/pkg/ctdf"
)

// Source is the live departure source: one Client request normalized by ParseStationBoard.
type Source struct {
	Client   *Client
	Location *time.Location
}

func NewSource(profile Profile) (*Source, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	loc, err := profile.Location()
	if err != nil {
		return nil, err
	}

	client, err := NewClient(profile)
	if err != nil {
		return nil, err
	}

	return &Source{Client: client, Location: loc}, nil
}

func (s *Source) GetName() string {
	return "HAFAS StationBoard"
}

func (s *Source) Departures(ctx context.Context) ([]ctdf.Departure, error) {
	raw, err := s.Client.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	return ParseStationBoard(raw, s.Location)
}
