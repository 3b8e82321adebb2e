package ctdf

import (
	"encoding/json"
	"time"
)

type Departure struct {
	Line        string
	Destination string
	Platform    string

	ScheduledTime time.Time
	DepartureTime time.Time

	IsRealtime  bool
	IsCancelled bool
}

type departureJSON struct {
	Line            string `json:"line"`
	Destination     string `json:"destination"`
	Platform        string `json:"platform"`
	DepartureTimeMs int64  `json:"departureTimeMs"`
	ScheduledTimeMs int64  `json:"scheduledTimeMs"`
	IsRealtime      bool   `json:"isRealtime"`
	IsCancelled     bool   `json:"isCancelled"`
}

func (d Departure) MarshalJSON() ([]byte, error) {
	return json.Marshal(departureJSON{
		Line:            d.Line,
		Destination:     d.Destination,
		Platform:        d.Platform,
		DepartureTimeMs: d.DepartureTime.UnixMilli(),
		ScheduledTimeMs: d.ScheduledTime.UnixMilli(),
		IsRealtime:      d.IsRealtime,
		IsCancelled:     d.IsCancelled,
	})
}

func (d *Departure) UnmarshalJSON(data []byte) error {
	var raw departureJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*d = Departure{
		Line:          raw.Line,
		Destination:   raw.Destination,
		Platform:      raw.Platform,
		DepartureTime: time.UnixMilli(raw.DepartureTimeMs),
		ScheduledTime: time.UnixMilli(raw.ScheduledTimeMs),
		IsRealtime:    raw.IsRealtime,
		IsCancelled:   raw.IsCancelled,
	}

	return nil
}

// Board is one coherent set of departures for the monitored stop plus fetch metadata.
// An empty Error means the departures are current.
type Board struct {
	Departures []Departure
	FetchedAt  time.Time
	Error      string
}

type boardJSON struct {
	Departures []Departure `json:"departures"`
	FetchedAt  int64       `json:"fetchedAt"`
	Error      *string     `json:"error"`
}

func (b Board) MarshalJSON() ([]byte, error) {
	out := boardJSON{
		Departures: b.Departures,
		FetchedAt:  b.FetchedAt.UnixMilli(),
	}

	if out.Departures == nil {
		out.Departures = []Departure{}
	}
	if b.Error != "" {
		errorText := b.Error
		out.Error = &errorText
	}

	return json.Marshal(out)
}

func (b *Board) UnmarshalJSON(data []byte) error {
	var raw boardJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*b = Board{
		Departures: raw.Departures,
		FetchedAt:  time.UnixMilli(raw.FetchedAt),
	}
	if raw.Error != nil {
		b.Error = *raw.Error
	}

	return nil
}

// Clone returns a copy that shares no departure storage with b.
func (b *Board) Clone() *Board {
	if b == nil {
		return nil
	}

	clone := *b
	if b.Departures != nil {
		clone.Departures = make([]Departure, len(b.Departures))
		copy(clone.Departures, b.Departures)
	}

	return &clone
}
