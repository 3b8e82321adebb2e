package demo

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/travigo/stopboard/pkg/ctdf"
	"golang.org/x/exp/slices"
)

type fixtureLine struct {
	Line        string
	Destination string
	Platform    string
}

var fixtureLines = []fixtureLine{
	{Line: "11", Destination: "Siegel", Platform: "H.10"},
	{Line: "2", Destination: "Eilendorf Schubertstraße", Platform: "H.12"},
	{Line: "44", Destination: "Driescher Hof - Brand", Platform: "H.12"},
	{Line: "45", Destination: "Uniklinik", Platform: "H.11"},
	{Line: "25", Destination: "Vaals Busstation", Platform: "H.14"},
	{Line: "51", Destination: "Aachen Schanz", Platform: "H.13"},
	{Line: "73", Destination: "Alsdorf Markt", Platform: "H.13"},
	{Line: "5", Destination: "Uniklinik", Platform: "H.11"},
	{Line: "35", Destination: "Driescher Hof", Platform: "H.12"},
	{Line: "12", Destination: "Technologiepark", Platform: "H.10"},
	{Line: "33", Destination: "Brand", Platform: "H.12"},
	{Line: "7", Destination: "Eilendorf Karlstraße", Platform: "H.13"},
	{Line: "SB63", Destination: "Merkstein", Platform: "H.14"},
	{Line: "14", Destination: "Hörn", Platform: "H.10"},
	{Line: "47", Destination: "Hoengen", Platform: "H.13"},
}

const maxJitter = 30 * time.Second

// Source generates a synthetic board relative to the current time, for running
// without upstream access.
type Source struct {
	// Rand is optional; the shared generator is used when nil. A *rand.Rand is not
	// safe for concurrent use.
	Rand *rand.Rand
	Now  func() time.Time
}

func (s *Source) GetName() string {
	return "Demo fixture"
}

func (s *Source) Departures(ctx context.Context) ([]ctdf.Departure, error) {
	now := s.now()

	departures := make([]ctdf.Departure, 0, len(fixtureLines))
	for i, line := range fixtureLines {
		scheduledTime := now.Add(time.Duration(i*2+1) * time.Minute)

		departures = append(departures, ctdf.Departure{
			Line:          line.Line,
			Destination:   line.Destination,
			Platform:      line.Platform,
			ScheduledTime: scheduledTime,
			DepartureTime: scheduledTime.Add(time.Duration(s.int64N(int64(maxJitter)))),
			IsRealtime:    s.float64() > 0.3,
			IsCancelled:   i == 3 || i == 9,
		})
	}

	slices.SortStableFunc(departures, func(a, b ctdf.Departure) int {
		return a.DepartureTime.Compare(b.DepartureTime)
	})

	return departures, nil
}

// Board serves a newly generated board on every call. The demo never fails.
func (s *Source) Board(ctx context.Context) (*ctdf.Board, bool) {
	departures, _ := s.Departures(ctx)

	return &ctdf.Board{Departures: departures, FetchedAt: s.now()}, true
}

func (s *Source) Status() string {
	return "demo"
}

func (s *Source) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}

	return s.Now()
}

func (s *Source) int64N(n int64) int64 {
	if s.Rand == nil {
		return rand.Int64N(n)
	}

	return s.Rand.Int64N(n)
}

func (s *Source) float64() float64 {
	if s.Rand == nil {
		return rand.Float64()
	}

	return s.Rand.Float64()
}
