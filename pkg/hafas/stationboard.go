package hafas

import (
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/travigo/stopboard/pkg/ctdf"
	"golang.org/x/exp/slices"
)

// ParseStationBoard normalizes a raw StationBoard reply into departures sorted by
// departure time. Both result codes are checked before any trip is read.
func ParseStationBoard(data []byte, loc *time.Location) ([]ctdf.Departure, error) {
	var response stationBoardResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, protocolError("malformed HAFAS response: "+err.Error(), err)
	}

	if response.Err != resultOK {
		return nil, protocolError("HAFAS error: "+errorText(response.ErrTxt, response.Err), nil)
	}
	if len(response.SvcResL) == 0 {
		return nil, protocolError("StationBoard error: missing service response", nil)
	}

	serviceResult := response.SvcResL[0]
	if serviceResult.Err != resultOK {
		return nil, protocolError("StationBoard error: "+errorText(serviceResult.ErrTxt, serviceResult.Err), nil)
	}

	result := serviceResult.Res

	journeys := make([]journey, 0, len(result.JnyL))
	for i, rawJourney := range result.JnyL {
		var j journey
		if err := json.Unmarshal(rawJourney, &j); err != nil {
			log.Warn().Err(err).Int("index", i).Msg("Skipping HAFAS journey that is not an object")
			continue
		}
		journeys = append(journeys, j)
	}

	baseDate := result.SD.Value
	if baseDate == "" && len(journeys) > 0 {
		baseDate = journeys[0].Date.Value
	}

	departures := make([]ctdf.Departure, 0, len(journeys))
	for _, j := range journeys {
		departures = append(departures, j.departure(result.Common.ProdL, baseDate, loc))
	}

	slices.SortStableFunc(departures, func(a, b ctdf.Departure) int {
		return a.DepartureTime.Compare(b.DepartureTime)
	})

	return departures, nil
}

// departure applies the documented defaults to one trip.
func (j journey) departure(products []lenient[product], baseDate string, loc *time.Location) ctdf.Departure {
	stop := j.StbStop.Value

	serviceDate := orDefault(j.Date.Value, baseDate)

	scheduledTime := ParseDateTime(loc, serviceDate, stop.DTimeS.Value)
	departureTime := scheduledTime
	hasRealtime := stop.DTimeR.Value != ""
	if hasRealtime {
		departureTime = ParseDateTime(loc, serviceDate, stop.DTimeR.Value)
	}

	return ctdf.Departure{
		Line:          j.line(products),
		Destination:   orDefault(j.DirTxt.Value, "?"),
		Platform:      stop.platform(),
		ScheduledTime: scheduledTime,
		DepartureTime: departureTime,
		IsRealtime:    stop.DProgType.Value == progPrognosed && hasRealtime,
		IsCancelled:   stop.DCncl.Value,
	}
}

func (j journey) line(products []lenient[product]) string {
	index := j.ProdX
	if stopIndex := j.StbStop.Value.DProdX; stopIndex.Valid {
		index = stopIndex
	}

	if !index.Valid || index.Value < 0 || index.Value >= len(products) {
		return "?"
	}

	prod := products[index.Value].Value
	if prod.NameS.Value != "" {
		return prod.NameS.Value
	}

	return orDefault(prod.Name.Value, "?")
}

func (s boardedStop) platform() string {
	if realtime := s.DPltfR.Value.Txt.Value; realtime != "" {
		return realtime
	}

	return s.DPltfS.Value.Txt.Value
}

func errorText(text string, code string) string {
	if text != "" {
		return text
	}

	return orDefault(code, "unknown error")
}

func orDefault(value string, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}
