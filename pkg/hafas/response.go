package hafas

import "encoding/json"

const (
	resultOK      = "OK"
	progPrognosed = "PROGNOSED"
)

type stationBoardResponse struct {
	Err     string            `json:"err"`
	ErrTxt  string            `json:"errTxt"`
	SvcResL []serviceResponse `json:"svcResL"`
}

type serviceResponse struct {
	Meth   string             `json:"meth"`
	Err    string             `json:"err"`
	ErrTxt string             `json:"errTxt"`
	Res    stationBoardResult `json:"res"`
}

type stationBoardResult struct {
	Common commonLists     `json:"common"`
	SD     lenient[string] `json:"sD"`

	// Trips are decoded one at a time so a trip that is not an object can be skipped.
	JnyL []json.RawMessage `json:"jnyL"`
}

type commonLists struct {
	ProdL []lenient[product] `json:"prodL"`
}

// Everything below the result envelope is optional upstream and decoded with lenient, so a
// field of the wrong type falls back to its default instead of costing the trip.

type product struct {
	Name  lenient[string] `json:"name"`
	NameS lenient[string] `json:"nameS"`
}

type journey struct {
	DirTxt  lenient[string]      `json:"dirTxt"`
	Date    lenient[string]      `json:"date"`
	ProdX   lenient[int]         `json:"prodX"`
	StbStop lenient[boardedStop] `json:"stbStop"`
}

type boardedStop struct {
	DProdX    lenient[int]      `json:"dProdX"`
	DPltfR    lenient[platform] `json:"dPltfR"`
	DPltfS    lenient[platform] `json:"dPltfS"`
	DTimeS    lenient[string]   `json:"dTimeS"`
	DTimeR    lenient[string]   `json:"dTimeR"`
	DProgType lenient[string]   `json:"dProgType"`
	DCncl     lenient[bool]     `json:"dCncl"`
}

type platform struct {
	Txt lenient[string] `json:"txt"`
}

// lenient holds an optional field. Valid is false when the field is absent, null or of an
// unexpected type, and Value is then the zero value.
type lenient[T any] struct {
	Value T
	Valid bool
}

func (l *lenient[T]) UnmarshalJSON(data []byte) error {
	var value T
	if string(data) == "null" || json.Unmarshal(data, &value) != nil {
		*l = lenient[T]{}
		return nil
	}

	*l = lenient[T]{Value: value, Valid: true}
	return nil
}
