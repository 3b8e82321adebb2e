package hafas

type stationBoardRequest struct {
	SvcReqL []serviceRequest `json:"svcReqL"`
	Client  ClientIdentity   `json:"client"`
	Ver     string           `json:"ver"`
	Lang    string           `json:"lang"`
	Auth    Auth             `json:"auth"`
}

type serviceRequest struct {
	Meth string            `json:"meth"`
	Req  stationBoardQuery `json:"req"`
}

type stationBoardQuery struct {
	Type   string        `json:"type"`
	StbLoc stationLocRef `json:"stbLoc"`
	MaxJny int           `json:"maxJny"`
}

type stationLocRef struct {
	Lid string `json:"lid"`
}

func newStationBoardRequest(p Profile) stationBoardRequest {
	return stationBoardRequest{
		SvcReqL: []serviceRequest{
			{
				Meth: "StationBoard",
				Req: stationBoardQuery{
					Type:   "DEP",
					StbLoc: stationLocRef{Lid: p.StopLid},
					MaxJny: p.MaxJourneys,
				},
			},
		},
		Client: p.Client,
		Ver:    p.Version,
		Lang:   p.Language,
		Auth:   p.Auth,
	}
}
