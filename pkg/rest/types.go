package rest

// Offer is the REST view of one normalized fare offer.
type Offer struct {
	Carrier       string   `json:"carrier"`
	Origin        string   `json:"origin"`
	Destination   string   `json:"destination"`
	Date          string   `json:"date"`
	Miles         int      `json:"miles"`
	CashTaxes     *float64 `json:"cashTaxes,omitempty"`
	DurationHours float64  `json:"durationHours"`
	Segments      int      `json:"segments"`
	Categories    []string `json:"categories,omitempty"`
}

// CycleReport is the last completed scan cycle as exposed by the status API.
type CycleReport struct {
	CycleID     string  `json:"cycleId"`
	StartedAt   string  `json:"startedAt"`
	FinishedAt  string  `json:"finishedAt"`
	CellsTotal  int     `json:"cellsTotal"`
	CellsFailed int     `json:"cellsFailed"`
	Offers      []Offer `json:"offers"`
	Text        string  `json:"text"`
}

type Status struct {
	Origin       string   `json:"origin"`
	Destinations []string `json:"destinations"`
	MilesCeiling int      `json:"milesCeiling"`
	Scanning     bool     `json:"scanning"`
	LastCycleID  string   `json:"lastCycleId,omitempty"`
}

type Destination struct {
	Code string `json:"code" validate:"required,len=3,alpha,uppercase"`
}

// Error is the error response model.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

type ErrorCode string
