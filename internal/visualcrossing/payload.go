package visualcrossing

// Payload mirrors the Visual Crossing timeline response shape
type Payload struct {
	QueryCost       int     `json:"queryCost"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	ResolvedAddress string  `json:"resolvedAddress"`
	Address         string  `json:"address"`
	Timezone        string  `json:"timezone"`
	TZOffset        float64 `json:"tzoffset"`
	Days            []Day   `json:"days"`
}

// Day is one calendar day of the timeline. Hours may be absent when the
// provider only reports daily aggregates.
type Day struct {
	Datetime      string  `json:"datetime"` // YYYY-MM-DD
	DatetimeEpoch int64   `json:"datetimeEpoch"`
	TempMax       float64 `json:"tempmax"`
	TempMin       float64 `json:"tempmin"`
	Temp          float64 `json:"temp"`
	Conditions    string  `json:"conditions"`
	Hours         []Hour  `json:"hours,omitempty"`
}

// Hour is one hourly reading within a day
type Hour struct {
	Datetime      string  `json:"datetime"` // HH:MM:SS
	DatetimeEpoch int64   `json:"datetimeEpoch"`
	Temp          float64 `json:"temp"`
	FeelsLike     float64 `json:"feelslike"`
	Humidity      float64 `json:"humidity"`
	Dew           float64 `json:"dew"`
	Precip        float64 `json:"precip"`
	PrecipProb    float64 `json:"precipprob"`
	Snow          float64 `json:"snow"`
	WindSpeed     float64 `json:"windspeed"`
	WindDir       float64 `json:"winddir"`
	Pressure      float64 `json:"pressure"`
	CloudCover    float64 `json:"cloudcover"`
	Visibility    float64 `json:"visibility"`
	UVIndex       float64 `json:"uvindex"`
	Conditions    string  `json:"conditions"`
	Icon          string  `json:"icon"`
}
