package ryanair

// Airport identifies one end of a fare as reported by the farfnd API.
type Airport struct {
	IATACode string `json:"iataCode"`
	Name     string `json:"name"`
}

// Price is a fare price in the currency the API chose to quote.
type Price struct {
	Value        float64 `json:"value"`
	CurrencyCode string  `json:"currencyCode"`
}

// Fare is a single one-way flight offer. Departure and arrival timestamps
// are ISO-8601 naive local time ("2006-01-02T15:04:05"), no zone.
type Fare struct {
	DepartureAirport Airport `json:"departureAirport"`
	ArrivalAirport   Airport `json:"arrivalAirport"`
	DepartureDate    string  `json:"departureDate"`
	ArrivalDate      string  `json:"arrivalDate"`
	Price            Price   `json:"price"`
}

// The API nests every fare under an "outbound" key.
type fareEnvelope struct {
	Outbound Fare `json:"outbound"`
}

type faresResponse struct {
	Fares []fareEnvelope `json:"fares"`
}
