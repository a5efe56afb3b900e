package entities

// QuoteRequest selects one of the three service types. Exactly one of
// the selection blocks must be set, matching ServiceType.
type QuoteRequest struct {
	ServiceType string                   `json:"service_type"` // local | intercity | storage
	Language    string                   `json:"language,omitempty"`
	Local       *LocalSelectionInput     `json:"local,omitempty"`
	Intercity   *IntercitySelectionInput `json:"intercity,omitempty"`
	Storage     *StorageSelectionInput   `json:"storage,omitempty"`
}

type LocalSelectionInput struct {
	Area        string `json:"area"` // standard | premium
	WithVehicle bool   `json:"with_vehicle"`
	Persons     int    `json:"persons"`
	Hours       int    `json:"hours"`
}

type IntercitySelectionInput struct {
	OriginCity      string  `json:"origin_city"`
	DestinationCity string  `json:"destination_city"`
	VolumeM3        float64 `json:"volume_m3"`
	PickupService   bool    `json:"pickup_service"`
	PickupHours     int     `json:"pickup_hours,omitempty"`
	DeliveryService bool    `json:"delivery_service"`
	DeliveryHours   int     `json:"delivery_hours,omitempty"`
}

type StorageSelectionInput struct {
	Items  map[string]int `json:"items"`
	Months int            `json:"months"`
}

// QuoteLeadRequest is a quote submission with contact details. The
// quote is computed, stored and sent to the customer by email.
type QuoteLeadRequest struct {
	QuoteRequest
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
	UserPhone string `json:"user_phone,omitempty"`
}
