package api

// City
type CityRequest struct {
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	IsActive bool   `json:"is_active"`
}

// Deposit
type DepositSessionRequest struct {
	Code string `json:"code"`
}
type DepositSessionResponse struct {
	URL string `json:"url"`
}
