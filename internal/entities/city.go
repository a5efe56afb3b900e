package entities

// CityResponse is the wire format for one configured city. ID is the
// lowercased name, which is what older clients key on.
type CityResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	IsActive    bool   `json:"is_active"`
	Icon        string `json:"icon"`
}
