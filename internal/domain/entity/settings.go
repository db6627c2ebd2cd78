package entity

// DefaultRestaurantName is used when the backend has no name configured or cannot be reached.
const DefaultRestaurantName = "Restaurant Management"

// RestaurantSettings is the branding shown in the shell header.
type RestaurantSettings struct {
	LogoURL string `json:"logoUrl,omitempty"`
	Name    string `json:"name"`
}

// WithDefaults fills the name fallback.
func (s RestaurantSettings) WithDefaults() RestaurantSettings {
	if s.Name == "" {
		s.Name = DefaultRestaurantName
	}

	return s
}
