package entity

// DefaultDisplayName is shown when neither the backend nor the session knows the waiter's name.
const DefaultDisplayName = "Waiter"

// Session is the locally persisted authentication state.
type Session struct {
	Token       string `json:"-"`           // Opaque bearer token; empty means not logged in.
	Role        Role   `json:"role"`        // Role reported at login; empty when unknown.
	DisplayName string `json:"displayName"` // Name shown in the shell chrome.
}

// Authenticated reports whether the session holds a token.
// The token itself is never inspected client-side.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

// NameOrDefault returns the display name or the generic fallback.
func (s Session) NameOrDefault() string {
	if s.DisplayName != "" {
		return s.DisplayName
	}

	return DefaultDisplayName
}

// Credentials are the login form fields.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// StaffUser is the user block returned by the login and "me" endpoints.
type StaffUser struct {
	Role Role   `json:"role"`
	Name string `json:"name"`
}

// LoginResult is the normalized login response.
type LoginResult struct {
	AccessToken string    `json:"accessToken"`
	User        StaffUser `json:"user"`
}
