package models

// LoginRequest is the credential pair submitted to the login endpoint.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse confirms a successful authentication. The issued token also
// travels in the Authorization header and the session cookie; it is repeated
// in the body for non-browser clients.
type LoginResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	IsAdmin  bool   `json:"is_admin"`
	Token    string `json:"token"`
}

// SearchRequest is a lookup submission. Both fields are required.
type SearchRequest struct {
	CASNumber    string `json:"cas_number"`
	UsagePurpose string `json:"usage_purpose"`
}

// SearchResponse carries the outcome of a lookup. When Found is false the
// record and tier fields are absent and ContactEmail names the escalation
// channel for substances missing from the dataset.
type SearchResponse struct {
	Found bool `json:"found"`

	Record *ChemicalRecord `json:"record,omitempty"`

	// Tier presentation data for the result view: description text, display
	// color and the 0..4 gauge position.
	TierDescription string `json:"tier_description,omitempty"`
	TierColor       string `json:"tier_color,omitempty"`
	TierGauge       int    `json:"tier_gauge,omitempty"`

	ContactEmail string `json:"contact_email,omitempty"`
}

// CreateUserRequest is the admin submission for a new account. All fields
// are required.
type CreateUserRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ResetPasswordRequest carries the new password for an existing account.
type ResetPasswordRequest struct {
	NewPassword string `json:"new_password"`
}

// QueryLogStats aggregates a filtered log slice for the admin reporting view.
type QueryLogStats struct {
	// ByDate maps "2006-01-02" dates to lookup counts.
	ByDate map[string]int `json:"by_date"`

	// ByUser maps usernames to lookup counts.
	ByUser map[string]int `json:"by_user"`

	// Total is the number of entries in the aggregated slice.
	Total int `json:"total"`
}

// VersionResponse reports the running application version.
type VersionResponse struct {
	Version string `json:"version"`
}
