package entity

// UserProfile is the profile recorded at login. There is at most one
// profile per process (single-session model); a new login replaces it.
type UserProfile struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}
