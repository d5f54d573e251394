package domain

// ActorProfile describes the authenticated caller on whose behalf a write is made.
type ActorProfile struct {
	ID     string            `json:"id"`
	Name   string            `json:"name"`
	Email  string            `json:"email"`
	Roles  []string          `json:"roles"`
	Claims map[string]string `json:"claims,omitempty"`
}
