package models

// User defines an account profile stored under the "user:" key prefix.
// Profiles are immutable after creation; one record per credential pair.
type User struct {
	ID       string   `json:"id" example:"b3a0e7a2-4f7e-4f10-a530-1f6f5a9d2f61"` // Unique identifier for the user
	Email    string   `json:"email" example:"coordenador@escola.com"`            // User's email address
	Password string   `json:"-"`                                                 // User's hashed password (excluded from JSON)
	Name     string   `json:"name" example:"Maria Silva"`                        // User's display name
	Role     RoleType `json:"role" example:"coordenador"`                        // User's role (coordenador or professor)
}
