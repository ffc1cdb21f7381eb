package models

import "time"

// Student defines a tracked student stored under the "student:" key prefix.
// Student records are managed exclusively by coordinators.
type Student struct {
	ID                 string     `json:"id"`                        // Unique identifier, assigned by the server
	Name               string     `json:"name"`                      // Student's full name
	Course             string     `json:"course"`                    // Course the student is enrolled in
	Class              string     `json:"class"`                     // Class/group identifier
	BirthDate          string     `json:"birthDate"`                 // Date of birth (YYYY-MM-DD)
	RegistrationNumber string     `json:"registrationNumber"`        // School registration number
	GuardianName       string     `json:"guardianName,omitempty"`    // Guardian's name (optional)
	GuardianContact    string     `json:"guardianContact,omitempty"` // Guardian's phone/email (optional)
	CreatedAt          time.Time  `json:"createdAt"`                 // Timestamp when the record was created
	CreatedBy          string     `json:"createdBy"`                 // ID of the coordinator who created the record
	UpdatedAt          *time.Time `json:"updatedAt,omitempty"`       // Timestamp of the last update (nullable)
	UpdatedBy          string     `json:"updatedBy,omitempty"`       // ID of the coordinator who last updated the record
}
