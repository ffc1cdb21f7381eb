package models

import "time"

// Adaptation defines a documented curricular accommodation for a student,
// stored under the "adaptation:<studentId>:" key prefix.
type Adaptation struct {
	ID            string     `json:"id"`                  // Unique identifier, assigned by the server
	StudentID     string     `json:"studentId"`           // Referenced student, immutable after creation
	Description   string     `json:"description"`         // What the accommodation consists of
	Justification string     `json:"justification"`       // Why the accommodation is needed
	Date          string     `json:"date"`                // Date the accommodation takes effect
	CreatedAt     time.Time  `json:"createdAt"`           // Timestamp when the record was created
	CreatedBy     string     `json:"createdBy"`           // ID of the coordinator who created the record
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"` // Timestamp of the last update (nullable)
}
