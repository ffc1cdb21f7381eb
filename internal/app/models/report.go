package models

import "time"

// Report defines a teacher's dated observation about a student's progress,
// stored under the "report:<studentId>:" key prefix. Only the author may
// edit or delete a report.
type Report struct {
	ID          string       `json:"id"`                  // Unique identifier, assigned by the server
	StudentID   string       `json:"studentId"`           // Referenced student, immutable after creation
	TeacherID   string       `json:"teacherId"`           // Author's user ID, set server-side
	TeacherName string       `json:"teacherName"`         // Author's display name, set server-side
	Subject     string       `json:"subject"`             // Subject the observation refers to
	Date        string       `json:"date"`                // Observation date (RFC3339, set server-side on creation)
	Result      ReportResult `json:"result"`              // Outcome tag: positivo, neutro or negativo
	Description string       `json:"description"`         // Free-form observation text
	CreatedAt   time.Time    `json:"createdAt"`           // Timestamp when the record was created
	UpdatedAt   *time.Time   `json:"updatedAt,omitempty"` // Timestamp of the last update (nullable)
}

// StudentReport aggregates a student with its adaptations and reports
type StudentReport struct {
	Student     *Student      `json:"student"`
	Adaptations []*Adaptation `json:"adaptations"`
	Reports     []*Report     `json:"reports"`
}
