package dto

// CreateStudentRequest carries the fields accepted on student creation.
// Server-assigned fields (id, createdAt, createdBy) are never read from input.
type CreateStudentRequest struct {
	Name               string `json:"name" binding:"required"`
	Course             string `json:"course" binding:"required"`
	Class              string `json:"class" binding:"required"`
	BirthDate          string `json:"birthDate" binding:"required"`
	RegistrationNumber string `json:"registrationNumber" binding:"required"`
	GuardianName       string `json:"guardianName"`
	GuardianContact    string `json:"guardianContact"`
}

// UpdateStudentRequest carries a partial update; nil fields are left untouched
type UpdateStudentRequest struct {
	Name               *string `json:"name"`
	Course             *string `json:"course"`
	Class              *string `json:"class"`
	BirthDate          *string `json:"birthDate"`
	RegistrationNumber *string `json:"registrationNumber"`
	GuardianName       *string `json:"guardianName"`
	GuardianContact    *string `json:"guardianContact"`
}
