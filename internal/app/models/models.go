package models

// RoleType defines the user role type
type RoleType string

const (
	RoleCoordinator RoleType = "coordenador"
	RoleTeacher     RoleType = "professor"
)

// IsValid reports whether the role is one of the known roles
func (r RoleType) IsValid() bool {
	return r == RoleCoordinator || r == RoleTeacher
}

// ReportResult defines the outcome of a follow-up report
type ReportResult string

const (
	ResultPositive ReportResult = "positivo"
	ResultNeutral  ReportResult = "neutro"
	ResultNegative ReportResult = "negativo"
)

// IsValid reports whether the result is one of the known outcomes
func (r ReportResult) IsValid() bool {
	return r == ResultPositive || r == ResultNeutral || r == ResultNegative
}
