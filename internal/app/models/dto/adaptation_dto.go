package dto

// CreateAdaptationRequest carries the fields accepted on adaptation creation
type CreateAdaptationRequest struct {
	StudentID     string `json:"studentId" binding:"required"`
	Description   string `json:"description" binding:"required"`
	Justification string `json:"justification" binding:"required"`
	Date          string `json:"date" binding:"required"`
}

// UpdateAdaptationRequest carries a partial update; studentId is never
// updatable, so it is not part of this request
type UpdateAdaptationRequest struct {
	Description   *string `json:"description"`
	Justification *string `json:"justification"`
	Date          *string `json:"date"`
}
