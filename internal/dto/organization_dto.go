package dto

type CreateOrganizationRequest struct {
	LegalName    string `json:"legal_name"    validate:"required,max=90"`
	BusinessName string `json:"business_name" validate:"required,max=90"`
	Document     string `json:"document"      validate:"required"`
}

type UpdateOrganizationRequest struct {
	LegalName    string `json:"legal_name"    validate:"required,max=90"`
	BusinessName string `json:"business_name" validate:"required,max=90"`
	Document     string `json:"document"      validate:"required"`
	IsActive     *bool  `json:"is_active"     validate:"required"`
}

type OrganizationResponse struct {
	ID           string `json:"id"`
	LegalName    string `json:"legal_name"`
	BusinessName string `json:"business_name"`
	Document     string `json:"document"`
	IsActive     bool   `json:"is_active"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}
