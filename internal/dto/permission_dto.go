package dto

type CreatePermissionRequest struct {
	Title           string `json:"title"             validate:"required,max=45"`
	WebsiteModuleID string `json:"website_module_id" validate:"required,uuid"`
}

// UpdatePermissionRequest regenerates the action from Action when provided,
// otherwise from Title.
type UpdatePermissionRequest struct {
	Title           string  `json:"title"             validate:"required,max=45"`
	WebsiteModuleID string  `json:"website_module_id" validate:"required,uuid"`
	Action          *string `json:"action"            validate:"omitempty,max=60"`
}

type PermissionResponse struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Action          string `json:"action"`
	WebsiteModuleID string `json:"website_module_id"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}
