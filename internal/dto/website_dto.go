package dto

// CreateWebsiteRequest optionally binds an initial module set; ModuleIDs are
// connected at creation.
type CreateWebsiteRequest struct {
	Title          string   `json:"title"           validate:"required,max=90"`
	Domain         string   `json:"domain"          validate:"required,url"`
	OrganizationID string   `json:"organization_id" validate:"required,uuid"`
	ModuleIDs      []string `json:"module_ids"      validate:"omitempty,dive,uuid"`
}

// UpdateWebsiteRequest replaces the bound module set via diff when ModuleIDs
// is present (nil leaves bindings untouched).
type UpdateWebsiteRequest struct {
	Title          string    `json:"title"           validate:"required,max=90"`
	Domain         string    `json:"domain"          validate:"required,url"`
	OrganizationID string    `json:"organization_id" validate:"required,uuid"`
	ModuleIDs      *[]string `json:"module_ids"      validate:"omitempty,dive,uuid"`
}

type WebsiteResponse struct {
	ID             string                  `json:"id"`
	Title          string                  `json:"title"`
	Domain         string                  `json:"domain"`
	OrganizationID string                  `json:"organization_id"`
	Modules        []WebsiteModuleResponse `json:"modules,omitempty"`
	CreatedAt      string                  `json:"created_at"`
	UpdatedAt      string                  `json:"updated_at"`
}
