package dto

type CreateWebsiteModuleRequest struct {
	Title string `json:"title" validate:"required,max=90"`
}

// UpdateWebsiteModuleRequest regenerates the slug from Slug when provided,
// otherwise from Title.
type UpdateWebsiteModuleRequest struct {
	Title string  `json:"title" validate:"required,max=90"`
	Slug  *string `json:"slug"  validate:"omitempty,max=90"`
}

type WebsiteModuleResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
