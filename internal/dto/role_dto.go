package dto

type CreateRoleRequest struct {
	Name           string   `json:"name"            validate:"required,max=90"`
	Description    string   `json:"description"     validate:"max=255"`
	OrganizationID string   `json:"organization_id" validate:"required,uuid"`
	PermissionIDs  []string `json:"permission_ids"  validate:"omitempty,dive,uuid"`
}

// UpdateRoleRequest replaces the bound permission set via diff when
// PermissionIDs is present (nil leaves bindings untouched).
type UpdateRoleRequest struct {
	Name          string    `json:"name"           validate:"required,max=90"`
	Description   string    `json:"description"    validate:"max=255"`
	PermissionIDs *[]string `json:"permission_ids" validate:"omitempty,dive,uuid"`
}

type RoleResponse struct {
	ID             string               `json:"id"`
	Name           string               `json:"name"`
	Description    string               `json:"description"`
	OrganizationID string               `json:"organization_id"`
	Permissions    []PermissionResponse `json:"permissions,omitempty"`
	CreatedAt      string               `json:"created_at"`
	UpdatedAt      string               `json:"updated_at"`
}
