package dto

type CreateUserRequest struct {
	Nickname string `json:"nickname" validate:"required,min=3,max=45"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	RoleID   string `json:"role_id"  validate:"required,uuid"`
}

// UpdateUserRequest keeps the current password when Password is nil or empty.
type UpdateUserRequest struct {
	Nickname string  `json:"nickname" validate:"required,min=3,max=45"`
	Email    string  `json:"email"    validate:"required,email"`
	Password *string `json:"password"`
	RoleID   string  `json:"role_id"  validate:"required,uuid"`
}

type UserResponse struct {
	ID        string  `json:"id"`
	Nickname  string  `json:"nickname"`
	Email     string  `json:"email"`
	IsActive  bool    `json:"is_active"`
	RoleID    *string `json:"role_id"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}
