package dto

// ── Users ──

// CreateUserRequest admin creates an account; a temporary password is generated
type CreateUserRequest struct {
	Name  string `json:"name"  binding:"required,min=2,max=100"`
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role"  binding:"required,oneof=admin coach staff"`
}

// CreateUserResponse created account plus the one-time password
type CreateUserResponse struct {
	User         UserResponse `json:"user"`
	TempPassword string       `json:"temp_password"`
}

// UserListRequest user list query
type UserListRequest struct {
	PaginationRequest
	Role    string `form:"role"    binding:"omitempty,oneof=admin coach staff"`
	Keyword string `form:"keyword" binding:"omitempty,max=50"`
}

// UpdateUserRequest partial update
type UpdateUserRequest struct {
	Name  *string `json:"name"  binding:"omitempty,min=2,max=100"`
	Email *string `json:"email" binding:"omitempty,email"`
}

// AssignRoleRequest role change
type AssignRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=admin coach staff"`
}

// ResetPasswordResponse new temporary password
type ResetPasswordResponse struct {
	TempPassword string `json:"temp_password"`
}

// ImportUserResponse bulk import summary
type ImportUserResponse struct {
	Total   int                  `json:"total"`
	Success int                  `json:"success"`
	Failed  int                  `json:"failed"`
	Errors  []ImportUserError    `json:"errors,omitempty"`
	Created []CreateUserResponse `json:"created,omitempty"`
}

// ImportUserError per-row failure
type ImportUserError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}
