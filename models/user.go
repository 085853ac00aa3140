package models

import "time"

const (
	RoleBuyer = "buyer"
	RoleStaff = "staff"
	RoleAdmin = "admin"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=buyer staff admin"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	Role        string `json:"role"`
	UserID      int    `json:"userId"`
	Username    string `json:"username"`
	Name        string `json:"name,omitempty"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// SessionProfile is what GET /auth/me reports about the caller.
type SessionProfile struct {
	UserID   int    `json:"userId"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// DirectoryUser is an entry of the admin console's user management
// panel. Backed by the seeded in-memory directory, not by upstream.
type DirectoryUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`   // Customer, Staff, Admin
	Status    string    `json:"status"` // Active, Inactive
	CreatedAt time.Time `json:"createdAt"`
}

type CreateDirectoryUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone"`
	Role  string `json:"role" binding:"required,oneof=Customer Staff Admin"`
}

// AuditLog records a back-office change (who, what, before/after).
type AuditLog struct {
	ID            string    `json:"id"`
	ChangedBy     string    `json:"changedBy"`
	Timestamp     time.Time `json:"timestamp"`
	Entity        string    `json:"entity"`
	Field         string    `json:"field"`
	PreviousValue string    `json:"previousValue"`
	NewValue      string    `json:"newValue"`
}

// SystemSetting is a single configurable of the admin settings panel.
type SystemSetting struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	Name        string `json:"name"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

type UpdateSettingRequest struct {
	Value string `json:"value" binding:"required"`
}
