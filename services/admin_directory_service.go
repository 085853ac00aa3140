package services

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cuongluu0705/Online-Electronics-Selling-System/models"
)

var (
	ErrUserNotFound    = errors.New("directory: user not found")
	ErrSettingNotFound = errors.New("directory: setting not found")
)

// AdminDirectoryService backs the admin console's user management,
// system settings and audit log panels. The directory is seeded in
// memory: account records of the commerce system itself live upstream,
// this panel manages the gateway-local view of them.
type AdminDirectoryService struct {
	mu       sync.RWMutex
	users    []models.DirectoryUser
	settings []models.SystemSetting
	audit    []models.AuditLog
}

func NewAdminDirectoryService() *AdminDirectoryService {
	s := &AdminDirectoryService{}
	s.seed()
	return s
}

func (s *AdminDirectoryService) seed() {
	now := time.Now()
	s.users = []models.DirectoryUser{
		{ID: uuid.NewString(), Name: "Nguyen Van An", Email: "an.nguyen@example.com", Phone: "0901234567", Role: "Customer", Status: "Active", CreatedAt: now.AddDate(0, -6, 0)},
		{ID: uuid.NewString(), Name: "Tran Thi Binh", Email: "binh.tran@example.com", Phone: "0912345678", Role: "Customer", Status: "Active", CreatedAt: now.AddDate(0, -4, 0)},
		{ID: uuid.NewString(), Name: "Le Minh Chau", Email: "chau.le@example.com", Phone: "0923456789", Role: "Staff", Status: "Active", CreatedAt: now.AddDate(0, -9, 0)},
		{ID: uuid.NewString(), Name: "Pham Quoc Dung", Email: "dung.pham@example.com", Phone: "0934567890", Role: "Admin", Status: "Active", CreatedAt: now.AddDate(-1, 0, 0)},
	}
	s.settings = []models.SystemSetting{
		{ID: uuid.NewString(), Category: "Orders", Name: "Free shipping threshold", Value: "10000000", Description: "Subtotal above which the flat discount applies"},
		{ID: uuid.NewString(), Category: "Orders", Name: "Order discount", Value: "500000", Description: "Flat discount amount for qualifying orders"},
		{ID: uuid.NewString(), Category: "Catalog", Name: "Catalog refresh interval", Value: "5s", Description: "How often the storefront refetches the product list"},
		{ID: uuid.NewString(), Category: "Notifications", Name: "Order confirmation sender", Value: "orders@electrostore.vn", Description: "From address shown on order confirmation previews"},
	}
}

// ── Users ────────────────────────────────────────────────────────────────────

func (s *AdminDirectoryService) ListUsers() []models.DirectoryUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.DirectoryUser, len(s.users))
	copy(out, s.users)
	return out
}

func (s *AdminDirectoryService) CreateUser(req models.CreateDirectoryUserRequest, changedBy string) models.DirectoryUser {
	s.mu.Lock()
	defer s.mu.Unlock()
	user := models.DirectoryUser{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Role:      req.Role,
		Status:    "Active",
		CreatedAt: time.Now(),
	}
	s.users = append(s.users, user)
	s.recordLocked(changedBy, "User "+user.Email, "account", "", "created")
	return user
}

// SetUserStatus flips a directory user between Active and Inactive.
func (s *AdminDirectoryService) SetUserStatus(id, status, changedBy string) (models.DirectoryUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			prev := s.users[i].Status
			s.users[i].Status = status
			s.recordLocked(changedBy, "User "+s.users[i].Email, "status", prev, status)
			return s.users[i], nil
		}
	}
	return models.DirectoryUser{}, ErrUserNotFound
}

// ── Settings ─────────────────────────────────────────────────────────────────

func (s *AdminDirectoryService) ListSettings() []models.SystemSetting {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.SystemSetting, len(s.settings))
	copy(out, s.settings)
	return out
}

func (s *AdminDirectoryService) UpdateSetting(id, value, changedBy string) (models.SystemSetting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.settings {
		if s.settings[i].ID == id {
			prev := s.settings[i].Value
			s.settings[i].Value = value
			s.recordLocked(changedBy, "Setting "+s.settings[i].Name, "value", prev, value)
			return s.settings[i], nil
		}
	}
	return models.SystemSetting{}, ErrSettingNotFound
}

// ── Audit log ────────────────────────────────────────────────────────────────

// ListAuditLogs returns entries newest first.
func (s *AdminDirectoryService) ListAuditLogs() []models.AuditLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.AuditLog, len(s.audit))
	for i, entry := range s.audit {
		out[len(s.audit)-1-i] = entry
	}
	return out
}

// RecordAudit appends an entry for a change made outside the directory
// itself (product edits, status toggles).
func (s *AdminDirectoryService) RecordAudit(changedBy, entity, field, prev, next string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recordLocked(changedBy, entity, field, prev, next)
}

func (s *AdminDirectoryService) recordLocked(changedBy, entity, field, prev, next string) {
	s.audit = append(s.audit, models.AuditLog{
		ID:            uuid.NewString(),
		ChangedBy:     changedBy,
		Timestamp:     time.Now(),
		Entity:        entity,
		Field:         field,
		PreviousValue: prev,
		NewValue:      next,
	})
	log.Printf("[audit] %s changed %s.%s: %q -> %q", changedBy, entity, field, prev, next)
}

// Global instance
var (
	adminDirectoryService *AdminDirectoryService
	adminDirectoryOnce    sync.Once
)

// GetAdminDirectoryService returns the global directory instance. Safe
// to call from concurrent handlers.
func GetAdminDirectoryService() *AdminDirectoryService {
	adminDirectoryOnce.Do(func() {
		adminDirectoryService = NewAdminDirectoryService()
	})
	return adminDirectoryService
}
