package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuongluu0705/Online-Electronics-Selling-System/models"
)

func TestGetAdminDirectoryServiceSingleInstance(t *testing.T) {
	const workers = 8
	instances := make([]*AdminDirectoryService, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			svc := GetAdminDirectoryService()
			svc.RecordAudit("worker", "Entity", "field", "", "value")
			instances[i] = svc
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		assert.Same(t, instances[0], instances[i])
	}
	// No entry recorded on a losing instance and lost
	assert.GreaterOrEqual(t, len(instances[0].ListAuditLogs()), workers)
}

func TestDirectorySeeded(t *testing.T) {
	svc := NewAdminDirectoryService()
	assert.NotEmpty(t, svc.ListUsers())
	assert.NotEmpty(t, svc.ListSettings())
	assert.Empty(t, svc.ListAuditLogs())
}

func TestCreateUserRecordsAudit(t *testing.T) {
	svc := NewAdminDirectoryService()

	user := svc.CreateUser(models.CreateDirectoryUserRequest{
		Name:  "Hoang Thi Em",
		Email: "em.hoang@example.com",
		Role:  "Staff",
	}, "Pham Quoc Dung")

	assert.Equal(t, "Active", user.Status)
	assert.NotEmpty(t, user.ID)

	logs := svc.ListAuditLogs()
	require.Len(t, logs, 1)
	assert.Equal(t, "Pham Quoc Dung", logs[0].ChangedBy)
	assert.Equal(t, "User em.hoang@example.com", logs[0].Entity)
}

func TestSetUserStatus(t *testing.T) {
	svc := NewAdminDirectoryService()
	id := svc.ListUsers()[0].ID

	user, err := svc.SetUserStatus(id, "Inactive", "admin")
	require.NoError(t, err)
	assert.Equal(t, "Inactive", user.Status)

	_, err = svc.SetUserStatus("missing", "Inactive", "admin")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateSettingTracksPreviousValue(t *testing.T) {
	svc := NewAdminDirectoryService()
	setting := svc.ListSettings()[0]

	updated, err := svc.UpdateSetting(setting.ID, "changed", "admin")
	require.NoError(t, err)
	assert.Equal(t, "changed", updated.Value)

	logs := svc.ListAuditLogs()
	require.NotEmpty(t, logs)
	// Newest first
	assert.Equal(t, setting.Value, logs[0].PreviousValue)
	assert.Equal(t, "changed", logs[0].NewValue)

	_, err = svc.UpdateSetting("missing", "x", "admin")
	assert.ErrorIs(t, err, ErrSettingNotFound)
}
