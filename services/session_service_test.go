package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuongluu0705/Online-Electronics-Selling-System/models"
)

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	svc := NewSessionService("test-secret", time.Hour)

	token, err := svc.Issue(models.SessionProfile{
		UserID:   7,
		Username: "an",
		Name:     "Nguyen Van An",
		Role:     models.RoleBuyer,
	}, "upstream-tok")
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "an", claims.Username)
	assert.Equal(t, models.RoleBuyer, claims.Role)
	assert.Equal(t, "upstream-tok", claims.UpstreamToken)
	assert.Equal(t, "oss-gateway", claims.Issuer)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewSessionService("secret-a", time.Hour).
		Issue(models.SessionProfile{UserID: 1, Role: models.RoleBuyer}, "tok")
	require.NoError(t, err)

	_, err = NewSessionService("secret-b", time.Hour).Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsExpired(t *testing.T) {
	svc := NewSessionService("test-secret", -time.Minute)
	token, err := svc.Issue(models.SessionProfile{UserID: 1}, "tok")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	svc := NewSessionService("test-secret", time.Hour)
	_, err := svc.Verify("not.a.token")
	assert.Error(t, err)
}
