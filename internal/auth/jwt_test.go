package auth_test

import (
	"testing"

	"github.com/MoAlsharqawy/Sanivita-CRM-sub001/internal/auth"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := auth.NewJWTService("test-secret", "sanivita-crm")

	repID := uuid.New()
	orgID := uuid.New()

	token, err := svc.GenerateToken(repID, orgID, "amira", true)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, repID, claims.RepID)
	assert.Equal(t, orgID, claims.OrgID)
	assert.Equal(t, "amira", claims.Username)
	assert.True(t, claims.IsManager)
	assert.Equal(t, "sanivita-crm", claims.Issuer)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc := auth.NewJWTService("test-secret", "sanivita-crm")
	other := auth.NewJWTService("other-secret", "sanivita-crm")

	token, err := svc.GenerateToken(uuid.New(), uuid.New(), "amira", false)
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := auth.NewJWTService("test-secret", "sanivita-crm")
	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}
