package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webshop-go/storefront-api/models"
)

func TestRoleCapabilities(t *testing.T) {
	uid := uint(1)
	customer := &Identity{UserID: &uid, Role: RoleCustomer}
	staff := &Identity{UserID: &uid, Role: RoleStaff}
	admin := &Identity{UserID: &uid, Role: RoleAdmin}

	assert.False(t, customer.Can(CapViewAllOrders))
	assert.False(t, customer.Can(CapAddProduct))

	assert.True(t, staff.Can(CapViewAllOrders))
	assert.True(t, staff.Can(CapManageOrders))
	assert.False(t, staff.Can(CapAddProduct))

	assert.True(t, admin.Can(CapAddProduct))
	assert.True(t, admin.Can(CapDeleteProduct))
	assert.True(t, admin.Can(CapViewAllOrders))
}

func TestNilIdentityIsPowerless(t *testing.T) {
	var ident *Identity
	assert.False(t, ident.Can(CapViewAllOrders))
	assert.False(t, ident.Authenticated())
}

func TestGuestIsNotAuthenticated(t *testing.T) {
	guest := &Identity{Role: RoleGuest}
	assert.False(t, guest.Authenticated())
}

func TestUserTokenRoundTrip(t *testing.T) {
	user := &models.User{ID: 42, Name: "Ann", Role: RoleStaff}

	token, err := IssueUserToken(user, "secret")
	require.NoError(t, err)

	ident, err := ParseToken(token, "secret")
	require.NoError(t, err)
	require.NotNil(t, ident.UserID)
	assert.Equal(t, uint(42), *ident.UserID)
	assert.Equal(t, "Ann", ident.Name)
	assert.Equal(t, RoleStaff, ident.Role)
	assert.True(t, ident.Authenticated())
}

func TestGuestTokenRoundTrip(t *testing.T) {
	token, err := IssueGuestToken("secret")
	require.NoError(t, err)

	ident, err := ParseToken(token, "secret")
	require.NoError(t, err)
	assert.Nil(t, ident.UserID)
	assert.Equal(t, RoleGuest, ident.Role)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, err := IssueGuestToken("secret")
	require.NoError(t, err)

	_, err = ParseToken(token, "other-secret")
	assert.Error(t, err)
}
