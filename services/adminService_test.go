package services

import (
	"context"
	"errors"
	"testing"

	"github.com/psalmsin1759/menuja-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdmin(email string) models.Admin {
	return models.Admin{
		First_name: strPtr("Jamie"),
		Last_name:  strPtr("Osei"),
		Email:      &email,
		Password:   strPtr("s3cretpw"),
	}
}

func TestCreateAdminAndLogin(t *testing.T) {
	db := testDB(t)
	svc := NewAdminService(db)
	ctx := context.Background()

	created, err := svc.CreateAdmin(ctx, newTestAdmin("Jamie@Example.COM"))
	require.NoError(t, err)
	assert.Equal(t, "jamie@example.com", *created.Email)
	assert.Equal(t, "admin", created.Role)
	assert.Nil(t, created.Password)

	token, admin, err := svc.Login(ctx, "jamie@example.com", "s3cretpw")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, created.ID, admin.ID)

	_, _, err = svc.Login(ctx, "jamie@example.com", "wrongpw")
	require.Error(t, err)
}

func TestCreateAdminDuplicateEmail(t *testing.T) {
	db := testDB(t)
	svc := NewAdminService(db)
	ctx := context.Background()

	_, err := svc.CreateAdmin(ctx, newTestAdmin("dup@example.com"))
	require.NoError(t, err)

	_, err = svc.CreateAdmin(ctx, newTestAdmin("dup@example.com"))
	assert.True(t, errors.Is(err, ErrDuplicate))
}

func TestChangePassword(t *testing.T) {
	db := testDB(t)
	svc := NewAdminService(db)
	ctx := context.Background()

	created, err := svc.CreateAdmin(ctx, newTestAdmin("pw@example.com"))
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, created.ID.Hex(), "wrong", "newpassword")
	require.Error(t, err)

	err = svc.ChangePassword(ctx, created.ID.Hex(), "s3cretpw", "newpassword")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "pw@example.com", "newpassword")
	require.NoError(t, err)
}

func TestUpdateAdminNeverTouchesPassword(t *testing.T) {
	db := testDB(t)
	svc := NewAdminService(db)
	ctx := context.Background()

	created, err := svc.CreateAdmin(ctx, newTestAdmin("upd@example.com"))
	require.NoError(t, err)

	role := "owner"
	updated, err := svc.UpdateAdmin(ctx, created.ID.Hex(), AdminUpdate{
		First_name: strPtr("Alex"),
		Role:       &role,
	})
	require.NoError(t, err)
	assert.Equal(t, "Alex", *updated.First_name)
	assert.Equal(t, "owner", updated.Role)

	// The stored hash is untouched by a profile update.
	_, _, err = svc.Login(ctx, "upd@example.com", "s3cretpw")
	require.NoError(t, err)
}
