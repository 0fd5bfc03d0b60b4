package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateCategoryTrimsAndRejectsDuplicates(t *testing.T) {
	db := testDB(t)
	svc := NewCategoryService(db)
	ctx := context.Background()

	category, err := svc.CreateCategory(ctx, "  Desserts  ")
	require.NoError(t, err)
	assert.Equal(t, "Desserts", *category.Name)

	_, err = svc.CreateCategory(ctx, "Desserts")
	assert.True(t, errors.Is(err, ErrDuplicate))
}

func TestUpdateCategoryRejectsTakenName(t *testing.T) {
	db := testDB(t)
	svc := NewCategoryService(db)
	ctx := context.Background()

	first, err := svc.CreateCategory(ctx, "Starters")
	require.NoError(t, err)
	second, err := svc.CreateCategory(ctx, "Mains")
	require.NoError(t, err)

	_, err = svc.UpdateCategory(ctx, second.ID.Hex(), "Starters")
	assert.True(t, errors.Is(err, ErrDuplicate))

	// Renaming to its own name is allowed.
	updated, err := svc.UpdateCategory(ctx, first.ID.Hex(), "Starters")
	require.NoError(t, err)
	assert.Equal(t, "Starters", *updated.Name)
}

func TestCategoryInvalidAndMissingIDs(t *testing.T) {
	db := testDB(t)
	svc := NewCategoryService(db)
	ctx := context.Background()

	_, err := svc.GetCategoryByID(ctx, "nope")
	assert.True(t, errors.Is(err, ErrInvalidID))

	_, err = svc.GetCategoryByID(ctx, primitive.NewObjectID().Hex())
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = svc.DeleteCategory(ctx, primitive.NewObjectID().Hex())
	assert.True(t, errors.Is(err, ErrNotFound))
}
