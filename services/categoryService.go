package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/psalmsin1759/menuja-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CategoryService struct {
	categories *mongo.Collection
}

func NewCategoryService(db *mongo.Database) *CategoryService {
	return &CategoryService{categories: db.Collection("category")}
}

// CreateCategory inserts a category with a trimmed name. The pre-check is a
// fast path; the unique index on name is the real guarantee.
func (s *CategoryService) CreateCategory(ctx context.Context, name string) (models.Category, error) {
	name = strings.TrimSpace(name)

	count, err := s.categories.CountDocuments(ctx, bson.M{"name": name})
	if err != nil {
		return models.Category{}, fmt.Errorf("check category name: %w", err)
	}
	if count > 0 {
		return models.Category{}, fmt.Errorf("category %q: %w", name, ErrDuplicate)
	}

	now := time.Now()
	category := models.Category{Name: &name}
	category.ID = primitive.NewObjectID()
	category.Created_at = now
	category.Updated_at = now

	if _, err := s.categories.InsertOne(ctx, category); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.Category{}, fmt.Errorf("category %q: %w", name, ErrDuplicate)
		}
		return models.Category{}, fmt.Errorf("insert category: %w", err)
	}
	return category, nil
}

func (s *CategoryService) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	cursor, err := s.categories.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	var categories []models.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	return categories, nil
}

func (s *CategoryService) GetCategoryByID(ctx context.Context, id string) (models.Category, error) {
	categoryID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Category{}, fmt.Errorf("category id: %w", ErrInvalidID)
	}

	var category models.Category
	if err := s.categories.FindOne(ctx, bson.M{"_id": categoryID}).Decode(&category); err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Category{}, fmt.Errorf("category %s: %w", id, ErrNotFound)
		}
		return models.Category{}, fmt.Errorf("find category: %w", err)
	}
	return category, nil
}

// UpdateCategory renames a category, rejecting a name already taken by a
// different category.
func (s *CategoryService) UpdateCategory(ctx context.Context, id, name string) (models.Category, error) {
	categoryID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Category{}, fmt.Errorf("category id: %w", ErrInvalidID)
	}
	name = strings.TrimSpace(name)

	count, err := s.categories.CountDocuments(ctx, bson.M{
		"name": name,
		"_id":  bson.M{"$ne": categoryID},
	})
	if err != nil {
		return models.Category{}, fmt.Errorf("check category name: %w", err)
	}
	if count > 0 {
		return models.Category{}, fmt.Errorf("category %q: %w", name, ErrDuplicate)
	}

	var updated models.Category
	err = s.categories.FindOneAndUpdate(ctx,
		bson.M{"_id": categoryID},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "name", Value: name},
			{Key: "updated_at", Value: time.Now()},
		}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Category{}, fmt.Errorf("category %s: %w", id, ErrNotFound)
		}
		if mongo.IsDuplicateKeyError(err) {
			return models.Category{}, fmt.Errorf("category %q: %w", name, ErrDuplicate)
		}
		return models.Category{}, fmt.Errorf("update category: %w", err)
	}
	return updated, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id string) (models.Category, error) {
	categoryID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Category{}, fmt.Errorf("category id: %w", ErrInvalidID)
	}

	var deleted models.Category
	if err := s.categories.FindOneAndDelete(ctx, bson.M{"_id": categoryID}).Decode(&deleted); err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Category{}, fmt.Errorf("category %s: %w", id, ErrNotFound)
		}
		return models.Category{}, fmt.Errorf("delete category: %w", err)
	}
	return deleted, nil
}
