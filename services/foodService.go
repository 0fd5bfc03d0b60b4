package services

import (
	"context"
	"fmt"
	"time"

	"github.com/psalmsin1759/menuja-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FoodService struct {
	foods      *mongo.Collection
	categories *mongo.Collection
}

func NewFoodService(db *mongo.Database) *FoodService {
	return &FoodService{
		foods:      db.Collection("food"),
		categories: db.Collection("category"),
	}
}

// FoodUpdate carries the fields a caller may patch on a food item.
type FoodUpdate struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Description *string  `json:"description,omitempty"`
	Photo       *string  `json:"photo,omitempty"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Available   *bool    `json:"available,omitempty"`
	Feature     *bool    `json:"feature,omitempty"`
	Category    *string  `json:"category,omitempty"`
}

// CreateFood inserts a food item after checking the referenced category
// exists.
func (s *FoodService) CreateFood(ctx context.Context, food models.Food) (models.Food, error) {
	count, err := s.categories.CountDocuments(ctx, bson.M{"_id": food.Category})
	if err != nil {
		return models.Food{}, fmt.Errorf("check category: %w", err)
	}
	if count == 0 {
		return models.Food{}, fmt.Errorf("category %s: %w", food.Category.Hex(), ErrNotFound)
	}

	if food.Available == nil {
		available := true
		food.Available = &available
	}
	if food.Feature == nil {
		feature := false
		food.Feature = &feature
	}

	now := time.Now()
	food.ID = primitive.NewObjectID()
	food.Created_at = now
	food.Updated_at = now

	if _, err := s.foods.InsertOne(ctx, food); err != nil {
		return models.Food{}, fmt.Errorf("insert food: %w", err)
	}
	return food, nil
}

// GetAllFoods lists foods newest first with the category name joined in.
func (s *FoodService) GetAllFoods(ctx context.Context) ([]bson.M, error) {
	sortStage := bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}}
	lookupStage := bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: "category"},
		{Key: "localField", Value: "category"},
		{Key: "foreignField", Value: "_id"},
		{Key: "as", Value: "category_info"},
	}}}
	unwindStage := bson.D{{Key: "$unwind", Value: bson.D{
		{Key: "path", Value: "$category_info"},
		{Key: "preserveNullAndEmptyArrays", Value: true},
	}}}
	projectStage := bson.D{{Key: "$project", Value: bson.D{
		{Key: "category_info.created_at", Value: 0},
		{Key: "category_info.updated_at", Value: 0},
	}}}

	cursor, err := s.foods.Aggregate(ctx, mongo.Pipeline{sortStage, lookupStage, unwindStage, projectStage})
	if err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}

	var allFoods []bson.M
	if err := cursor.All(ctx, &allFoods); err != nil {
		return nil, fmt.Errorf("decode foods: %w", err)
	}
	return allFoods, nil
}

func (s *FoodService) GetFoodByID(ctx context.Context, id string) (bson.M, error) {
	foodID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("food id: %w", ErrInvalidID)
	}

	matchStage := bson.D{{Key: "$match", Value: bson.D{{Key: "_id", Value: foodID}}}}
	lookupStage := bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: "category"},
		{Key: "localField", Value: "category"},
		{Key: "foreignField", Value: "_id"},
		{Key: "as", Value: "category_info"},
	}}}
	unwindStage := bson.D{{Key: "$unwind", Value: bson.D{
		{Key: "path", Value: "$category_info"},
		{Key: "preserveNullAndEmptyArrays", Value: true},
	}}}

	cursor, err := s.foods.Aggregate(ctx, mongo.Pipeline{matchStage, lookupStage, unwindStage})
	if err != nil {
		return nil, fmt.Errorf("get food: %w", err)
	}

	var results []bson.M
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("decode food: %w", err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("food %s: %w", id, ErrNotFound)
	}
	return results[0], nil
}

func (s *FoodService) UpdateFood(ctx context.Context, id string, update FoodUpdate) (models.Food, error) {
	foodID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Food{}, fmt.Errorf("food id: %w", ErrInvalidID)
	}

	var updateObj primitive.D
	if update.Name != nil {
		updateObj = append(updateObj, bson.E{Key: "name", Value: update.Name})
	}
	if update.Description != nil {
		updateObj = append(updateObj, bson.E{Key: "description", Value: update.Description})
	}
	if update.Photo != nil {
		updateObj = append(updateObj, bson.E{Key: "photo", Value: update.Photo})
	}
	if update.Price != nil {
		updateObj = append(updateObj, bson.E{Key: "price", Value: update.Price})
	}
	if update.Available != nil {
		updateObj = append(updateObj, bson.E{Key: "available", Value: update.Available})
	}
	if update.Feature != nil {
		updateObj = append(updateObj, bson.E{Key: "feature", Value: update.Feature})
	}
	if update.Category != nil {
		categoryID, err := primitive.ObjectIDFromHex(*update.Category)
		if err != nil {
			return models.Food{}, fmt.Errorf("category id: %w", ErrInvalidID)
		}
		count, err := s.categories.CountDocuments(ctx, bson.M{"_id": categoryID})
		if err != nil {
			return models.Food{}, fmt.Errorf("check category: %w", err)
		}
		if count == 0 {
			return models.Food{}, fmt.Errorf("category %s: %w", *update.Category, ErrNotFound)
		}
		updateObj = append(updateObj, bson.E{Key: "category", Value: categoryID})
	}
	updateObj = append(updateObj, bson.E{Key: "updated_at", Value: time.Now()})

	var updated models.Food
	err = s.foods.FindOneAndUpdate(ctx,
		bson.M{"_id": foodID},
		bson.D{{Key: "$set", Value: updateObj}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Food{}, fmt.Errorf("food %s: %w", id, ErrNotFound)
		}
		return models.Food{}, fmt.Errorf("update food: %w", err)
	}
	return updated, nil
}

func (s *FoodService) DeleteFood(ctx context.Context, id string) (models.Food, error) {
	foodID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Food{}, fmt.Errorf("food id: %w", ErrInvalidID)
	}

	var deleted models.Food
	if err := s.foods.FindOneAndDelete(ctx, bson.M{"_id": foodID}).Decode(&deleted); err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Food{}, fmt.Errorf("food %s: %w", id, ErrNotFound)
		}
		return models.Food{}, fmt.Errorf("delete food: %w", err)
	}
	return deleted, nil
}
