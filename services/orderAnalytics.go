package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// FoodCount is one row of the most-sold-foods report.
type FoodCount struct {
	Food  string `bson:"food" json:"food"`
	Count int    `bson:"count" json:"count"`
}

// MonthRevenue is one bucket of the monthly revenue report. Orders from
// different years land in the same month bucket.
type MonthRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

var monthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// GetOrderCount returns the total number of orders.
func (s *OrderService) GetOrderCount(ctx context.Context) (int64, error) {
	count, err := s.orders.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return count, nil
}

// GetTotalRevenue sums the amount of every order. Zero orders means zero
// revenue, not an error.
func (s *OrderService) GetTotalRevenue(ctx context.Context) (float64, error) {
	groupStage := bson.D{{Key: "$group", Value: bson.D{
		{Key: "_id", Value: nil},
		{Key: "total_revenue", Value: bson.D{{Key: "$sum", Value: "$amount"}}},
	}}}

	cursor, err := s.orders.Aggregate(ctx, mongo.Pipeline{groupStage})
	if err != nil {
		return 0, fmt.Errorf("total revenue: %w", err)
	}

	var results []struct {
		TotalRevenue float64 `bson:"total_revenue"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("decode total revenue: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].TotalRevenue, nil
}

// GetMostSoldFoods groups line items by food, sums quantities and returns
// the top entries with the food name joined in. Equal counts are broken by
// food id ascending so the result is reproducible.
func (s *OrderService) GetMostSoldFoods(ctx context.Context, limit int) ([]FoodCount, error) {
	if limit <= 0 {
		limit = 6
	}

	groupStage := bson.D{{Key: "$group", Value: bson.D{
		{Key: "_id", Value: "$food"},
		{Key: "count", Value: bson.D{{Key: "$sum", Value: "$quantity"}}},
	}}}
	sortStage := bson.D{{Key: "$sort", Value: bson.D{
		{Key: "count", Value: -1},
		{Key: "_id", Value: 1},
	}}}
	limitStage := bson.D{{Key: "$limit", Value: int64(limit)}}
	lookupStage := bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: "food"},
		{Key: "localField", Value: "_id"},
		{Key: "foreignField", Value: "_id"},
		{Key: "as", Value: "food_info"},
	}}}
	unwindStage := bson.D{{Key: "$unwind", Value: "$food_info"}}
	projectStage := bson.D{{Key: "$project", Value: bson.D{
		{Key: "_id", Value: 0},
		{Key: "food", Value: "$food_info.name"},
		{Key: "count", Value: 1},
	}}}

	cursor, err := s.details.Aggregate(ctx, mongo.Pipeline{
		groupStage, sortStage, limitStage, lookupStage, unwindStage, projectStage,
	})
	if err != nil {
		return nil, fmt.Errorf("most sold foods: %w", err)
	}

	results := []FoodCount{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("decode most sold foods: %w", err)
	}
	return results, nil
}

// GetMonthlyRevenue buckets orders by the calendar month of their creation
// timestamp, sums amounts per bucket and labels the buckets Jan..Dec,
// sorted ascending by month number.
func (s *OrderService) GetMonthlyRevenue(ctx context.Context) ([]MonthRevenue, error) {
	groupStage := bson.D{{Key: "$group", Value: bson.D{
		{Key: "_id", Value: bson.D{{Key: "$month", Value: "$created_at"}}},
		{Key: "revenue", Value: bson.D{{Key: "$sum", Value: "$amount"}}},
	}}}
	sortStage := bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}}

	cursor, err := s.orders.Aggregate(ctx, mongo.Pipeline{groupStage, sortStage})
	if err != nil {
		return nil, fmt.Errorf("monthly revenue: %w", err)
	}

	var buckets []struct {
		Month   int     `bson:"_id"`
		Revenue float64 `bson:"revenue"`
	}
	if err := cursor.All(ctx, &buckets); err != nil {
		return nil, fmt.Errorf("decode monthly revenue: %w", err)
	}

	results := make([]MonthRevenue, 0, len(buckets))
	for _, bucket := range buckets {
		if bucket.Month < 1 || bucket.Month > 12 {
			continue
		}
		results = append(results, MonthRevenue{
			Month:   monthNames[bucket.Month-1],
			Revenue: bucket.Revenue,
		})
	}
	return results, nil
}
