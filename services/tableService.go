package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/psalmsin1759/menuja-backend/config"
	"github.com/psalmsin1759/menuja-backend/models"

	qrcode "github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RestaurantTableService struct {
	tables *mongo.Collection
	cfg    config.Config
}

func NewRestaurantTableService(db *mongo.Database, cfg config.Config) *RestaurantTableService {
	return &RestaurantTableService{tables: db.Collection("table"), cfg: cfg}
}

// TableUpdate carries the fields a caller may patch on a table.
type TableUpdate struct {
	Name *string `json:"name,omitempty"`
	Url  *string `json:"url,omitempty"`
}

// CreateTable inserts a table and generates the QR code PNG that diners
// scan to open its menu. The PNG path and the encoded URL are stored on
// the document.
func (s *RestaurantTableService) CreateTable(ctx context.Context, table models.RestaurantTable) (models.RestaurantTable, error) {
	now := time.Now()
	table.ID = primitive.NewObjectID()
	table.Created_at = now
	table.Updated_at = now

	url := fmt.Sprintf("%s:%s/table/%s", s.cfg.Host, s.cfg.Port, table.ID.Hex())
	table.Url = &url

	if err := os.MkdirAll(s.cfg.QRDir, 0o755); err != nil {
		return models.RestaurantTable{}, fmt.Errorf("create qr dir: %w", err)
	}
	path := filepath.Join(s.cfg.QRDir, table.ID.Hex()+".png")
	if err := qrcode.WriteFile(url, qrcode.Medium, 256, path); err != nil {
		return models.RestaurantTable{}, fmt.Errorf("write qr code: %w", err)
	}
	table.Qr_code_path = &path

	if _, err := s.tables.InsertOne(ctx, table); err != nil {
		return models.RestaurantTable{}, fmt.Errorf("insert table: %w", err)
	}
	return table, nil
}

func (s *RestaurantTableService) GetAllTables(ctx context.Context) ([]models.RestaurantTable, error) {
	cursor, err := s.tables.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}

	var tables []models.RestaurantTable
	if err := cursor.All(ctx, &tables); err != nil {
		return nil, fmt.Errorf("decode tables: %w", err)
	}
	return tables, nil
}

func (s *RestaurantTableService) GetTableByID(ctx context.Context, id string) (models.RestaurantTable, error) {
	tableID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.RestaurantTable{}, fmt.Errorf("table id: %w", ErrInvalidID)
	}

	var table models.RestaurantTable
	if err := s.tables.FindOne(ctx, bson.M{"_id": tableID}).Decode(&table); err != nil {
		if err == mongo.ErrNoDocuments {
			return models.RestaurantTable{}, fmt.Errorf("table %s: %w", id, ErrNotFound)
		}
		return models.RestaurantTable{}, fmt.Errorf("find table: %w", err)
	}
	return table, nil
}

func (s *RestaurantTableService) UpdateTable(ctx context.Context, id string, update TableUpdate) (models.RestaurantTable, error) {
	tableID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.RestaurantTable{}, fmt.Errorf("table id: %w", ErrInvalidID)
	}

	var updateObj primitive.D
	if update.Name != nil {
		updateObj = append(updateObj, bson.E{Key: "name", Value: update.Name})
	}
	if update.Url != nil {
		updateObj = append(updateObj, bson.E{Key: "url", Value: update.Url})
	}
	updateObj = append(updateObj, bson.E{Key: "updated_at", Value: time.Now()})

	var updated models.RestaurantTable
	err = s.tables.FindOneAndUpdate(ctx,
		bson.M{"_id": tableID},
		bson.D{{Key: "$set", Value: updateObj}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.RestaurantTable{}, fmt.Errorf("table %s: %w", id, ErrNotFound)
		}
		return models.RestaurantTable{}, fmt.Errorf("update table: %w", err)
	}
	return updated, nil
}

// DeleteTable removes the table document and its generated QR code image.
func (s *RestaurantTableService) DeleteTable(ctx context.Context, id string) (models.RestaurantTable, error) {
	tableID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.RestaurantTable{}, fmt.Errorf("table id: %w", ErrInvalidID)
	}

	var deleted models.RestaurantTable
	if err := s.tables.FindOneAndDelete(ctx, bson.M{"_id": tableID}).Decode(&deleted); err != nil {
		if err == mongo.ErrNoDocuments {
			return models.RestaurantTable{}, fmt.Errorf("table %s: %w", id, ErrNotFound)
		}
		return models.RestaurantTable{}, fmt.Errorf("delete table: %w", err)
	}

	if deleted.Qr_code_path != nil {
		_ = os.Remove(*deleted.Qr_code_path)
	}
	return deleted, nil
}
