package services

import (
	"context"
	"fmt"
	"time"

	"github.com/psalmsin1759/menuja-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type QrScanService struct {
	scans *mongo.Collection
}

func NewQrScanService(db *mongo.Database) *QrScanService {
	return &QrScanService{scans: db.Collection("qrScan")}
}

// RecordScan logs one scan of a table's QR code with the caller's IP and
// user agent when available.
func (s *QrScanService) RecordScan(ctx context.Context, tableID string, scannedByIP, userAgent *string) (models.QrCodeScan, error) {
	tid, err := primitive.ObjectIDFromHex(tableID)
	if err != nil {
		return models.QrCodeScan{}, fmt.Errorf("table id: %w", ErrInvalidID)
	}

	now := time.Now()
	scan := models.QrCodeScan{
		Table_id:      tid,
		Scanned_at:    now,
		Scanned_by_ip: scannedByIP,
		User_agent:    userAgent,
	}
	scan.ID = primitive.NewObjectID()
	scan.Created_at = now
	scan.Updated_at = now

	if _, err := s.scans.InsertOne(ctx, scan); err != nil {
		return models.QrCodeScan{}, fmt.Errorf("insert scan: %w", err)
	}
	return scan, nil
}

// GetAllScans lists scans newest first with the table name joined in.
func (s *QrScanService) GetAllScans(ctx context.Context) ([]bson.M, error) {
	return s.listScans(ctx, bson.D{})
}

// GetScansByTable lists the scans of one table, newest first.
func (s *QrScanService) GetScansByTable(ctx context.Context, tableID string) ([]bson.M, error) {
	tid, err := primitive.ObjectIDFromHex(tableID)
	if err != nil {
		return nil, fmt.Errorf("table id: %w", ErrInvalidID)
	}
	return s.listScans(ctx, bson.D{{Key: "table_id", Value: tid}})
}

func (s *QrScanService) listScans(ctx context.Context, filter bson.D) ([]bson.M, error) {
	matchStage := bson.D{{Key: "$match", Value: filter}}
	sortStage := bson.D{{Key: "$sort", Value: bson.D{{Key: "scanned_at", Value: -1}}}}
	lookupStage := bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: "table"},
		{Key: "localField", Value: "table_id"},
		{Key: "foreignField", Value: "_id"},
		{Key: "as", Value: "table_info"},
	}}}
	unwindStage := bson.D{{Key: "$unwind", Value: bson.D{
		{Key: "path", Value: "$table_info"},
		{Key: "preserveNullAndEmptyArrays", Value: true},
	}}}
	projectStage := bson.D{{Key: "$project", Value: bson.D{
		{Key: "table_id", Value: 1},
		{Key: "scanned_at", Value: 1},
		{Key: "scanned_by_ip", Value: 1},
		{Key: "user_agent", Value: 1},
		{Key: "table_name", Value: "$table_info.name"},
	}}}

	cursor, err := s.scans.Aggregate(ctx, mongo.Pipeline{matchStage, sortStage, lookupStage, unwindStage, projectStage})
	if err != nil {
		return nil, fmt.Errorf("list scans: %w", err)
	}

	var scans []bson.M
	if err := cursor.All(ctx, &scans); err != nil {
		return nil, fmt.Errorf("decode scans: %w", err)
	}
	return scans, nil
}

func (s *QrScanService) DeleteScan(ctx context.Context, id string) (models.QrCodeScan, error) {
	scanID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.QrCodeScan{}, fmt.Errorf("scan id: %w", ErrInvalidID)
	}

	var deleted models.QrCodeScan
	if err := s.scans.FindOneAndDelete(ctx, bson.M{"_id": scanID}).Decode(&deleted); err != nil {
		if err == mongo.ErrNoDocuments {
			return models.QrCodeScan{}, fmt.Errorf("scan %s: %w", id, ErrNotFound)
		}
		return models.QrCodeScan{}, fmt.Errorf("delete scan: %w", err)
	}
	return deleted, nil
}
