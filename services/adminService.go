package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/psalmsin1759/menuja-backend/helpers"
	"github.com/psalmsin1759/menuja-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

type AdminService struct {
	admins *mongo.Collection
}

func NewAdminService(db *mongo.Database) *AdminService {
	return &AdminService{admins: db.Collection("admin")}
}

// AdminUpdate carries the fields a caller may patch on an admin. Password
// changes go through ChangePassword only.
type AdminUpdate struct {
	First_name *string `json:"first_name,omitempty" validate:"omitempty,min=2,max=100"`
	Last_name  *string `json:"last_name,omitempty" validate:"omitempty,min=2,max=100"`
	Phone      *string `json:"phone,omitempty"`
	Role       *string `json:"role,omitempty" validate:"omitempty,oneof=owner admin"`
	Is_active  *bool   `json:"is_active,omitempty"`
}

// CreateAdmin hashes the password and inserts the admin. The email check
// before the insert is only a fast path; the unique index on email is the
// real guarantee.
func (s *AdminService) CreateAdmin(ctx context.Context, admin models.Admin) (models.Admin, error) {
	email := strings.ToLower(strings.TrimSpace(*admin.Email))
	admin.Email = &email

	count, err := s.admins.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return models.Admin{}, fmt.Errorf("check admin email: %w", err)
	}
	if count > 0 {
		return models.Admin{}, fmt.Errorf("admin email %q: %w", email, ErrDuplicate)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(*admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.Admin{}, fmt.Errorf("hash password: %w", err)
	}
	password := string(hashed)
	admin.Password = &password

	if admin.Role == "" {
		admin.Role = "admin"
	}
	if admin.Is_active == nil {
		active := true
		admin.Is_active = &active
	}

	now := time.Now()
	admin.ID = primitive.NewObjectID()
	admin.Created_at = now
	admin.Updated_at = now

	if _, err := s.admins.InsertOne(ctx, admin); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.Admin{}, fmt.Errorf("admin email %q: %w", email, ErrDuplicate)
		}
		return models.Admin{}, fmt.Errorf("insert admin: %w", err)
	}

	admin.Password = nil
	return admin, nil
}

// Login verifies credentials and issues a signed token.
func (s *AdminService) Login(ctx context.Context, email, password string) (string, models.Admin, error) {
	var admin models.Admin
	err := s.admins.FindOne(ctx, bson.M{"email": strings.ToLower(strings.TrimSpace(email))}).Decode(&admin)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return "", models.Admin{}, fmt.Errorf("invalid email or password: %w", ErrNotFound)
		}
		return "", models.Admin{}, fmt.Errorf("find admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*admin.Password), []byte(password)); err != nil {
		return "", models.Admin{}, fmt.Errorf("invalid email or password: %w", ErrNotFound)
	}

	token, err := helpers.GenerateToken(admin.ID.Hex(), admin.Role)
	if err != nil {
		return "", models.Admin{}, err
	}

	admin.Password = nil
	return token, admin, nil
}

// UpdateAdmin applies a partial merge of the updatable fields.
func (s *AdminService) UpdateAdmin(ctx context.Context, id string, update AdminUpdate) (models.Admin, error) {
	adminID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Admin{}, fmt.Errorf("admin id: %w", ErrInvalidID)
	}

	var updateObj primitive.D
	if update.First_name != nil {
		updateObj = append(updateObj, bson.E{Key: "first_name", Value: update.First_name})
	}
	if update.Last_name != nil {
		updateObj = append(updateObj, bson.E{Key: "last_name", Value: update.Last_name})
	}
	if update.Phone != nil {
		updateObj = append(updateObj, bson.E{Key: "phone", Value: update.Phone})
	}
	if update.Role != nil {
		updateObj = append(updateObj, bson.E{Key: "role", Value: update.Role})
	}
	if update.Is_active != nil {
		updateObj = append(updateObj, bson.E{Key: "is_active", Value: update.Is_active})
	}
	updateObj = append(updateObj, bson.E{Key: "updated_at", Value: time.Now()})

	var updated models.Admin
	err = s.admins.FindOneAndUpdate(ctx,
		bson.M{"_id": adminID},
		bson.D{{Key: "$set", Value: updateObj}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Admin{}, fmt.Errorf("admin %s: %w", id, ErrNotFound)
		}
		return models.Admin{}, fmt.Errorf("update admin: %w", err)
	}

	updated.Password = nil
	return updated, nil
}

// ChangePassword verifies the old password before storing a new hash.
func (s *AdminService) ChangePassword(ctx context.Context, id, oldPassword, newPassword string) error {
	adminID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("admin id: %w", ErrInvalidID)
	}

	var admin models.Admin
	if err := s.admins.FindOne(ctx, bson.M{"_id": adminID}).Decode(&admin); err != nil {
		if err == mongo.ErrNoDocuments {
			return fmt.Errorf("admin %s: %w", id, ErrNotFound)
		}
		return fmt.Errorf("find admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*admin.Password), []byte(oldPassword)); err != nil {
		return fmt.Errorf("old password is incorrect")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	_, err = s.admins.UpdateOne(ctx,
		bson.M{"_id": adminID},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "password", Value: string(hashed)},
			{Key: "updated_at", Value: time.Now()},
		}}},
	)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

func (s *AdminService) DeleteAdmin(ctx context.Context, id string) (models.Admin, error) {
	adminID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Admin{}, fmt.Errorf("admin id: %w", ErrInvalidID)
	}

	var deleted models.Admin
	if err := s.admins.FindOneAndDelete(ctx, bson.M{"_id": adminID}).Decode(&deleted); err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Admin{}, fmt.Errorf("admin %s: %w", id, ErrNotFound)
		}
		return models.Admin{}, fmt.Errorf("delete admin: %w", err)
	}

	deleted.Password = nil
	return deleted, nil
}

// GetAllAdmins lists every admin with the password hash omitted.
func (s *AdminService) GetAllAdmins(ctx context.Context) ([]models.Admin, error) {
	cursor, err := s.admins.Find(ctx, bson.M{},
		options.Find().SetProjection(bson.M{"password": 0}))
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}

	var admins []models.Admin
	if err := cursor.All(ctx, &admins); err != nil {
		return nil, fmt.Errorf("decode admins: %w", err)
	}
	return admins, nil
}
