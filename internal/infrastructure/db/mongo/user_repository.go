package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/userhub/account-system/internal/core/domain"
)

const userCollection = "users"

// MongoUserRepository persists user accounts in the users collection.
// Unique indexes on email and username are the atomic backstop behind the
// service-level conflict checks.
type MongoUserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{coll: db.Collection(userCollection)}
}

// EnsureIndexes creates the unique email and username indexes. Call once at
// startup; it is idempotent.
func (r *MongoUserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return fmt.Errorf("create user indexes: %w", err)
	}
	return nil
}

type mongoUser struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Email       string             `bson:"email"`
	Username    string             `bson:"username"`
	LastName    string             `bson:"last_name"`
	FirstName   string             `bson:"first_name"`
	Password    string             `bson:"password"`
	BirthDate   *time.Time         `bson:"birth_date,omitempty"`
	City        string             `bson:"city,omitempty"`
	Country     string             `bson:"country,omitempty"`
	CountryCode string             `bson:"country_code,omitempty"`
	Avatar      string             `bson:"avatar,omitempty"`
	Company     string             `bson:"company,omitempty"`
	JobPosition string             `bson:"job_position,omitempty"`
	Mobile      string             `bson:"mobile,omitempty"`
	Role        string             `bson:"role"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func toDoc(u *domain.User) mongoUser {
	return mongoUser{
		Email:       u.Email,
		Username:    u.Username,
		LastName:    u.LastName,
		FirstName:   u.FirstName,
		Password:    u.Password,
		BirthDate:   u.BirthDate,
		City:        u.City,
		Country:     u.Country,
		CountryCode: u.CountryCode,
		Avatar:      u.Avatar,
		Company:     u.Company,
		JobPosition: u.JobPosition,
		Mobile:      u.Mobile,
		Role:        string(u.Role),
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func toUser(mu mongoUser) *domain.User {
	return &domain.User{
		ID:          mu.ID.Hex(),
		Email:       mu.Email,
		Username:    mu.Username,
		LastName:    mu.LastName,
		FirstName:   mu.FirstName,
		Password:    mu.Password,
		BirthDate:   mu.BirthDate,
		City:        mu.City,
		Country:     mu.Country,
		CountryCode: mu.CountryCode,
		Avatar:      mu.Avatar,
		Company:     mu.Company,
		JobPosition: mu.JobPosition,
		Mobile:      mu.Mobile,
		Role:        domain.ParseRole(mu.Role),
		CreatedAt:   mu.CreatedAt.UTC(),
		UpdatedAt:   mu.UpdatedAt.UTC(),
	}
}

// Insert persists a new user. Audit timestamps are set here; a duplicate key
// on either unique index surfaces as ErrUserExists.
func (r *MongoUserRepository) Insert(ctx context.Context, user *domain.User) (*domain.User, error) {
	doc := toDoc(user)
	now := time.Now().UTC()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return toUser(doc), nil
}

func (r *MongoUserRepository) FindByEmailOrUsername(ctx context.Context, email, username string) (*domain.User, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"email": email},
		bson.M{"username": username},
	}}
	return r.findOne(ctx, filter)
}

func (r *MongoUserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var mu mongoUser
	if err := r.coll.FindOne(ctx, filter).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return toUser(mu), nil
}

// ListAll returns every user, password omitted at the query level.
func (r *MongoUserRepository) ListAll(ctx context.Context) ([]domain.User, error) {
	opts := options.Find().
		SetProjection(bson.M{"password": 0}).
		SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []domain.User
	for cursor.Next(ctx) {
		var mu mongoUser
		if err := cursor.Decode(&mu); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		users = append(users, *toUser(mu))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
