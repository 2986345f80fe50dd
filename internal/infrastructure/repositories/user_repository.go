package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/Devdynamow/Ecommerce-backend-New/domain"
)

// UserRepositoryImpl implements domain.UserRepository on the document store
type UserRepositoryImpl struct {
	coll *mongo.Collection
}

// DBUser represents the stored document for User (with bson tags)
type DBUser struct {
	ID            bson.ObjectID `bson:"_id,omitempty"`
	Name          string        `bson:"name"`
	Username      string        `bson:"username"`
	Email         string        `bson:"email"`
	PasswordHash  string        `bson:"password"`
	Bio           string        `bson:"bio,omitempty"`
	ProfileImage  []byte        `bson:"profile_image,omitempty"`
	ImageMimeType string        `bson:"image_mime_type,omitempty"`
	Interests     []string      `bson:"interests,omitempty"`
	IsSeller      bool          `bson:"is_seller"`
	Followers     []string      `bson:"followers,omitempty"`
	Following     []string      `bson:"following,omitempty"`
	CreatedAt     time.Time     `bson:"created_at"`
	UpdatedAt     time.Time     `bson:"updated_at"`
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *mongo.Database) domain.UserRepository {
	return &UserRepositoryImpl{coll: db.Collection("users")}
}

// Create implements domain.UserRepository. A duplicate email surfaces as
// domain.ErrEmailTaken via the unique index, regardless of any pre-check
// the caller ran.
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	dbUser.ID = bson.NewObjectID()
	dbUser.CreatedAt = time.Now()
	dbUser.UpdatedAt = dbUser.CreatedAt

	if _, err := r.coll.InsertOne(ctx, dbUser); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEmailTaken
		}
		return err
	}

	user.ID = dbUser.ID.Hex()
	user.CreatedAt = dbUser.CreatedAt
	user.UpdatedAt = dbUser.UpdatedAt
	return nil
}

// FindByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var dbUser DBUser
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&dbUser)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	var dbUser DBUser
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&dbUser)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// UpdateProfile implements domain.UserRepository with a partial $set built
// from the fields actually supplied
func (r *UserRepositoryImpl) UpdateProfile(ctx context.Context, id string, update *domain.ProfileUpdate) (*domain.User, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	set := bson.M{"updated_at": time.Now()}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Username != nil {
		set["username"] = *update.Username
	}
	if update.Bio != nil {
		set["bio"] = *update.Bio
	}
	if update.Interests != nil {
		set["interests"] = update.Interests
	}
	if update.IsSeller != nil {
		set["is_seller"] = *update.IsSeller
	}
	if update.Image != nil {
		set["profile_image"] = update.Image
		set["image_mime_type"] = update.ImageMime
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var dbUser DBUser
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&dbUser)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// UpdatePasswordByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{
		"password":   passwordHash,
		"updated_at": time.Now(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrEmailNotFound
	}
	return nil
}

// AddFollower implements domain.UserRepository using set semantics on both
// sides of the relationship
func (r *UserRepositoryImpl) AddFollower(ctx context.Context, sellerID, followerID string) error {
	sellerOID, err := bson.ObjectIDFromHex(sellerID)
	if err != nil {
		return domain.ErrSellerNotFound
	}
	followerOID, err := bson.ObjectIDFromHex(followerID)
	if err != nil {
		return domain.ErrUserNotFound
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": sellerOID, "is_seller": true},
		bson.M{"$addToSet": bson.M{"followers": followerID}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrSellerNotFound
	}

	_, err = r.coll.UpdateOne(ctx,
		bson.M{"_id": followerOID},
		bson.M{"$addToSet": bson.M{"following": sellerID}})
	return err
}

// RemoveFollower implements domain.UserRepository; removing an absent
// relationship is a no-op
func (r *UserRepositoryImpl) RemoveFollower(ctx context.Context, sellerID, followerID string) error {
	sellerOID, err := bson.ObjectIDFromHex(sellerID)
	if err != nil {
		return domain.ErrSellerNotFound
	}
	followerOID, err := bson.ObjectIDFromHex(followerID)
	if err != nil {
		return domain.ErrUserNotFound
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": sellerOID},
		bson.M{"$pull": bson.M{"followers": followerID}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrSellerNotFound
	}

	_, err = r.coll.UpdateOne(ctx,
		bson.M{"_id": followerOID},
		bson.M{"$pull": bson.M{"following": sellerID}})
	return err
}

// domainToDB converts domain user to stored document
func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	return &DBUser{
		Name:          user.Name,
		Username:      user.Username,
		Email:         user.Email,
		PasswordHash:  user.PasswordHash,
		Bio:           user.Bio,
		ProfileImage:  user.ProfileImage,
		ImageMimeType: user.ImageMimeType,
		Interests:     user.Interests,
		IsSeller:      user.IsSeller,
		Followers:     user.Followers,
		Following:     user.Following,
	}
}

// dbToDomain converts stored document to domain user
func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:            dbUser.ID.Hex(),
		Name:          dbUser.Name,
		Username:      dbUser.Username,
		Email:         dbUser.Email,
		PasswordHash:  dbUser.PasswordHash,
		Bio:           dbUser.Bio,
		ProfileImage:  dbUser.ProfileImage,
		ImageMimeType: dbUser.ImageMimeType,
		Interests:     dbUser.Interests,
		IsSeller:      dbUser.IsSeller,
		Followers:     dbUser.Followers,
		Following:     dbUser.Following,
		CreatedAt:     dbUser.CreatedAt,
		UpdatedAt:     dbUser.UpdatedAt,
	}
}
