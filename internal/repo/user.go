package repo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/taskhub/taskhub-api/internal/model"
)

type UserRepo struct { // Репозиторий для работы непосредственно с коллекцией users
	coll *mongo.Collection
}

func NewUserRepo(db *mongo.Database) *UserRepo { // Конструктор
	return &UserRepo{
		coll: db.Collection(usersCollection),
	}
}

func (r *UserRepo) Create(ctx context.Context, u model.User) (model.User, error) {
	u.ID = primitive.NewObjectID()

	// Дубликат email ловится уникальным индексом
	if _, err := r.coll.InsertOne(ctx, u); err != nil {
		return u, mapError(err)
	}
	return u, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (model.User, error) {
	var u model.User
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	return u, mapError(err)
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	var u model.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	return u, mapError(err)
}

func (r *UserRepo) List(ctx context.Context) ([]model.UserListing, error) {
	opts := options.Find().SetProjection(bson.M{"username": 1, "email": 1, "role": 1})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := make([]model.UserListing, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepo) UpdateRole(ctx context.Context, id primitive.ObjectID, role int) (model.User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var u model.User
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"role": role}},
		opts,
	).Decode(&u)
	return u, mapError(err)
}

func (r *UserRepo) SetLastLogin(ctx context.Context, id primitive.ObjectID, at time.Time) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"last_login": at}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrorNotFound
	}
	return nil
}
