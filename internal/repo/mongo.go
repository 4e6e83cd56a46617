package repo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrorNotFound = errors.New("not found")
	ErrorConflict = errors.New("conflict")
)

const (
	usersCollection  = "users"
	groupsCollection = "groups"
	tasksCollection  = "tasks"
)

// mapError переводит ошибки драйвера в доменные
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrorNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return ErrorConflict
	}
	return err
}

// EnsureIndexes создает уникальный индекс по email при старте
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
