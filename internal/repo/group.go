package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskhub/taskhub-api/internal/model"
)

type GroupRepo struct { // Репозиторий для работы непосредственно с коллекцией groups
	coll *mongo.Collection
}

func NewGroupRepo(db *mongo.Database) *GroupRepo { // Конструктор
	return &GroupRepo{
		coll: db.Collection(groupsCollection),
	}
}

func (r *GroupRepo) Create(ctx context.Context, g model.Group) (model.Group, error) {
	g.ID = primitive.NewObjectID()
	if g.Tasks == nil {
		g.Tasks = []primitive.ObjectID{}
	}

	if _, err := r.coll.InsertOne(ctx, g); err != nil {
		return g, mapError(err)
	}
	return g, nil
}

func (r *GroupRepo) GetByID(ctx context.Context, id primitive.ObjectID) (model.Group, error) {
	var g model.Group
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&g)
	return g, mapError(err)
}

// FindByUser возвращает группы, где пользователь участник или создатель
func (r *GroupRepo) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]model.Group, error) {
	filter := bson.M{"$or": []bson.M{
		{"members": userID},
		{"createdBy": userID},
	}}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	groups := make([]model.Group, 0)
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *GroupRepo) AppendTask(ctx context.Context, groupID, taskID primitive.ObjectID) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": groupID},
		bson.M{"$addToSet": bson.M{"tasks": taskID}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrorNotFound
	}
	return nil
}

func (r *GroupRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrorNotFound
	}
	return nil
}
