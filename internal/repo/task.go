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

type TaskRepo struct { // Репозиторий для работы непосредственно с коллекцией tasks
	coll *mongo.Collection
}

func NewTaskRepo(db *mongo.Database) *TaskRepo { // Конструктор
	return &TaskRepo{
		coll: db.Collection(tasksCollection),
	}
}

func (r *TaskRepo) Create(ctx context.Context, t model.Task) (model.Task, error) {
	t.ID = primitive.NewObjectID()

	if _, err := r.coll.InsertOne(ctx, t); err != nil {
		return t, mapError(err)
	}
	return t, nil
}

func (r *TaskRepo) GetByID(ctx context.Context, id primitive.ObjectID) (model.Task, error) {
	var t model.Task
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&t)
	return t, mapError(err)
}

// FindVisible возвращает задачи, созданные пользователем, плюс задачи
// из переданных групп
func (r *TaskRepo) FindVisible(ctx context.Context, userID primitive.ObjectID, groupIDs []primitive.ObjectID) ([]model.Task, error) {
	if groupIDs == nil {
		groupIDs = []primitive.ObjectID{}
	}
	filter := bson.M{"$or": []bson.M{
		{"createdBy": userID},
		{"group": bson.M{"$in": groupIDs}},
	}}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	tasks := make([]model.Task, 0)
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status model.TaskStatus) (model.Task, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var t model.Task
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
		opts,
	).Decode(&t)
	return t, mapError(err)
}

// DueReminders возвращает задачи с наступившим и еще не отработанным напоминанием
func (r *TaskRepo) DueReminders(ctx context.Context, now time.Time, limit int64) ([]model.Task, error) {
	filter := bson.M{
		"remind_at": bson.M{"$lte": now},
		"reminded":  false,
	}

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	tasks := make([]model.Task, 0)
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// MarkReminded забирает напоминание: ErrorNotFound, если его уже
// отработал другой воркер
func (r *TaskRepo) MarkReminded(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id, "reminded": false},
		bson.M{"$set": bson.M{"reminded": true}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrorNotFound
	}
	return nil
}
