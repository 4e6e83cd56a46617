package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TaskStatus string

const (
	StatusInProgress TaskStatus = "In Progress"
	StatusDone       TaskStatus = "Done"
	StatusPaused     TaskStatus = "Paused"
	StatusRevision   TaskStatus = "Revision"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusInProgress, StatusDone, StatusPaused, StatusRevision:
		return true
	}
	return false
}

type Task struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name        string              `bson:"name" json:"name"`
	Description string              `bson:"description" json:"description"`
	Deadline    time.Time           `bson:"deadline" json:"deadline"`
	RemindAt    *time.Time          `bson:"remind_at,omitempty" json:"remind_at,omitempty"`
	Reminded    bool                `bson:"reminded" json:"-"`
	Status      TaskStatus          `bson:"status" json:"status"`
	Category    string              `bson:"category" json:"category"`
	CreatedBy   primitive.ObjectID  `bson:"createdBy" json:"createdBy"`
	GroupID     *primitive.ObjectID `bson:"group,omitempty" json:"group,omitempty"` // nil - личная задача
}

// TaskGroupRef - состав группы-владельца рядом с задачей
type TaskGroupRef struct {
	ID        primitive.ObjectID   `json:"id"`
	Members   []primitive.ObjectID `json:"members"`
	CreatedBy primitive.ObjectID   `json:"createdBy"`
}

// TaskView - задача с разрешенными ссылками на создателя и группу
type TaskView struct {
	Task
	Creator *UserRef      `json:"creator,omitempty"`
	Group   *TaskGroupRef `json:"groupInfo,omitempty"`
}
