package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type Group struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name      string               `bson:"name" json:"name"`
	Members   []primitive.ObjectID `bson:"members" json:"members"`
	Tasks     []primitive.ObjectID `bson:"tasks" json:"tasks"`
	CreatedBy primitive.ObjectID   `bson:"createdBy" json:"createdBy"`
}

// HasMember проверяет членство в группе. Создатель всегда добавляется
// в members при создании, поэтому отдельной ветки для него не нужно.
func (g Group) HasMember(id primitive.ObjectID) bool {
	for _, m := range g.Members {
		if m == id {
			return true
		}
	}
	return false
}

// GroupView - группа с разрешенными ссылками на участников и создателя
type GroupView struct {
	ID        primitive.ObjectID   `json:"id"`
	Name      string               `json:"name"`
	Members   []UserRef            `json:"members"`
	Tasks     []primitive.ObjectID `json:"tasks"`
	CreatedBy UserRef              `json:"createdBy"`
}
