package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username  string             `bson:"username" json:"username"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"` // bcrypt-хэш, наружу не отдается
	Role      int                `bson:"role" json:"role"`
	LastLogin time.Time          `bson:"last_login" json:"last_login"`
}

// UserRef - короткая форма пользователя для ссылок из других документов
type UserRef struct {
	ID       primitive.ObjectID `json:"id"`
	Username string             `json:"username"`
	Email    string             `json:"email"`
}

func (u User) Ref() UserRef {
	return UserRef{ID: u.ID, Username: u.Username, Email: u.Email}
}

// UserListing - проекция для списка пользователей (без лишних полей)
type UserListing struct {
	ID       primitive.ObjectID `bson:"_id" json:"id"`
	Username string             `bson:"username" json:"username"`
	Email    string             `bson:"email" json:"email"`
	Role     int                `bson:"role" json:"role"`
}

const DefaultRole = 1
