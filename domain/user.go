package domain

import "context"

const InitialRating = 1000

type User struct {
	UUID     string `gorm:"type:uuid;primaryKey;default:gen_random_uuid();column:uuid" json:"id"`
	Username string `gorm:"type:varchar(50);unique;not null;column:username" json:"username"`
	Password string `gorm:"type:varchar(255);not null;column:password" json:"-"`
	Email    string `gorm:"type:varchar(255);column:email" json:"email"`
	Rating   int    `gorm:"type:int;default:1000;column:rating" json:"rating"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// UserResponse is the public projection of a User. The password hash never
// leaves the repository layer through any other path.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Rating   int    `json:"rating"`
}

func (u *User) Public() UserResponse {
	return UserResponse{
		ID:       u.UUID,
		Username: u.Username,
		Email:    u.Email,
		Rating:   u.Rating,
	}
}

type AuthRepository interface {
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	CreateUser(ctx context.Context, user *User) error
}
