package entity

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID             string    `db:"id"`
	Username       string    `db:"username"`
	Email          string    `db:"email"`
	Password       string    `db:"password"`
	FullName       string    `db:"full_name"`
	Avatar         string    `db:"avatar"`
	Bio            string    `db:"bio"`
	Role           string    `db:"role"`
	FollowersCount int       `db:"followers_count"`
	FollowingCount int       `db:"following_count"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// UserLoginData is the identity the token middleware attaches to the request
// context. It never carries the password hash.
type UserLoginData struct {
	ID       string
	Username string
	Email    string
	Role     string
}
