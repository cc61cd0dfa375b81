package authRepository

import (
	"BlogSpace/internal/entity"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
	// GetUserByID satisfies middleware.UserStore so the token middleware can
	// confirm a token's subject still exists.
	GetUserByID(ctx context.Context, id string) (entity.User, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Users:    &userRepository{q: sqlExecutor, log: r.log},
		Follows:  &followRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

func (r *repository) GetUserByID(ctx context.Context, id string) (entity.User, error) {
	users := &userRepository{q: r.DB, log: r.log}
	return users.GetByID(ctx, id)
}

type Client struct {
	Users interface {
		CreateUser(ctx context.Context, user entity.User) error
		GetByID(ctx context.Context, id string) (entity.User, error)
		GetByUsername(ctx context.Context, username string) (entity.User, error)
		GetByEmail(ctx context.Context, email string) (entity.User, error)
		UpdateProfile(ctx context.Context, user entity.User) error
		UpdatePassword(ctx context.Context, email string, passwordHash string) error
		DeleteUser(ctx context.Context, id string) error
	}

	Follows interface {
		Follow(ctx context.Context, followerID, followeeID string) error
		Unfollow(ctx context.Context, followerID, followeeID string) error
	}

	Commit   func() error
	Rollback func() error
}

type userRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type followRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
