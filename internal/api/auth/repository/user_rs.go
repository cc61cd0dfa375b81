package authRepository

import (
	"BlogSpace/internal/api/auth"
	"BlogSpace/internal/entity"
	contextPkg "BlogSpace/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type UserDB struct {
	ID             sql.NullString `db:"id"`
	Username       sql.NullString `db:"username"`
	Email          sql.NullString `db:"email"`
	Password       sql.NullString `db:"password"`
	FullName       sql.NullString `db:"full_name"`
	Avatar         sql.NullString `db:"avatar"`
	Bio            sql.NullString `db:"bio"`
	Role           sql.NullString `db:"role"`
	FollowersCount int            `db:"followers_count"`
	FollowingCount int            `db:"following_count"`
	CreatedAt      sql.NullTime   `db:"created_at"`
	UpdatedAt      sql.NullTime   `db:"updated_at"`
}

func (r *userRepository) CreateUser(c context.Context, user entity.User) error {
	requestID := contextPkg.GetRequestID(c)
	now := time.Now()
	argsKV := map[string]interface{}{
		"id":         user.ID,
		"username":   user.Username,
		"email":      user.Email,
		"password":   user.Password,
		"full_name":  user.FullName,
		"role":       user.Role,
		"created_at": now,
		"updated_at": now,
	}

	query, args, err := sqlx.Named(queryCreateUser, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateUser")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(c, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			switch pqErr.Constraint {
			case "users_username_key":
				r.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"username":   user.Username,
				}).Warn("Username already exists")
				return auth.ErrUsernameAlreadyExists
			case "users_email_key":
				r.log.WithFields(logrus.Fields{
					"request_id": requestID,
				}).Warn("Email already exists")
				return auth.ErrEmailAlreadyExists
			}
		}

		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating user")
		return err
	}

	return nil
}

func (r *userRepository) GetByID(c context.Context, id string) (entity.User, error) {
	return r.getOne(c, queryGetUserByID, map[string]interface{}{"id": id})
}

func (r *userRepository) GetByUsername(c context.Context, username string) (entity.User, error) {
	return r.getOne(c, queryGetUserByUsername, map[string]interface{}{"username": username})
}

func (r *userRepository) GetByEmail(c context.Context, email string) (entity.User, error) {
	return r.getOne(c, queryGetUserByEmail, map[string]interface{}{"email": email})
}

func (r *userRepository) getOne(c context.Context, namedQuery string, argsKV map[string]interface{}) (entity.User, error) {
	requestID := contextPkg.GetRequestID(c)
	var user UserDB

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("User query preparation err")
		return entity.User{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&user); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.User{}, auth.ErrUserNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("User query execution err")
		return entity.User{}, err
	}

	return makeUser(user), nil
}

func (r *userRepository) UpdateProfile(c context.Context, user entity.User) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         user.ID,
		"full_name":  user.FullName,
		"avatar":     user.Avatar,
		"bio":        user.Bio,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateProfile, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateProfile named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateProfile execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return auth.ErrUserNotFound
	}

	return nil
}

func (r *userRepository) UpdatePassword(c context.Context, email string, passwordHash string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"email":      email,
		"password":   passwordHash,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdatePassword, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdatePassword named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdatePassword execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return auth.ErrUserNotFound
	}

	return nil
}

func (r *userRepository) DeleteUser(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{"id": id}

	query, args, err := sqlx.Named(queryDeleteUser, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteUser named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteUser execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return auth.ErrUserNotFound
	}

	return nil
}

func makeUser(user UserDB) entity.User {
	return entity.User{
		ID:             user.ID.String,
		Username:       user.Username.String,
		Email:          user.Email.String,
		Password:       user.Password.String,
		FullName:       user.FullName.String,
		Avatar:         user.Avatar.String,
		Bio:            user.Bio.String,
		Role:           user.Role.String,
		FollowersCount: user.FollowersCount,
		FollowingCount: user.FollowingCount,
		CreatedAt:      user.CreatedAt.Time,
		UpdatedAt:      user.UpdatedAt.Time,
	}
}
