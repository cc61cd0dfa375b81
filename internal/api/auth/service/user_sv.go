package authService

import (
	"BlogSpace/internal/api/auth"
	"BlogSpace/internal/entity"
	contextPkg "BlogSpace/pkg/context"
	"BlogSpace/pkg/utils"
	"errors"
	"mime/multipart"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *userDomainImpl) RegisterUser(c context.Context, req auth.RegisterRequest) (auth.UserResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.UserResponse{}, err
	}

	hashedPassword, err := s.bcryptUtils.HashPassword(req.Password)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return auth.UserResponse{}, err
	}

	userID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return auth.UserResponse{}, err
	}

	user := entity.User{
		ID:       userID,
		Username: req.Username,
		Email:    req.Email,
		Password: hashedPassword,
		FullName: req.FullName,
		Role:     entity.RoleUser,
	}

	if err := repo.Users.CreateUser(c, user); err != nil {
		return auth.UserResponse{}, err
	}

	created, err := repo.Users.GetByID(c, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to load created user")
		return auth.UserResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    userID,
	}).Info("User registered")

	return MakeUserResponse(created, s.utils), nil
}

func (s *userDomainImpl) GetByID(c context.Context, id string) (auth.UserResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.UserResponse{}, err
	}

	user, err := repo.Users.GetByID(c, id)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"user_id":    id,
			}).Warn("User not found")
		}
		return auth.UserResponse{}, err
	}

	// Public profile: email stays private.
	resp := MakeUserResponse(user, s.utils)
	resp.Email = ""
	return resp, nil
}

func (s *userDomainImpl) GetMe(c context.Context, userID string) (auth.UserResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.UserResponse{}, err
	}

	user, err := repo.Users.GetByID(c, userID)
	if err != nil {
		return auth.UserResponse{}, err
	}

	return MakeUserResponse(user, s.utils), nil
}

func (s *userDomainImpl) UpdateProfile(c context.Context, userID string, req auth.UpdateProfileRequest, avatarFile *multipart.FileHeader) (auth.UserResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.authRepository.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.UserResponse{}, err
	}
	defer repo.Rollback()

	existing, err := repo.Users.GetByID(c, userID)
	if err != nil {
		return auth.UserResponse{}, err
	}

	var avatarURL string
	if avatarFile != nil {
		if err := s.utils.ValidateImageFile(avatarFile); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Invalid avatar file")
			if errors.Is(err, utils.ErrFileTooLarge) {
				return auth.UserResponse{}, auth.ErrFileTooLarge
			}
			return auth.UserResponse{}, auth.ErrInvalidFileType
		}

		uploaded, err := s.s3Client.UploadFile(avatarFile, "avatars")
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to upload avatar")
			return auth.UserResponse{}, auth.ErrFailedToUploadFile
		}
		avatarURL = uploaded.URL

		// Replaced avatars are cleaned up best-effort; a failed delete never
		// fails the profile update.
		if existing.Avatar != "" {
			oldAvatar := existing.Avatar
			go func() {
				if err := s.s3Client.DeleteByURL(oldAvatar); err != nil {
					s.log.WithFields(logrus.Fields{
						"request_id": requestID,
						"avatar":     oldAvatar,
						"error":      err.Error(),
					}).Warn("Failed to delete old avatar")
				}
			}()
		}
	}

	user := entity.User{
		ID:       userID,
		FullName: req.FullName,
		Avatar:   avatarURL,
		Bio:      req.Bio,
	}

	if err := repo.Users.UpdateProfile(c, user); err != nil {
		return auth.UserResponse{}, err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return auth.UserResponse{}, err
	}

	updated, err := s.authRepository.GetUserByID(c, userID)
	if err != nil {
		return auth.UserResponse{}, err
	}

	return MakeUserResponse(updated, s.utils), nil
}

func (s *userDomainImpl) DeleteUser(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if err := repo.Users.DeleteUser(c, id); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    id,
	}).Info("User deleted")

	return nil
}
