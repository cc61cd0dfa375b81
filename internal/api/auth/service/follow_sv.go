package authService

import (
	"BlogSpace/internal/api/auth"
	contextPkg "BlogSpace/pkg/context"
	"errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *followDomainImpl) Follow(c context.Context, followerID, targetID string) error {
	requestID := contextPkg.GetRequestID(c)

	if followerID == targetID {
		return auth.ErrSelfFollow
	}

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if _, err := repo.Users.GetByID(c, targetID); err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"target_id":  targetID,
			}).Warn("Follow target not found")
		}
		return err
	}

	if err := repo.Follows.Follow(c, followerID, targetID); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id":  requestID,
		"follower_id": followerID,
		"target_id":   targetID,
	}).Info("User followed")

	return nil
}

func (s *followDomainImpl) Unfollow(c context.Context, followerID, targetID string) error {
	requestID := contextPkg.GetRequestID(c)

	if followerID == targetID {
		return auth.ErrSelfFollow
	}

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if _, err := repo.Users.GetByID(c, targetID); err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"target_id":  targetID,
			}).Warn("Unfollow target not found")
		}
		return err
	}

	if err := repo.Follows.Unfollow(c, followerID, targetID); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id":  requestID,
		"follower_id": followerID,
		"target_id":   targetID,
	}).Info("User unfollowed")

	return nil
}
