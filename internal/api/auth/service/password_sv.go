package authService

import (
	"BlogSpace/internal/api/auth"
	contextPkg "BlogSpace/pkg/context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const resetOTPKeyPrefix = "password-reset:"

func (s *passwordDomainImpl) SendResetOTP(c context.Context, email string) error {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	// Unknown emails get the same success response so the endpoint cannot be
	// used to probe which addresses have accounts.
	if _, err := repo.Users.GetByEmail(c, email); err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Warn("Password reset requested for unknown email")
			return nil
		}
		return err
	}

	code, err := generateOTP()
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate OTP")
		return err
	}

	if err := s.redisServer.SetOTP(c, resetOTPKeyPrefix+email, code, 5*time.Minute); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to store OTP in Redis")
		return err
	}

	if err := s.smtpMailer.SendOTP(email, code); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to send OTP email")
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
	}).Info("Password reset OTP sent")

	return nil
}

func (s *passwordDomainImpl) ResetPassword(c context.Context, req auth.ResetPasswordRequest) error {
	requestID := contextPkg.GetRequestID(c)

	storedOTP, err := s.redisServer.GetOTP(c, resetOTPKeyPrefix+req.Email)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("OTP lookup failed")
		return auth.ErrOTPExpired
	}

	if storedOTP != req.Code {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Invalid password reset OTP")
		return auth.ErrInvalidOTP
	}

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	hashed, err := s.bcryptUtils.HashPassword(req.Password)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return err
	}

	if err := repo.Users.UpdatePassword(c, req.Email, hashed); err != nil {
		return err
	}

	if err := s.redisServer.DeleteOTP(c, resetOTPKeyPrefix+req.Email); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to delete used OTP")
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
	}).Info("Password reset completed")

	return nil
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(90000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%05d", 10000+n.Int64()), nil
}
