package authService

import (
	"BlogSpace/internal/api/auth"
	authRepository "BlogSpace/internal/api/auth/repository"
	"BlogSpace/internal/entity"
	contextPkg "BlogSpace/pkg/context"
	jwtPkg "BlogSpace/pkg/jwt"
	"errors"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const accessTokenLifetime = 24 * time.Hour

func (s *authDomainImpl) Login(c context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.LoginResponse{}, err
	}

	var user entity.User
	switch {
	case req.Email != "":
		user, err = repo.Users.GetByEmail(c, req.Email)
	case req.Username != "":
		user, err = repo.Users.GetByUsername(c, req.Username)
	default:
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Warn("Login attempt for unknown user")
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to load user for login")
		return auth.LoginResponse{}, err
	}

	if err := s.bcryptUtils.ComparePassword(user.Password, req.Password); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Password comparison failed")
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueToken(requestID, user)
}

// Logout revokes the presented token in the shared store for its remaining
// lifetime, so it is rejected by every server instance from now on.
func (s *authDomainImpl) Logout(c context.Context, jti string, ttl time.Duration) error {
	requestID := contextPkg.GetRequestID(c)

	if err := s.redisServer.RevokeToken(c, jti, ttl); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"jti":        jti,
			"error":      err.Error(),
		}).Error("Failed to revoke token")
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"jti":        jti,
	}).Info("Token revoked")

	return nil
}

func (s *authDomainImpl) LoginGoogle() (*url.URL, error) {
	gConfig := s.googleProvider.GetConfig()
	authURL, err := url.Parse(gConfig.Endpoint.AuthURL)
	if err != nil {
		return nil, err
	}

	parameters := url.Values{}
	parameters.Add("client_id", gConfig.ClientID)
	parameters.Add("scope", strings.Join(gConfig.Scopes, " "))
	parameters.Add("redirect_uri", gConfig.RedirectURL)
	parameters.Add("response_type", "code")
	parameters.Add("state", os.Getenv("GOOGLE_STATE"))
	authURL.RawQuery = parameters.Encode()

	return authURL, nil
}

// UserLoginGoogle signs in a Google-verified user, provisioning an account on
// first sign-in.
func (s *authDomainImpl) UserLoginGoogle(c context.Context, googleUser auth.UserGoogle) (auth.LoginResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.LoginResponse{}, err
	}

	user, err := repo.Users.GetByEmail(c, googleUser.Email)
	if err != nil {
		if !errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to load user for google login")
			return auth.LoginResponse{}, err
		}

		user, err = s.provisionGoogleUser(c, repo, googleUser)
		if err != nil {
			return auth.LoginResponse{}, err
		}
	}

	return s.issueToken(requestID, user)
}

func (s *authDomainImpl) provisionGoogleUser(c context.Context, repo authRepository.Client, googleUser auth.UserGoogle) (entity.User, error) {
	requestID := contextPkg.GetRequestID(c)

	userID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return entity.User{}, err
	}

	// No usable password for OAuth accounts; an unguessable random one keeps
	// the password login path closed.
	randomSecret, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return entity.User{}, err
	}
	hashed, err := s.bcryptUtils.HashPassword(randomSecret)
	if err != nil {
		return entity.User{}, err
	}

	user := entity.User{
		ID:       userID,
		Username: usernameFromEmail(googleUser.Email),
		Email:    googleUser.Email,
		Password: hashed,
		FullName: googleUser.Name,
		Avatar:   googleUser.Picture,
		Role:     entity.RoleUser,
	}

	if err := repo.Users.CreateUser(c, user); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to provision google user")
		return entity.User{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    userID,
	}).Info("Provisioned user from google sign-in")

	return repo.Users.GetByID(c, userID)
}

func usernameFromEmail(email string) string {
	local := strings.SplitN(email, "@", 2)[0]
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return -1
		}
	}, local)
	if len(cleaned) < 3 {
		cleaned = cleaned + "user"
	}
	return cleaned
}

func (s *authDomainImpl) issueToken(requestID string, user entity.User) (auth.LoginResponse, error) {
	token, expired, err := jwtPkg.Sign(MakeUserData(user), accessTokenLifetime)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign token")
		return auth.LoginResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    user.ID,
	}).Info("Token created")

	return auth.LoginResponse{
		AccessToken:      token,
		ExpiresInMinutes: time.Until(time.Unix(expired, 0)).Minutes(),
		User:             MakeUserResponse(user, s.utils),
	}, nil
}
