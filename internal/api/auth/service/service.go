package authService

import (
	"BlogSpace/internal/api/auth"
	authRepository "BlogSpace/internal/api/auth/repository"
	"BlogSpace/pkg/bcrypt"
	"BlogSpace/pkg/google"
	"BlogSpace/pkg/redis"
	"BlogSpace/pkg/s3"
	"BlogSpace/pkg/smtp"
	"BlogSpace/pkg/utils"
	"context"
	"mime/multipart"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
)

type AuthService interface {
	User() UserDomain
	Auth() AuthDomain
	Password() PasswordDomain
	Follow() FollowDomain
}

type UserDomain interface {
	RegisterUser(c context.Context, req auth.RegisterRequest) (auth.UserResponse, error)
	GetByID(c context.Context, id string) (auth.UserResponse, error)
	GetMe(c context.Context, userID string) (auth.UserResponse, error)
	UpdateProfile(c context.Context, userID string, req auth.UpdateProfileRequest, avatarFile *multipart.FileHeader) (auth.UserResponse, error)
	DeleteUser(c context.Context, id string) error
}

type AuthDomain interface {
	Login(c context.Context, req auth.LoginRequest) (auth.LoginResponse, error)
	Logout(c context.Context, jti string, ttl time.Duration) error
	LoginGoogle() (*url.URL, error)
	UserLoginGoogle(c context.Context, googleUser auth.UserGoogle) (auth.LoginResponse, error)
}

type PasswordDomain interface {
	SendResetOTP(c context.Context, email string) error
	ResetPassword(c context.Context, req auth.ResetPasswordRequest) error
}

type FollowDomain interface {
	Follow(c context.Context, followerID, targetID string) error
	Unfollow(c context.Context, followerID, targetID string) error
}

type authService struct {
	log            *logrus.Logger
	authRepository authRepository.Repository
	googleProvider google.ItfGoogle
	smtpMailer     smtp.ItfSmtp
	redisServer    redis.IRedis
	s3Client       s3.ItfS3
	bcryptUtils    bcrypt.IBcrypt
	utils          utils.IUtils

	userDomain     UserDomain
	authDomain     AuthDomain
	passwordDomain PasswordDomain
	followDomain   FollowDomain
}

func New(
	log *logrus.Logger,
	repo authRepository.Repository,
	googleProvider google.ItfGoogle,
	smtpMailer smtp.ItfSmtp,
	redisServer redis.IRedis,
	s3Client s3.ItfS3,
	bcryptUtils bcrypt.IBcrypt,
	utils utils.IUtils,
) AuthService {
	svc := &authService{
		log:            log,
		authRepository: repo,
		googleProvider: googleProvider,
		smtpMailer:     smtpMailer,
		redisServer:    redisServer,
		s3Client:       s3Client,
		bcryptUtils:    bcryptUtils,
		utils:          utils,
	}

	svc.userDomain = &userDomainImpl{svc}
	svc.authDomain = &authDomainImpl{svc}
	svc.passwordDomain = &passwordDomainImpl{svc}
	svc.followDomain = &followDomainImpl{svc}

	return svc
}

func (a *authService) User() UserDomain {
	return a.userDomain
}

func (a *authService) Auth() AuthDomain {
	return a.authDomain
}

func (a *authService) Password() PasswordDomain {
	return a.passwordDomain
}

func (a *authService) Follow() FollowDomain {
	return a.followDomain
}

type userDomainImpl struct {
	*authService
}

type authDomainImpl struct {
	*authService
}

type passwordDomainImpl struct {
	*authService
}

type followDomainImpl struct {
	*authService
}
