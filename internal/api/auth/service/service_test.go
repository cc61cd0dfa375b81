package authService

import (
	"BlogSpace/internal/api/auth"
	authRepository "BlogSpace/internal/api/auth/repository"
	"BlogSpace/internal/entity"
	"BlogSpace/pkg/bcrypt"
	"BlogSpace/pkg/s3"
	"BlogSpace/pkg/utils"
	"context"
	"mime/multipart"
	"sync"
	"time"

	"io"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	"github.com/gofiber/fiber/v2"
)

type fakeUserStore struct {
	mu      sync.Mutex
	users   map[string]entity.User
	follows map[string]map[string]bool
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		users:   map[string]entity.User{},
		follows: map[string]map[string]bool{},
	}
}

func (f *fakeUserStore) NewClient(tx bool) (authRepository.Client, error) {
	return authRepository.Client{
		Users:    &fakeUsers{f},
		Follows:  &fakeFollows{f},
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

func (f *fakeUserStore) GetUserByID(ctx context.Context, id string) (entity.User, error) {
	return (&fakeUsers{f}).GetByID(ctx, id)
}

type fakeUsers struct{ s *fakeUserStore }

func (r *fakeUsers) CreateUser(_ context.Context, user entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Username == user.Username {
			return auth.ErrUsernameAlreadyExists
		}
		if existing.Email == user.Email {
			return auth.ErrEmailAlreadyExists
		}
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.s.users[user.ID] = user
	return nil
}

func (r *fakeUsers) GetByID(_ context.Context, id string) (entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	user, ok := r.s.users[id]
	if !ok {
		return entity.User{}, auth.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUsers) GetByUsername(_ context.Context, username string) (entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, user := range r.s.users {
		if user.Username == username {
			return user, nil
		}
	}
	return entity.User{}, auth.ErrUserNotFound
}

func (r *fakeUsers) GetByEmail(_ context.Context, email string) (entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, user := range r.s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return entity.User{}, auth.ErrUserNotFound
}

func (r *fakeUsers) UpdateProfile(_ context.Context, user entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.users[user.ID]
	if !ok {
		return auth.ErrUserNotFound
	}
	if user.FullName != "" {
		existing.FullName = user.FullName
	}
	if user.Bio != "" {
		existing.Bio = user.Bio
	}
	if user.Avatar != "" {
		existing.Avatar = user.Avatar
	}
	existing.UpdatedAt = time.Now()
	r.s.users[user.ID] = existing
	return nil
}

func (r *fakeUsers) UpdatePassword(_ context.Context, email string, passwordHash string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, user := range r.s.users {
		if user.Email == email {
			user.Password = passwordHash
			r.s.users[id] = user
			return nil
		}
	}
	return auth.ErrUserNotFound
}

func (r *fakeUsers) DeleteUser(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return auth.ErrUserNotFound
	}
	delete(r.s.users, id)
	return nil
}

type fakeFollows struct{ s *fakeUserStore }

func (r *fakeFollows) Follow(_ context.Context, followerID, followeeID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.follows[followerID] == nil {
		r.s.follows[followerID] = map[string]bool{}
	}
	r.s.follows[followerID][followeeID] = true
	return nil
}

func (r *fakeFollows) Unfollow(_ context.Context, followerID, followeeID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.follows[followerID], followeeID)
	return nil
}

// fakeRedis covers both the OTP store and the revocation set.
type fakeRedis struct {
	mu      sync.Mutex
	otps    map[string]string
	revoked map[string]bool
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{
		otps:    map[string]string{},
		revoked: map[string]bool{},
	}
}

func (f *fakeRedis) SetOTP(_ context.Context, key, code string, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.otps[key] = code
	return nil
}

func (f *fakeRedis) GetOTP(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	code, ok := f.otps[key]
	if !ok {
		return "", auth.ErrOTPExpired
	}
	return code, nil
}

func (f *fakeRedis) DeleteOTP(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.otps, key)
	return nil
}

func (f *fakeRedis) RevokeToken(_ context.Context, jti string, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.revoked[jti] = true
	return nil
}

func (f *fakeRedis) IsTokenRevoked(_ context.Context, jti string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.revoked[jti], nil
}

type fakeSMTP struct {
	mu   sync.Mutex
	sent map[string]string
}

func newFakeSMTP() *fakeSMTP {
	return &fakeSMTP{sent: map[string]string{}}
}

func (f *fakeSMTP) SendOTP(email, otp string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent[email] = otp
	return nil
}

type stubGoogle struct{}

func (stubGoogle) GetUserExchangeToken(*fiber.Ctx, string) ([]byte, error) { return nil, nil }
func (stubGoogle) GetConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:    "client-id",
		RedirectURL: "http://localhost/callback",
		Scopes:      []string{"email"},
		Endpoint:    oauth2.Endpoint{AuthURL: "https://accounts.google.com/o/oauth2/auth"},
	}
}

type stubS3 struct{}

func (stubS3) UploadFile(*multipart.FileHeader, string) (s3.UploadResult, error) {
	return s3.UploadResult{URL: "https://bucket/avatar.png", Key: "avatar.png"}, nil
}
func (stubS3) PresignUrl(fileURL string) (string, error) { return fileURL, nil }
func (stubS3) DeleteFile(string) error                   { return nil }
func (stubS3) DeleteByURL(string) error                  { return nil }

type testEnv struct {
	svc   AuthService
	store *fakeUserStore
	redis *fakeRedis
	smtp  *fakeSMTP
}

func newTestService() testEnv {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	store := newFakeUserStore()
	redisServer := newFakeRedis()
	mailer := newFakeSMTP()

	svc := New(logger, store, stubGoogle{}, mailer, redisServer, stubS3{}, bcrypt.NewWithCost(4), utils.New())
	return testEnv{svc: svc, store: store, redis: redisServer, smtp: mailer}
}
