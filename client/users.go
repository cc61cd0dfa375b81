package client

import (
	"context"
	"io"
	"net/http"
)

type SignupInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName,omitempty"`
}

type LoginInput struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

func (c *Client) Signup(ctx context.Context, in SignupInput) (User, error) {
	var user User
	if err := c.do(ctx, http.MethodPost, "/api/v1/users/signup", nil, in, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

// Login exchanges credentials for a session. On success the client holds the
// access token and the user record until Logout.
func (c *Client) Login(ctx context.Context, in LoginInput) (User, error) {
	var res loginResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/users/login", nil, in, &res); err != nil {
		return User{}, err
	}

	c.setSession(res.AccessToken, res.User)
	return res.User, nil
}

// Logout revokes the current token server-side, then drops the local session
// regardless: a failed revocation must not leave the client half signed-in.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/api/v1/users/logout", nil, nil, nil)
	c.clearSession()
	return err
}

func (c *Client) Me(ctx context.Context) (User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/api/v1/users/me", nil, nil, &user); err != nil {
		return User{}, err
	}

	c.mu.Lock()
	c.currentUser = &user
	c.mu.Unlock()

	return user, nil
}

type UpdateProfileInput struct {
	FullName string
	Bio      string
	// Avatar is optional; when set it is uploaded as multipart alongside the
	// text fields.
	Avatar         io.Reader
	AvatarFilename string
}

func (c *Client) UpdateProfile(ctx context.Context, in UpdateProfileInput) (User, error) {
	fields := map[string]string{}
	if in.FullName != "" {
		fields["fullName"] = in.FullName
	}
	if in.Bio != "" {
		fields["bio"] = in.Bio
	}

	var user User
	if err := c.doMultipart(ctx, http.MethodPut, "/api/v1/users/profile", "avatar", in.AvatarFilename, in.Avatar, fields, &user); err != nil {
		return User{}, err
	}

	c.mu.Lock()
	c.currentUser = &user
	c.mu.Unlock()

	return user, nil
}

func (c *Client) GetUser(ctx context.Context, id string) (User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/api/v1/users/"+id, nil, nil, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

func (c *Client) Follow(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodPost, "/api/v1/users/follow/"+userID, nil, nil, nil)
}

func (c *Client) Unfollow(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodPost, "/api/v1/users/unfollow/"+userID, nil, nil, nil)
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/users/"+id, nil, nil, nil)
}

func (c *Client) SendResetOTP(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/api/v1/password/send-otp", nil, map[string]string{"email": email}, nil)
}

func (c *Client) ResetPassword(ctx context.Context, email, code, password string) error {
	body := map[string]string{
		"email":    email,
		"code":     code,
		"password": password,
	}
	return c.do(ctx, http.MethodPatch, "/api/v1/password/reset", nil, body, nil)
}
