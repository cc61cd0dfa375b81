package authService

import (
	"BlogSpace/internal/api/auth"
	"BlogSpace/internal/entity"
	"BlogSpace/pkg/utils"
)

func MakeUserData(user entity.User) map[string]interface{} {
	return map[string]interface{}{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
		"role":     user.Role,
	}
}

// MakeUserResponse strips the password hash and backfills a deterministic
// placeholder avatar so the client never has to special-case nulls.
func MakeUserResponse(user entity.User, u utils.IUtils) auth.UserResponse {
	avatar := user.Avatar
	if avatar == "" {
		displayName := user.FullName
		if displayName == "" {
			displayName = user.Username
		}
		avatar = u.PlaceholderAvatarURL(displayName)
	}

	return auth.UserResponse{
		ID:             user.ID,
		Username:       user.Username,
		Email:          user.Email,
		FullName:       user.FullName,
		Avatar:         avatar,
		Bio:            user.Bio,
		Role:           user.Role,
		FollowersCount: user.FollowersCount,
		FollowingCount: user.FollowingCount,
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	}
}
