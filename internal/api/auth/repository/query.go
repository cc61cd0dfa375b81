package authRepository

const (
	queryCreateUser = `
		INSERT INTO users (
			id,
			username,
			email,
			password,
			full_name,
			role,
			created_at,
			updated_at
		) VALUES (
			:id,
			:username,
			:email,
			:password,
			:full_name,
			:role,
			:created_at,
			:updated_at
		)
	`

	querySelectUser = `
		SELECT
			id,
			username,
			email,
			password,
			full_name,
			avatar,
			bio,
			role,
			(SELECT COUNT(*) FROM follows f WHERE f.followee_id = users.id) AS followers_count,
			(SELECT COUNT(*) FROM follows f WHERE f.follower_id = users.id) AS following_count,
			created_at,
			updated_at
		FROM users
	`

	queryGetUserByID       = querySelectUser + ` WHERE id = :id`
	queryGetUserByUsername = querySelectUser + ` WHERE username = :username`
	queryGetUserByEmail    = querySelectUser + ` WHERE email = :email`

	queryUpdateProfile = `
		UPDATE users
		SET
			full_name = CASE WHEN :full_name = '' THEN full_name ELSE :full_name END,
			avatar = CASE WHEN :avatar = '' THEN avatar ELSE :avatar END,
			bio = CASE WHEN :bio = '' THEN bio ELSE :bio END,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryUpdatePassword = `
		UPDATE users
		SET
			password = :password,
			updated_at = :updated_at
		WHERE email = :email
	`

	queryDeleteUser = `
		DELETE FROM users
		WHERE id = :id
	`

	queryFollow = `
		INSERT INTO follows (follower_id, followee_id, created_at)
		VALUES (:follower_id, :followee_id, :created_at)
		ON CONFLICT (follower_id, followee_id) DO NOTHING
	`

	queryUnfollow = `
		DELETE FROM follows
		WHERE follower_id = :follower_id AND followee_id = :followee_id
	`
)
