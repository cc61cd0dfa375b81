package client

import "time"

type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email,omitempty"`
	FullName       string    `json:"fullName,omitempty"`
	Avatar         string    `json:"avatar"`
	Bio            string    `json:"bio,omitempty"`
	Role           string    `json:"role"`
	FollowersCount int       `json:"followersCount"`
	FollowingCount int       `json:"followingCount"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type Author struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName,omitempty"`
	Avatar   string `json:"avatar"`
}

type Media struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

type GalleryItem struct {
	Type      string `json:"type"`
	URL       string `json:"url"`
	Placement string `json:"placement"`
}

type Comment struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Author    Author    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}

type Blog struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Content     string        `json:"content,omitempty"`
	Excerpt     string        `json:"excerpt"`
	Category    string        `json:"category"`
	Tags        []string      `json:"tags"`
	Status      string        `json:"status"`
	Media       Media         `json:"media"`
	Gallery     []GalleryItem `json:"gallery,omitempty"`
	Author      Author        `json:"author"`
	Views       int           `json:"views"`
	ReadTime    int           `json:"readTime"`
	IsLiked     bool          `json:"isLiked"`
	LikeCount   int           `json:"likeCount"`
	Comments    []Comment     `json:"comments,omitempty"`
	PublishedAt *time.Time    `json:"publishedAt"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// BlogList is the single documented listing shape.
type BlogList struct {
	Items      []Blog `json:"items"`
	Total      int    `json:"total"`
	Page       int    `json:"page"`
	TotalPages int    `json:"totalPages"`
}

type LikeResult struct {
	IsLiked   bool `json:"isLiked"`
	LikeCount int  `json:"likeCount"`
}

type Upload struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

type loginResponse struct {
	AccessToken      string  `json:"accessToken"`
	ExpiresInMinutes float64 `json:"expiresInMinutes"`
	User             User    `json:"user"`
}
