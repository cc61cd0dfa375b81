package blogRepository

const querySelectBlogsBase = `
SELECT b.id,
       b.title,
       b.content,
       b.excerpt,
       b.category,
       b.tags,
       b.status,
       b.media_type,
       b.media_url,
       b.author_id,
       b.views,
       b.read_time,
       b.published_at,
       b.created_at,
       b.updated_at,
       u.username  AS author_username,
       u.full_name AS author_full_name,
       u.avatar    AS author_avatar,
       (SELECT COUNT(*) FROM blog_likes bl WHERE bl.blog_id = b.id) AS like_count,
       EXISTS(SELECT 1 FROM blog_likes bl WHERE bl.blog_id = b.id AND bl.user_id = :viewer_id) AS is_liked
FROM blogs b
         JOIN users u ON u.id = b.author_id`

const queryCountBlogsBase = `
SELECT COUNT(*)
FROM blogs b`

const queryInsertBlog = `
INSERT INTO blogs (id, title, content, excerpt, category, tags, status, media_type, media_url,
                   author_id, views, read_time, published_at, created_at, updated_at)
VALUES (:id, :title, :content, :excerpt, :category, :tags, :status, :media_type, :media_url,
        :author_id, :views, :read_time, :published_at, :created_at, :updated_at)`

const queryUpdateBlog = `
UPDATE blogs
SET title        = :title,
    content      = :content,
    excerpt      = :excerpt,
    category     = :category,
    tags         = :tags,
    status       = :status,
    media_type   = :media_type,
    media_url    = :media_url,
    read_time    = :read_time,
    published_at = :published_at,
    updated_at   = :updated_at
WHERE id = :id`

const queryDeleteBlog = `
DELETE
FROM blogs
WHERE id = :id`

const queryIncrementViews = `
UPDATE blogs
SET views = views + 1
WHERE id = :id`

const queryInsertLike = `
INSERT INTO blog_likes (blog_id, user_id, created_at)
VALUES (:blog_id, :user_id, :created_at)
ON CONFLICT (blog_id, user_id) DO NOTHING`

const queryDeleteLike = `
DELETE
FROM blog_likes
WHERE blog_id = :blog_id
  AND user_id = :user_id`

const queryCountLikes = `
SELECT COUNT(*)
FROM blog_likes
WHERE blog_id = :blog_id`

const queryInsertComment = `
INSERT INTO blog_comments (id, blog_id, user_id, content, created_at)
VALUES (:id, :blog_id, :user_id, :content, :created_at)`

const queryGetCommentByID = `
SELECT c.id,
       c.blog_id,
       c.user_id,
       c.content,
       c.created_at,
       u.username  AS author_username,
       u.full_name AS author_full_name,
       u.avatar    AS author_avatar
FROM blog_comments c
         JOIN users u ON u.id = c.user_id
WHERE c.id = :id`

const queryListCommentsByBlog = `
SELECT c.id,
       c.blog_id,
       c.user_id,
       c.content,
       c.created_at,
       u.username  AS author_username,
       u.full_name AS author_full_name,
       u.avatar    AS author_avatar
FROM blog_comments c
         JOIN users u ON u.id = c.user_id
WHERE c.blog_id = :blog_id
ORDER BY c.created_at ASC`

const queryDeleteComment = `
DELETE
FROM blog_comments
WHERE id = :id`

const queryDeleteGalleryByBlog = `
DELETE
FROM blog_media
WHERE blog_id = :blog_id`

const queryInsertGalleryItem = `
INSERT INTO blog_media (id, blog_id, type, url, placement, position)
VALUES (:id, :blog_id, :type, :url, :placement, :position)`

const queryListGalleryByBlog = `
SELECT id, blog_id, type, url, placement, position
FROM blog_media
WHERE blog_id = :blog_id
ORDER BY position ASC`
