package blogRepository

import (
	"BlogSpace/internal/entity"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

// ListFilter narrows and orders the blog listing. An empty ViewerID means the
// request is anonymous, so is_liked resolves to false on every row.
type ListFilter struct {
	ViewerID      string
	AuthorID      string
	PublishedOnly bool
	Category      string
	Search        string
	Sort          string
	Limit         int
	Offset        int
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Blogs:    &blogRepositoryClient{q: sqlExecutor, log: r.log},
		Likes:    &likeRepository{q: sqlExecutor, log: r.log},
		Comments: &commentRepository{q: sqlExecutor, log: r.log},
		Gallery:  &galleryRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Blogs interface {
		Insert(ctx context.Context, blog entity.Blog) error
		GetByID(ctx context.Context, id string, viewerID string) (entity.Blog, error)
		List(ctx context.Context, filter ListFilter) ([]entity.Blog, error)
		Count(ctx context.Context, filter ListFilter) (int, error)
		Update(ctx context.Context, blog entity.Blog) error
		Delete(ctx context.Context, id string) error
		IncrementViews(ctx context.Context, id string) error
	}

	Likes interface {
		Insert(ctx context.Context, blogID, userID string) error
		Delete(ctx context.Context, blogID, userID string) (bool, error)
		Count(ctx context.Context, blogID string) (int, error)
	}

	Comments interface {
		Insert(ctx context.Context, comment entity.Comment) error
		GetByID(ctx context.Context, id string) (entity.Comment, error)
		ListByBlog(ctx context.Context, blogID string) ([]entity.Comment, error)
		Delete(ctx context.Context, id string) error
	}

	Gallery interface {
		Replace(ctx context.Context, blogID string, items []entity.MediaItem) error
		ListByBlog(ctx context.Context, blogID string) ([]entity.MediaItem, error)
	}

	Commit   func() error
	Rollback func() error
}

type blogRepositoryClient struct {
	q   SQLExecutor
	log *logrus.Logger
}

type likeRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type commentRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type galleryRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
