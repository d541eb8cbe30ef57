package services

import (
	"context"
	"strings"
	"time"

	"portfolio-backend-go/internal/models"

	"github.com/jmoiron/sqlx"
)

const (
	blogColumns = `id, title, slug, content, excerpt, featured_image, category, published_date, updated_date,
featured, is_published, view_count, created_at, updated_at`

	blogSlugTaken = "blog post with this slug already exists."
)

// BlogFilter holds the optional query filters of the public blog list.
type BlogFilter struct {
	FeaturedOnly bool
	// Category matches case-insensitively anywhere in the post category.
	Category string
}

// Page bounds a list query. A zero Limit means no bound.
type Page struct {
	Limit  int
	Offset int
}

func blogListQuery(scope Scope, filter BlogFilter) *selectQuery {
	q := newSelect(blogColumns, "blog_posts", orderBlog).Visible(scope, publishedPredicate)
	if filter.FeaturedOnly {
		q.Where("featured = TRUE")
	}
	if category := strings.TrimSpace(filter.Category); category != "" {
		q.Where(`lower(category) LIKE ? ESCAPE '\'`, "%"+escapeLike(strings.ToLower(category))+"%")
	}
	return q
}

// ListBlogPosts returns one page of posts and the total number of matching posts.
func ListBlogPosts(ctx context.Context, db *sqlx.DB, scope Scope, filter BlogFilter, page Page) ([]models.BlogPost, int, error) {
	q := blogListQuery(scope, filter)
	total, err := countRows(ctx, db, q)
	if err != nil {
		return nil, 0, err
	}
	items, err := selectAll[models.BlogPost](ctx, db, q.Page(page.Limit, page.Offset))
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func GetBlogPost(ctx context.Context, db *sqlx.DB, scope Scope, id int64) (models.BlogPost, error) {
	q := newSelect(blogColumns, "blog_posts", "").Where("id = ?", id).Visible(scope, publishedPredicate)
	return getOne[models.BlogPost](ctx, db, q, "Blog post not found")
}

// ViewBlogPost records one view of a published post and returns it with the new count.
// The increment is a single UPDATE so concurrent readers never lose a view.
func ViewBlogPost(ctx context.Context, db *sqlx.DB, slug string) (models.BlogPost, error) {
	res, err := db.ExecContext(ctx, db.Rebind(`
UPDATE blog_posts SET view_count = view_count + 1
WHERE slug = ? AND `+publishedPredicate), slug)
	if err != nil {
		return models.BlogPost{}, WrapError(err, "increment view count")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.BlogPost{}, err
	}
	if affected == 0 {
		return models.BlogPost{}, ErrNotFound("Not found.")
	}
	q := newSelect(blogColumns, "blog_posts", "").Where("slug = ?", slug).Visible(Public, publishedPredicate)
	return getOne[models.BlogPost](ctx, db, q, "Not found.")
}

func blogSlugExists(ctx context.Context, db *sqlx.DB, slug string, excludeID int64) (bool, error) {
	var exists bool
	err := db.GetContext(ctx, &exists, db.Rebind(`SELECT EXISTS(SELECT 1 FROM blog_posts WHERE slug = ? AND id <> ?)`), slug, excludeID)
	return exists, err
}

func normalizeBlogPost(item *models.BlogPost) {
	item.Slug = strings.TrimSpace(item.Slug)
	if strings.TrimSpace(item.Category) == "" {
		item.Category = models.DefaultBlogCategory
	}
	item.UpdatedDate = models.Today()
}

// CreateBlogPost derives the slug from the title when none is given. New posts start
// with no views.
func CreateBlogPost(ctx context.Context, db *sqlx.DB, item *models.BlogPost) error {
	normalizeBlogPost(item)
	item.ViewCount = 0
	if item.Slug == "" {
		item.Slug = Slugify(item.Title)
	}
	if err := ValidateRecord(item); err != nil {
		return err
	}
	taken, err := blogSlugExists(ctx, db, item.Slug, 0)
	if err != nil {
		return err
	}
	if taken {
		return FieldError("slug", blogSlugTaken)
	}
	now := time.Now().UTC()
	item.CreatedAt, item.UpdatedAt = now, now
	id, err := insertReturningID(ctx, db, `
INSERT INTO blog_posts (title, slug, content, excerpt, featured_image, category, published_date, updated_date,
  featured, is_published, view_count, created_at, updated_at)
VALUES (:title, :slug, :content, :excerpt, :featured_image, :category, :published_date, :updated_date,
  :featured, :is_published, :view_count, :created_at, :updated_at)
RETURNING id`, item)
	if isUniqueViolation(err) {
		return FieldError("slug", blogSlugTaken)
	}
	if err != nil {
		return WrapError(err, "insert blog post")
	}
	item.ID = id
	return nil
}

// UpdateBlogPost keeps the stored slug when the update carries none. view_count is
// owned by the read path and is never overwritten here.
func UpdateBlogPost(ctx context.Context, db *sqlx.DB, item *models.BlogPost) error {
	current, err := GetBlogPost(ctx, db, Admin, item.ID)
	if err != nil {
		return err
	}
	normalizeBlogPost(item)
	if item.Slug == "" {
		item.Slug = current.Slug
	}
	if err := ValidateRecord(item); err != nil {
		return err
	}
	taken, err := blogSlugExists(ctx, db, item.Slug, item.ID)
	if err != nil {
		return err
	}
	if taken {
		return FieldError("slug", blogSlugTaken)
	}
	item.CreatedAt = current.CreatedAt
	item.UpdatedAt = time.Now().UTC()
	_, err = execNamed(ctx, db, `
UPDATE blog_posts
SET title = :title, slug = :slug, content = :content, excerpt = :excerpt, featured_image = :featured_image,
    category = :category, published_date = :published_date, updated_date = :updated_date,
    featured = :featured, is_published = :is_published, updated_at = :updated_at
WHERE id = :id`, item)
	if isUniqueViolation(err) {
		return FieldError("slug", blogSlugTaken)
	}
	if err != nil {
		return WrapError(err, "update blog post")
	}
	item.ViewCount = current.ViewCount
	return nil
}

func DeleteBlogPost(ctx context.Context, db *sqlx.DB, id int64) error {
	return deleteByID(ctx, db, "blog_posts", id, "Blog post not found")
}
