package services

import (
	"context"
	"strings"
	"time"

	"portfolio-backend-go/internal/models"

	"github.com/jmoiron/sqlx"
)

const (
	categoryColumns = `c.id, c.name, c.slug, c.description, c.created_at, c.updated_at,
(SELECT count(*) FROM projects p WHERE p.category_id = c.id AND p.is_active = TRUE) AS projects_count`
	projectColumns = `p.id, p.title, p.description, p.image, p.category_id, p.link, p.github_url, p.technologies,
p.created_date, p.featured, p.sort_order, p.is_active, p.created_at, p.updated_at, c.name AS category_name`
	projectFrom = "projects p LEFT JOIN project_categories c ON c.id = p.category_id"

	categorySlugTaken = "project category with this slug already exists."
)

// ProjectFilter holds the optional query filters of the public project list.
type ProjectFilter struct {
	CategorySlug string
	FeaturedOnly bool
}

// FeaturedFilter is true only for the literal string "true"; anything else means no filter.
func FeaturedFilter(raw string) bool {
	return raw == "true"
}

func ListCategories(ctx context.Context, db *sqlx.DB) ([]models.CategoryWithCount, error) {
	q := newSelect(categoryColumns, "project_categories c", orderCategories)
	return selectAll[models.CategoryWithCount](ctx, db, q)
}

func GetCategory(ctx context.Context, db *sqlx.DB, id int64) (models.CategoryWithCount, error) {
	q := newSelect(categoryColumns, "project_categories c", "").Where("c.id = ?", id)
	return getOne[models.CategoryWithCount](ctx, db, q, "Category not found")
}

func categorySlugExists(ctx context.Context, db *sqlx.DB, slug string, excludeID int64) (bool, error) {
	var exists bool
	err := db.GetContext(ctx, &exists, db.Rebind(`SELECT EXISTS(SELECT 1 FROM project_categories WHERE slug = ? AND id <> ?)`), slug, excludeID)
	return exists, err
}

// CreateCategory derives the slug from the name when none is given. A duplicate slug is
// reported as a validation error on "slug", never renamed.
func CreateCategory(ctx context.Context, db *sqlx.DB, item *models.ProjectCategory) error {
	item.Slug = strings.TrimSpace(item.Slug)
	if item.Slug == "" {
		item.Slug = Slugify(item.Name)
	}
	if err := ValidateRecord(item); err != nil {
		return err
	}
	taken, err := categorySlugExists(ctx, db, item.Slug, 0)
	if err != nil {
		return err
	}
	if taken {
		return FieldError("slug", categorySlugTaken)
	}
	now := time.Now().UTC()
	item.CreatedAt, item.UpdatedAt = now, now
	id, err := insertReturningID(ctx, db, `
INSERT INTO project_categories (name, slug, description, created_at, updated_at)
VALUES (:name, :slug, :description, :created_at, :updated_at)
RETURNING id`, item)
	if isUniqueViolation(err) {
		return FieldError("slug", categorySlugTaken)
	}
	if err != nil {
		return WrapError(err, "insert category")
	}
	item.ID = id
	return nil
}

// UpdateCategory keeps the stored slug when the update carries none.
func UpdateCategory(ctx context.Context, db *sqlx.DB, item *models.ProjectCategory) error {
	current, err := GetCategory(ctx, db, item.ID)
	if err != nil {
		return err
	}
	item.Slug = strings.TrimSpace(item.Slug)
	if item.Slug == "" {
		item.Slug = current.Slug
	}
	if err := ValidateRecord(item); err != nil {
		return err
	}
	taken, err := categorySlugExists(ctx, db, item.Slug, item.ID)
	if err != nil {
		return err
	}
	if taken {
		return FieldError("slug", categorySlugTaken)
	}
	item.CreatedAt = current.CreatedAt
	item.UpdatedAt = time.Now().UTC()
	_, err = execNamed(ctx, db, `
UPDATE project_categories
SET name = :name, slug = :slug, description = :description, updated_at = :updated_at
WHERE id = :id`, item)
	if isUniqueViolation(err) {
		return FieldError("slug", categorySlugTaken)
	}
	return WrapError(err, "update category")
}

// DeleteCategory removes a category; its projects keep existing with no category.
func DeleteCategory(ctx context.Context, db *sqlx.DB, id int64) error {
	if _, err := db.ExecContext(ctx, db.Rebind(`UPDATE projects SET category_id = NULL WHERE category_id = ?`), id); err != nil {
		return WrapError(err, "detach projects")
	}
	return deleteByID(ctx, db, "project_categories", id, "Category not found")
}

func ListProjects(ctx context.Context, db *sqlx.DB, scope Scope, filter ProjectFilter) ([]models.Project, error) {
	q := newSelect(projectColumns, projectFrom, orderProjects).Visible(scope, "p."+activePredicate)
	if filter.CategorySlug != "" {
		q.Where("c.slug = ?", filter.CategorySlug)
	}
	if filter.FeaturedOnly {
		q.Where("p.featured = TRUE")
	}
	return selectAll[models.Project](ctx, db, q)
}

func GetProject(ctx context.Context, db *sqlx.DB, scope Scope, id int64) (models.Project, error) {
	q := newSelect(projectColumns, projectFrom, "").Where("p.id = ?", id).Visible(scope, "p."+activePredicate)
	return getOne[models.Project](ctx, db, q, "Project not found")
}

func validateProject(ctx context.Context, db *sqlx.DB, item *models.Project) error {
	err := ValidateRecord(item)
	if item.CategoryID == nil {
		return err
	}
	var exists bool
	if qerr := db.GetContext(ctx, &exists, db.Rebind(`SELECT EXISTS(SELECT 1 FROM project_categories WHERE id = ?)`), *item.CategoryID); qerr != nil {
		return qerr
	}
	if exists {
		return err
	}
	verr := ValidationError{}
	if err != nil {
		existing, ok := err.(ValidationError)
		if !ok {
			return err
		}
		verr = existing
	}
	verr.Add("category", "Invalid pk - object does not exist.")
	return verr
}

func CreateProject(ctx context.Context, db *sqlx.DB, item *models.Project) error {
	if err := validateProject(ctx, db, item); err != nil {
		return err
	}
	now := time.Now().UTC()
	item.CreatedAt, item.UpdatedAt = now, now
	id, err := insertReturningID(ctx, db, `
INSERT INTO projects (title, description, image, category_id, link, github_url, technologies, created_date,
  featured, sort_order, is_active, created_at, updated_at)
VALUES (:title, :description, :image, :category_id, :link, :github_url, :technologies, :created_date,
  :featured, :sort_order, :is_active, :created_at, :updated_at)
RETURNING id`, item)
	if err != nil {
		return WrapError(err, "insert project")
	}
	item.ID = id
	return nil
}

func UpdateProject(ctx context.Context, db *sqlx.DB, item *models.Project) error {
	if err := validateProject(ctx, db, item); err != nil {
		return err
	}
	current, err := GetProject(ctx, db, Admin, item.ID)
	if err != nil {
		return err
	}
	item.CreatedAt = current.CreatedAt
	item.UpdatedAt = time.Now().UTC()
	_, err = execNamed(ctx, db, `
UPDATE projects
SET title = :title, description = :description, image = :image, category_id = :category_id,
    link = :link, github_url = :github_url, technologies = :technologies, created_date = :created_date,
    featured = :featured, sort_order = :sort_order, is_active = :is_active, updated_at = :updated_at
WHERE id = :id`, item)
	return WrapError(err, "update project")
}

func DeleteProject(ctx context.Context, db *sqlx.DB, id int64) error {
	return deleteByID(ctx, db, "projects", id, "Project not found")
}
