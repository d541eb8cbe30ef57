package services

import (
	"context"
	"time"

	"portfolio-backend-go/internal/models"

	"github.com/jmoiron/sqlx"
)

const (
	serviceColumns     = "id, name, description, icon, sort_order, is_active, created_at, updated_at"
	skillColumns       = "id, name, proficiency, category, sort_order, is_active, created_at, updated_at"
	testimonialColumns = "id, client_name, client_avatar, content, date, sort_order, is_active, created_at, updated_at"
	clientColumns      = "id, name, logo, website, sort_order, is_active, created_at, updated_at"
)

func ListServices(ctx context.Context, db *sqlx.DB, scope Scope) ([]models.Service, error) {
	q := newSelect(serviceColumns, "services", orderServices).Visible(scope, activePredicate)
	return selectAll[models.Service](ctx, db, q)
}

func GetService(ctx context.Context, db *sqlx.DB, scope Scope, id int64) (models.Service, error) {
	q := newSelect(serviceColumns, "services", "").Where("id = ?", id).Visible(scope, activePredicate)
	return getOne[models.Service](ctx, db, q, "Service not found")
}

func CreateService(ctx context.Context, db *sqlx.DB, item *models.Service) error {
	if err := ValidateRecord(item); err != nil {
		return err
	}
	now := time.Now().UTC()
	item.CreatedAt, item.UpdatedAt = now, now
	id, err := insertReturningID(ctx, db, `
INSERT INTO services (name, description, icon, sort_order, is_active, created_at, updated_at)
VALUES (:name, :description, :icon, :sort_order, :is_active, :created_at, :updated_at)
RETURNING id`, item)
	if err != nil {
		return WrapError(err, "insert service")
	}
	item.ID = id
	return nil
}

func UpdateService(ctx context.Context, db *sqlx.DB, item *models.Service) error {
	if err := ValidateRecord(item); err != nil {
		return err
	}
	current, err := GetService(ctx, db, Admin, item.ID)
	if err != nil {
		return err
	}
	item.CreatedAt = current.CreatedAt
	item.UpdatedAt = time.Now().UTC()
	_, err = execNamed(ctx, db, `
UPDATE services
SET name = :name, description = :description, icon = :icon, sort_order = :sort_order,
    is_active = :is_active, updated_at = :updated_at
WHERE id = :id`, item)
	return WrapError(err, "update service")
}

func DeleteService(ctx context.Context, db *sqlx.DB, id int64) error {
	return deleteByID(ctx, db, "services", id, "Service not found")
}

func ListSkills(ctx context.Context, db *sqlx.DB, scope Scope) ([]models.Skill, error) {
	q := newSelect(skillColumns, "skills", orderSkills).Visible(scope, activePredicate)
	return selectAll[models.Skill](ctx, db, q)
}

func GetSkill(ctx context.Context, db *sqlx.DB, scope Scope, id int64) (models.Skill, error) {
	q := newSelect(skillColumns, "skills", "").Where("id = ?", id).Visible(scope, activePredicate)
	return getOne[models.Skill](ctx, db, q, "Skill not found")
}

func CreateSkill(ctx context.Context, db *sqlx.DB, item *models.Skill) error {
	if err := ValidateRecord(item); err != nil {
		return err
	}
	now := time.Now().UTC()
	item.CreatedAt, item.UpdatedAt = now, now
	id, err := insertReturningID(ctx, db, `
INSERT INTO skills (name, proficiency, category, sort_order, is_active, created_at, updated_at)
VALUES (:name, :proficiency, :category, :sort_order, :is_active, :created_at, :updated_at)
RETURNING id`, item)
	if err != nil {
		return WrapError(err, "insert skill")
	}
	item.ID = id
	return nil
}

func UpdateSkill(ctx context.Context, db *sqlx.DB, item *models.Skill) error {
	if err := ValidateRecord(item); err != nil {
		return err
	}
	current, err := GetSkill(ctx, db, Admin, item.ID)
	if err != nil {
		return err
	}
	item.CreatedAt = current.CreatedAt
	item.UpdatedAt = time.Now().UTC()
	_, err = execNamed(ctx, db, `
UPDATE skills
SET name = :name, proficiency = :proficiency, category = :category, sort_order = :sort_order,
    is_active = :is_active, updated_at = :updated_at
WHERE id = :id`, item)
	return WrapError(err, "update skill")
}

func DeleteSkill(ctx context.Context, db *sqlx.DB, id int64) error {
	return deleteByID(ctx, db, "skills", id, "Skill not found")
}

func ListTestimonials(ctx context.Context, db *sqlx.DB, scope Scope) ([]models.Testimonial, error) {
	q := newSelect(testimonialColumns, "testimonials", orderTestimonials).Visible(scope, activePredicate)
	return selectAll[models.Testimonial](ctx, db, q)
}

func GetTestimonial(ctx context.Context, db *sqlx.DB, scope Scope, id int64) (models.Testimonial, error) {
	q := newSelect(testimonialColumns, "testimonials", "").Where("id = ?", id).Visible(scope, activePredicate)
	return getOne[models.Testimonial](ctx, db, q, "Testimonial not found")
}

func CreateTestimonial(ctx context.Context, db *sqlx.DB, item *models.Testimonial) error {
	if err := ValidateRecord(item); err != nil {
		return err
	}
	now := time.Now().UTC()
	item.CreatedAt, item.UpdatedAt = now, now
	id, err := insertReturningID(ctx, db, `
INSERT INTO testimonials (client_name, client_avatar, content, date, sort_order, is_active, created_at, updated_at)
VALUES (:client_name, :client_avatar, :content, :date, :sort_order, :is_active, :created_at, :updated_at)
RETURNING id`, item)
	if err != nil {
		return WrapError(err, "insert testimonial")
	}
	item.ID = id
	return nil
}

func UpdateTestimonial(ctx context.Context, db *sqlx.DB, item *models.Testimonial) error {
	if err := ValidateRecord(item); err != nil {
		return err
	}
	current, err := GetTestimonial(ctx, db, Admin, item.ID)
	if err != nil {
		return err
	}
	item.CreatedAt = current.CreatedAt
	item.UpdatedAt = time.Now().UTC()
	_, err = execNamed(ctx, db, `
UPDATE testimonials
SET client_name = :client_name, client_avatar = :client_avatar, content = :content, date = :date,
    sort_order = :sort_order, is_active = :is_active, updated_at = :updated_at
WHERE id = :id`, item)
	return WrapError(err, "update testimonial")
}

func DeleteTestimonial(ctx context.Context, db *sqlx.DB, id int64) error {
	return deleteByID(ctx, db, "testimonials", id, "Testimonial not found")
}

func ListClients(ctx context.Context, db *sqlx.DB, scope Scope) ([]models.Client, error) {
	q := newSelect(clientColumns, "clients", orderClients).Visible(scope, activePredicate)
	return selectAll[models.Client](ctx, db, q)
}

func GetClient(ctx context.Context, db *sqlx.DB, scope Scope, id int64) (models.Client, error) {
	q := newSelect(clientColumns, "clients", "").Where("id = ?", id).Visible(scope, activePredicate)
	return getOne[models.Client](ctx, db, q, "Client not found")
}

func CreateClient(ctx context.Context, db *sqlx.DB, item *models.Client) error {
	if err := ValidateRecord(item); err != nil {
		return err
	}
	now := time.Now().UTC()
	item.CreatedAt, item.UpdatedAt = now, now
	id, err := insertReturningID(ctx, db, `
INSERT INTO clients (name, logo, website, sort_order, is_active, created_at, updated_at)
VALUES (:name, :logo, :website, :sort_order, :is_active, :created_at, :updated_at)
RETURNING id`, item)
	if err != nil {
		return WrapError(err, "insert client")
	}
	item.ID = id
	return nil
}

func UpdateClient(ctx context.Context, db *sqlx.DB, item *models.Client) error {
	if err := ValidateRecord(item); err != nil {
		return err
	}
	current, err := GetClient(ctx, db, Admin, item.ID)
	if err != nil {
		return err
	}
	item.CreatedAt = current.CreatedAt
	item.UpdatedAt = time.Now().UTC()
	_, err = execNamed(ctx, db, `
UPDATE clients
SET name = :name, logo = :logo, website = :website, sort_order = :sort_order,
    is_active = :is_active, updated_at = :updated_at
WHERE id = :id`, item)
	return WrapError(err, "update client")
}

func DeleteClient(ctx context.Context, db *sqlx.DB, id int64) error {
	return deleteByID(ctx, db, "clients", id, "Client not found")
}
