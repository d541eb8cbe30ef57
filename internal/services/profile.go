package services

import (
	"context"
	"time"

	"portfolio-backend-go/internal/models"

	"github.com/jmoiron/sqlx"
)

const profileColumns = `id, name, title, avatar, bio, email, phone, birthday, location,
facebook_url, twitter_url, instagram_url, linkedin_url, github_url, created_at, updated_at`

// ProfileNotFound is the explanation returned when no profile has been created yet.
const ProfileNotFound = "Profile not found"

// GetProfile returns the single profile, or a not-found error when none exists.
// Should more than one row ever exist, the oldest wins.
func GetProfile(ctx context.Context, db *sqlx.DB) (models.Profile, error) {
	q := newSelect(profileColumns, "profiles", "id ASC").Page(1, 0)
	return getOne[models.Profile](ctx, db, q, ProfileNotFound)
}

// CreateProfile refuses to create a second profile.
func CreateProfile(ctx context.Context, db *sqlx.DB, item *models.Profile) error {
	if err := ValidateRecord(item); err != nil {
		return err
	}
	var exists bool
	if err := db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM profiles)`); err != nil {
		return err
	}
	if exists {
		return FieldError("non_field_errors", "A profile already exists; only one profile is allowed.")
	}
	now := time.Now().UTC()
	item.CreatedAt, item.UpdatedAt = now, now
	id, err := insertReturningID(ctx, db, `
INSERT INTO profiles (name, title, avatar, bio, email, phone, birthday, location,
  facebook_url, twitter_url, instagram_url, linkedin_url, github_url, created_at, updated_at)
VALUES (:name, :title, :avatar, :bio, :email, :phone, :birthday, :location,
  :facebook_url, :twitter_url, :instagram_url, :linkedin_url, :github_url, :created_at, :updated_at)
RETURNING id`, item)
	if err != nil {
		return WrapError(err, "insert profile")
	}
	item.ID = id
	return nil
}

// UpdateProfile overwrites the existing profile; the caller's ID is ignored.
func UpdateProfile(ctx context.Context, db *sqlx.DB, item *models.Profile) error {
	if err := ValidateRecord(item); err != nil {
		return err
	}
	current, err := GetProfile(ctx, db)
	if err != nil {
		return err
	}
	item.ID = current.ID
	item.CreatedAt = current.CreatedAt
	item.UpdatedAt = time.Now().UTC()
	_, err = execNamed(ctx, db, `
UPDATE profiles
SET name = :name, title = :title, avatar = :avatar, bio = :bio, email = :email, phone = :phone,
    birthday = :birthday, location = :location, facebook_url = :facebook_url, twitter_url = :twitter_url,
    instagram_url = :instagram_url, linkedin_url = :linkedin_url, github_url = :github_url,
    updated_at = :updated_at
WHERE id = :id`, item)
	return WrapError(err, "update profile")
}
