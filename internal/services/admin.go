package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"portfolio-backend-go/internal/models"

	"github.com/jmoiron/sqlx"
)

const RoleAdmin = "ADMIN"

const adminColumns = "id, username, email, password_hash, created_at, last_login_at"

// EnsureDefaultAdmin creates the bootstrap admin account unless it already exists or
// no password is configured. It reports whether an account was created.
func EnsureDefaultAdmin(ctx context.Context, db *sqlx.DB, tokens TokenService, username, email, password string) (bool, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return false, nil
	}
	var exists bool
	if err := db.GetContext(ctx, &exists, db.Rebind(`SELECT EXISTS(SELECT 1 FROM admin_users WHERE username = ?)`), username); err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	hash, err := tokens.HashPassword(password)
	if err != nil {
		return false, err
	}
	_, err = db.ExecContext(ctx, db.Rebind(`
INSERT INTO admin_users (username, email, password_hash, created_at)
VALUES (?, ?, ?, ?)`), username, strings.TrimSpace(email), hash, time.Now().UTC())
	if isUniqueViolation(err) {
		return false, nil
	}
	if err != nil {
		return false, WrapError(err, "insert admin user")
	}
	return true, nil
}

// Authenticate checks admin credentials and stamps the login time.
func Authenticate(ctx context.Context, db *sqlx.DB, tokens TokenService, username, password string) (models.AdminUser, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return models.AdminUser{}, ErrUnauthorized("Invalid credentials")
	}
	var user models.AdminUser
	err := db.GetContext(ctx, &user, db.Rebind(`SELECT `+adminColumns+` FROM admin_users WHERE username = ?`), username)
	if errors.Is(err, sql.ErrNoRows) {
		return models.AdminUser{}, ErrUnauthorized("Invalid credentials")
	}
	if err != nil {
		return models.AdminUser{}, err
	}
	if !tokens.VerifyPassword(password, user.PasswordHash) {
		return models.AdminUser{}, ErrUnauthorized("Invalid credentials")
	}
	now := time.Now().UTC()
	if _, err := db.ExecContext(ctx, db.Rebind(`UPDATE admin_users SET last_login_at = ? WHERE id = ?`), now, user.ID); err != nil {
		return models.AdminUser{}, WrapError(err, "set last login")
	}
	user.LastLoginAt = &now
	return user, nil
}
