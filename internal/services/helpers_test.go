package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"portfolio-backend-go/internal/db"
	"portfolio-backend-go/internal/migrations"
	"portfolio-backend-go/internal/models"

	"github.com/jmoiron/sqlx"
)

func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	database, err := db.Open("sqlite://" + filepath.Join(t.TempDir(), "services.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	if err := migrations.Apply(database); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return database
}

func mustCreateProject(t *testing.T, database *sqlx.DB, project models.Project) models.Project {
	t.Helper()
	if project.Description == "" {
		project.Description = "A project"
	}
	if project.Image == "" {
		project.Image = "projects/cover.png"
	}
	if project.Technologies == "" {
		project.Technologies = "Go"
	}
	if project.CreatedDate.IsZero() {
		project.CreatedDate = models.NewDate(2024, time.January, 1)
	}
	if err := CreateProject(context.Background(), database, &project); err != nil {
		t.Fatalf("create project %q: %v", project.Title, err)
	}
	return project
}

func mustCreatePost(t *testing.T, database *sqlx.DB, post models.BlogPost) models.BlogPost {
	t.Helper()
	if post.Content == "" {
		post.Content = "Body"
	}
	if post.Excerpt == "" {
		post.Excerpt = "Excerpt"
	}
	if post.FeaturedImage == "" {
		post.FeaturedImage = "blog/cover.png"
	}
	if post.PublishedDate.IsZero() {
		post.PublishedDate = models.NewDate(2024, time.January, 1)
	}
	if err := CreateBlogPost(context.Background(), database, &post); err != nil {
		t.Fatalf("create post %q: %v", post.Title, err)
	}
	return post
}

func fieldErrors(t *testing.T, err error) map[string][]string {
	t.Helper()
	verr, ok := err.(ValidationError)
	if !ok {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
	return verr.Fields
}
