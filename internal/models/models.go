package models

import "time"

type Profile struct {
	ID           int64     `db:"id" json:"id"`
	Name         string    `db:"name" json:"name" validate:"required,max=100"`
	Title        string    `db:"title" json:"title" validate:"required,max=100"`
	Avatar       *string   `db:"avatar" json:"avatar" validate:"omitempty,max=255"`
	Bio          string    `db:"bio" json:"bio" validate:"required"`
	Email        string    `db:"email" json:"email" validate:"required,email,max=254"`
	Phone        string    `db:"phone" json:"phone" validate:"required,max=20"`
	Birthday     Date      `db:"birthday" json:"birthday" validate:"required"`
	Location     string    `db:"location" json:"location" validate:"required,max=200"`
	FacebookURL  string    `db:"facebook_url" json:"facebook_url" validate:"omitempty,url,max=200"`
	TwitterURL   string    `db:"twitter_url" json:"twitter_url" validate:"omitempty,url,max=200"`
	InstagramURL string    `db:"instagram_url" json:"instagram_url" validate:"omitempty,url,max=200"`
	LinkedinURL  string    `db:"linkedin_url" json:"linkedin_url" validate:"omitempty,url,max=200"`
	GithubURL    string    `db:"github_url" json:"github_url" validate:"omitempty,url,max=200"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

type Service struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name" validate:"required,max=100"`
	Description string    `db:"description" json:"description" validate:"required"`
	Icon        *string   `db:"icon" json:"icon" validate:"omitempty,max=255"`
	Order       int       `db:"sort_order" json:"order"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

const (
	TimelineEducation  = "education"
	TimelineExperience = "experience"
)

type TimelineEntry struct {
	ID          int64     `db:"id" json:"id"`
	Type        string    `db:"type" json:"type" validate:"required,oneof=education experience"`
	Title       string    `db:"title" json:"title" validate:"required,max=200"`
	Institution string    `db:"institution" json:"institution" validate:"required,max=200"`
	StartDate   Date      `db:"start_date" json:"start_date" validate:"required"`
	EndDate     *Date     `db:"end_date" json:"end_date"`
	Description string    `db:"description" json:"description" validate:"required"`
	Order       int       `db:"sort_order" json:"order"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// IsCurrent reports an entry with no end date, i.e. an ongoing position.
func (t TimelineEntry) IsCurrent() bool {
	return t.EndDate == nil
}

type Skill struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name" validate:"required,max=100"`
	Proficiency int       `db:"proficiency" json:"proficiency"`
	Category    string    `db:"category" json:"category" validate:"max=100"`
	Order       int       `db:"sort_order" json:"order"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

type ProjectCategory struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name" validate:"required,max=100"`
	Slug        string    `db:"slug" json:"slug" validate:"omitempty,max=50,slug"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// CategoryWithCount is a category plus the number of its active projects.
type CategoryWithCount struct {
	ProjectCategory
	ProjectsCount int `db:"projects_count"`
}

type Project struct {
	ID           int64     `db:"id" json:"id"`
	Title        string    `db:"title" json:"title" validate:"required,max=200"`
	Description  string    `db:"description" json:"description" validate:"required"`
	Image        string    `db:"image" json:"image" validate:"required,max=255"`
	CategoryID   *int64    `db:"category_id" json:"category"`
	Link         string    `db:"link" json:"link" validate:"omitempty,url,max=200"`
	GithubURL    string    `db:"github_url" json:"github_url" validate:"omitempty,url,max=200"`
	Technologies string    `db:"technologies" json:"technologies" validate:"required,max=500"`
	CreatedDate  Date      `db:"created_date" json:"created_date" validate:"required"`
	Featured     bool      `db:"featured" json:"featured"`
	Order        int       `db:"sort_order" json:"order"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`

	// CategoryName is filled from a join on reads only.
	CategoryName *string `db:"category_name" json:"-"`
}

type Testimonial struct {
	ID           int64     `db:"id" json:"id"`
	ClientName   string    `db:"client_name" json:"client_name" validate:"required,max=100"`
	ClientAvatar string    `db:"client_avatar" json:"client_avatar" validate:"required,max=255"`
	Content      string    `db:"content" json:"content" validate:"required"`
	Date         Date      `db:"date" json:"date" validate:"required"`
	Order        int       `db:"sort_order" json:"order"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

type Client struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name" validate:"required,max=100"`
	Logo      string    `db:"logo" json:"logo" validate:"required,max=255"`
	Website   string    `db:"website" json:"website" validate:"omitempty,url,max=200"`
	Order     int       `db:"sort_order" json:"order"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

const DefaultBlogCategory = "Design"

type BlogPost struct {
	ID            int64     `db:"id" json:"id"`
	Title         string    `db:"title" json:"title" validate:"required,max=200"`
	Slug          string    `db:"slug" json:"slug" validate:"omitempty,max=50,slug"`
	Content       string    `db:"content" json:"content" validate:"required"`
	Excerpt       string    `db:"excerpt" json:"excerpt" validate:"required"`
	FeaturedImage string    `db:"featured_image" json:"featured_image" validate:"required,max=255"`
	Category      string    `db:"category" json:"category" validate:"max=100"`
	PublishedDate Date      `db:"published_date" json:"published_date" validate:"required"`
	UpdatedDate   Date      `db:"updated_date" json:"updated_date"`
	Featured      bool      `db:"featured" json:"featured"`
	IsPublished   bool      `db:"is_published" json:"is_published"`
	ViewCount     int       `db:"view_count" json:"view_count"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

type ContactMessage struct {
	ID            int64     `db:"id" json:"id"`
	FullName      string    `db:"full_name" json:"full_name"`
	Email         string    `db:"email" json:"email"`
	Message       string    `db:"message" json:"message"`
	SubmittedDate time.Time `db:"submitted_date" json:"submitted_date"`
	IsRead        bool      `db:"is_read" json:"is_read"`
}

type AdminUser struct {
	ID           int64      `db:"id"`
	Username     string     `db:"username"`
	Email        string     `db:"email"`
	PasswordHash string     `db:"password_hash"`
	CreatedAt    time.Time  `db:"created_at"`
	LastLoginAt  *time.Time `db:"last_login_at"`
}
