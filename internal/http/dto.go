package httpapi

import (
	"strings"

	"portfolio-backend-go/internal/models"
	"portfolio-backend-go/internal/services"

	"github.com/yuin/goldmark"
)

// Wire representations. Image fields are rendered as media URLs, null when empty.

type ProfileDTO struct {
	models.Profile
	Avatar *string `json:"avatar"`
}

type ServiceDTO struct {
	models.Service
	Icon *string `json:"icon"`
}

type TimelineEntryDTO struct {
	models.TimelineEntry
	IsCurrent bool `json:"is_current"`
}

type CategoryDTO struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Slug          string `json:"slug"`
	Description   string `json:"description"`
	ProjectsCount int    `json:"projects_count"`
}

type ProjectDTO struct {
	models.Project
	Image            *string  `json:"image"`
	CategoryName     *string  `json:"category_name"`
	TechnologiesList []string `json:"technologies_list"`
}

type TestimonialDTO struct {
	models.Testimonial
	ClientAvatar *string `json:"client_avatar"`
}

type ClientDTO struct {
	models.Client
	Logo *string `json:"logo"`
}

// BlogPostListDTO is the reduced form used in collections.
type BlogPostListDTO struct {
	ID            int64       `json:"id"`
	Title         string      `json:"title"`
	Slug          string      `json:"slug"`
	Excerpt       string      `json:"excerpt"`
	FeaturedImage *string     `json:"featured_image"`
	Category      string      `json:"category"`
	PublishedDate models.Date `json:"published_date"`
	ViewCount     int         `json:"view_count"`
	Featured      bool        `json:"featured"`
}

type BlogPostDetailDTO struct {
	models.BlogPost
	FeaturedImage *string `json:"featured_image"`
	ContentHTML   string  `json:"content_html"`
}

// BlogPage is the paginated blog envelope.
type BlogPage struct {
	Count    int               `json:"count"`
	Next     *string           `json:"next"`
	Previous *string           `json:"previous"`
	Results  []BlogPostListDTO `json:"results"`
}

func (s *Server) mediaURL(stored string) *string {
	return services.MediaURL(s.Config.MediaURL, stored)
}

func (s *Server) profileDTO(item models.Profile) ProfileDTO {
	avatar := ""
	if item.Avatar != nil {
		avatar = *item.Avatar
	}
	return ProfileDTO{Profile: item, Avatar: s.mediaURL(avatar)}
}

func (s *Server) serviceDTO(item models.Service) ServiceDTO {
	icon := ""
	if item.Icon != nil {
		icon = *item.Icon
	}
	return ServiceDTO{Service: item, Icon: s.mediaURL(icon)}
}

func timelineDTO(item models.TimelineEntry) TimelineEntryDTO {
	return TimelineEntryDTO{TimelineEntry: item, IsCurrent: item.IsCurrent()}
}

func categoryDTO(item models.CategoryWithCount) CategoryDTO {
	return CategoryDTO{
		ID:            item.ID,
		Name:          item.Name,
		Slug:          item.Slug,
		Description:   item.Description,
		ProjectsCount: item.ProjectsCount,
	}
}

func (s *Server) projectDTO(item models.Project) ProjectDTO {
	return ProjectDTO{
		Project:          item,
		Image:            s.mediaURL(item.Image),
		CategoryName:     item.CategoryName,
		TechnologiesList: services.SplitTechnologies(item.Technologies),
	}
}

func (s *Server) testimonialDTO(item models.Testimonial) TestimonialDTO {
	return TestimonialDTO{Testimonial: item, ClientAvatar: s.mediaURL(item.ClientAvatar)}
}

func (s *Server) clientDTO(item models.Client) ClientDTO {
	return ClientDTO{Client: item, Logo: s.mediaURL(item.Logo)}
}

func (s *Server) blogListDTO(item models.BlogPost) BlogPostListDTO {
	return BlogPostListDTO{
		ID:            item.ID,
		Title:         item.Title,
		Slug:          item.Slug,
		Excerpt:       item.Excerpt,
		FeaturedImage: s.mediaURL(item.FeaturedImage),
		Category:      item.Category,
		PublishedDate: item.PublishedDate,
		ViewCount:     item.ViewCount,
		Featured:      item.Featured,
	}
}

func (s *Server) blogDetailDTO(item models.BlogPost) BlogPostDetailDTO {
	return BlogPostDetailDTO{
		BlogPost:      item,
		FeaturedImage: s.mediaURL(item.FeaturedImage),
		ContentHTML:   renderMarkdown(item.Content),
	}
}

func renderMarkdown(content string) string {
	var buf strings.Builder
	if err := goldmark.Convert([]byte(content), &buf); err != nil {
		return ""
	}
	return buf.String()
}

func mapItems[T any, D any](items []T, render func(T) D) []D {
	out := make([]D, 0, len(items))
	for _, item := range items {
		out = append(out, render(item))
	}
	return out
}
