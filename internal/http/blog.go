package httpapi

import (
	"net/http"
	"net/url"
	"strconv"

	"portfolio-backend-go/internal/services"

	"github.com/go-chi/chi/v5"
)

const invalidPage = "Invalid page."

// blogPageNumber parses ?page=, defaulting to 1. ok is false for anything that is not
// a positive integer.
func blogPageNumber(raw string) (int, bool) {
	if raw == "" {
		return 1, true
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, false
	}
	return page, true
}

// pageCount is the number of pages for total rows; an empty set still has one page.
func pageCount(total, size int) int {
	if total == 0 {
		return 1
	}
	return (total + size - 1) / size
}

// pageLink rebuilds the request URL pointing at page. Page 1 drops the parameter.
func pageLink(r *http.Request, page int) *string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if forwarded := r.Header.Get("X-Forwarded-Proto"); forwarded != "" {
		scheme = forwarded
	}
	query := r.URL.Query()
	if page <= 1 {
		query.Del("page")
	} else {
		query.Set("page", strconv.Itoa(page))
	}
	link := url.URL{Scheme: scheme, Host: r.Host, Path: r.URL.Path, RawQuery: query.Encode()}
	value := link.String()
	return &value
}

func (s *Server) PublicBlog(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := services.BlogFilter{
		FeaturedOnly: services.FeaturedFilter(query.Get("featured")),
		Category:     query.Get("category"),
	}
	size := s.Config.BlogPageSize
	if size <= 0 {
		items, _, err := services.ListBlogPosts(r.Context(), s.DB, services.Public, filter, services.Page{})
		if err != nil {
			writeFailure(w, r, err)
			return
		}
		WriteJSON(w, http.StatusOK, mapItems(items, s.blogListDTO))
		return
	}

	page, ok := blogPageNumber(query.Get("page"))
	if !ok {
		WriteError(w, http.StatusNotFound, invalidPage)
		return
	}
	items, total, err := services.ListBlogPosts(r.Context(), s.DB, services.Public, filter,
		services.Page{Limit: size, Offset: (page - 1) * size})
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	pages := pageCount(total, size)
	if page > pages {
		WriteError(w, http.StatusNotFound, invalidPage)
		return
	}
	body := BlogPage{Count: total, Results: mapItems(items, s.blogListDTO)}
	if page < pages {
		body.Next = pageLink(r, page+1)
	}
	if page > 1 {
		body.Previous = pageLink(r, page-1)
	}
	WriteJSON(w, http.StatusOK, body)
}

// PublicBlogPost counts a view and returns the post in its detail form.
func (s *Server) PublicBlogPost(w http.ResponseWriter, r *http.Request) {
	post, err := services.ViewBlogPost(r.Context(), s.DB, chi.URLParam(r, "slug"))
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, s.blogDetailDTO(post))
}
