package httpapi

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"portfolio-backend-go/internal/models"
	"portfolio-backend-go/internal/services"
)

func seedPosts(t *testing.T, env *testEnv, posts ...models.BlogPost) []models.BlogPost {
	t.Helper()
	for i := range posts {
		posts[i].Excerpt = "Excerpt"
		posts[i].FeaturedImage = "blog/cover.png"
		if posts[i].Content == "" {
			posts[i].Content = "Body"
		}
		if err := services.CreateBlogPost(env.ctx(), env.server.DB, &posts[i]); err != nil {
			t.Fatalf("create post: %v", err)
		}
	}
	return posts
}

func TestBlogListPaginates(t *testing.T) {
	env := newTestEnv(t)
	seedPosts(t, env,
		models.BlogPost{Title: "One", IsPublished: true, PublishedDate: models.NewDate(2024, time.January, 1)},
		models.BlogPost{Title: "Two", IsPublished: true, PublishedDate: models.NewDate(2024, time.February, 1)},
		models.BlogPost{Title: "Three", IsPublished: true, PublishedDate: models.NewDate(2024, time.March, 1)},
		models.BlogPost{Title: "Draft", IsPublished: false, PublishedDate: models.NewDate(2024, time.April, 1)},
	)

	rec := env.do(http.MethodGet, "/api/blog/", nil, "")
	expectStatus(t, rec, http.StatusOK)
	var first BlogPage
	decodeBody(t, rec, &first)
	if first.Count != 3 || len(first.Results) != 2 || first.Results[0].Title != "Three" {
		t.Fatalf("first page = %+v", first)
	}
	if first.Previous != nil || first.Next == nil || !strings.Contains(*first.Next, "page=2") {
		t.Fatalf("first page links next=%v previous=%v", first.Next, first.Previous)
	}

	rec = env.do(http.MethodGet, "/api/blog/?page=2", nil, "")
	expectStatus(t, rec, http.StatusOK)
	var second BlogPage
	decodeBody(t, rec, &second)
	if len(second.Results) != 1 || second.Results[0].Title != "One" || second.Next != nil {
		t.Fatalf("second page = %+v", second)
	}
	if second.Previous == nil || strings.Contains(*second.Previous, "page=") {
		t.Fatalf("previous link = %v", second.Previous)
	}

	for _, page := range []string{"3", "0", "abc"} {
		rec = env.do(http.MethodGet, "/api/blog/?page="+page, nil, "")
		expectStatus(t, rec, http.StatusNotFound)
	}
}

func TestBlogListShape(t *testing.T) {
	env := newTestEnv(t)
	seedPosts(t, env, models.BlogPost{Title: "Shape", Category: "Web Design", IsPublished: true, Featured: true, PublishedDate: models.NewDate(2024, time.January, 1)})

	rec := env.do(http.MethodGet, "/api/blog/?featured=true&category=design", nil, "")
	expectStatus(t, rec, http.StatusOK)
	var page struct {
		Results []map[string]interface{} `json:"results"`
	}
	decodeBody(t, rec, &page)
	if len(page.Results) != 1 {
		t.Fatalf("results = %v", page.Results)
	}
	item := page.Results[0]
	for _, key := range []string{"id", "title", "slug", "excerpt", "featured_image", "category", "published_date", "view_count", "featured"} {
		if _, ok := item[key]; !ok {
			t.Errorf("list item missing %s", key)
		}
	}
	for _, key := range []string{"content", "is_published", "updated_date"} {
		if _, ok := item[key]; ok {
			t.Errorf("list item should not carry %s", key)
		}
	}
}

func TestBlogListWithoutPagination(t *testing.T) {
	env := newTestEnv(t)
	env.server.Config.BlogPageSize = 0
	env.handler = env.server.Router()
	seedPosts(t, env,
		models.BlogPost{Title: "A", IsPublished: true, PublishedDate: models.NewDate(2024, time.January, 1)},
		models.BlogPost{Title: "B", IsPublished: true, PublishedDate: models.NewDate(2024, time.January, 2)},
		models.BlogPost{Title: "C", IsPublished: true, PublishedDate: models.NewDate(2024, time.January, 3)},
	)
	rec := env.do(http.MethodGet, "/api/blog/", nil, "")
	expectStatus(t, rec, http.StatusOK)
	var items []BlogPostListDTO
	decodeBody(t, rec, &items)
	if len(items) != 3 {
		t.Fatalf("items = %+v", items)
	}
}

func TestBlogDetailCountsViews(t *testing.T) {
	env := newTestEnv(t)
	posts := seedPosts(t, env,
		models.BlogPost{Title: "Hello World", Content: "# Title\n\nSome *markdown*.", IsPublished: true, PublishedDate: models.NewDate(2024, time.January, 1)},
		models.BlogPost{Title: "Hidden Draft", IsPublished: false, PublishedDate: models.NewDate(2024, time.January, 1)},
	)

	for want := 1; want <= 3; want++ {
		rec := env.do(http.MethodGet, "/api/blog/hello-world/", nil, "")
		expectStatus(t, rec, http.StatusOK)
		var body map[string]interface{}
		decodeBody(t, rec, &body)
		if body["view_count"] != float64(want) {
			t.Fatalf("view_count = %v, want %d", body["view_count"], want)
		}
		html, _ := body["content_html"].(string)
		if !strings.Contains(html, "<h1>Title</h1>") || !strings.Contains(html, "<em>markdown</em>") {
			t.Fatalf("content_html = %q", html)
		}
		if body["content"] == nil || body["is_published"] != true {
			t.Fatalf("detail form incomplete: %v", body)
		}
	}

	expectStatus(t, env.do(http.MethodGet, "/api/blog/"+posts[1].Slug+"/", nil, ""), http.StatusNotFound)
	expectStatus(t, env.do(http.MethodGet, "/api/blog/missing/", nil, ""), http.StatusNotFound)

	post, err := services.GetBlogPost(env.ctx(), env.server.DB, services.Admin, posts[1].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if post.ViewCount != 0 {
		t.Fatalf("hidden post counted views: %d", post.ViewCount)
	}
}

func TestBlogPageNumber(t *testing.T) {
	cases := map[string]struct {
		page int
		ok   bool
	}{
		"":    {1, true},
		"1":   {1, true},
		"7":   {7, true},
		"0":   {0, false},
		"-2":  {0, false},
		"two": {0, false},
	}
	for raw, want := range cases {
		page, ok := blogPageNumber(raw)
		if page != want.page || ok != want.ok {
			t.Errorf("blogPageNumber(%q) = %d, %v", raw, page, ok)
		}
	}
	if pageCount(0, 10) != 1 || pageCount(10, 10) != 1 || pageCount(11, 10) != 2 {
		t.Fatalf("pageCount mismatch")
	}
}
