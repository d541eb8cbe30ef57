package httpapi

import (
	"net/http"
	"time"

	"portfolio-backend-go/internal/config"
	"portfolio-backend-go/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	DB     *sqlx.DB
	Config config.Config
	Tokens services.TokenService
}

func NewServer(db *sqlx.DB, cfg config.Config) *Server {
	tokens := services.TokenService{
		Secret:    []byte(cfg.JWTSecret),
		Issuer:    cfg.JWTIssuer,
		AccessTTL: time.Duration(cfg.AccessTTLSeconds) * time.Second,
	}
	return &Server{
		DB:     db,
		Config: cfg,
		Tokens: tokens,
	}
}

// Router builds the HTTP handler. Every route answers with and without a trailing slash.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)
	if len(s.Config.CorsOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.Config.CorsOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", s.Health)

		api.Get("/profile", s.PublicProfile)
		api.Route("/services", func(items chi.Router) {
			items.Get("/", s.PublicServices)
			items.Get("/{id}", s.PublicService)
		})
		api.Route("/timeline", func(items chi.Router) {
			items.Get("/", s.PublicTimeline)
			items.Get("/{id}", s.PublicTimelineEntry)
		})
		api.Route("/skills", func(items chi.Router) {
			items.Get("/", s.PublicSkills)
			items.Get("/{id}", s.PublicSkill)
		})
		api.Route("/categories", func(items chi.Router) {
			items.Get("/", s.PublicCategories)
			items.Get("/{id}", s.PublicCategory)
		})
		api.Route("/projects", func(items chi.Router) {
			items.Get("/", s.PublicProjects)
			items.Get("/{id}", s.PublicProject)
		})
		api.Route("/testimonials", func(items chi.Router) {
			items.Get("/", s.PublicTestimonials)
			items.Get("/{id}", s.PublicTestimonial)
		})
		api.Route("/clients", func(items chi.Router) {
			items.Get("/", s.PublicClients)
			items.Get("/{id}", s.PublicClient)
		})
		api.Route("/blog", func(items chi.Router) {
			items.Get("/", s.PublicBlog)
			items.Get("/{slug}", s.PublicBlogPost)
		})
		api.Post("/contact", s.SubmitContact)

		api.Route("/admin", func(admin chi.Router) {
			admin.Post("/auth/login", s.AdminLogin)

			admin.Group(func(protected chi.Router) {
				protected.Use(WithAuth(s.Tokens))
				protected.Use(RequireRole(services.RoleAdmin))

				protected.Get("/profile", s.AdminGetProfile)
				protected.Post("/profile", s.AdminCreateProfile)
				protected.Put("/profile", s.AdminUpdateProfile)

				protected.Route("/services", s.mountAdminServices)
				protected.Route("/timeline", s.mountAdminTimeline)
				protected.Route("/skills", s.mountAdminSkills)
				protected.Route("/categories", s.mountAdminCategories)
				protected.Route("/projects", s.mountAdminProjects)
				protected.Route("/testimonials", s.mountAdminTestimonials)
				protected.Route("/clients", s.mountAdminClients)
				protected.Route("/blog", s.mountAdminBlog)

				protected.Route("/messages", func(messages chi.Router) {
					messages.Get("/", s.AdminListMessages)
					messages.Get("/{id}", s.AdminGetMessage)
					messages.Patch("/{id}", s.AdminMarkMessage)
					messages.Delete("/{id}", s.AdminDeleteMessage)
				})

				protected.Post("/uploads/{bucket}", s.AdminUpload)
				protected.Get("/system", s.AdminSystem)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, http.StatusNotFound, "Not found.")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, http.StatusMethodNotAllowed, "Method \""+r.Method+"\" not allowed.")
	})
	return r
}
