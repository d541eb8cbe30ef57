package httpapi

import (
	"context"
	"net/http"

	"portfolio-backend-go/internal/models"
	"portfolio-backend-go/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
)

// adminResource wires one content table to list/create/get/update/delete routes.
// R is the row as read back (it may carry computed columns), W the editable record.
type adminResource[R any, W any] struct {
	name     string
	list     func(context.Context, *sqlx.DB) ([]R, error)
	get      func(context.Context, *sqlx.DB, int64) (R, error)
	create   func(context.Context, *sqlx.DB, *W) error
	update   func(context.Context, *sqlx.DB, *W) error
	remove   func(context.Context, *sqlx.DB, int64) error
	blank    func() W
	editable func(R) W
	setID    func(*W, int64)
	id       func(W) int64
	render   func(R) interface{}
}

func mountAdminResource[R any, W any](router chi.Router, s *Server, res adminResource[R, W]) {
	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		items, err := res.list(r.Context(), s.DB)
		if err != nil {
			writeFailure(w, r, err)
			return
		}
		WriteJSON(w, http.StatusOK, mapItems(items, res.render))
	})

	router.Post("/", func(w http.ResponseWriter, r *http.Request) {
		record := res.blank()
		if !decodeJSON(w, r, &record) {
			return
		}
		res.setID(&record, 0)
		if err := res.create(r.Context(), s.DB, &record); err != nil {
			writeFailure(w, r, err)
			return
		}
		auditf(r, "created %s %d", res.name, res.id(record))
		writeAdminRecord(w, r, s, res, res.id(record), http.StatusCreated)
	})

	router.Get("/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			WriteError(w, http.StatusNotFound, "Not found.")
			return
		}
		writeAdminRecord(w, r, s, res, id, http.StatusOK)
	})

	router.Put("/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			WriteError(w, http.StatusNotFound, "Not found.")
			return
		}
		current, err := res.get(r.Context(), s.DB, id)
		if err != nil {
			writeFailure(w, r, err)
			return
		}
		record := res.editable(current)
		if !decodeJSON(w, r, &record) {
			return
		}
		res.setID(&record, id)
		if err := res.update(r.Context(), s.DB, &record); err != nil {
			writeFailure(w, r, err)
			return
		}
		auditf(r, "updated %s %d", res.name, id)
		writeAdminRecord(w, r, s, res, id, http.StatusOK)
	})

	router.Delete("/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			WriteError(w, http.StatusNotFound, "Not found.")
			return
		}
		if err := res.remove(r.Context(), s.DB, id); err != nil {
			writeFailure(w, r, err)
			return
		}
		auditf(r, "deleted %s %d", res.name, id)
		w.WriteHeader(http.StatusNoContent)
	})
}

func writeAdminRecord[R any, W any](w http.ResponseWriter, r *http.Request, s *Server, res adminResource[R, W], id int64, status int) {
	item, err := res.get(r.Context(), s.DB, id)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	WriteJSON(w, status, res.render(item))
}

func identity[T any](item T) T {
	return item
}

func (s *Server) mountAdminServices(router chi.Router) {
	mountAdminResource(router, s, adminResource[models.Service, models.Service]{
		name: "service",
		list: func(ctx context.Context, db *sqlx.DB) ([]models.Service, error) {
			return services.ListServices(ctx, db, services.Admin)
		},
		get: func(ctx context.Context, db *sqlx.DB, id int64) (models.Service, error) {
			return services.GetService(ctx, db, services.Admin, id)
		},
		create:   services.CreateService,
		update:   services.UpdateService,
		remove:   services.DeleteService,
		blank:    func() models.Service { return models.Service{IsActive: true} },
		editable: identity[models.Service],
		setID:    func(item *models.Service, id int64) { item.ID = id },
		id:       func(item models.Service) int64 { return item.ID },
		render:   func(item models.Service) interface{} { return s.serviceDTO(item) },
	})
}

func (s *Server) mountAdminTimeline(router chi.Router) {
	mountAdminResource(router, s, adminResource[models.TimelineEntry, models.TimelineEntry]{
		name: "timeline entry",
		list: func(ctx context.Context, db *sqlx.DB) ([]models.TimelineEntry, error) {
			return services.ListTimeline(ctx, db, services.Admin, "")
		},
		get: func(ctx context.Context, db *sqlx.DB, id int64) (models.TimelineEntry, error) {
			return services.GetTimelineEntry(ctx, db, services.Admin, id)
		},
		create:   services.CreateTimelineEntry,
		update:   services.UpdateTimelineEntry,
		remove:   services.DeleteTimelineEntry,
		blank:    func() models.TimelineEntry { return models.TimelineEntry{IsActive: true} },
		editable: identity[models.TimelineEntry],
		setID:    func(item *models.TimelineEntry, id int64) { item.ID = id },
		id:       func(item models.TimelineEntry) int64 { return item.ID },
		render:   func(item models.TimelineEntry) interface{} { return timelineDTO(item) },
	})
}

func (s *Server) mountAdminSkills(router chi.Router) {
	mountAdminResource(router, s, adminResource[models.Skill, models.Skill]{
		name: "skill",
		list: func(ctx context.Context, db *sqlx.DB) ([]models.Skill, error) {
			return services.ListSkills(ctx, db, services.Admin)
		},
		get: func(ctx context.Context, db *sqlx.DB, id int64) (models.Skill, error) {
			return services.GetSkill(ctx, db, services.Admin, id)
		},
		create:   services.CreateSkill,
		update:   services.UpdateSkill,
		remove:   services.DeleteSkill,
		blank:    func() models.Skill { return models.Skill{Proficiency: 50, IsActive: true} },
		editable: identity[models.Skill],
		setID:    func(item *models.Skill, id int64) { item.ID = id },
		id:       func(item models.Skill) int64 { return item.ID },
		render:   func(item models.Skill) interface{} { return item },
	})
}

func (s *Server) mountAdminCategories(router chi.Router) {
	mountAdminResource(router, s, adminResource[models.CategoryWithCount, models.ProjectCategory]{
		name:     "category",
		list:     services.ListCategories,
		get:      services.GetCategory,
		create:   services.CreateCategory,
		update:   services.UpdateCategory,
		remove:   services.DeleteCategory,
		blank:    func() models.ProjectCategory { return models.ProjectCategory{} },
		editable: func(item models.CategoryWithCount) models.ProjectCategory { return item.ProjectCategory },
		setID:    func(item *models.ProjectCategory, id int64) { item.ID = id },
		id:       func(item models.ProjectCategory) int64 { return item.ID },
		render:   func(item models.CategoryWithCount) interface{} { return categoryDTO(item) },
	})
}

func (s *Server) mountAdminProjects(router chi.Router) {
	mountAdminResource(router, s, adminResource[models.Project, models.Project]{
		name: "project",
		list: func(ctx context.Context, db *sqlx.DB) ([]models.Project, error) {
			return services.ListProjects(ctx, db, services.Admin, services.ProjectFilter{})
		},
		get: func(ctx context.Context, db *sqlx.DB, id int64) (models.Project, error) {
			return services.GetProject(ctx, db, services.Admin, id)
		},
		create: services.CreateProject,
		update: services.UpdateProject,
		remove: services.DeleteProject,
		blank: func() models.Project {
			return models.Project{CreatedDate: models.Today(), IsActive: true}
		},
		editable: identity[models.Project],
		setID:    func(item *models.Project, id int64) { item.ID = id },
		id:       func(item models.Project) int64 { return item.ID },
		render:   func(item models.Project) interface{} { return s.projectDTO(item) },
	})
}

func (s *Server) mountAdminTestimonials(router chi.Router) {
	mountAdminResource(router, s, adminResource[models.Testimonial, models.Testimonial]{
		name: "testimonial",
		list: func(ctx context.Context, db *sqlx.DB) ([]models.Testimonial, error) {
			return services.ListTestimonials(ctx, db, services.Admin)
		},
		get: func(ctx context.Context, db *sqlx.DB, id int64) (models.Testimonial, error) {
			return services.GetTestimonial(ctx, db, services.Admin, id)
		},
		create: services.CreateTestimonial,
		update: services.UpdateTestimonial,
		remove: services.DeleteTestimonial,
		blank: func() models.Testimonial {
			return models.Testimonial{Date: models.Today(), IsActive: true}
		},
		editable: identity[models.Testimonial],
		setID:    func(item *models.Testimonial, id int64) { item.ID = id },
		id:       func(item models.Testimonial) int64 { return item.ID },
		render:   func(item models.Testimonial) interface{} { return s.testimonialDTO(item) },
	})
}

func (s *Server) mountAdminClients(router chi.Router) {
	mountAdminResource(router, s, adminResource[models.Client, models.Client]{
		name: "client",
		list: func(ctx context.Context, db *sqlx.DB) ([]models.Client, error) {
			return services.ListClients(ctx, db, services.Admin)
		},
		get: func(ctx context.Context, db *sqlx.DB, id int64) (models.Client, error) {
			return services.GetClient(ctx, db, services.Admin, id)
		},
		create:   services.CreateClient,
		update:   services.UpdateClient,
		remove:   services.DeleteClient,
		blank:    func() models.Client { return models.Client{IsActive: true} },
		editable: identity[models.Client],
		setID:    func(item *models.Client, id int64) { item.ID = id },
		id:       func(item models.Client) int64 { return item.ID },
		render:   func(item models.Client) interface{} { return s.clientDTO(item) },
	})
}

func (s *Server) mountAdminBlog(router chi.Router) {
	mountAdminResource(router, s, adminResource[models.BlogPost, models.BlogPost]{
		name: "blog post",
		list: func(ctx context.Context, db *sqlx.DB) ([]models.BlogPost, error) {
			items, _, err := services.ListBlogPosts(ctx, db, services.Admin, services.BlogFilter{}, services.Page{})
			return items, err
		},
		get: func(ctx context.Context, db *sqlx.DB, id int64) (models.BlogPost, error) {
			return services.GetBlogPost(ctx, db, services.Admin, id)
		},
		create: services.CreateBlogPost,
		update: services.UpdateBlogPost,
		remove: services.DeleteBlogPost,
		blank: func() models.BlogPost {
			return models.BlogPost{Category: models.DefaultBlogCategory, PublishedDate: models.Today(), IsPublished: true}
		},
		editable: identity[models.BlogPost],
		setID:    func(item *models.BlogPost, id int64) { item.ID = id },
		id:       func(item models.BlogPost) int64 { return item.ID },
		render:   func(item models.BlogPost) interface{} { return s.blogDetailDTO(item) },
	})
}

func (s *Server) AdminGetProfile(w http.ResponseWriter, r *http.Request) {
	s.PublicProfile(w, r)
}

func (s *Server) AdminCreateProfile(w http.ResponseWriter, r *http.Request) {
	var profile models.Profile
	if !decodeJSON(w, r, &profile) {
		return
	}
	if err := services.CreateProfile(r.Context(), s.DB, &profile); err != nil {
		writeFailure(w, r, err)
		return
	}
	auditf(r, "created profile %d", profile.ID)
	WriteJSON(w, http.StatusCreated, s.profileDTO(profile))
}

func (s *Server) AdminUpdateProfile(w http.ResponseWriter, r *http.Request) {
	current, err := services.GetProfile(r.Context(), s.DB)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	profile := current
	if !decodeJSON(w, r, &profile) {
		return
	}
	if err := services.UpdateProfile(r.Context(), s.DB, &profile); err != nil {
		writeFailure(w, r, err)
		return
	}
	auditf(r, "updated profile %d", profile.ID)
	WriteJSON(w, http.StatusOK, s.profileDTO(profile))
}
