package httpapi

import (
	"net/http"

	"portfolio-backend-go/internal/services"
)

func (s *Server) PublicProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := services.GetProfile(r.Context(), s.DB)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, s.profileDTO(profile))
}

func (s *Server) PublicServices(w http.ResponseWriter, r *http.Request) {
	items, err := services.ListServices(r.Context(), s.DB, services.Public)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, mapItems(items, s.serviceDTO))
}

func (s *Server) PublicService(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		WriteError(w, http.StatusNotFound, "Not found.")
		return
	}
	item, err := services.GetService(r.Context(), s.DB, services.Public, id)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, s.serviceDTO(item))
}

func (s *Server) PublicTimeline(w http.ResponseWriter, r *http.Request) {
	items, err := services.ListTimeline(r.Context(), s.DB, services.Public, r.URL.Query().Get("type"))
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, mapItems(items, timelineDTO))
}

func (s *Server) PublicTimelineEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		WriteError(w, http.StatusNotFound, "Not found.")
		return
	}
	item, err := services.GetTimelineEntry(r.Context(), s.DB, services.Public, id)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, timelineDTO(item))
}

func (s *Server) PublicSkills(w http.ResponseWriter, r *http.Request) {
	items, err := services.ListSkills(r.Context(), s.DB, services.Public)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, items)
}

func (s *Server) PublicSkill(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		WriteError(w, http.StatusNotFound, "Not found.")
		return
	}
	item, err := services.GetSkill(r.Context(), s.DB, services.Public, id)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, item)
}

func (s *Server) PublicCategories(w http.ResponseWriter, r *http.Request) {
	items, err := services.ListCategories(r.Context(), s.DB)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, mapItems(items, categoryDTO))
}

func (s *Server) PublicCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		WriteError(w, http.StatusNotFound, "Not found.")
		return
	}
	item, err := services.GetCategory(r.Context(), s.DB, id)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, categoryDTO(item))
}

func (s *Server) PublicProjects(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := services.ProjectFilter{
		CategorySlug: query.Get("category"),
		FeaturedOnly: services.FeaturedFilter(query.Get("featured")),
	}
	items, err := services.ListProjects(r.Context(), s.DB, services.Public, filter)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, mapItems(items, s.projectDTO))
}

func (s *Server) PublicProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		WriteError(w, http.StatusNotFound, "Not found.")
		return
	}
	item, err := services.GetProject(r.Context(), s.DB, services.Public, id)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, s.projectDTO(item))
}

func (s *Server) PublicTestimonials(w http.ResponseWriter, r *http.Request) {
	items, err := services.ListTestimonials(r.Context(), s.DB, services.Public)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, mapItems(items, s.testimonialDTO))
}

func (s *Server) PublicTestimonial(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		WriteError(w, http.StatusNotFound, "Not found.")
		return
	}
	item, err := services.GetTestimonial(r.Context(), s.DB, services.Public, id)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, s.testimonialDTO(item))
}

func (s *Server) PublicClients(w http.ResponseWriter, r *http.Request) {
	items, err := services.ListClients(r.Context(), s.DB, services.Public)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, mapItems(items, s.clientDTO))
}

func (s *Server) PublicClient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		WriteError(w, http.StatusNotFound, "Not found.")
		return
	}
	item, err := services.GetClient(r.Context(), s.DB, services.Public, id)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, s.clientDTO(item))
}
