package httpapi

import (
	"net/http"

	"starwarsapi/internal/models"
)

func (s *Server) handleListPlanets(w http.ResponseWriter, r *http.Request) {
	planets, err := s.planets.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, planets)
}

func (s *Server) handleGetPlanet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "planet")
	if !ok {
		return
	}

	planet, err := s.planets.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, planet)
}

func (s *Server) handleCreatePlanet(w http.ResponseWriter, r *http.Request) {
	var fields models.PlanetFields
	if !decodeJSON(w, r, &fields) {
		return
	}

	created, err := s.planets.Create(r.Context(), fields)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdatePlanet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "planet")
	if !ok {
		return
	}

	var fields models.PlanetFields
	if !decodeJSON(w, r, &fields) {
		return
	}

	updated, err := s.planets.Update(r.Context(), id, fields)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeletePlanet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "planet")
	if !ok {
		return
	}

	if err := s.planets.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Planet deleted"})
}
