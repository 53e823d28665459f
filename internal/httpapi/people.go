package httpapi

import (
	"net/http"

	"starwarsapi/internal/models"
)

func (s *Server) handleListPeople(w http.ResponseWriter, r *http.Request) {
	people, err := s.people.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, people)
}

func (s *Server) handleGetPerson(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "person")
	if !ok {
		return
	}

	person, err := s.people.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, person)
}

func (s *Server) handleCreatePerson(w http.ResponseWriter, r *http.Request) {
	var fields models.PersonFields
	if !decodeJSON(w, r, &fields) {
		return
	}

	created, err := s.people.Create(r.Context(), fields)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdatePerson(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "person")
	if !ok {
		return
	}

	var fields models.PersonFields
	if !decodeJSON(w, r, &fields) {
		return
	}

	updated, err := s.people.Update(r.Context(), id, fields)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeletePerson(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "person")
	if !ok {
		return
	}

	if err := s.people.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Person deleted"})
}
