package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"starwarsapi/internal/logging"
	"starwarsapi/internal/models"
	"starwarsapi/internal/store"
)

// UserService captures the user account operations needed by the HTTP handlers.
type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id int64) (models.User, error)
	Create(ctx context.Context, fields models.UserFields) (models.User, error)
	Update(ctx context.Context, id int64, fields models.UserFields) (models.User, error)
	Delete(ctx context.Context, id int64) error
}

// PersonService describes character catalogue workflows.
type PersonService interface {
	List(ctx context.Context) ([]models.Person, error)
	Get(ctx context.Context, id int64) (models.Person, error)
	Create(ctx context.Context, fields models.PersonFields) (models.Person, error)
	Update(ctx context.Context, id int64, fields models.PersonFields) (models.Person, error)
	Delete(ctx context.Context, id int64) error
}

// PlanetService describes planet catalogue workflows.
type PlanetService interface {
	List(ctx context.Context) ([]models.Planet, error)
	Get(ctx context.Context, id int64) (models.Planet, error)
	Create(ctx context.Context, fields models.PlanetFields) (models.Planet, error)
	Update(ctx context.Context, id int64, fields models.PlanetFields) (models.Planet, error)
	Delete(ctx context.Context, id int64) error
}

// FavoritesService coordinates favoriting workflows.
type FavoritesService interface {
	Add(ctx context.Context, userID int64, kind models.TargetKind, targetID int64) (models.Favorite, error)
	Remove(ctx context.Context, userID int64, kind models.TargetKind, targetID int64) error
	ListByUser(ctx context.Context, userID int64) ([]models.Favorite, error)
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	users     UserService
	people    PersonService
	planets   PlanetService
	favorites FavoritesService
}

// New configures a Server with the given services.
func New(users UserService, people PersonService, planets PlanetService, favorites FavoritesService) *Server {
	return &Server{
		users:     users,
		people:    people,
		planets:   planets,
		favorites: favorites,
	}
}

type route struct {
	pattern string
	handler http.HandlerFunc
}

// Routes exposes the HTTP handlers for the catalogue and favorites.
func (s *Server) Routes() http.Handler {
	routes := []route{
		{"GET /test", s.handleTest},
		{"GET /user", s.handleHello},

		// People
		{"GET /people", s.handleListPeople},
		{"POST /people", s.handleCreatePerson},
		{"POST /people/create", s.handleCreatePerson},
		{"GET /people/{id}", s.handleGetPerson},
		{"PUT /people/{id}", s.handleUpdatePerson},
		{"DELETE /people/{id}", s.handleDeletePerson},

		// Planets
		{"GET /planet", s.handleListPlanets},
		{"POST /planet/create", s.handleCreatePlanet},
		{"GET /planet/{id}", s.handleGetPlanet},
		{"PUT /planet/{id}", s.handleUpdatePlanet},
		{"DELETE /planet/{id}", s.handleDeletePlanet},

		// Users
		{"GET /users", s.handleListUsers},
		{"POST /create_user", s.handleCreateUser},
		{"GET /users/{id}", s.handleGetUser},
		{"PUT /users/{id}", s.handleUpdateUser},
		{"DELETE /users/{id}", s.handleDeleteUser},

		// Favorites
		{"GET /favorites", s.handleListFavorites},
		{"GET /users/{id}/favorites", s.handleListUserFavorites},
		{"POST /favorite/planet/{id}", s.handleAddFavorite(models.TargetPlanet)},
		{"POST /favorite/people/{id}", s.handleAddFavorite(models.TargetPeople)},
		{"DELETE /favorite/planet/{id}", s.handleRemoveFavorite(models.TargetPlanet)},
		{"DELETE /favorite/people/{id}", s.handleRemoveFavorite(models.TargetPeople)},
	}

	mux := http.NewServeMux()
	endpoints := make([]string, 0, len(routes))
	for _, rt := range routes {
		mux.HandleFunc(rt.pattern, rt.handler)
		endpoints = append(endpoints, rt.pattern)
	}
	sort.Strings(endpoints)
	mux.HandleFunc("GET /{$}", handleSitemap(endpoints))

	return trimTrailingSlash(mux)
}

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func (s *Server) handleTest(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Status string `json:"status"`
	}{Status: "working"})
}

func (s *Server) handleHello(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Msg string `json:"msg"`
	}{Msg: "Hello, this is your GET /user response "})
}

func handleSitemap(endpoints []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, struct {
			Endpoints []string `json:"endpoints"`
		}{Endpoints: endpoints})
	}
}

// trimTrailingSlash lets "/people/" reach the "/people" route.
func trimTrailingSlash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if path := r.URL.Path; len(path) > 1 && strings.HasSuffix(path, "/") {
			r.URL.Path = strings.TrimRight(path, "/")
			if r.URL.Path == "" {
				r.URL.Path = "/"
			}
			r.URL.RawPath = ""
		}
		next.ServeHTTP(w, r)
	})
}

// pathID parses the {id} wildcard, writing a 400 response when it is not a number.
func pathID(w http.ResponseWriter, r *http.Request, label string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid " + label + " id"})
		return 0, false
	}
	return id, true
}

// decodeJSON reads the request body into dst, writing a 400 response on malformed input.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return false
	}
	return true
}

// decodeOptionalJSON behaves like decodeJSON but accepts an empty body.
func decodeOptionalJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Body == nil {
		return true
	}
	err := json.NewDecoder(r.Body).Decode(dst)
	if err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return false
	}
	return true
}

// writeError translates domain errors into status codes and client messages.
// Anything unrecognised is a 500 carrying the error text.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	message := err.Error()

	switch {
	case errors.Is(err, store.ErrMissingField), errors.Is(err, store.ErrInvalidTarget):
		status = http.StatusBadRequest
	case errors.Is(err, store.ErrPlanetNotFound):
		status, message = http.StatusNotFound, "Planet not found"
	case errors.Is(err, store.ErrPersonNotFound):
		status, message = http.StatusNotFound, "Person not found"
	case errors.Is(err, store.ErrUserNotFound):
		status, message = http.StatusNotFound, "User not found"
	case errors.Is(err, store.ErrFavoriteNotFound):
		status, message = http.StatusNotFound, "Favorite not found"
	case errors.Is(err, store.ErrFavoriteExists):
		status, message = http.StatusConflict, "Favorite already exists"
	case errors.Is(err, store.ErrUserExists):
		status, message = http.StatusConflict, "User already exists"
	}

	if status >= http.StatusInternalServerError {
		logging.WithContext(r.Context()).Error().
			Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("request failed")
	}

	writeJSON(w, status, errorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}
