package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"starwarsapi/internal/models"
	"starwarsapi/internal/store"
)

var errMissingUserID = fmt.Errorf("%w: user_id", store.ErrMissingField)

// handleListFavorites serves GET /favorites?user_id=N.
func (s *Server) handleListFavorites(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("user_id")
	if raw == "" {
		writeError(w, r, errMissingUserID)
		return
	}
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid user id"})
		return
	}
	s.writeFavorites(w, r, userID)
}

func (s *Server) handleListUserFavorites(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "user")
	if !ok {
		return
	}
	s.writeFavorites(w, r, userID)
}

func (s *Server) writeFavorites(w http.ResponseWriter, r *http.Request, userID int64) {
	favorites, err := s.favorites.ListByUser(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, favorites)
}

func (s *Server) handleAddFavorite(kind models.TargetKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		targetID, ok := pathID(w, r, string(kind))
		if !ok {
			return
		}

		var req models.FavoriteRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.UserID == nil {
			writeError(w, r, errMissingUserID)
			return
		}

		favorite, err := s.favorites.Add(r.Context(), *req.UserID, kind, targetID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, favorite)
	}
}

func (s *Server) handleRemoveFavorite(kind models.TargetKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		targetID, ok := pathID(w, r, string(kind))
		if !ok {
			return
		}

		userID, ok := actingUserID(w, r)
		if !ok {
			return
		}

		if err := s.favorites.Remove(r.Context(), userID, kind, targetID); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, messageResponse{
			Message: fmt.Sprintf("Favorite %s %d removed for user %d", kind, targetID, userID),
		})
	}
}

// actingUserID takes the user from ?user_id= and falls back to a {"user_id": n} body.
func actingUserID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	if raw := r.URL.Query().Get("user_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid user id"})
			return 0, false
		}
		return id, true
	}

	var req models.FavoriteRequest
	if !decodeOptionalJSON(w, r, &req) {
		return 0, false
	}
	if req.UserID == nil {
		writeError(w, r, errMissingUserID)
		return 0, false
	}
	return *req.UserID, true
}
