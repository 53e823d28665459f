package main

import (
	"net/http"

	"starwarsapi/internal/app/favorites"
	"starwarsapi/internal/app/people"
	"starwarsapi/internal/app/planets"
	"starwarsapi/internal/app/users"
	"starwarsapi/internal/config"
	"starwarsapi/internal/http/middleware"
	"starwarsapi/internal/httpapi"
	"starwarsapi/internal/store"
)

func newHTTPHandler(cfg *config.Config, dataStore *store.Store) http.Handler {
	userSvc := users.New(dataStore)
	peopleSvc := people.New(dataStore)
	planetSvc := planets.New(dataStore)
	favoritesSvc := favorites.New(dataStore)

	routes := httpapi.New(userSvc, peopleSvc, planetSvc, favoritesSvc).Routes()
	return withMiddleware(cfg, routes)
}

// withMiddleware wraps h so every request gets an id before anything can panic,
// and a recovered panic is still logged as a completed 500.
func withMiddleware(cfg *config.Config, h http.Handler) http.Handler {
	return middleware.Chain(h,
		middleware.RequestLogging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)
}
