package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"github.com/amitb25/habit-backend-sub001/internal/transport/http/middleware"
)

// NewRouter builds the HTTP mux with all routes and middleware applied.
func NewRouter(
	habitHandler *HabitHandler,
	profileHandler *ProfileHandler,
	auth *middleware.AuthMiddleware,
	limiter *middleware.RateLimiter,
	logger *zap.SugaredLogger,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		respondSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	mux.HandleFunc("POST /habits", auth.Auth(habitHandler.CreateHabit))
	mux.HandleFunc("GET /habits/{profileId}", auth.Auth(habitHandler.ListHabits))
	mux.HandleFunc("GET /habits/analytics/{profileId}", auth.Auth(habitHandler.GetAnalytics))
	mux.HandleFunc("PUT /habits/{id}/toggle", auth.Auth(habitHandler.ToggleHabit))
	mux.HandleFunc("DELETE /habits/{id}", auth.Auth(habitHandler.DeleteHabit))

	mux.HandleFunc("GET /profiles/{id}", auth.Auth(profileHandler.GetProfile))

	var handler http.Handler = mux
	handler = limiter.Handler(handler)
	handler = middleware.Logging(logger)(handler)

	return handler
}
