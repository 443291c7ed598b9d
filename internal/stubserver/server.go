package stubserver

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/veriscan/veriscan-go/internal/logging"
)

// Server implements the remote verification service API in memory.
type Server struct {
	store  *memStore
	secret []byte
	log    logging.Logger
}

// New creates a Server signing tokens with secret.
func New(secret string, log logging.Logger) *Server {
	return &Server{store: newMemStore(), secret: []byte(secret), log: log}
}

// Router builds the HTTP surface of the service.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Route("/api/auth", func(r chi.Router) {
		r.With(rateLimit(5, 10)).Post("/login", s.handleLogin)
		r.Post("/register", s.handleRegister)

		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Get("/me", s.handleMe)
			r.Put("/profile", s.handleUpdateProfile)
			r.Post("/validate-password", s.handleValidatePassword)
			r.Post("/change-password", s.handleChangePassword)
		})
	})

	r.Route("/api/detect", func(r chi.Router) {
		r.Use(s.requireAuth)
		r.Post("/text", s.handleDetectText)
		r.Post("/image", s.handleDetectImage)
		r.Post("/video", s.handleDetectVideo)
	})

	r.Route("/api/results", func(r chi.Router) {
		r.Use(s.requireAuth)
		r.Get("/", s.handleResults)
		r.Get("/stats", s.handleStats)
	})

	r.Post("/api/contact", s.handleContact)

	return r
}

type contextKey string

const userIDKey contextKey = "userID"

// requireAuth validates the bearer credential and stores the user ID in the
// request context. Responses use the service's {"detail": ...} error shape.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		token, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || token == "" {
			writeDetail(w, http.StatusUnauthorized, "Invalid authentication credentials")
			return
		}

		userID, err := validateToken(s.secret, token)
		if err != nil {
			writeDetail(w, http.StatusUnauthorized, "Invalid authentication credentials")
			return
		}
		if _, ok := s.store.userByID(userID); !ok {
			writeDetail(w, http.StatusUnauthorized, "User not found")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func userIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeDetail writes an error in the service's wire shape.
func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
