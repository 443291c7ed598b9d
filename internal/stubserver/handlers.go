package stubserver

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/veriscan/veriscan-go/internal/client/models"
)

func (s *Server) handleDetectText(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeDetail(w, http.StatusBadRequest, "Text cannot be empty")
		return
	}

	rec := newRecord(models.KindText, []byte(req.Text), req.Text)
	s.store.addResult(userIDFromContext(r.Context()), rec)
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleDetectImage(w http.ResponseWriter, r *http.Request) {
	s.handleDetectUpload(w, r, models.KindImage, 10<<20, "Image file too large (max 10MB)")
}

func (s *Server) handleDetectVideo(w http.ResponseWriter, r *http.Request) {
	s.handleDetectUpload(w, r, models.KindVideo, 100<<20, "Video file too large (max 100MB)")
}

func (s *Server) handleDetectUpload(w http.ResponseWriter, r *http.Request, kind models.ContentKind, maxSize int64, tooLarge string) {
	r.Body = http.MaxBytesReader(w, r.Body, maxSize+1<<20)

	file, _, err := r.FormFile("file")
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "A file upload is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxSize+1))
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "Failed to read upload")
		return
	}
	if int64(len(data)) > maxSize {
		writeDetail(w, http.StatusBadRequest, tooLarge)
		return
	}

	// media content is classified but never retained
	rec := newRecord(kind, data, "")
	s.store.addResult(userIDFromContext(r.Context()), rec)
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	limit := intQueryParam(r, "limit", 50)
	skip := intQueryParam(r, "skip", 0)
	records := s.store.resultsFor(userIDFromContext(r.Context()), limit, skip)
	writeJSON(w, http.StatusOK, records)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.statsFor(userIDFromContext(r.Context())))
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" || req.Message == "" {
		writeDetail(w, http.StatusBadRequest, "Name, email and message are required")
		return
	}

	s.log.Info(r.Context(), "contact message received", "from", req.Email)
	writeJSON(w, http.StatusOK, map[string]string{"status": "received"})
}

func intQueryParam(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
