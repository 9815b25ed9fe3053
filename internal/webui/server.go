package webui

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/kayz/vidprompt/internal/catalog"
	"github.com/kayz/vidprompt/internal/promptbuild"
)

const maxRequestBytes = 1 << 20

type Server struct {
	builder   *promptbuild.Builder
	startedAt time.Time
	upgrader  websocket.Upgrader
}

func NewServer(builder *promptbuild.Builder) *Server {
	return &Server{
		builder:   builder,
		startedAt: time.Now().UTC(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/api/status", s.handleStatus)
	mux.HandleFunc("/api/options", s.handleOptions)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/ws", s.handleWebSocket)
	return mux
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(defaultIndexHTML))
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":         true,
		"started_at": s.startedAt.Format(time.RFC3339),
		"uptime_sec": int(time.Since(s.startedAt).Seconds()),
	})
}

func (s *Server) handleOptions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Snapshot())
}

type renderResponse struct {
	RequestID string             `json:"request_id"`
	Format    promptbuild.Format `json:"format"`
	Output    string             `json:"output"`
	Empty     bool               `json:"empty"`
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var req promptbuild.RenderRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json body"})
		return
	}

	res := s.builder.Build(req)
	writeJSON(w, http.StatusOK, renderResponse{
		RequestID: uuid.NewString(),
		Format:    res.Format,
		Output:    res.Output,
		Empty:     res.Empty,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
