package webui

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/kayz/vidprompt/internal/debug"
	"github.com/kayz/vidprompt/internal/logger"
	"github.com/kayz/vidprompt/internal/promptbuild"
)

// Client -> server message types.
const (
	msgEdit   = "edit"
	msgFormat = "format"
	msgReset  = "reset"
)

type clientMessage struct {
	Type   string `json:"type"`
	Field  string `json:"field,omitempty"`
	Value  string `json:"value,omitempty"`
	Format string `json:"format,omitempty"`
}

type helloMessage struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id"`
}

type previewMessage struct {
	Type   string             `json:"type"`
	Format promptbuild.Format `json:"format"`
	Output string             `json:"output"`
	Empty  bool               `json:"empty"`
}

type errorMessage struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

// previewSession is the per-connection form state. It lives only as long as
// the connection.
type previewSession struct {
	id     string
	data   promptbuild.PromptData
	format promptbuild.Format
}

// apply updates the session with one client message and returns the reply.
func (p *previewSession) apply(b *promptbuild.Builder, msg clientMessage) any {
	switch msg.Type {
	case msgEdit:
		if !p.data.Set(msg.Field, msg.Value) {
			debug.Log("session %s: ignoring edit of unknown field %q", p.id, msg.Field)
		}
	case msgFormat:
		p.format = promptbuild.Format(msg.Format)
	case msgReset:
		p.data = promptbuild.PromptData{}
	default:
		return errorMessage{Type: "error", Error: fmt.Sprintf("unknown message type %q", msg.Type)}
	}

	res := b.Build(promptbuild.RenderRequest{Format: p.format, Data: p.data})
	p.format = res.Format
	return previewMessage{Type: "preview", Format: res.Format, Output: res.Output, Empty: res.Empty}
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn("[WebUI] websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxRequestBytes)

	session := &previewSession{
		id:     uuid.NewString(),
		format: s.builder.DefaultFormat(),
	}
	logger.Debug("[WebUI] preview session %s opened", session.id)
	defer logger.Debug("[WebUI] preview session %s closed", session.id)

	if err := conn.WriteJSON(helloMessage{Type: "hello", SessionID: session.id}); err != nil {
		return
	}

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("[WebUI] session %s read error: %v", session.id, err)
			}
			return
		}

		var reply any
		var msg clientMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			reply = errorMessage{Type: "error", Error: "invalid json message"}
		} else {
			reply = session.apply(s.builder, msg)
		}

		if err := conn.WriteJSON(reply); err != nil {
			logger.Warn("[WebUI] session %s write error: %v", session.id, err)
			return
		}
	}
}
