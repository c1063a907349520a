package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"heater_sizing/internal/estimator"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Send/receive timing configuration.
const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// WebSocket message types.
const (
	wsTypeCatalog    = "catalog"
	wsTypeEvaluation = "evaluation"
	wsTypeError      = "error"
)

const errEvaluateInternal = "evaluation failed"

// Envelope used for WebSocket messages.
type wsEnvelope struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

func (h *Handler) upgrader() *websocket.Upgrader {
	return &websocket.Upgrader{CheckOrigin: h.checkOrigin}
}

// checkOrigin applies the CORS origin list to the upgrade request.
// Requests without an Origin header come from non-browser clients.
func (h *Handler) checkOrigin(r *http.Request) bool {
	if allowsAnyOrigin(h.opts.AllowedOrigins) {
		return true
	}
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, o := range h.opts.AllowedOrigins {
		if o == origin {
			return true
		}
	}
	return false
}

// @Summary      Live evaluation
// @Description  Send a form payload per text message, receive {"type":"evaluation"} or {"type":"error"} envelopes. The first message is the catalog.
// @Tags         sizing
// @Router       /ws [get]
func (h *Handler) wsConnect(c *gin.Context) {
	clientIP := c.ClientIP()
	conn, err := h.upgrader().Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_upgrade_failed", "err", err)
		}
		return
	}
	defer func() { _ = conn.Close() }()

	// Configure read limits and pong handler to extend read deadline.
	conn.SetReadLimit(h.opts.MaxMessageBytes)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// Reader goroutine forwards payloads; all writes stay on this goroutine.
	ctx := c.Request.Context()
	in := make(chan []byte)
	done := make(chan struct{})
	go h.startReader(ctx, conn, in, done)

	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	if err := h.writeEnvelope(conn, wsEnvelope{Type: wsTypeCatalog, Data: h.services.Catalog.View(ctx)}); err != nil {
		if h.log != nil {
			h.log.Infow("ws_write_failed_initial", "err", err)
		}
		return
	}

	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				if h.log != nil {
					h.log.Infow("ws_ping_failed", "err", err)
				}
				return
			}
		case msg := <-in:
			if err := h.writeEnvelope(conn, h.handleMessage(ctx, clientIP, msg)); err != nil {
				if h.log != nil {
					h.log.Infow("ws_write_failed", "err", err)
				}
				return
			}
		}
	}
}

// startReader drains incoming messages, handles control frames and detects closure.
func (h *Handler) startReader(ctx context.Context, conn *websocket.Conn, in chan<- []byte, done chan<- struct{}) {
	defer close(done)
	for {
		typ, msg, err := conn.ReadMessage()
		if err != nil {
			if h.log != nil {
				h.log.Infow("ws_read_closed", "err", err)
			}
			return
		}
		if typ != websocket.TextMessage {
			continue
		}
		select {
		case in <- msg:
		case <-ctx.Done():
			return
		}
	}
}

// handleMessage applies the per-IP limit before evaluating a payload.
func (h *Handler) handleMessage(ctx context.Context, clientIP string, msg []byte) wsEnvelope {
	if h.limiter != nil && !h.limiter.Allow(clientIP) {
		if h.log != nil {
			h.log.Infow("rate_limited", "client_ip", clientIP, "path", "/ws")
		}
		return wsEnvelope{Type: wsTypeError, Error: errRateLimited}
	}
	return h.evaluateMessage(ctx, msg)
}

// evaluateMessage validates one payload the same way the JSON endpoint does.
func (h *Handler) evaluateMessage(ctx context.Context, msg []byte) wsEnvelope {
	var req EvaluateRequest
	if err := json.Unmarshal(msg, &req); err != nil {
		return wsEnvelope{Type: wsTypeError, Error: errInvalidBodyPref + err.Error()}
	}
	if err := req.Validate(); err != nil {
		return wsEnvelope{Type: wsTypeError, Error: errInvalidBodyPref + err.Error()}
	}

	ev, err := h.services.Estimator.Evaluate(ctx, req.ToServiceRequest())
	if err != nil {
		if errors.Is(err, estimator.ErrInvalidInput) {
			return wsEnvelope{Type: wsTypeError, Error: err.Error()}
		}
		if h.log != nil {
			h.log.Errorw("ws_evaluate_failed", "err", err)
		}
		return wsEnvelope{Type: wsTypeError, Error: errEvaluateInternal}
	}
	return wsEnvelope{Type: wsTypeEvaluation, Data: ev}
}

func (h *Handler) writeEnvelope(conn *websocket.Conn, env wsEnvelope) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(env)
}
