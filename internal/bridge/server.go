package bridge

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	apperr "github.com/KirkDiggler/nexus-classes/internal/errors"
	"github.com/KirkDiggler/nexus-classes/internal/metrics"
	"github.com/KirkDiggler/nexus-classes/internal/uuid"
)

const (
	handshakeTimeout = 5 * time.Second
	writeTimeout     = 5 * time.Second
	defaultIdle      = 60 * time.Second
	defaultMaxBytes  = 1 << 20
)

// Dispatcher runs bridge requests against the simulation
type Dispatcher interface {
	Welcome() *WelcomeMsg
	HandleEvent(ctx context.Context, msg *EventMsg) (*OutcomeMsg, error)
	HandleTick(ctx context.Context, msg *TickMsg) (*TickActionsMsg, error)
	HandleCommand(ctx context.Context, msg *CommandMsg) (*CommandResultMsg, error)
}

// ServerConfig holds the dependencies of a Server
type ServerConfig struct {
	Dispatcher      Dispatcher
	IdleTimeout     time.Duration  // defaults to 60s
	MaxMessageBytes int64          // defaults to 1 MiB; larger frames close the connection
	IDs             uuid.Generator // Optional, names connections in logs
}

// Server accepts host world connections over websocket. Each connection is
// served request by request, so a host sees responses in send order.
type Server struct {
	dispatcher  Dispatcher
	idleTimeout time.Duration
	maxBytes    int64
	ids         uuid.Generator
	upgrader    websocket.Upgrader
}

// NewServer creates a bridge server
func NewServer(cfg *ServerConfig) *Server {
	if cfg == nil || cfg.Dispatcher == nil {
		panic("dispatcher is required")
	}

	idle := cfg.IdleTimeout
	if idle <= 0 {
		idle = defaultIdle
	}

	maxBytes := cfg.MaxMessageBytes
	if maxBytes <= 0 {
		maxBytes = defaultMaxBytes
	}

	ids := cfg.IDs
	if ids == nil {
		ids = uuid.NewGoogleUUIDGenerator()
	}

	return &Server{
		dispatcher:  cfg.Dispatcher,
		idleTimeout: idle,
		maxBytes:    maxBytes,
		ids:         ids,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  64 * 1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Handler returns the websocket endpoint
func (s *Server) Handler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		conn, err := s.upgrader.Upgrade(rw, r, nil)
		if err != nil {
			log.Printf("Bridge: Upgrade failed: %v", err)
			return
		}
		defer conn.Close()
		conn.SetReadLimit(s.maxBytes)

		name, ok := s.handshake(conn)
		if !ok {
			return
		}
		host := name + "/" + s.ids.New()[:8]
		log.Printf("Bridge: Host %q connected from %s", host, r.RemoteAddr)

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()

		for {
			_ = conn.SetReadDeadline(time.Now().Add(s.idleTimeout))
			_, msg, err := conn.ReadMessage()
			if err != nil {
				break
			}

			reply := s.dispatch(ctx, msg)
			if err := writeJSON(conn, reply); err != nil {
				log.Printf("Bridge: Write to %q failed: %v", host, err)
				break
			}
		}

		log.Printf("Bridge: Host %q disconnected", host)
	}
}

func (s *Server) handshake(conn *websocket.Conn) (string, bool) {
	_ = conn.SetReadDeadline(time.Now().Add(handshakeTimeout))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		return "", false
	}

	var hello HelloMsg
	if err := json.Unmarshal(msg, &hello); err != nil || hello.Type != TypeHello {
		closeWith(conn, "expected hello")
		return "", false
	}
	if hello.ProtocolVersion != ProtocolVersion {
		closeWith(conn, "bad protocol_version")
		return "", false
	}
	metrics.BridgeMessages.WithLabelValues(TypeHello).Inc()

	if hello.HostName == "" {
		hello.HostName = "host"
	}

	if err := writeJSON(conn, s.dispatcher.Welcome()); err != nil {
		return "", false
	}
	return hello.HostName, true
}

func (s *Server) dispatch(ctx context.Context, raw []byte) any {
	base, err := DecodeBase(raw)
	if err != nil {
		return errorReply(0, apperr.InvalidArgument("malformed message"))
	}

	switch base.Type {
	case TypeEvent:
		var msg EventMsg
		if err := json.Unmarshal(raw, &msg); err != nil {
			return errorReply(0, apperr.InvalidArgument("malformed event message"))
		}
		metrics.BridgeMessages.WithLabelValues(TypeEvent).Inc()
		out, err := s.dispatcher.HandleEvent(ctx, &msg)
		if err != nil {
			return errorReply(msg.Seq, err)
		}
		return out

	case TypeTick:
		var msg TickMsg
		if err := json.Unmarshal(raw, &msg); err != nil {
			return errorReply(0, apperr.InvalidArgument("malformed tick message"))
		}
		metrics.BridgeMessages.WithLabelValues(TypeTick).Inc()
		out, err := s.dispatcher.HandleTick(ctx, &msg)
		if err != nil {
			return errorReply(0, err)
		}
		return out

	case TypeCommand:
		var msg CommandMsg
		if err := json.Unmarshal(raw, &msg); err != nil {
			return errorReply(0, apperr.InvalidArgument("malformed command message"))
		}
		metrics.BridgeMessages.WithLabelValues(TypeCommand).Inc()
		out, err := s.dispatcher.HandleCommand(ctx, &msg)
		if err != nil {
			return errorReply(msg.Seq, err)
		}
		return out

	default:
		metrics.BridgeMessages.WithLabelValues("unknown").Inc()
		return errorReply(0, apperr.InvalidArgumentf("unknown message type %q", base.Type))
	}
}

func errorReply(seq int64, err error) *ErrorMsg {
	return &ErrorMsg{
		Type:    TypeError,
		Seq:     seq,
		Code:    string(apperr.GetCode(err)),
		Message: err.Error(),
	}
}

func closeWith(conn *websocket.Conn, reason string) {
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.ClosePolicyViolation, reason),
		time.Now().Add(time.Second))
}

func writeJSON(conn *websocket.Conn, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return conn.WriteMessage(websocket.TextMessage, b)
}
