package socket

import (
	"github.com/fasthttp/websocket"
	jsoniter "github.com/json-iterator/go"
	"github.com/medilink/api/internal/global"
	"github.com/valyala/fasthttp"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// envelope is the wire frame for both directions.
type envelope struct {
	Event string              `json:"event"`
	Data  jsoniter.RawMessage `json:"data"`
}

// Handler upgrades GET requests into the live event connection.
func Handler(gCtx global.Context) fasthttp.RequestHandler {
	upgrader := websocket.FastHTTPUpgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(ctx *fasthttp.RequestCtx) bool {
			return true
		},
	}

	return func(ctx *fasthttp.RequestCtx) {
		err := upgrader.Upgrade(ctx, func(ws *websocket.Conn) {
			s := &session{
				gCtx: gCtx,
				conn: newConnection(ws),
			}

			s.run(ws)
		})
		if err != nil {
			zap.S().Errorw("websocket upgrade failed",
				"error", err,
			)
		}
	}
}

type session struct {
	gCtx global.Context
	conn *connection

	// userID is set by the add-user event and empty until then.
	userID string
}

func (s *session) run(ws *websocket.Conn) {
	defer s.teardown()

	maxSize := s.gCtx.Config().Limits.MaxMessageSize
	if maxSize > 0 {
		ws.SetReadLimit(int64(maxSize))
	}

	for {
		_, raw, err := ws.ReadMessage()
		if err != nil {
			return
		}

		msg := envelope{}
		if err := json.Unmarshal(raw, &msg); err != nil {
			zap.S().Debugw("discarding malformed frame",
				"error", err,
			)

			continue
		}

		switch msg.Event {
		case "add-user":
			s.onAddUser(msg.Data)
		case "send-msg":
			s.onSendMessage(msg.Data)
		case "typing":
			s.onTyping(msg.Data, true)
		case "stop-typing":
			s.onTyping(msg.Data, false)
		default:
			zap.S().Debugw("unknown event",
				"event", msg.Event,
			)
		}
	}
}

func (s *session) onAddUser(data jsoniter.RawMessage) {
	body := struct {
		UserID string `json:"userId"`
	}{}

	if err := json.Unmarshal(data, &body); err != nil || body.UserID == "" {
		return
	}

	s.userID = body.UserID

	replaced, online := s.gCtx.Inst().Presence.Register(s.userID, s.conn)
	if replaced != nil {
		replaced.Close()
	}

	if online {
		s.gCtx.Inst().Events.Broadcast("user-status", map[string]interface{}{
			"userId": s.userID,
			"status": "online",
		})
	}
}

func (s *session) onSendMessage(data jsoniter.RawMessage) {
	if s.userID == "" {
		return
	}

	body := struct {
		To      string `json:"to"`
		Message string `json:"message"`
	}{}

	if err := json.Unmarshal(data, &body); err != nil || body.To == "" || body.Message == "" {
		return
	}

	from, err := primitive.ObjectIDFromHex(s.userID)
	if err != nil {
		return
	}

	to, err := primitive.ObjectIDFromHex(body.To)
	if err != nil {
		return
	}

	message, err := s.gCtx.Inst().Mutate.CreateMessage(s.gCtx, from, to, body.Message)
	if err != nil {
		zap.S().Errorw("failed to persist message",
			"error", err,
			"from", s.userID,
		)

		return
	}

	s.gCtx.Inst().Events.EmitTo(body.To, "msg-receive", map[string]interface{}{
		"from":      s.userID,
		"message":   message.Text,
		"timestamp": message.CreatedAt,
	})
}

func (s *session) onTyping(data jsoniter.RawMessage, isTyping bool) {
	if s.userID == "" {
		return
	}

	body := struct {
		From string `json:"from"`
		To   string `json:"to"`
	}{}

	if err := json.Unmarshal(data, &body); err != nil || body.To == "" {
		return
	}

	s.gCtx.Inst().Presence.SetTyping(s.userID, isTyping)

	s.gCtx.Inst().Events.EmitTo(body.To, "typing", map[string]interface{}{
		"from":     s.userID,
		"isTyping": isTyping,
	})
}

func (s *session) teardown() {
	s.conn.Close()

	if s.userID == "" {
		return
	}

	// Typing state is cleared inside UnregisterToken, and only when this
	// handle still owns the entry. A superseded connection's late close
	// must not wipe the replacement session's flag.
	if offline := s.gCtx.Inst().Presence.UnregisterToken(s.userID, s.conn.Token()); offline {
		s.gCtx.Inst().Events.Broadcast("user-status", map[string]interface{}{
			"userId": s.userID,
			"status": "offline",
		})
	}
}
