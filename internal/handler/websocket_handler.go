package handler

import (
	"net/http"
	"time"

	"MedSyncAI/internal/assistant"
	"MedSyncAI/internal/middleware"
	"MedSyncAI/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

// Upgrade HTTP connection to WebSocket
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// SessionEvents godoc
// @Summary      세션 상태 WebSocket
// @Description  브라우징 세션의 상태 변화를 JSON 스냅샷으로 전송합니다. 연결 직후 현재 상태를 한 번 보냅니다.
// @Description  <br> **참고: 이것은 표준 HTTP API가 아닙니다.** `ws://` 또는 `wss://` 스킴으로 연결하세요.
// @Tags         WebSocket
// @Success      101 {string} string "101 Switching Protocols"
// @Router       /ws/session [get]
func (h *Handler) SessionEvents(c *gin.Context) {
	bc := middleware.Browser(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn().Err(err).Msg("SessionEvents(): failed to upgrade to WebSocket")
		return
	}
	defer conn.Close()

	// 구독 콜백은 블록되면 안 되므로 최신 상태만 유지
	updates := make(chan session.Snapshot, 1)
	unsubscribe := bc.Store.Subscribe(func(snap session.Snapshot) {
		for {
			select {
			case updates <- snap:
				return
			default:
				select {
				case <-updates:
				default:
				}
			}
		}
	})
	defer unsubscribe()

	closed := readUntilClosed(conn)
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	if err := writeJSON(conn, bc.Store.Current()); err != nil {
		return
	}
	for {
		select {
		case snap := <-updates:
			if err := writeJSON(conn, snap); err != nil {
				log.Debug().Err(err).Str("sid", bc.ID).Msg("SessionEvents(): write failed")
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		case <-closed:
			return
		}
	}
}

type askRequest struct {
	Message string `json:"message"`
}

// Assistant godoc
// @Summary      AI 어시스턴트 WebSocket (스크립트 응답)
// @Description  인증된 브라우징 세션만 연결할 수 있습니다. 클라이언트는 `{"message": "..."}`를 보내고
// @Description  `{"role": "assistant", "message": "..."}` 응답을 받습니다.
// @Tags         WebSocket
// @Success      101 {string} string "101 Switching Protocols"
// @Failure      401 {object} handler.ErrorResponse "로그인 필요"
// @Router       /ws/assistant [get]
func (h *Handler) Assistant(c *gin.Context) {
	bc := middleware.Browser(c)
	if !bc.Store.Current().Authenticated() {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sign in required"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn().Err(err).Msg("Assistant(): failed to upgrade to WebSocket")
		return
	}
	defer conn.Close()
	log.Info().Str("sid", bc.ID).Msg("Assistant(): conversation started")

	if err := writeJSON(conn, assistant.Message{Role: assistant.RoleAssistant, Message: assistant.Greeting}); err != nil {
		return
	}

	for {
		var req askRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug().Err(err).Str("sid", bc.ID).Msg("Assistant(): read failed")
			}
			break
		}
		// 로그아웃 이후에는 응답하지 않음
		if !bc.Store.Current().Authenticated() {
			conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "signed out"),
				time.Now().Add(writeWait))
			break
		}
		if err := writeJSON(conn, assistant.Reply(req.Message)); err != nil {
			break
		}
	}
	log.Info().Str("sid", bc.ID).Msg("Assistant(): conversation ended")
}

func writeJSON(conn *websocket.Conn, v interface{}) error {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(v)
}

// readUntilClosed drains client frames (pongs, closes) and closes the
// returned channel when the peer goes away.
func readUntilClosed(conn *websocket.Conn) <-chan struct{} {
	done := make(chan struct{})
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()
	return done
}
