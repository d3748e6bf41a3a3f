package controllers

import (
	"net/http"
	"time"

	"github.com/MohammadaminAlbooyeh/diet-diary/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const pingInterval = 25 * time.Second

type RealtimeController struct {
	RT *services.RealtimeHub
}

func NewRealtimeController(rt *services.RealtimeHub) *RealtimeController {
	return &RealtimeController{RT: rt}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // local single-user tool
}

// GET /ws/entries streams entry.created / entry.deleted events.
func (rc *RealtimeController) EntriesWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	cl := services.NewWSClient(conn)
	rc.RT.Register(cl)

	// writes and keep-alive pings go through the client's own goroutine
	go cl.WritePump(pingInterval)

	// read loop ends on client close/error
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			rc.RT.Unregister(cl)
			return
		}
	}
}
