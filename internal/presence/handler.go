package presence

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// Handler upgrades an authenticated request to a websocket and joins the
// itinerary's presence room.
func Handler(hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		room := c.Param("id")
		userID := c.GetString("user_id")
		username := c.GetString("user_email")

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Println("upgrade:", err)
			return
		}

		client := &Client{
			Conn:     conn,
			Send:     make(chan []byte, 256),
			Room:     room,
			UserID:   userID,
			Username: username,
		}

		hub.Register(client)
		go client.writePump()
		go client.readPump(hub)
	}
}
