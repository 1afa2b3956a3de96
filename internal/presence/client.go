package presence

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 50 * time.Second
)

type Client struct {
	Conn     *websocket.Conn
	Send     chan []byte
	Room     string
	UserID   string
	Username string
}

// inbound is the only message shape clients send: what they are editing.
type inbound struct {
	Section string `json:"section"`
}

func (c *Client) trySend(data []byte) {
	select {
	case c.Send <- data:
	default:
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) readPump(hub *Hub) {
	defer func() {
		hub.Unregister(c)
		c.Conn.Close()
	}()

	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			break
		}

		var in inbound
		if err := json.Unmarshal(raw, &in); err != nil {
			log.Println("invalid presence payload:", err)
			continue
		}

		hub.Broadcast(c.Room, Event{
			Type:      "editing",
			UserID:    c.UserID,
			Username:  c.Username,
			Section:   in.Section,
			Timestamp: time.Now().Unix(),
		})
	}
}
