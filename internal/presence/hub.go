// Package presence tracks which users currently have an itinerary open and
// relays lightweight editing signals between them over websockets.
package presence

import (
	"encoding/json"
	"sync"
	"time"
)

type Event struct {
	Type      string `json:"type"` // "joined", "left", "editing", "updated", "roster"
	UserID    string `json:"userId,omitempty"`
	Username  string `json:"username,omitempty"`
	Section   string `json:"section,omitempty"` // what the user is editing
	Users     []User `json:"users,omitempty"`   // roster snapshots only
	Timestamp int64  `json:"timestamp"`
}

type User struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

type broadcastMsg struct {
	Room string
	Data []byte
}

type Hub struct {
	rooms      map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan broadcastMsg
	stop       chan struct{}
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan broadcastMsg),
		stop:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			if h.rooms[c.Room] == nil {
				h.rooms[c.Room] = make(map[*Client]bool)
			}
			h.rooms[c.Room][c] = true
			roster := h.rosterLocked(c.Room)
			h.mu.Unlock()

			c.trySend(marshalEvent(Event{
				Type:      "roster",
				Users:     roster,
				Timestamp: time.Now().Unix(),
			}))
			h.broadcastEvent(c.Room, Event{
				Type:      "joined",
				UserID:    c.UserID,
				Username:  c.Username,
				Timestamp: time.Now().Unix(),
			})

		case c := <-h.unregister:
			h.mu.Lock()
			if conns := h.rooms[c.Room]; conns != nil {
				if conns[c] {
					delete(conns, c)
					close(c.Send)
				}
				if len(conns) == 0 {
					delete(h.rooms, c.Room)
				}
			}
			h.mu.Unlock()

			h.broadcastEvent(c.Room, Event{
				Type:      "left",
				UserID:    c.UserID,
				Username:  c.Username,
				Timestamp: time.Now().Unix(),
			})

		case m := <-h.broadcast:
			h.deliver(m)

		case <-h.stop:
			h.mu.Lock()
			for room, conns := range h.rooms {
				for c := range conns {
					close(c.Send)
				}
				delete(h.rooms, room)
			}
			h.mu.Unlock()
			return
		}
	}
}

func (h *Hub) Stop() {
	close(h.stop)
}

// Register and Unregister queue membership changes. Both give up once the
// hub has stopped so connection goroutines cannot block at shutdown.
func (h *Hub) Register(c *Client) {
	select {
	case h.register <- c:
	case <-h.stop:
	}
}

func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.stop:
	}
}

// Broadcast queues an event for every client in the room. Safe to call from
// any goroutine; drops the event if the hub has stopped.
func (h *Hub) Broadcast(room string, event Event) {
	select {
	case h.broadcast <- broadcastMsg{Room: room, Data: marshalEvent(event)}:
	case <-h.stop:
	}
}

func (h *Hub) broadcastEvent(room string, event Event) {
	h.deliver(broadcastMsg{Room: room, Data: marshalEvent(event)})
}

func (h *Hub) deliver(m broadcastMsg) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.rooms[m.Room] {
		select {
		case c.Send <- m.Data:
		default:
			close(c.Send)
			delete(h.rooms[m.Room], c)
		}
	}
}

func (h *Hub) rosterLocked(room string) []User {
	roster := make([]User, 0, len(h.rooms[room]))
	for c := range h.rooms[room] {
		roster = append(roster, User{UserID: c.UserID, Username: c.Username})
	}
	return roster
}

func marshalEvent(event Event) []byte {
	data, err := json.Marshal(event)
	if err != nil {
		return []byte("{}")
	}
	return data
}
