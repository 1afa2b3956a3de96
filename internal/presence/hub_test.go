package presence

import (
	"encoding/json"
	"testing"
	"time"
)

func TestHubRegisterBroadcastUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := &Client{
		Send:     make(chan []byte, 10),
		Room:     "itinerary-1",
		UserID:   "user-1",
		Username: "alice@example.com",
	}

	hub.register <- client

	// First message after registering is the roster snapshot.
	roster := waitForEvent(t, client)
	if roster.Type != "roster" {
		t.Fatalf("expected roster event, got %q", roster.Type)
	}
	if len(roster.Users) != 1 || roster.Users[0].UserID != "user-1" {
		t.Fatalf("unexpected roster: %+v", roster.Users)
	}

	joined := waitForEvent(t, client)
	if joined.Type != "joined" || joined.UserID != "user-1" {
		t.Fatalf("expected own joined event, got %+v", joined)
	}

	hub.Broadcast("itinerary-1", Event{
		Type:    "editing",
		UserID:  "user-1",
		Section: "budget",
	})

	editing := waitForEvent(t, client)
	if editing.Type != "editing" || editing.Section != "budget" {
		t.Fatalf("expected editing event for budget, got %+v", editing)
	}

	hub.unregister <- client
}

func TestHubRoomsAreIsolated(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	inRoom := &Client{Send: make(chan []byte, 10), Room: "itinerary-1", UserID: "user-1"}
	elsewhere := &Client{Send: make(chan []byte, 10), Room: "itinerary-2", UserID: "user-2"}

	hub.register <- inRoom
	hub.register <- elsewhere

	// Drain the registration events.
	waitForEvent(t, inRoom)
	waitForEvent(t, inRoom)
	waitForEvent(t, elsewhere)
	waitForEvent(t, elsewhere)

	hub.Broadcast("itinerary-1", Event{Type: "editing", UserID: "user-1"})

	got := waitForEvent(t, inRoom)
	if got.Type != "editing" {
		t.Fatalf("expected editing event, got %+v", got)
	}

	select {
	case data := <-elsewhere.Send:
		t.Fatalf("client in other room received %s", data)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestHubSecondClientSeesFirstInRoster(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	first := &Client{Send: make(chan []byte, 10), Room: "itinerary-1", UserID: "user-1", Username: "alice"}
	second := &Client{Send: make(chan []byte, 10), Room: "itinerary-1", UserID: "user-2", Username: "bob"}

	hub.register <- first
	waitForEvent(t, first) // roster
	waitForEvent(t, first) // joined

	hub.register <- second
	roster := waitForEvent(t, second)
	if roster.Type != "roster" {
		t.Fatalf("expected roster event, got %q", roster.Type)
	}
	if len(roster.Users) != 2 {
		t.Fatalf("expected both users in roster, got %+v", roster.Users)
	}

	joined := waitForEvent(t, first)
	if joined.Type != "joined" || joined.UserID != "user-2" {
		t.Fatalf("first client should see second join, got %+v", joined)
	}
}

func TestUnregisterAfterStopReturns(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := &Client{Send: make(chan []byte, 8), Room: "trip-1", UserID: "user-1"}
	hub.Register(client)

	hub.Stop()

	// The connection goroutine unregisters on its way out; once the hub has
	// stopped this must not block.
	done := make(chan struct{})
	go func() {
		hub.Unregister(client)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("Unregister blocked after Stop")
	}
}

func waitForEvent(t *testing.T, c *Client) Event {
	t.Helper()
	select {
	case data := <-c.Send:
		var event Event
		if err := json.Unmarshal(data, &event); err != nil {
			t.Fatalf("unmarshalling event: %v", err)
		}
		return event
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for event")
		return Event{}
	}
}
