package websocket

import (
	"context"
	"sync"

	"github.com/gorilla/websocket"

	"aqarverse/pkg/logger"
)

// Client is one live-stream subscriber. Each client follows exactly one
// stream (a dashboard listing, the review queue, a favorites feed).
//
// Send is owned by the goroutine feeding the stream: only that goroutine
// writes to it and only that goroutine closes it. The manager tears a client
// down by cancelling its stream context, which makes the feeder drain out
// and close Send on its way down.
type Client struct {
	UserID string
	Stream string
	Conn   *websocket.Conn
	Send   chan []byte
	cancel context.CancelFunc
}

// Manager tracks active stream subscribers so shutdown can tear them all
// down.
type Manager struct {
	clients    map[*Client]struct{}
	Register   chan *Client
	Unregister chan *Client
	mutex      sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[*Client]struct{}),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// Start runs the manager's main loop in a goroutine.
func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-m.Register:
				m.mutex.Lock()
				m.clients[client] = struct{}{}
				m.mutex.Unlock()
				logger.Debug("Stream client registered: %s on %s", client.UserID, client.Stream)

			case client := <-m.Unregister:
				m.mutex.Lock()
				delete(m.clients, client)
				m.mutex.Unlock()
				if client.cancel != nil {
					client.cancel()
				}
				logger.Debug("Stream client unregistered: %s on %s", client.UserID, client.Stream)

			case <-ctx.Done():
				m.mutex.Lock()
				for client := range m.clients {
					delete(m.clients, client)
					if client.cancel != nil {
						client.cancel()
					}
				}
				m.mutex.Unlock()
				return
			}
		}
	}()
}

// NewClient wires a fresh subscriber to the manager. The returned context
// ends when the client disconnects, which tears down its backing watch.
func (m *Manager) NewClient(ctx context.Context, userID, stream string, conn *websocket.Conn) (*Client, context.Context) {
	streamCtx, cancel := context.WithCancel(ctx)
	client := &Client{
		UserID: userID,
		Stream: stream,
		Conn:   conn,
		Send:   make(chan []byte, 8),
		cancel: cancel,
	}
	m.Register <- client
	return client, streamCtx
}

// ReadPump drains the connection until the peer closes it. Streams are
// one-way; inbound frames are discarded.
func (c *Client) ReadPump(m *Manager) {
	defer func() {
		m.Unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("Stream read error for %s: %v", c.UserID, err)
			}
			break
		}
	}
}

// WritePump sends queued frames to the WebSocket connection.
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		message, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			logger.Warn("Stream write error for %s: %v", c.UserID, err)
			return
		}
	}
}
