// Package channel maintains the websocket connection that delivers
// task-progress messages from the backend.
//
// The contract is deliberately simple: one logical connection, and on
// any close, clean or not, wait a fixed delay then dial again, forever.
// There is no backoff and no retry cap. Delivery is best effort; a
// message lost during a gap is never replayed.
package channel

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/vtx/internal/tasks"
	"github.com/gorilla/websocket"
)

// DefaultReconnectDelay is the fixed wait between connection attempts.
const DefaultReconnectDelay = 3 * time.Second

// Handler consumes one decoded push message.
type Handler func(tasks.Message)

// PushChannel dials the backend's progress socket and feeds decoded
// messages to its handler. Malformed payloads are logged and dropped
// without tearing down the connection.
type PushChannel struct {
	url     string
	delay   time.Duration
	handler Handler
	logger  *log.Logger

	mu     sync.Mutex
	conn   *websocket.Conn
	closed bool
}

func NewPushChannel(url string, delay time.Duration, handler Handler, logger *log.Logger) *PushChannel {
	if delay <= 0 {
		delay = DefaultReconnectDelay
	}
	return &PushChannel{
		url:     url,
		delay:   delay,
		handler: handler,
		logger:  logger,
	}
}

// Run dials and reads until ctx is cancelled or Close is called. It
// blocks; callers run it on its own goroutine.
func (p *PushChannel) Run(ctx context.Context) {
	for {
		if p.isClosed() || ctx.Err() != nil {
			return
		}

		conn, _, err := websocket.DefaultDialer.DialContext(ctx, p.url, nil)
		if err != nil {
			p.logger.Warn("push channel dial failed", "url", p.url, "error", err)
		} else {
			p.setConn(conn)
			p.logger.Info("push channel connected", "url", p.url)
			p.readLoop(conn)
			p.setConn(nil)
			conn.Close()
		}

		if p.isClosed() {
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(p.delay):
		}
	}
}

// readLoop consumes frames until the connection drops.
func (p *PushChannel) readLoop(conn *websocket.Conn) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if !p.isClosed() {
				p.logger.Warn("push channel closed", "error", err)
			}
			return
		}

		var msg tasks.Message
		if err := json.Unmarshal(data, &msg); err != nil {
			p.logger.Warn("dropping malformed push message", "error", err)
			continue
		}
		if msg.Type == "" {
			p.logger.Warn("dropping push message without type")
			continue
		}

		p.handler(msg)
	}
}

// Close stops the reconnect loop and drops any live connection.
func (p *PushChannel) Close() {
	p.mu.Lock()
	p.closed = true
	conn := p.conn
	p.conn = nil
	p.mu.Unlock()

	if conn != nil {
		conn.Close()
	}
}

func (p *PushChannel) isClosed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}

func (p *PushChannel) setConn(conn *websocket.Conn) {
	p.mu.Lock()
	p.conn = conn
	p.mu.Unlock()
}
