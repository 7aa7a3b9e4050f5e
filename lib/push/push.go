// Package push broadcasts freshly wrapped script text to connected
// documents over websocket, so a page can pick up new scripts without a
// reload.
package push

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/gorilla/websocket"
	"github.com/scriptorch/orch/lib/utils"
)

// Hub is a thread-safe broadcast registry. Publish blocks until every
// subscriber has taken the message, use a goroutine or buffer to prevent
// the blocking.
type Hub struct {
	subscribers *sync.Map
	idCount     int64

	upgrader websocket.Upgrader
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		subscribers: &sync.Map{},
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Publish script text to all subscribers.
func (h *Hub) Publish(code string) {
	h.subscribers.Range(func(_, s interface{}) (goOn bool) {
		goOn = true
		defer func() { _ = recover() }()
		s.(*Subscriber).C <- code
		return
	})
}

// Subscribe returns a subscriber to receive published scripts.
func (h *Hub) Subscribe() *Subscriber {
	id := atomic.AddInt64(&h.idCount, 1)

	subscriber := &Subscriber{
		C:  make(chan string),
		id: id,
	}

	h.subscribers.Store(id, subscriber)

	return subscriber
}

// Len is the current number of subscribers.
func (h *Hub) Len() int {
	count := 0
	h.subscribers.Range(func(_, _ interface{}) bool {
		count++
		return true
	})
	return count
}

// Unsubscribe from the hub.
func (h *Hub) Unsubscribe(s *Subscriber) {
	defer func() { _ = recover() }()

	close(s.C)
	h.subscribers.Delete(s.id)
}

// Subscriber of the hub
type Subscriber struct {
	C  chan string
	id int64
}

// ServeHTTP upgrades the request to a websocket connection and forwards
// every published script to it as a text message until the peer goes away.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	s := h.Subscribe()
	defer h.Unsubscribe(s)
	defer func() { _ = conn.Close() }()

	// unblocks the loop below when the peer closes
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			return
		case code, ok := <-s.C:
			if !ok {
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, []byte(code)); err != nil {
				return
			}
		}
	}
}

// Client is a websocket subscriber to a remote Hub.
type Client struct {
	close func()
	conn  *websocket.Conn
}

// Dial a hub endpoint. The ctx will be ignored after the connection is
// established, therefore extra code closes the connection on ctx done.
func Dial(ctx context.Context, url string) (*Client, error) {
	ctx, cancel := context.WithCancel(ctx)

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		defer cancel()
		return nil, err
	}

	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()

	return &Client{close: cancel, conn: conn}, nil
}

// Read the next published script.
func (c *Client) Read() (string, error) {
	var msgType = -1
	var data []byte
	var err error
	for msgType != websocket.TextMessage && err == nil {
		msgType, data, err = c.conn.ReadMessage()
		if err != nil {
			c.close()
		}
	}
	return string(data), err
}

// Close the client.
func (c *Client) Close() error {
	c.close()
	return c.conn.Close()
}

// Bootstrap returns the inline script a page needs to receive and run
// published scripts from the given endpoint.
func Bootstrap(wsURL string) string {
	return utils.S(`(() => {
	const ws = new WebSocket("{{.url}}");
	ws.onmessage = (e) => {
		const s = document.createElement("script");
		s.textContent = e.data;
		document.body.appendChild(s);
	};
})();`, "url", wsURL)
}
