package websocket

import (
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// socketClient wraps a single upgraded connection. Writes are serialised
// through the mutex as gorilla sockets allow only one concurrent writer.
type socketClient struct {
	id        *uuid.UUID
	socket    *websocket.Conn
	writeLock sync.Mutex
	closed    bool
}

// SendMessage marshals the message to JSON and writes it to this
// client's socket.
func (client *socketClient) SendMessage(message *SocketMessage) error {
	client.writeLock.Lock()
	defer client.writeLock.Unlock()

	if client.closed {
		return nil
	}

	return client.socket.WriteJSON(message)
}

// Read consumes frames from the client until the connection dies. The
// change feed is one-way, so incoming frames are simply discarded; the
// loop exists to detect disconnection promptly.
func (client *socketClient) Read() error {
	for {
		if _, _, err := client.socket.ReadMessage(); err != nil {
			return err
		}
	}
}

func (client *socketClient) Close() {
	client.writeLock.Lock()
	defer client.writeLock.Unlock()

	if client.closed {
		return
	}

	client.closed = true
	client.socket.Close()
}
