package messaging

import (
	"log"
	"sync"
)

// MessageBroadcaster pushes change notifications to connected clients.
type MessageBroadcaster interface {
	Broadcast(message string)
}

type SSEBroadcaster struct{}

func (b *SSEBroadcaster) Broadcast(message string) {
	BroadcastSSEMessage(message)
}

var broadcaster MessageBroadcaster

func InitBroadcaster() {
	broadcaster = &SSEBroadcaster{}
}

func BroadcastMessage(message string) {
	if broadcaster != nil {
		broadcaster.Broadcast(message)
	}
}

// SSE

var sseClients = make(map[chan string]bool)
var sseClientsMutex sync.Mutex

func AddSSEClient(client chan string) {
	sseClientsMutex.Lock()
	sseClients[client] = true
	sseClientsMutex.Unlock()
}

func RemoveSSEClient(client chan string) {
	sseClientsMutex.Lock()
	if _, ok := sseClients[client]; ok {
		delete(sseClients, client)
		close(client)
	}
	sseClientsMutex.Unlock()
}

func BroadcastSSEMessage(message string) {
	sseClientsMutex.Lock()
	defer sseClientsMutex.Unlock()

	for client := range sseClients {
		select {
		case client <- message:
		default:
			// Slow or blocked client, drop it instead of stalling the write path
			log.Printf("SSE client channel full, removing client")
			delete(sseClients, client)
			close(client)
		}
	}
}
