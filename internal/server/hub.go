package server

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/san-kum/orrery/internal/present"
)

const clientBuffer = 16

// Hub fans frames out to stream clients. Each frame is encoded once; a
// client whose buffer is full misses that frame rather than stalling the
// frame loop.
type Hub struct {
	mu      sync.RWMutex
	clients map[*client]struct{}
	latest  []byte
	logger  *slog.Logger
}

type client struct {
	send chan []byte
	ip   string
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		logger:  logger,
	}
}

// Publish encodes f and queues it for every client.
func (h *Hub) Publish(f present.Frame) {
	data, err := json.Marshal(f)
	if err != nil {
		h.logger.Error("encode frame", "component", "hub", "frame", f.Index, "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.latest = data
	framesTotal.Inc()
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			framesDropped.Inc()
		}
	}
}

// prime queues the latest frame for a new client unless a newer publish
// already reached it.
func (h *Hub) prime(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.latest == nil || len(c.send) > 0 {
		return
	}
	select {
	case c.send <- h.latest:
	default:
	}
}

// Latest returns the most recently published frame, or nil.
func (h *Hub) Latest() []byte {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.latest
}

func (h *Hub) Ready() bool { return h.Latest() != nil }

func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) register(ip string) *client {
	c := &client{send: make(chan []byte, clientBuffer), ip: ip}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	streamClients.Inc()
	h.logger.Info("stream client connected", "component", "hub", "remote_ip", ip)
	return c
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	delete(h.clients, c)
	h.mu.Unlock()
	if ok {
		streamClients.Dec()
		h.logger.Info("stream client disconnected", "component", "hub", "remote_ip", c.ip)
	}
}
