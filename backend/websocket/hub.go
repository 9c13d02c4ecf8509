// backend/websocket/hub.go
package websocket

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sqpaloma/novak-sub002/backend/models"
)

type Client struct {
	Conn *websocket.Conn
	Type models.PrincipalType
	ID   uint
	Name string
	Role string
}

type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	mu         sync.Mutex
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Permite todas as origens por agora. Em produção, restrinja isto.
		return true
	},
}

var H = Hub{
	clients:    make(map[*Client]bool),
	register:   make(chan *Client),
	unregister: make(chan *Client),
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			log.Printf("Cliente conectado: %s", client.Name)
			h.broadcastOnlinePrincipals()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.Conn.Close()
			}
			h.mu.Unlock()
			log.Printf("Cliente desconectado: %s", client.Name)
			h.broadcastOnlinePrincipals()
		}
	}
}

// BroadcastEvent envia um evento a todos os clientes conectados. Usado pelo
// controlador de gestão para avisar que o organograma mudou.
func (h *Hub) BroadcastEvent(eventType string, data interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()

	message, err := json.Marshal(map[string]interface{}{
		"type": eventType,
		"data": data,
	})
	if err != nil {
		log.Printf("Erro ao serializar evento %s: %v", eventType, err)
		return
	}

	for client := range h.clients {
		if err := client.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Printf("Websocket write error: %s", err)
		}
	}
}

func (h *Hub) broadcastOnlinePrincipals() {
	h.mu.Lock()
	defer h.mu.Unlock()

	var online []map[string]interface{}
	for client := range h.clients {
		online = append(online, map[string]interface{}{
			"id":   client.ID,
			"type": client.Type,
			"name": client.Name,
			"role": client.Role,
		})
	}

	message, err := json.Marshal(map[string]interface{}{
		"type": "online_principals",
		"data": online,
	})
	if err != nil {
		log.Printf("Erro ao serializar a lista de conectados: %v", err)
		return
	}

	// A lista de conectados é visível apenas para administradores e gerência.
	for client := range h.clients {
		if client.Role == "admin" || client.Role == "gerente" {
			if err := client.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Printf("Websocket write error: %s", err)
			}
		}
	}
}

func ServeWs(c *gin.Context) {
	principalInterface, exists := c.Get("principal")
	if !exists {
		log.Println("Principal não encontrado no contexto para o WebSocket")
		return
	}
	principal := principalInterface.(models.Principal)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println(err)
		return
	}

	client := &Client{
		Conn: conn,
		Type: principal.Type,
		ID:   principal.ID,
		Name: principal.Name,
		Role: principal.Role,
	}

	H.register <- client

	// Rotina para lidar com a desconexão do cliente
	go func() {
		defer func() {
			H.unregister <- client
		}()
		for {
			// Apenas lê mensagens para detetar a desconexão.
			if _, _, err := client.Conn.ReadMessage(); err != nil {
				break
			}
		}
	}()
}
