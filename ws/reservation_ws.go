package ws

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/c41m07/sf-restaurant/entity"
	"github.com/c41m07/sf-restaurant/pkg/resp"
	"github.com/c41m07/sf-restaurant/repository"
	"github.com/c41m07/sf-restaurant/utils"
)

// ReservationHub diffuse les événements de réservation d'un restaurant
// à ses clients WebSocket connectés.
type ReservationHub struct {
	clients     map[uint]map[*websocket.Conn]bool // restaurantID -> connexions
	broadcast   chan Event
	register    chan Subscription
	unregister  chan Subscription
	mu          sync.Mutex
	restaurants *repository.RestaurantRepository
	logger      *zap.Logger
}

// Subscription relie une connexion au flux d'un restaurant.
type Subscription struct {
	Conn         *websocket.Conn
	RestaurantID uint
	UserID       uint
}

// Event est le message poussé aux clients.
type Event struct {
	RestaurantID uint                `json:"restaurant_id"`
	Type         string              `json:"type"`
	Reservation  *entity.Reservation `json:"reservation"`
	At           time.Time           `json:"at"`
}

func NewReservationHub(restaurants *repository.RestaurantRepository, logger *zap.Logger) *ReservationHub {
	return &ReservationHub{
		clients:     make(map[uint]map[*websocket.Conn]bool),
		broadcast:   make(chan Event),
		register:    make(chan Subscription),
		unregister:  make(chan Subscription),
		restaurants: restaurants,
		logger:      logger,
	}
}

// Run boucle sur register/unregister/broadcast, à lancer dans une goroutine.
func (h *ReservationHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.RestaurantID] == nil {
				h.clients[sub.RestaurantID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.RestaurantID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.RestaurantID][sub.Conn]; ok {
				delete(h.clients[sub.RestaurantID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case event := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[event.RestaurantID] {
				if err := conn.WriteJSON(event); err != nil {
					h.logger.Warn("écriture ws", zap.Error(err))
					conn.Close()
					delete(h.clients[event.RestaurantID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// ReservationEvent implémente services.ReservationNotifier.
func (h *ReservationHub) ReservationEvent(restaurantID uint, event string, reservation *entity.Reservation) {
	h.broadcast <- Event{
		RestaurantID: restaurantID,
		Type:         event,
		Reservation:  reservation,
		At:           time.Now(),
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// GET /ws/reservations/:restaurantId
// Le propriétaire du restaurant suit ses réservations en temps réel.
func (h *ReservationHub) HandleWebSocket(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("restaurantId"))
	if err != nil {
		resp.BadRequest(c, "identifiant de restaurant invalide")
		return
	}
	restaurantID := uint(id)

	userID := utils.CurrentUserID(c)
	if userID == 0 {
		resp.Unauthorized(c, "missing token")
		return
	}

	restaurant, err := h.restaurants.FindByID(restaurantID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if restaurant == nil {
		resp.NotFound(c, "Restaurant d'id "+strconv.Itoa(id)+" introuvable")
		return
	}
	if restaurant.OwnerID != userID {
		resp.Forbidden(c, "accès réservé au propriétaire du restaurant")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("upgrade ws", zap.Error(err))
		return
	}

	sub := Subscription{Conn: conn, RestaurantID: restaurantID, UserID: userID}
	h.register <- sub

	go h.keepAlive(sub)
}

// keepAlive draine la connexion jusqu'à sa fermeture, le flux est en sens unique.
func (h *ReservationHub) keepAlive(sub Subscription) {
	defer func() { h.unregister <- sub }()

	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			return
		}
	}
}
