package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"dicebot/models"
	"dicebot/services"
)

// CardsHTTPHandler exposes read-only character sheet lookups, used by
// dashboards and for debugging what the bot resolves a user's skills to.
type CardsHTTPHandler struct {
	cardsService services.CardsService
}

func NewCardsHTTPHandler(cardsService services.CardsService) *CardsHTTPHandler {
	return &CardsHTTPHandler{cardsService: cardsService}
}

type CardResponse struct {
	ID        string         `json:"id"`
	UserID    string         `json:"user_id"`
	Name      string         `json:"name"`
	Skills    map[string]int `json:"skills"`
	LastSkill string         `json:"last_skill,omitempty"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (h *CardsHTTPHandler) SetupEndpoints(router *mux.Router) {
	router.HandleFunc("/cards/{id}", h.HandleGetCard).Methods("GET")
	router.HandleFunc("/users/{user_id}/card", h.HandleGetCardByUser).Methods("GET")
}

func (h *CardsHTTPHandler) HandleGetCard(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	log.Printf("📋 Get card request received for card %s", id)

	maybeCard, err := h.cardsService.GetCardByID(r.Context(), id)
	if err != nil {
		log.Printf("❌ Failed to get card %s: %v", id, err)
		http.Error(w, "failed to get card", http.StatusInternalServerError)
		return
	}
	card, ok := maybeCard.Get()
	if !ok {
		http.Error(w, "card not found", http.StatusNotFound)
		return
	}

	h.writeJSONResponse(w, http.StatusOK, domainCardToResponse(card))
}

func (h *CardsHTTPHandler) HandleGetCardByUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]
	log.Printf("📋 Get card request received for user %s", userID)

	maybeCard, err := h.cardsService.GetCardByUserID(r.Context(), userID)
	if err != nil {
		log.Printf("❌ Failed to get card for user %s: %v", userID, err)
		http.Error(w, "failed to get card", http.StatusInternalServerError)
		return
	}
	card, ok := maybeCard.Get()
	if !ok {
		http.Error(w, "card not found", http.StatusNotFound)
		return
	}

	h.writeJSONResponse(w, http.StatusOK, domainCardToResponse(card))
}

func (h *CardsHTTPHandler) writeJSONResponse(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("❌ Failed to write JSON response: %v", err)
	}
}

func domainCardToResponse(card *models.Card) CardResponse {
	return CardResponse{
		ID:        card.ID,
		UserID:    card.UserID,
		Name:      card.Name,
		Skills:    card.Skills,
		LastSkill: card.LastSkill,
		UpdatedAt: card.UpdatedAt,
	}
}
