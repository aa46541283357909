package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/andrewpaige1/flashnotes/models"
	"github.com/andrewpaige1/flashnotes/synth"
	"github.com/andrewpaige1/flashnotes/utils"
	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
)

// SourceNotesLength caps the notes stored alongside each generated card.
const SourceNotesLength = 4000

// DefaultListLimit applies when the handler is built without a limit.
const DefaultListLimit = 50

// FlashcardStore is the persistence the API needs.
type FlashcardStore interface {
	Save(ctx context.Context, cards []models.Flashcard) error
	List(ctx context.Context, userID string, limit int) ([]models.Flashcard, error)
}

type DBHandler struct {
	Store     FlashcardStore
	Synth     *synth.Synthesizer
	ListLimit int
}

// GenerateRequest is the body of POST /api/generate.
type GenerateRequest struct {
	Notes  string  `json:"notes" validate:"required"`
	UserID *string `json:"user_id"`
}

// FlashcardsResponse wraps every successful card listing.
type FlashcardsResponse struct {
	Flashcards []models.Flashcard `json:"flashcards"`
}

var validate = validator.New()

// POST /api/generate
func (h *DBHandler) GenerateFlashcards(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}

	req.Notes = strings.TrimSpace(req.Notes)
	if err := validate.Struct(req); err != nil {
		respondWithError(w, r, http.StatusBadRequest, "notes is required", err)
		return
	}

	var userID string
	if req.UserID != nil {
		userID = strings.TrimSpace(*req.UserID)
	}

	cards := h.Synth.Synthesize(req.Notes, userID)
	sourceNotes, _ := utils.Truncate(req.Notes, SourceNotesLength)
	for i := range cards {
		cards[i].SourceNotes = sourceNotes
	}

	if err := h.Store.Save(r.Context(), cards); err != nil {
		respondWithError(w, r, http.StatusInternalServerError, "failed to save flashcards", err)
		return
	}

	log.WithFields(log.Fields{"user_id": cards[0].UserID, "count": len(cards)}).Info("generated flashcards")
	respondWithJSON(w, http.StatusOK, FlashcardsResponse{Flashcards: cards})
}

// GET /api/flashcards?user_id=
func (h *DBHandler) GetFlashcards(w http.ResponseWriter, r *http.Request) {
	limit := h.ListLimit
	if limit <= 0 {
		limit = DefaultListLimit
	}

	cards, err := h.Store.List(r.Context(), utils.GetUserID(r), limit)
	if err != nil {
		respondWithError(w, r, http.StatusInternalServerError, "failed to fetch flashcards", err)
		return
	}
	if cards == nil {
		cards = []models.Flashcard{}
	}

	respondWithJSON(w, http.StatusOK, FlashcardsResponse{Flashcards: cards})
}

// GET /healthz
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		log.Errorf("failed to write health check response: %v", err)
	}
}
