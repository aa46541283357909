// Package ui drives a flashcard view: it reads input from a View, calls a
// Backend, and renders the resulting cards with their flip state.
package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/andrewpaige1/flashnotes/models"
	log "github.com/sirupsen/logrus"
)

const (
	GenerateLabel   = "Generate 5 Flashcards"
	GeneratingLabel = "Generating..."
	EmptyNotesAlert = "Please paste some notes."
	PlaceholderText = "No flashcards yet. Generate some!"
)

// ErrEmptyNotes is returned when generation is triggered without notes.
var ErrEmptyNotes = errors.New("notes are empty")

// View is the page the controller drives.
type View interface {
	Notes() string
	UserID() string
	SetGenerateEnabled(enabled bool, label string)
	Alert(message string)
	ShowPlaceholder(message string)
	ShowCards(cards []*Card)
}

// App holds the collaborators a Controller works with.
type App struct {
	View    View
	Backend Backend
}

type Controller struct {
	app   App
	cards []*Card
}

func NewController(app App) *Controller {
	return &Controller{app: app}
}

// OnGenerateClicked synthesizes a batch from the view's notes and renders only
// that batch. The trigger is re-enabled whatever the outcome; on failure the
// current cards stay as they are.
func (c *Controller) OnGenerateClicked(ctx context.Context) error {
	notes := strings.TrimSpace(c.app.View.Notes())
	if notes == "" {
		c.app.View.Alert(EmptyNotesAlert)
		return ErrEmptyNotes
	}

	c.app.View.SetGenerateEnabled(false, GeneratingLabel)
	defer c.app.View.SetGenerateEnabled(true, GenerateLabel)

	cards, err := c.app.Backend.Generate(ctx, notes, c.app.View.UserID())
	if err != nil {
		log.WithError(err).Debug("generation failed")
		c.app.View.Alert("Error: " + err.Error())
		return err
	}

	c.Render(cards)
	return nil
}

// OnLoad renders the stored cards of the current user.
func (c *Controller) OnLoad(ctx context.Context) error {
	cards, err := c.app.Backend.Load(ctx, c.app.View.UserID())
	if err != nil {
		log.WithError(err).Debug("loading flashcards failed")
		c.app.View.Alert("Error: " + err.Error())
		return err
	}

	c.Render(cards)
	return nil
}

// OnUserChanged reloads the cards for the newly selected user.
func (c *Controller) OnUserChanged(ctx context.Context) error {
	return c.OnLoad(ctx)
}

// Render replaces the displayed cards. Every card starts on its front.
func (c *Controller) Render(flashcards []models.Flashcard) {
	if len(flashcards) == 0 {
		c.cards = nil
		c.app.View.ShowPlaceholder(PlaceholderText)
		return
	}

	cards := make([]*Card, len(flashcards))
	for i, f := range flashcards {
		cards[i] = newCard(f)
	}
	c.cards = cards
	c.app.View.ShowCards(cards)
}

// Cards returns the currently rendered cards.
func (c *Controller) Cards() []*Card {
	return c.cards
}

// Flip toggles the i-th rendered card.
func (c *Controller) Flip(i int) error {
	if i < 0 || i >= len(c.cards) {
		return fmt.Errorf("no rendered card at index %d", i)
	}
	c.cards[i].Flip()
	return nil
}
