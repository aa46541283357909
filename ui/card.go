package ui

import "github.com/andrewpaige1/flashnotes/models"

// Side is the face of a rendered card currently shown.
type Side int

const (
	Front Side = iota
	Back
)

func (s Side) String() string {
	if s == Back {
		return "back"
	}
	return "front"
}

// Card is a rendered flashcard with its flip state. The state only lives until
// the next render.
type Card struct {
	flashcard models.Flashcard
	side      Side
}

func newCard(f models.Flashcard) *Card {
	return &Card{flashcard: f, side: Front}
}

// Flip toggles between the question and the answer.
func (c *Card) Flip() {
	if c.side == Front {
		c.side = Back
	} else {
		c.side = Front
	}
}

func (c *Card) Side() Side { return c.side }

func (c *Card) Flashcard() models.Flashcard { return c.flashcard }

// Face returns the label and text of the visible side.
func (c *Card) Face() (label, text string) {
	if c.side == Back {
		return "A:", c.flashcard.Answer
	}
	return "Q:", c.flashcard.Question
}
