package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Output formats understood by TextView.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// TextView renders cards to a writer. Notes and the user ID are fixed at
// construction, as they come from the command line.
type TextView struct {
	NotesText string
	User      string
	Out       io.Writer
	Err       io.Writer
	Format    string
	// Reveal flips every card after printing its question.
	Reveal bool
}

type cardOutput struct {
	ID        string    `json:"id,omitempty" yaml:"id,omitempty"`
	Question  string    `json:"question" yaml:"question"`
	Answer    string    `json:"answer" yaml:"answer"`
	UserID    string    `json:"user_id" yaml:"user_id"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

func (v *TextView) Notes() string  { return v.NotesText }
func (v *TextView) UserID() string { return v.User }

func (v *TextView) SetGenerateEnabled(enabled bool, label string) {
	log.WithField("enabled", enabled).Debug(label)
}

func (v *TextView) Alert(message string) {
	fmt.Fprintln(v.Err, message)
}

func (v *TextView) ShowPlaceholder(message string) {
	switch v.Format {
	case FormatJSON, FormatYAML:
		v.encode([]cardOutput{})
	default:
		fmt.Fprintln(v.Out, message)
	}
}

func (v *TextView) ShowCards(cards []*Card) {
	if v.Format == FormatJSON || v.Format == FormatYAML {
		out := make([]cardOutput, len(cards))
		for i, c := range cards {
			f := c.Flashcard()
			out[i] = cardOutput{ID: f.PublicID, Question: f.Question, Answer: f.Answer, UserID: f.UserID, CreatedAt: f.CreatedAt}
		}
		v.encode(out)
		return
	}

	for i, c := range cards {
		label, text := c.Face()
		fmt.Fprintf(v.Out, "%d. %s %s\n", i+1, label, text)
		if v.Reveal {
			c.Flip()
			label, text = c.Face()
			fmt.Fprintf(v.Out, "   %s %s\n", label, text)
		}
	}
}

func (v *TextView) encode(cards []cardOutput) {
	var err error
	if v.Format == FormatYAML {
		enc := yaml.NewEncoder(v.Out)
		err = enc.Encode(cards)
		if closeErr := enc.Close(); err == nil {
			err = closeErr
		}
	} else {
		enc := json.NewEncoder(v.Out)
		enc.SetIndent("", "  ")
		err = enc.Encode(cards)
	}
	if err != nil {
		log.Errorf("failed to encode flashcards: %v", err)
	}
}
