package ui

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/andrewpaige1/flashnotes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func renderTo(v *TextView, cards []models.Flashcard) {
	NewController(App{View: v, Backend: &mockBackend{}}).Render(cards)
}

func TestTextView_Text(t *testing.T) {
	var out bytes.Buffer
	renderTo(&TextView{Out: &out, Format: FormatText}, flashcards("q1", "q2"))
	assert.Equal(t, "1. Q: q1\n2. Q: q2\n", out.String())

	out.Reset()
	renderTo(&TextView{Out: &out, Format: FormatText, Reveal: true}, flashcards("q1"))
	assert.Equal(t, "1. Q: q1\n   A: answer q1\n", out.String())

	out.Reset()
	renderTo(&TextView{Out: &out}, nil)
	assert.Equal(t, PlaceholderText+"\n", out.String())
}

func TestTextView_JSONAndYAML(t *testing.T) {
	at := time.Date(2025, time.April, 1, 12, 0, 0, 0, time.UTC)
	cards := []models.Flashcard{{PublicID: "abc", Question: "Q?", Answer: "A", UserID: "demo", CreatedAt: at}}

	var out bytes.Buffer
	renderTo(&TextView{Out: &out, Format: FormatJSON}, cards)
	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "abc", decoded[0]["id"])
	assert.Equal(t, "Q?", decoded[0]["question"])
	assert.Equal(t, "2025-04-01T12:00:00Z", decoded[0]["created_at"])

	out.Reset()
	renderTo(&TextView{Out: &out, Format: FormatYAML}, cards)
	var fromYAML []cardOutput
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &fromYAML))
	require.Len(t, fromYAML, 1)
	assert.Equal(t, "A", fromYAML[0].Answer)
	assert.Equal(t, "demo", fromYAML[0].UserID)

	out.Reset()
	renderTo(&TextView{Out: &out, Format: FormatJSON}, nil)
	assert.JSONEq(t, `[]`, out.String())
}

func TestTextView_Alert(t *testing.T) {
	var errOut bytes.Buffer
	v := &TextView{Err: &errOut}
	v.Alert("Please paste some notes.")
	assert.Equal(t, "Please paste some notes.\n", errOut.String())
}
