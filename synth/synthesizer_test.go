package synth

import (
	"strings"
	"testing"
	"time"

	"github.com/andrewpaige1/flashnotes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRand always returns the same index, clamped to the range.
type fixedRand struct{ index int }

func (r fixedRand) Intn(n int) int {
	if r.index >= n {
		return n - 1
	}
	return r.index
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

var fixedTime = time.Date(2025, time.April, 1, 12, 0, 0, 0, time.UTC)

func newTestSynthesizer() *Synthesizer {
	return New(WithRand(fixedRand{}), WithClock(fixedClock{fixedTime}))
}

func TestSynthesize_ThreeSentencesArePadded(t *testing.T) {
	notes := "Cats are mammals. Dogs are loyal. Fish swim in water."

	cards := newTestSynthesizer().Synthesize(notes, "alice")
	require.Len(t, cards, CardsPerBatch)

	assert.Equal(t, "What is the main point about cats?", cards[0].Question)
	assert.Equal(t, "Cats are mammals", cards[0].Answer)
	assert.Equal(t, "What is the main point about dogs?", cards[1].Question)
	assert.Equal(t, "Dogs are loyal", cards[1].Answer)
	assert.Equal(t, "What is the main point about fish?", cards[2].Question)
	assert.Equal(t, "Fish swim in water", cards[2].Answer)

	assert.Equal(t, "What are the core principles from these notes?", cards[3].Question)
	assert.Equal(t, "What are the essential facts from these notes?", cards[4].Question)
	assert.Equal(t, notes, cards[3].Answer)
	assert.Equal(t, notes, cards[4].Answer)

	for _, c := range cards {
		assert.Equal(t, "alice", c.UserID)
		assert.Equal(t, fixedTime, c.CreatedAt)
	}
}

func TestSynthesize_ShortNotesOnlyPad(t *testing.T) {
	cards := newTestSynthesizer().Synthesize("Hi.", "")
	require.Len(t, cards, CardsPerBatch)

	for i, c := range cards {
		assert.Equal(t, "What are the "+Topics[i]+" from these notes?", c.Question)
		assert.Equal(t, "Hi.", c.Answer)
		assert.Equal(t, models.DefaultUserID, c.UserID)
	}
}

func TestSynthesize_UsesAtMostFiveSentences(t *testing.T) {
	notes := strings.Repeat("This sentence is long enough. ", 8)

	cards := newTestSynthesizer().Synthesize(notes, "bob")
	require.Len(t, cards, CardsPerBatch)
	for _, c := range cards {
		assert.Equal(t, "This sentence is long enough", c.Answer)
		assert.Equal(t, "What is the main point about this?", c.Question)
	}
}

func TestSynthesize_KeywordSelection(t *testing.T) {
	notes := "Photosynthesis converts LIGHT into chemical energy!"

	// Qualifying words: Photosynthesis, converts, LIGHT, into, chemical, energy
	cards := New(WithRand(fixedRand{index: 2}), WithClock(fixedClock{fixedTime})).Synthesize(notes, "u")
	assert.Equal(t, "What is the main point about light?", cards[0].Question)

	cards = New(WithRand(fixedRand{index: 99}), WithClock(fixedClock{fixedTime})).Synthesize(notes, "u")
	assert.Equal(t, "What is the main point about energy?", cards[0].Question)
}

func TestSynthesize_FallbackKeyword(t *testing.T) {
	// Long enough to be a sentence, but no word exceeds three characters.
	cards := newTestSynthesizer().Synthesize("a bb ccc a bb ccc?", "u")
	assert.Equal(t, "What is the main point about concept?", cards[0].Question)
	assert.Equal(t, "a bb ccc a bb ccc", cards[0].Answer)
}

func TestSynthesize_PaddingExcerptIsTruncated(t *testing.T) {
	// Every fragment is too short to count as a sentence.
	notes := strings.Repeat("Tiny bit. ", 30)

	cards := newTestSynthesizer().Synthesize(notes, "u")
	for _, c := range cards {
		assert.Equal(t, notes[:ExcerptLength]+"...", c.Answer)
	}
}

func TestSynthesize_PaddingIsDeterministic(t *testing.T) {
	s := New()
	first := s.Synthesize("Ok. No. Yes!", "u")
	second := s.Synthesize("Ok. No. Yes!", "u")

	require.Len(t, first, CardsPerBatch)
	require.Len(t, second, CardsPerBatch)
	for i := range first {
		assert.Equal(t, first[i].Question, second[i].Question)
		assert.Equal(t, first[i].Answer, second[i].Answer)
	}
}

func TestSynthesize_Properties(t *testing.T) {
	inputs := []string{
		"x",
		"One short. But this one is definitely long enough!!! And what about this one???",
		"Newlines\nare not terminators so this is one long sentence",
		strings.Repeat("Go is a statically typed language. ", 20),
		"Ünïcödé wörds réally wörk here. Ça marche très bien aussi!",
	}

	s := New()
	for _, notes := range inputs {
		cards := s.Synthesize(notes, "prop")
		require.Len(t, cards, CardsPerBatch, notes)

		for _, c := range cards {
			assert.NotEmpty(t, c.Question)
			isSentence := strings.Contains(notes, c.Answer)
			isExcerpt := c.Answer == Excerpt(notes)
			assert.True(t, isSentence || isExcerpt, "answer %q not derived from notes", c.Answer)
		}
	}
}

func TestSentences(t *testing.T) {
	got := Sentences("  First sentence here...Second one is fine?! tiny. ")
	assert.Equal(t, []string{"First sentence here", "Second one is fine"}, got)

	assert.Empty(t, Sentences("Hi. Yo! Ok?"))
}
