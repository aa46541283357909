// Package synth derives flashcards from free-text notes with a naive
// sentence/keyword heuristic. It has no external dependencies; randomness and
// time are injected so callers can make output deterministic.
package synth

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/andrewpaige1/flashnotes/models"
	"github.com/andrewpaige1/flashnotes/utils"
)

const (
	// CardsPerBatch is the number of cards every synthesis returns.
	CardsPerBatch = 5

	// ExcerptLength caps the answer of a padding card.
	ExcerptLength = 200

	minSentenceLength = 10
	minKeywordLength  = 3
	fallbackKeyword   = "concept"
	ellipsis          = "..."
)

// Topics are cycled by position to build padding cards.
var Topics = [CardsPerBatch]string{
	"key concepts",
	"main ideas",
	"important details",
	"core principles",
	"essential facts",
}

var sentenceTerminators = regexp.MustCompile(`[.!?]+`)

// Rand picks keyword indexes. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Clock stamps generated cards.
type Clock interface {
	Now() time.Time
}

type globalRand struct{}

func (globalRand) Intn(n int) int { return rand.IntN(n) }

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// Synthesizer turns notes into flashcards. The zero value is not usable; build
// one with New.
type Synthesizer struct {
	rand  Rand
	clock Clock
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithRand replaces the keyword source. The default is safe for concurrent use;
// a replacement must be too if the Synthesizer is shared.
func WithRand(r Rand) Option {
	return func(s *Synthesizer) { s.rand = r }
}

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(s *Synthesizer) { s.clock = c }
}

// New returns a Synthesizer using the global random source and the system clock.
func New(opts ...Option) *Synthesizer {
	s := &Synthesizer{rand: globalRand{}, clock: systemClock{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Synthesize returns exactly CardsPerBatch cards for notes, owned by userID
// (models.DefaultUserID when blank). Callers reject empty notes beforehand.
func (s *Synthesizer) Synthesize(notes, userID string) []models.Flashcard {
	now := s.clock.Now()
	owner := models.ResolveUserID(userID)

	cards := make([]models.Flashcard, 0, CardsPerBatch)
	for _, sentence := range Sentences(notes) {
		if len(cards) == CardsPerBatch {
			break
		}
		cards = append(cards, models.Flashcard{
			Question:  fmt.Sprintf("What is the main point about %s?", strings.ToLower(s.keyword(sentence))),
			Answer:    sentence,
			UserID:    owner,
			CreatedAt: now,
		})
	}

	for len(cards) < CardsPerBatch {
		topic := Topics[len(cards)%len(Topics)]
		cards = append(cards, models.Flashcard{
			Question:  fmt.Sprintf("What are the %s from these notes?", topic),
			Answer:    Excerpt(notes),
			UserID:    owner,
			CreatedAt: now,
		})
	}

	return cards
}

func (s *Synthesizer) keyword(sentence string) string {
	var words []string
	for _, w := range strings.Fields(sentence) {
		if utf8.RuneCountInString(w) > minKeywordLength {
			words = append(words, w)
		}
	}
	if len(words) == 0 {
		return fallbackKeyword
	}
	return words[s.rand.Intn(len(words))]
}

// Sentences splits notes on runs of '.', '!' and '?' and keeps the trimmed
// fragments longer than ten characters, in order.
func Sentences(notes string) []string {
	var sentences []string
	for _, fragment := range sentenceTerminators.Split(notes, -1) {
		fragment = strings.TrimSpace(fragment)
		if utf8.RuneCountInString(fragment) > minSentenceLength {
			sentences = append(sentences, fragment)
		}
	}
	return sentences
}

// Excerpt is the padding answer: the first ExcerptLength characters of notes,
// followed by "..." when anything was cut.
func Excerpt(notes string) string {
	excerpt, truncated := utils.Truncate(notes, ExcerptLength)
	if truncated {
		return excerpt + ellipsis
	}
	return excerpt
}
