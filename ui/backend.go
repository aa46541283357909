package ui

import (
	"context"
	"sync"

	"github.com/andrewpaige1/flashnotes/models"
	"github.com/andrewpaige1/flashnotes/synth"
)

// Backend generates and loads cards for the controller.
type Backend interface {
	Generate(ctx context.Context, notes, userID string) ([]models.Flashcard, error)
	Load(ctx context.Context, userID string) ([]models.Flashcard, error)
}

// ListStore persists the whole card list at once. store.LocalStore satisfies it.
type ListStore interface {
	Read(ctx context.Context) ([]models.Flashcard, error)
	Write(ctx context.Context, cards []models.Flashcard) error
}

// LocalBackend synthesizes in process and keeps every card in one list.
type LocalBackend struct {
	synth *synth.Synthesizer
	store ListStore
	mu    sync.Mutex
}

func NewLocalBackend(s *synth.Synthesizer, store ListStore) *LocalBackend {
	return &LocalBackend{synth: s, store: store}
}

// Generate prepends a new batch to the stored list and returns the batch.
func (b *LocalBackend) Generate(ctx context.Context, notes, userID string) ([]models.Flashcard, error) {
	cards := b.synth.Synthesize(notes, userID)

	b.mu.Lock()
	defer b.mu.Unlock()

	existing, err := b.store.Read(ctx)
	if err != nil {
		return nil, err
	}

	merged := make([]models.Flashcard, 0, len(cards)+len(existing))
	merged = append(merged, cards...)
	merged = append(merged, existing...)
	if err := b.store.Write(ctx, merged); err != nil {
		return nil, err
	}
	return cards, nil
}

// Load returns the full list; local storage is not partitioned by user.
func (b *LocalBackend) Load(ctx context.Context, _ string) ([]models.Flashcard, error) {
	return b.store.Read(ctx)
}

// Remote is the API surface RemoteBackend needs. *client.Client satisfies it.
type Remote interface {
	Fetch(ctx context.Context, userID string) ([]models.Flashcard, error)
	Generate(ctx context.Context, notes, userID string) ([]models.Flashcard, error)
}

// RemoteBackend delegates generation and storage to the API server. Client
// errors are returned as is so the view shows the server's message.
type RemoteBackend struct {
	remote Remote
}

func NewRemoteBackend(remote Remote) *RemoteBackend {
	return &RemoteBackend{remote: remote}
}

func (b *RemoteBackend) Generate(ctx context.Context, notes, userID string) ([]models.Flashcard, error) {
	return b.remote.Generate(ctx, notes, userID)
}

func (b *RemoteBackend) Load(ctx context.Context, userID string) ([]models.Flashcard, error) {
	return b.remote.Fetch(ctx, userID)
}
