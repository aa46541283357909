package ui

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"testing/fstest"
	"time"

	"github.com/andrewpaige1/flashnotes/client"
	"github.com/andrewpaige1/flashnotes/config"
	"github.com/andrewpaige1/flashnotes/handlers"
	"github.com/andrewpaige1/flashnotes/models"
	"github.com/andrewpaige1/flashnotes/store"
	"github.com/andrewpaige1/flashnotes/synth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// slowList widens the window between Read and Write so unsynchronized
// merges lose batches.
type slowList struct {
	mu    sync.Mutex
	cards []models.Flashcard
}

func (s *slowList) Read(ctx context.Context) ([]models.Flashcard, error) {
	s.mu.Lock()
	out := append([]models.Flashcard{}, s.cards...)
	s.mu.Unlock()
	time.Sleep(time.Millisecond)
	return out, nil
}

func (s *slowList) Write(ctx context.Context, cards []models.Flashcard) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cards = append([]models.Flashcard{}, cards...)
	return nil
}

func TestLocalBackend_ConcurrentGenerateKeepsEveryBatch(t *testing.T) {
	const workers = 20
	list := &slowList{}
	backend := NewLocalBackend(synth.New(), list)

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := backend.Generate(context.Background(), "Cats are mammals. Dogs are loyal.", "demo")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	assert.Len(t, list.cards, workers*synth.CardsPerBatch)
}

func answers(cards []models.Flashcard) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.Answer
	}
	return out
}

func TestLocalAndRemoteBackends_LoadInSameOrder(t *testing.T) {
	ctx := context.Background()
	notes := "Cats are mammals. Dogs are loyal friends. Fish swim in water."
	clock := fixedClock{time.Date(2025, time.April, 4, 12, 0, 0, 0, time.UTC)}

	local, err := store.OpenLocal(filepath.Join(t.TempDir(), "local.db"))
	require.NoError(t, err)
	localBackend := NewLocalBackend(synth.New(synth.WithClock(clock)), local)

	db, err := config.Connect(filepath.Join(t.TempDir(), "server.db"), &models.Flashcard{})
	require.NoError(t, err)
	h := &handlers.DBHandler{
		Store: store.NewFlashcardStore(db),
		Synth: synth.New(synth.WithClock(clock)),
	}
	srv := httptest.NewServer(handlers.NewRouter(h, fstest.MapFS{}, handlers.RouterOptions{CORSOrigins: []string{"*"}}))
	defer srv.Close()
	remoteBackend := NewRemoteBackend(client.New(srv.URL, srv.Client()))

	_, err = localBackend.Generate(ctx, notes, "demo")
	require.NoError(t, err)
	_, err = remoteBackend.Generate(ctx, notes, "demo")
	require.NoError(t, err)

	fromLocal, err := localBackend.Load(ctx, "demo")
	require.NoError(t, err)
	fromRemote, err := remoteBackend.Load(ctx, "demo")
	require.NoError(t, err)

	require.Len(t, fromRemote, synth.CardsPerBatch)
	assert.Equal(t, "Cats are mammals", fromRemote[0].Answer)
	assert.Equal(t, answers(fromLocal), answers(fromRemote))
}
