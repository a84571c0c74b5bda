package game

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/flip7/internal/models"
	gameRepo "github.com/KirkDiggler/flip7/internal/repositories/game"
)

// persister writes collections to the repository from a single goroutine.
// Only the latest queued collection is written, so an older collection can
// never overwrite a newer one. Failed writes are logged and not retried.
type persister struct {
	repo   gameRepo.Repository
	logger *slog.Logger

	mu      sync.Mutex
	pending []models.Game
	dirty   bool

	wake      chan struct{}
	flushes   chan chan struct{}
	quit      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

func newPersister(repo gameRepo.Repository, logger *slog.Logger) *persister {
	p := &persister{
		repo:    repo,
		logger:  logger,
		wake:    make(chan struct{}, 1),
		flushes: make(chan chan struct{}),
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
	}

	go p.run()

	return p
}

// enqueue queues a collection for writing. The collection must not be
// modified afterwards.
func (p *persister) enqueue(games []models.Game) {
	p.mu.Lock()
	p.pending = games
	p.dirty = true
	p.mu.Unlock()

	select {
	case p.wake <- struct{}{}:
	default:
	}
}

func (p *persister) run() {
	defer close(p.done)

	for {
		select {
		case <-p.wake:
			p.write()
		case reply := <-p.flushes:
			p.write()
			close(reply)
		case <-p.quit:
			p.write()
			return
		}
	}
}

func (p *persister) write() {
	p.mu.Lock()
	if !p.dirty {
		p.mu.Unlock()
		return
	}
	games := p.pending
	p.pending = nil
	p.dirty = false
	p.mu.Unlock()

	err := p.repo.SaveGames(context.Background(), &gameRepo.SaveGamesInput{
		Games: games,
	})
	if err != nil {
		p.logger.Error("failed to save games",
			slog.Int("games", len(games)),
			slog.String("error", err.Error()))
		return
	}

	p.logger.Debug("games saved", slog.Int("games", len(games)))
}

// flush returns once every collection queued before the call has been written
func (p *persister) flush(ctx context.Context) error {
	reply := make(chan struct{})

	select {
	case p.flushes <- reply:
	case <-p.done:
		return ErrServiceClosed
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-reply:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// close writes what is still queued and stops the goroutine
func (p *persister) close(ctx context.Context) error {
	p.closeOnce.Do(func() {
		close(p.quit)
	})

	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
