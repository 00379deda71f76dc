package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/kdfca/academy/internal/storage"
)

// persister writes snapshots to the gateway in the background.
// Only the latest blob per namespace is kept; older pending blobs are superseded.
type persister struct {
	gateway storage.Gateway
	logger  *slog.Logger
	timeout time.Duration

	mu      sync.Mutex
	pending map[string][]byte
	closed  bool

	// writeMu serializes drains so a namespace is never written out of order
	writeMu sync.Mutex

	wake    chan struct{}
	done    chan struct{}
	stopped chan struct{}
}

func newPersister(gateway storage.Gateway, timeout time.Duration, logger *slog.Logger) *persister {
	p := &persister{
		gateway: gateway,
		logger:  logger,
		timeout: timeout,
		pending: make(map[string][]byte),
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go p.run()
	return p
}

// enqueue schedules blob to be written for namespace. It never blocks.
func (p *persister) enqueue(namespace string, blob []byte) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		p.logger.Warn("persist after close dropped", "namespace", namespace)
		return
	}
	p.pending[namespace] = blob
	p.mu.Unlock()

	select {
	case p.wake <- struct{}{}:
	default:
	}
}

func (p *persister) run() {
	defer close(p.stopped)
	for {
		select {
		case <-p.wake:
			_ = p.drain(context.Background())
		case <-p.done:
			return
		}
	}
}

// drain writes every pending blob. A failed blob is requeued unless a newer
// one arrived meanwhile, so the next drain retries it.
func (p *persister) drain(ctx context.Context) error {
	p.writeMu.Lock()
	defer p.writeMu.Unlock()

	p.mu.Lock()
	batch := p.pending
	p.pending = make(map[string][]byte)
	p.mu.Unlock()

	namespaces := make([]string, 0, len(batch))
	for ns := range batch {
		namespaces = append(namespaces, ns)
	}
	sort.Strings(namespaces)

	var errs []error
	for _, ns := range namespaces {
		if err := p.save(ctx, ns, batch[ns]); err != nil {
			p.logger.Warn("persist failed", "namespace", ns, "error", err)
			errs = append(errs, fmt.Errorf("persist %s: %w", ns, err))

			p.mu.Lock()
			if _, newer := p.pending[ns]; !newer {
				p.pending[ns] = batch[ns]
			}
			p.mu.Unlock()
			continue
		}
		p.logger.Debug("snapshot persisted", "namespace", ns, "bytes", len(batch[ns]))
	}
	return errors.Join(errs...)
}

func (p *persister) save(ctx context.Context, namespace string, blob []byte) error {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}
	return p.gateway.Save(ctx, namespace, blob)
}

// purge drops pending writes for namespaces and deletes their snapshots
func (p *persister) purge(ctx context.Context, namespaces []string) error {
	p.writeMu.Lock()
	defer p.writeMu.Unlock()

	p.mu.Lock()
	for _, ns := range namespaces {
		delete(p.pending, ns)
	}
	p.mu.Unlock()

	var errs []error
	for _, ns := range namespaces {
		if err := p.gateway.Delete(ctx, ns); err != nil {
			errs = append(errs, fmt.Errorf("delete %s: %w", ns, err))
		}
	}
	return errors.Join(errs...)
}

// close stops the background loop and writes whatever is still pending
func (p *persister) close(ctx context.Context) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	p.mu.Unlock()

	close(p.done)
	<-p.stopped
	return p.drain(ctx)
}
