package persistence

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/KirkDiggler/nexus-classes/internal/domain/world"
	"github.com/KirkDiggler/nexus-classes/internal/metrics"
	"github.com/KirkDiggler/nexus-classes/internal/registry"
	"github.com/KirkDiggler/nexus-classes/internal/repositories/classdata"
)

const (
	defaultQueueSize    = 256
	defaultWriteTimeout = 5 * time.Second

	kindParticipant = "participant"
	kindRegions     = "regions"
)

type writeJob struct {
	kind        string
	participant *classdata.ParticipantRecord
	regions     []string
}

// AsyncWriterConfig holds the dependencies of an AsyncWriter
type AsyncWriterConfig struct {
	Repository   classdata.Repository
	QueueSize    int           // defaults to 256
	WriteTimeout time.Duration // defaults to 5s
}

// AsyncWriter saves class data off the caller's goroutine. Saves are queued
// without blocking; a full queue drops the save and logs it. The registry
// stays authoritative, so a dropped or failed write only loses durability.
type AsyncWriter struct {
	repository   classdata.Repository
	writeTimeout time.Duration

	mu     sync.RWMutex
	closed bool
	queue  chan writeJob

	done      chan struct{}
	closeOnce sync.Once
}

// NewAsyncWriter creates a writer and starts its goroutine
func NewAsyncWriter(cfg *AsyncWriterConfig) *AsyncWriter {
	if cfg == nil {
		panic("config cannot be nil")
	}
	if cfg.Repository == nil {
		panic("repository is required")
	}

	queueSize := cfg.QueueSize
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	timeout := cfg.WriteTimeout
	if timeout <= 0 {
		timeout = defaultWriteTimeout
	}

	w := &AsyncWriter{
		repository:   cfg.Repository,
		writeTimeout: timeout,
		queue:        make(chan writeJob, queueSize),
		done:         make(chan struct{}),
	}
	go w.run()
	return w
}

// SaveParticipant queues a save of the participant's state
func (w *AsyncWriter) SaveParticipant(state registry.ParticipantState) {
	w.enqueue(writeJob{kind: kindParticipant, participant: RecordFromState(state)})
}

// SaveEnabledRegions queues a replacement of the enabled region set
func (w *AsyncWriter) SaveEnabledRegions(regions []world.RegionID) {
	ids := make([]string, 0, len(regions))
	for _, region := range regions {
		ids = append(ids, string(region))
	}
	w.enqueue(writeJob{kind: kindRegions, regions: ids})
}

// Close stops accepting saves and waits for queued ones to finish
func (w *AsyncWriter) Close() {
	w.closeOnce.Do(func() {
		w.mu.Lock()
		w.closed = true
		close(w.queue)
		w.mu.Unlock()
	})
	<-w.done
}

func (w *AsyncWriter) enqueue(job writeJob) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.closed {
		log.Printf("Persistence: Dropping %s save, writer is closed", job.kind)
		metrics.PersistenceWrites.WithLabelValues(job.kind, "dropped").Inc()
		return
	}

	select {
	case w.queue <- job:
	default:
		log.Printf("Persistence: Dropping %s save, queue is full", job.kind)
		metrics.PersistenceWrites.WithLabelValues(job.kind, "dropped").Inc()
	}
}

func (w *AsyncWriter) run() {
	defer close(w.done)
	for job := range w.queue {
		w.write(job)
	}
}

func (w *AsyncWriter) write(job writeJob) {
	ctx, cancel := context.WithTimeout(context.Background(), w.writeTimeout)
	defer cancel()

	var err error
	switch job.kind {
	case kindParticipant:
		err = w.repository.SaveParticipant(ctx, job.participant)
	case kindRegions:
		err = w.repository.SaveEnabledRegions(ctx, job.regions)
	}

	if err != nil {
		log.Printf("Persistence: Failed to save %s: %v", job.kind, err)
		metrics.PersistenceWrites.WithLabelValues(job.kind, "error").Inc()
		return
	}
	metrics.PersistenceWrites.WithLabelValues(job.kind, "ok").Inc()
}
