package wizard

import (
	"context"
	"sync"
	"time"

	"github.com/shenikar/report_intake/internal/models"
	"github.com/sirupsen/logrus"
)

const persistTimeout = 5 * time.Second

type persistJob struct {
	draft *models.ReportDraft
	clear bool
}

// persister записывает черновики в одной горутине. Очередь глубиной 1:
// новая задача вытесняет еще не начатую, навигация никогда не ждет записи.
type persister struct {
	store  DraftStore
	logger *logrus.Logger

	mu      sync.Mutex
	closed  bool
	pending chan persistJob
	done    chan struct{}
}

func newPersister(store DraftStore, logger *logrus.Logger) *persister {
	p := &persister{
		store:   store,
		logger:  logger,
		pending: make(chan persistJob, 1),
		done:    make(chan struct{}),
	}
	go p.run()
	return p
}

func (p *persister) save(d *models.ReportDraft) {
	p.enqueue(persistJob{draft: d})
}

func (p *persister) clear() {
	p.enqueue(persistJob{clear: true})
}

func (p *persister) enqueue(job persistJob) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	for {
		select {
		case p.pending <- job:
			return
		default:
		}
		// вытесняем устаревшую задачу
		select {
		case <-p.pending:
		default:
		}
	}
}

func (p *persister) run() {
	defer close(p.done)
	for job := range p.pending {
		p.process(job)
	}
}

func (p *persister) process(job persistJob) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	log := p.logger.WithFields(logrus.Fields{
		"service": "wizard",
		"method":  "persist",
	})
	if job.clear {
		if err := p.store.Clear(ctx); err != nil {
			log.WithError(err).Warn("Failed to clear draft, ignoring")
		}
		return
	}
	if err := p.store.Save(ctx, job.draft); err != nil {
		log.WithError(err).WithField("draft_id", job.draft.ID).Warn("Failed to persist draft, ignoring")
	}
}

// close дожидается записи последней задачи и останавливает горутину
func (p *persister) close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		<-p.done
		return
	}
	p.closed = true
	close(p.pending)
	p.mu.Unlock()
	<-p.done
}
