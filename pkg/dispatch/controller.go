package dispatch

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/mailmerge/pkg/dataset"
	"github.com/dmitrymomot/mailmerge/pkg/mailer"
	"github.com/dmitrymomot/mailmerge/pkg/merge"
	"github.com/dmitrymomot/mailmerge/pkg/template"
)

// State is the lifecycle phase of a controller's job.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateStopping
	StateCompleted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateStopping:
		return "stopping"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// EventKind discriminates dispatch events.
type EventKind int

const (
	// EventProgress reports one delivered row.
	EventProgress EventKind = iota
	// EventFinished is the terminal event of a completed or cancelled job.
	EventFinished
	// EventError is the terminal event of an aborted job.
	EventError
)

// Event is one dispatch notification. JobID is set on every event.
type Event struct {
	Kind      EventKind
	JobID     string
	Index     int     // zero-based row index (progress)
	Fraction  float64 // completion fraction (index+1)/total (progress)
	Recipient string  // address the row was delivered to (progress)
	Sent      int     // rows delivered (finished)
	Cancelled bool    // job was stopped by the operator (finished)
	Err       error   // failure description (error)
}

// Job is one immutable dispatch request. The rows, template, and roles are
// treated as snapshots: reloading them while the job runs is not supported.
type Job struct {
	Rows     []dataset.Row
	Template *template.Template
	Roles    merge.ColumnRoles
	Subject  string
	Interval time.Duration // wait between messages, skipped after the last row
}

// Controller runs dispatch jobs one at a time.
type Controller struct {
	sender mailer.Sender
	logger *slog.Logger

	mu     sync.Mutex
	state  State
	cancel context.CancelFunc
}

// NewController creates a controller sending through the given transport.
// A nil logger discards dispatch logs.
func NewController(sender mailer.Sender, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Controller{
		sender: sender,
		logger: logger,
		state:  StateIdle,
	}
}

// State returns the controller's current lifecycle phase.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Start validates the job and launches the send loop. The returned channel
// delivers progress events followed by exactly one terminal event, then
// closes. The channel is buffered for the whole job, so an abandoned
// consumer never wedges the loop.
//
// Only one job may be active; Start fails with ErrAlreadyRunning otherwise.
func (c *Controller) Start(ctx context.Context, job Job) (<-chan Event, error) {
	if len(job.Rows) == 0 {
		return nil, ErrNoRows
	}
	if job.Template == nil {
		return nil, ErrNilTemplate
	}
	if job.Roles.AddressColumn == "" {
		return nil, ErrNoAddressColumn
	}

	c.mu.Lock()
	if c.state == StateRunning || c.state == StateStopping {
		c.mu.Unlock()
		return nil, ErrAlreadyRunning
	}

	jobCtx, cancel := context.WithCancel(ContextWithJobID(ctx, uuid.NewString()))
	c.state = StateRunning
	c.cancel = cancel
	c.mu.Unlock()

	events := make(chan Event, len(job.Rows)+1)
	go c.run(jobCtx, cancel, job, events)
	return events, nil
}

// Cancel requests a cooperative stop of the active job. It returns
// immediately; the job signals completion through its event channel.
func (c *Controller) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateRunning {
		c.state = StateStopping
		c.cancel()
	}
}

func (c *Controller) run(ctx context.Context, cancel context.CancelFunc, job Job, events chan<- Event) {
	defer close(events)
	defer cancel()

	jobID, _ := JobIDFromContext(ctx)
	log := c.logger.With(slog.String("job_id", jobID), slog.Int("rows", len(job.Rows)))
	log.InfoContext(ctx, "dispatch started",
		slog.Duration("interval", job.Interval),
	)

	total := len(job.Rows)
	sent := 0
	for i, row := range job.Rows {
		if ctx.Err() != nil {
			break
		}

		address := row[job.Roles.AddressColumn]
		email := &mailer.Email{
			To:      []string{address},
			Subject: merge.Render(job.Subject, row, job.Template.Placeholders),
			HTML:    merge.Render(job.Template.Markup, row, job.Template.Placeholders),
		}

		if err := c.sender.Send(ctx, email); err != nil {
			c.setState(StateFailed)
			log.ErrorContext(ctx, "dispatch aborted",
				slog.Int("row", i),
				slog.String("recipient", address),
				slog.String("error", err.Error()),
			)
			events <- Event{Kind: EventError, JobID: jobID, Index: i, Err: err}
			return
		}

		sent++
		events <- Event{
			Kind:      EventProgress,
			JobID:     jobID,
			Index:     i,
			Fraction:  float64(i+1) / float64(total),
			Recipient: address,
		}
		log.InfoContext(ctx, "message delivered",
			slog.Int("row", i),
			slog.String("recipient", address),
		)

		if i < total-1 {
			select {
			case <-time.After(job.Interval):
			case <-ctx.Done():
			}
		}
	}

	cancelled := ctx.Err() != nil
	c.setState(StateCompleted)
	log.InfoContext(ctx, "dispatch finished",
		slog.Int("sent", sent),
		slog.Bool("cancelled", cancelled),
	)
	events <- Event{Kind: EventFinished, JobID: jobID, Sent: sent, Cancelled: cancelled}
}

func (c *Controller) setState(s State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = s
}
