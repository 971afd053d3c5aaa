package sessiongen

import (
	"context"
	"fmt"
	"time"
)

// Persistence backend operations the dispatcher needs.
type Persistence interface {
	ListTrainingSlots(ctx context.Context, categoryID string) ([]Slot, error)
	BulkInsertSessions(ctx context.Context, drafts []Draft) (int, error)
}

// Result drafts handed to the backend and how many rows it created.
// Inserted can be lower than len(Drafts) when sessions already existed.
type Result struct {
	Drafts   []Draft
	Inserted int
}

// Dispatcher single entry point for a generation request.
type Dispatcher struct {
	store Persistence
	loc   *time.Location
	now   func() time.Time
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLocation sets the timezone used when the request carries no date.
func WithLocation(loc *time.Location) Option {
	return func(d *Dispatcher) {
		if loc != nil {
			d.loc = loc
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) {
		if now != nil {
			d.now = now
		}
	}
}

// NewDispatcher creates a Dispatcher over store.
func NewDispatcher(store Persistence, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		store: store,
		loc:   time.Local,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch loads the category slots, computes the drafts and hands the whole
// batch to one bulk insert. Nothing is written when generation fails.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) (*Result, error) {
	if _, err := ParseMode(string(req.Mode)); err != nil {
		return nil, err
	}
	if req.ReferenceDate.IsZero() {
		req.ReferenceDate = d.now().In(d.loc)
	}

	slots, err := d.store.ListTrainingSlots(ctx, req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("list training slots: %w", err)
	}

	drafts, err := Generate(req, slots)
	if err != nil {
		return nil, err
	}

	inserted, err := d.store.BulkInsertSessions(ctx, drafts)
	if err != nil {
		return nil, fmt.Errorf("bulk insert sessions: %w", err)
	}

	return &Result{Drafts: drafts, Inserted: inserted}, nil
}
