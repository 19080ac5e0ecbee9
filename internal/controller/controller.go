// Package controller drives one paginated grid. A Controller owns the page,
// sort, search and filter state of a listing, fetches through a service and
// publishes failures as transient notifications.
//
// Page indexes are 0-based here and become 1-based only in the query handed
// to the fetch function.
package controller

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/billboardhub/bbadmin/internal/api"
)

// DefaultToastDelay is how long a notification stays visible
const DefaultToastDelay = 2500 * time.Millisecond

// State is the fetch state of a controller
type State int

const (
	Idle State = iota
	Loading
	Error
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Error:
		return "error"
	default:
		return "idle"
	}
}

// Snapshot is a consistent copy of the controller state
type Snapshot[T any] struct {
	State      State
	Rows       []T
	Total      int
	Page       int
	PageSize   int
	SortBy     string
	SortDir    api.SortDir
	Search     string
	Filters    map[string]string
	Err        error
	Generation uint64
}

// Pages returns the number of pages for the current total, at least 1
func (s Snapshot[T]) Pages() int {
	return api.ListResult[T]{Total: s.Total}.Pages(s.PageSize)
}

// Option configures a Controller
type Option[T any] func(*Controller[T])

// WithNotifier routes notifications to n
func WithNotifier[T any](n Notifier) Option[T] {
	return func(c *Controller[T]) { c.notifier = n }
}

// WithPageSize sets the initial page size; invalid sizes are ignored
func WithPageSize[T any](n int) Option[T] {
	return func(c *Controller[T]) {
		if api.ValidPageSize(n) {
			c.pageSize = n
		}
	}
}

// WithSort sets the initial sort
func WithSort[T any](field string, dir api.SortDir) Option[T] {
	return func(c *Controller[T]) {
		c.sortBy, c.sortDir = field, dir
	}
}

// WithSearch sets the initial search term as if it had been submitted
func WithSearch[T any](term string) Option[T] {
	return func(c *Controller[T]) {
		c.search, c.stagedSearch = term, term
	}
}

// WithFilters sets initial filters as if they had been submitted
func WithFilters[T any](filters map[string]string) Option[T] {
	return func(c *Controller[T]) {
		for k, v := range filters {
			c.filters[k] = v
			c.staged[k] = v
		}
	}
}

// WithOnChange registers fn to receive every state change. fn may be called
// from fetch goroutines; Generation orders the snapshots.
func WithOnChange[T any](fn func(Snapshot[T])) Option[T] {
	return func(c *Controller[T]) { c.onChange = fn }
}

// WithContext sets the parent context of every fetch
func WithContext[T any](ctx context.Context) Option[T] {
	return func(c *Controller[T]) { c.parent = ctx }
}

// Controller is the page state machine of one grid.
type Controller[T any] struct {
	fetch    func(context.Context, api.ListQuery) (api.ListResult[T], error)
	notifier Notifier
	onChange func(Snapshot[T])
	parent   context.Context

	mu           sync.Mutex
	page         int
	pageSize     int
	sortBy       string
	sortDir      api.SortDir
	search       string
	filters      map[string]string
	stagedSearch string
	staged       map[string]string

	rows   []T
	total  int
	state  State
	err    error
	gen    uint64
	cancel context.CancelFunc
	closed bool

	wg sync.WaitGroup
}

// New creates an idle controller. Nothing is fetched until Load.
func New[T any](fetch func(context.Context, api.ListQuery) (api.ListResult[T], error), opts ...Option[T]) *Controller[T] {
	c := &Controller[T]{
		fetch:    fetch,
		parent:   context.Background(),
		pageSize: api.DefaultPageSize,
		sortDir:  api.SortDesc,
		filters:  map[string]string{},
		staged:   map[string]string{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load fetches the current page
func (c *Controller[T]) Load() {
	c.update(func() bool { return true })
}

// Refresh is Load under the name the grids use for their reload button
func (c *Controller[T]) Refresh() {
	c.Load()
}

// SetPage moves to the 0-based page i and fetches it
func (c *Controller[T]) SetPage(i int) {
	if i < 0 {
		i = 0
	}
	c.update(func() bool {
		c.page = i
		return true
	})
}

// SetPageSize changes the page size, returns to the first page and fetches
func (c *Controller[T]) SetPageSize(n int) error {
	if !api.ValidPageSize(n) {
		return fmt.Errorf("page size must be one of %v", api.PageSizes)
	}
	c.update(func() bool {
		c.pageSize = n
		c.page = 0
		return true
	})
	return nil
}

// SetSort changes the sort and fetches. Fields outside the resource
// allow-list are resolved by the service.
func (c *Controller[T]) SetSort(field string, dir api.SortDir) {
	c.update(func() bool {
		c.sortBy, c.sortDir = field, dir
		return true
	})
}

// SetSearch stages a search term for the next Submit
func (c *Controller[T]) SetSearch(term string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stagedSearch = term
}

// SetFilter stages a filter for the next Submit. An empty value clears it.
func (c *Controller[T]) SetFilter(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if value == "" {
		delete(c.staged, key)
		return
	}
	c.staged[key] = value
}

// Submit applies the staged search and filters, returns to the first page
// and fetches.
func (c *Controller[T]) Submit() {
	c.update(func() bool {
		c.search = c.stagedSearch
		c.filters = copyMap(c.staged)
		c.page = 0
		return true
	})
}

// AfterMutation reports the outcome of a create, update or delete. A success
// is announced with message and the current page is fetched again; rows are
// never patched locally.
func (c *Controller[T]) AfterMutation(message string, err error) {
	if err != nil {
		c.notify(LevelError, err.Error())
		return
	}
	if message != "" {
		c.notify(LevelSuccess, message)
	}
	c.Load()
}

// Snapshot returns a copy of the current state
func (c *Controller[T]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Wait blocks until every started fetch has returned
func (c *Controller[T]) Wait() {
	c.wg.Wait()
}

// Close cancels any in-flight fetch and discards the state. Results
// arriving afterwards are dropped.
func (c *Controller[T]) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.rows, c.total, c.err = nil, 0, nil
	c.state = Idle
	c.mu.Unlock()

	c.wg.Wait()
}

// update applies mutate under the lock and, when it reports true, starts a
// new fetch generation superseding any in-flight one.
func (c *Controller[T]) update(mutate func() bool) {
	c.mu.Lock()
	if c.closed || !mutate() {
		c.mu.Unlock()
		return
	}

	if c.cancel != nil {
		c.cancel()
	}
	c.gen++
	gen := c.gen
	ctx, cancel := context.WithCancel(c.parent)
	c.cancel = cancel
	c.state = Loading
	q := c.queryLocked()
	snap := c.snapshotLocked()

	c.wg.Add(1)
	c.mu.Unlock()

	c.changed(snap)
	go c.run(ctx, cancel, gen, q)
}

func (c *Controller[T]) run(ctx context.Context, cancel context.CancelFunc, gen uint64, q api.ListQuery) {
	defer c.wg.Done()
	defer cancel()

	start := time.Now()
	res, err := c.fetch(ctx, q)

	c.mu.Lock()
	if c.closed || gen != c.gen {
		c.mu.Unlock()
		log.Debug().
			Uint64("generation", gen).
			Dur("elapsed", time.Since(start)).
			Msg("dropping superseded page")
		return
	}
	c.cancel = nil
	if err != nil {
		c.state = Error
		c.err = err
	} else {
		c.state = Idle
		c.err = nil
		c.rows = res.Data
		c.total = res.Total
	}
	snap := c.snapshotLocked()
	c.mu.Unlock()

	log.Debug().
		Uint64("generation", gen).
		Int("page", q.Page).
		Int("rows", len(snap.Rows)).
		Int("total", snap.Total).
		Str("state", snap.State.String()).
		Dur("elapsed", time.Since(start)).
		Msg("page settled")

	if err != nil {
		c.notify(LevelError, err.Error())
	}
	c.changed(snap)
}

// queryLocked builds a fresh query; the page becomes 1-based here.
func (c *Controller[T]) queryLocked() api.ListQuery {
	return api.ListQuery{
		Page:     c.page + 1,
		PageSize: c.pageSize,
		Search:   c.search,
		SortBy:   c.sortBy,
		SortDir:  c.sortDir,
		Filters:  copyMap(c.filters),
	}
}

func (c *Controller[T]) snapshotLocked() Snapshot[T] {
	rows := make([]T, len(c.rows))
	copy(rows, c.rows)
	return Snapshot[T]{
		State:      c.state,
		Rows:       rows,
		Total:      c.total,
		Page:       c.page,
		PageSize:   c.pageSize,
		SortBy:     c.sortBy,
		SortDir:    c.sortDir,
		Search:     c.search,
		Filters:    copyMap(c.filters),
		Err:        c.err,
		Generation: c.gen,
	}
}

func (c *Controller[T]) notify(level Level, message string) {
	if c.notifier == nil || message == "" {
		return
	}
	c.notifier.Notify(Notification{Level: level, Message: message, At: time.Now()})
}

func (c *Controller[T]) changed(snap Snapshot[T]) {
	if c.onChange != nil {
		c.onChange(snap)
	}
}

func copyMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
