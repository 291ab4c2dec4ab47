package controller

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/openlearn-labs/lms-console/internal/models"
	apperrors "github.com/openlearn-labs/lms-console/pkg/errors"
)

// Row is the minimal contract a listed record must satisfy.
type Row interface {
	RowID() string
}

// Source fetches one page of a resource collection.
type Source[T Row] interface {
	List(ctx context.Context, query models.ListQuery) (items []T, totalCount int, err error)
}

// Deleter removes one record by id.
type Deleter interface {
	Delete(ctx context.Context, id string) error
}

// Confirmer asks the operator to approve a destructive action. A false
// answer is a cancellation, not an error.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// ListResult is an immutable snapshot of the controller state for rendering.
// Approximate marks totals degraded by a client-side post-filter.
type ListResult[T Row] struct {
	Items       []T
	TotalCount  int
	IsLoading   bool
	Err         error
	Approximate bool
	Query       models.ListQuery
	Selection   []string
}

// Pagination derives the pagination metadata for the snapshot.
func (r ListResult[T]) Pagination() models.Pagination {
	return models.Pagination{
		Page:       r.Query.Page,
		PageSize:   r.Query.PageSize,
		TotalCount: r.TotalCount,
	}
}

// TotalPages reports the page count implied by the snapshot.
func (r ListResult[T]) TotalPages() int {
	return models.TotalPages(r.TotalCount, r.Query.PageSize)
}

// ListOptions configures a list controller instance.
type ListOptions[T Row] struct {
	PageSize int
	Deleter  Deleter
	Confirm  Confirmer
	// LocalFilter post-filters fetched rows client-side. When set, the total
	// is recomputed from the filtered page and snapshots are flagged
	// Approximate, since exact backend pagination math no longer holds.
	LocalFilter func(T) bool
	Logger      *zap.Logger
}

// ListController owns the query state, fetch lifecycle and selection state
// for one resource collection. Presentation layers bind its methods to
// inputs and buttons; they never talk to the backend directly.
type ListController[T Row] struct {
	mu      sync.Mutex
	source  Source[T]
	deleter Deleter
	confirm Confirmer
	local   func(T) bool
	logger  *zap.Logger

	query     models.ListQuery
	items     []T
	total     int
	loading   bool
	err       error
	selection map[string]struct{}

	seq         uint64
	loaded      bool
	clearOnNext bool
	closed      bool
}

// NewList builds a controller bound to one collection source.
func NewList[T Row](source Source[T], opts ListOptions[T]) *ListController[T] {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = 10
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &ListController[T]{
		source:  source,
		deleter: opts.Deleter,
		confirm: opts.Confirm,
		local:   opts.LocalFilter,
		logger:  log,
		query: models.ListQuery{
			Page:     1,
			PageSize: pageSize,
			Filters:  map[string]string{},
		},
		selection: map[string]struct{}{},
	}
}

// SetSearchText updates the search term, resets to page 1 and refetches.
func (c *ListController[T]) SetSearchText(ctx context.Context, text string) error {
	c.mu.Lock()
	c.query.Search = text
	c.query.Page = 1
	c.mu.Unlock()
	return c.Refetch(ctx)
}

// SubmitSearch re-issues the current search, also resetting to page 1.
func (c *ListController[T]) SubmitSearch(ctx context.Context) error {
	c.mu.Lock()
	c.query.Page = 1
	c.mu.Unlock()
	return c.Refetch(ctx)
}

// SetFilter replaces one filter entry, resets to page 1 and refetches. A
// filter change is a recognized change of scope, so the stale page is
// dropped before the fetch resolves rather than shown as authoritative.
func (c *ListController[T]) SetFilter(ctx context.Context, key, value string) error {
	c.mu.Lock()
	c.query = c.query.WithFilter(key, value)
	c.query.Page = 1
	c.clearOnNext = true
	c.mu.Unlock()
	return c.Refetch(ctx)
}

// SetSort updates the sort key and direction and refetches.
func (c *ListController[T]) SetSort(ctx context.Context, sortBy, sortOrder string) error {
	c.mu.Lock()
	c.query.SortBy = sortBy
	c.query.SortOrder = sortOrder
	c.mu.Unlock()
	return c.Refetch(ctx)
}

// GoToPage moves to page n and refetches. Out-of-range requests are clamped
// to [1, totalPages], never rejected. Changing page drops the selection.
func (c *ListController[T]) GoToPage(ctx context.Context, n int) error {
	c.mu.Lock()
	if n < 1 {
		n = 1
	}
	if c.loaded {
		if max := models.TotalPages(c.total, c.query.PageSize); n > max {
			n = max
		}
	}
	c.query.Page = n
	c.selection = map[string]struct{}{}
	c.mu.Unlock()
	return c.Refetch(ctx)
}

// Refetch issues one fetch for the current query. A newer Refetch supersedes
// any in-flight one: only the response matching the most recent request is
// applied, so out-of-order network completion cannot surface stale rows.
// On failure prior items stay visible, except when the scope just changed.
func (c *ListController[T]) Refetch(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.seq++
	seq := c.seq
	if !c.loaded || c.clearOnNext {
		c.items = nil
		c.clearOnNext = false
	}
	c.loading = true
	c.err = nil
	query := c.query
	c.mu.Unlock()

	items, total, err := c.source.List(ctx, query)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || seq != c.seq {
		// Superseded or closed; the response is ignored on arrival.
		return nil
	}
	c.loading = false

	if err != nil {
		c.err = err
		c.logger.Warn("list fetch failed",
			zap.Int("page", query.Page),
			zap.String("search", query.Search),
			zap.Error(err))
		return err
	}

	if c.local != nil {
		filtered := make([]T, 0, len(items))
		for _, item := range items {
			if c.local(item) {
				filtered = append(filtered, item)
			}
		}
		items = filtered
		total = len(filtered)
	}

	c.items = items
	c.total = total
	c.err = nil
	c.loaded = true
	c.selection = map[string]struct{}{}
	return nil
}

// Invalidate forces a reload of the current page. Mutations call this
// instead of splicing rows locally so the total count stays authoritative.
func (c *ListController[T]) Invalidate(ctx context.Context) error {
	return c.Refetch(ctx)
}

// DeleteRow confirms and deletes one record, then invalidates the page.
// A declined confirmation issues zero requests and changes no state. A
// failed delete leaves prior state intact.
func (c *ListController[T]) DeleteRow(ctx context.Context, id string) error {
	if c.deleter == nil {
		return apperrors.Clone(apperrors.ErrInternal, "list does not support deletion")
	}
	if c.confirm != nil {
		ok, err := c.confirm.Confirm(fmt.Sprintf("Delete record %s? This cannot be undone.", id))
		if err != nil {
			c.logger.Warn("delete confirmation failed", zap.String("id", id), zap.Error(err))
			return nil
		}
		if !ok {
			return nil
		}
	}

	if err := c.deleter.Delete(ctx, id); err != nil {
		return err
	}

	c.mu.Lock()
	delete(c.selection, id)
	c.mu.Unlock()

	return c.Invalidate(ctx)
}

// DeleteSelected applies DeleteRow semantics to the whole selection under a
// single confirmation. The first failure stops the sweep; rows already
// deleted stay deleted and the page is invalidated either way.
func (c *ListController[T]) DeleteSelected(ctx context.Context) error {
	if c.deleter == nil {
		return apperrors.Clone(apperrors.ErrInternal, "list does not support deletion")
	}
	ids := c.Selected()
	if len(ids) == 0 {
		return nil
	}
	if c.confirm != nil {
		ok, err := c.confirm.Confirm(fmt.Sprintf("Delete %d selected records? This cannot be undone.", len(ids)))
		if err != nil || !ok {
			return nil
		}
	}

	var firstErr error
	for _, id := range ids {
		if err := c.deleter.Delete(ctx, id); err != nil {
			firstErr = err
			break
		}
		c.mu.Lock()
		delete(c.selection, id)
		c.mu.Unlock()
	}

	if err := c.Invalidate(ctx); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

// ToggleSelect flips one row in and out of the selection. Pure state; no
// network.
func (c *ListController[T]) ToggleSelect(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.selection[id]; ok {
		delete(c.selection, id)
		return
	}
	c.selection[id] = struct{}{}
}

// SelectAll selects every row on the current page.
func (c *ListController[T]) SelectAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range c.items {
		c.selection[item.RowID()] = struct{}{}
	}
}

// ClearSelection empties the selection.
func (c *ListController[T]) ClearSelection() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selection = map[string]struct{}{}
}

// Selected returns the selected ids in stable order.
func (c *ListController[T]) Selected() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	ids := make([]string, 0, len(c.selection))
	for id := range c.selection {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Snapshot returns the current state for rendering.
func (c *ListController[T]) Snapshot() ListResult[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]T, len(c.items))
	copy(items, c.items)
	ids := make([]string, 0, len(c.selection))
	for id := range c.selection {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ListResult[T]{
		Items:       items,
		TotalCount:  c.total,
		IsLoading:   c.loading,
		Err:         c.err,
		Approximate: c.local != nil,
		Query:       c.query,
		Selection:   ids,
	}
}

// Close detaches the controller from its view. Responses arriving after
// Close are dropped instead of being applied to unmounted state.
func (c *ListController[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}
