// Package pagination implements the page-by-page list controller used
// by every admin list: page arithmetic, bounded navigation, post-delete
// rebalancing and explicit invalidation. Fetches that fail leave the
// previously loaded rows in place, and responses arriving out of issue
// order are dropped by a monotonic sequence guard.
package pagination

import (
	"sync"
)

// FetchFunc loads one window of rows and reports the total row count
// independent of the window.
type FetchFunc[T any] func(offset, limit int) ([]T, int, error)

type Pager[T any] struct {
	fetch    FetchFunc[T]
	pageSize int

	mu         sync.Mutex
	seq        uint64
	page       int
	totalCount int
	rows       []T
	loading    bool
}

func New[T any](fetch FetchFunc[T], pageSize int) *Pager[T] {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &Pager[T]{fetch: fetch, pageSize: pageSize}
}

// FetchPage loads the given zero-based page. On failure the previous
// rows stay visible. If another fetch was issued while this one was in
// flight, the late result is discarded.
func (p *Pager[T]) FetchPage(page int) error {
	if page < 0 {
		page = 0
	}

	p.mu.Lock()
	p.seq++
	seq := p.seq
	p.loading = true
	p.mu.Unlock()

	rows, total, err := p.fetch(page*p.pageSize, p.pageSize)

	p.mu.Lock()
	defer p.mu.Unlock()

	if seq != p.seq {
		// Superseded by a later fetch; its result owns the state.
		return nil
	}

	p.loading = false
	if err != nil {
		return err
	}

	p.rows = rows
	p.totalCount = total
	p.page = page
	return nil
}

// FetchBalanced loads the requested page, clamping to the last
// non-empty page when the request points past the end of the list.
func (p *Pager[T]) FetchBalanced(page int) error {
	if err := p.FetchPage(page); err != nil {
		return err
	}

	p.mu.Lock()
	last := totalPages(p.totalCount, p.pageSize) - 1
	if last < 0 {
		last = 0
	}
	current := p.page
	p.mu.Unlock()

	if current > last {
		return p.FetchPage(last)
	}
	return nil
}

// RebalanceAfterDelete re-fetches after one row was deleted from the
// current page: it backs up a page when the deletion emptied the last
// page, otherwise refills the current page from the items behind it.
func (p *Pager[T]) RebalanceAfterDelete() error {
	p.mu.Lock()
	newTotal := p.totalCount - 1
	if newTotal < 0 {
		newTotal = 0
	}
	newPages := totalPages(newTotal, p.pageSize)
	target := p.page
	if last := newPages - 1; target > last {
		target = last
	}
	if target < 0 {
		target = 0
	}
	p.mu.Unlock()

	return p.FetchPage(target)
}

// Invalidate re-fetches the current page. Wire it to whatever change
// notification is available; it is the whole reconciliation story.
func (p *Pager[T]) Invalidate() error {
	p.mu.Lock()
	page := p.page
	p.mu.Unlock()
	return p.FetchPage(page)
}

// Next advances one page. Out-of-range navigation is a no-op.
func (p *Pager[T]) Next() error {
	p.mu.Lock()
	ok := p.page < totalPages(p.totalCount, p.pageSize)-1
	page := p.page + 1
	p.mu.Unlock()
	if !ok {
		return nil
	}
	return p.FetchPage(page)
}

// Previous backs up one page. Out-of-range navigation is a no-op.
func (p *Pager[T]) Previous() error {
	p.mu.Lock()
	ok := p.page > 0
	page := p.page - 1
	p.mu.Unlock()
	if !ok {
		return nil
	}
	return p.FetchPage(page)
}

func (p *Pager[T]) HasNext() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.page < totalPages(p.totalCount, p.pageSize)-1
}

func (p *Pager[T]) HasPrevious() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.page > 0
}

func (p *Pager[T]) Page() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.page
}

func (p *Pager[T]) PageSize() int {
	return p.pageSize
}

func (p *Pager[T]) TotalCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.totalCount
}

func (p *Pager[T]) TotalPages() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return totalPages(p.totalCount, p.pageSize)
}

func (p *Pager[T]) IsLoading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loading
}

// Rows returns the currently loaded page.
func (p *Pager[T]) Rows() []T {
	p.mu.Lock()
	defer p.mu.Unlock()
	rows := make([]T, len(p.rows))
	copy(rows, p.rows)
	return rows
}

func totalPages(totalCount, pageSize int) int {
	if totalCount <= 0 {
		return 0
	}
	return (totalCount + pageSize - 1) / pageSize
}
