package report

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// PlaceholderText is the single row shown when nothing matches.
const PlaceholderText = "No records available"

// DefaultPageSize is the page size of a new Table.
const DefaultPageSize = 10

var pageSizes = []int{10, 25, 50, 100}

// ErrPageSize is returned for a page size outside PageSizes.
var ErrPageSize = errors.New("page size must be one of 10, 25, 50 or 100")

// PageSizes returns the selectable page sizes.
func PageSizes() []int {
	return append([]int(nil), pageSizes...)
}

// Table is the pending sales order view: an inclusive date-range filter,
// a stable sort by amount descending, then pagination. Changing a date bound
// or the page size returns to the first page.
type Table struct {
	rows     []Row
	start    string
	end      string
	pageSize int
	page     int
}

func NewTable(rows []Row) *Table {
	return &Table{rows: rows, pageSize: DefaultPageSize, page: 1}
}

func (t *Table) StartDate() string { return t.start }
func (t *Table) EndDate() string { return t.end }
func (t *Table) PageSize() int { return t.pageSize }

// SetStartDate sets the lower bound. An empty or unparseable bound is open.
func (t *Table) SetStartDate(s string) {
	t.start = s
	t.page = 1
}

// SetEndDate sets the upper bound. A date without a time covers that whole day,
// so a row created at 2025-01-05T23:59 passes an end bound of "2025-01-05".
// The browser dashboard compares against UTC midnight instead and drops it.
func (t *Table) SetEndDate(s string) {
	t.end = s
	t.page = 1
}

func (t *Table) SetPageSize(n int) error {
	for _, size := range pageSizes {
		if size == n {
			t.pageSize = n
			t.page = 1
			return nil
		}
	}
	return fmt.Errorf("%w: got %d", ErrPageSize, n)
}

// GoToPage moves to page n, clamped into [1, TotalPages].
func (t *Table) GoToPage(n int) {
	t.page = t.clamp(n)
}

// Page returns the current 1-based page.
func (t *Table) Page() int {
	return t.clamp(t.page)
}

func (t *Table) clamp(n int) int {
	last := t.TotalPages()
	if last < 1 {
		last = 1
	}
	if n > last {
		n = last
	}
	if n < 1 {
		n = 1
	}
	return n
}

// Filtered returns the rows inside the date range, in their original order.
// A row whose date cannot be parsed is always kept.
func (t *Table) Filtered() []Row {
	start, hasStart := parseBound(t.start, false)
	end, hasEnd := parseBound(t.end, true)

	out := make([]Row, 0, len(t.rows))
	for _, r := range t.rows {
		created, ok := parseRowDate(r.DateCreated)
		if ok {
			if hasStart && created.Before(start) {
				continue
			}
			if hasEnd && created.After(end) {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}

// Sorted returns the filtered rows ordered by amount, largest first. Equal
// amounts keep their filtered order.
func (t *Table) Sorted() []Row {
	rows := t.Filtered()
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].SOAmount.Value().GreaterThan(rows[j].SOAmount.Value())
	})
	return rows
}

// TotalPages is ceil(filtered / pageSize); zero when nothing matches.
func (t *Table) TotalPages() int {
	n := len(t.Filtered())
	return (n + t.pageSize - 1) / t.pageSize
}

// View is one rendered page of the table.
type View struct {
	Rows        []DisplayRow `json:"rows"`
	Page        int          `json:"page"`
	PageSize    int          `json:"pageSize"`
	TotalPages  int          `json:"totalPages"`
	TotalRows   int          `json:"totalRows"`
	Empty       bool         `json:"empty"`
	Placeholder string       `json:"placeholder,omitempty"`
}

// View renders the current page.
func (t *Table) View() View {
	sorted := t.Sorted()
	total := (len(sorted) + t.pageSize - 1) / t.pageSize
	page := t.Page()

	v := View{
		Page:       page,
		PageSize:   t.pageSize,
		TotalPages: total,
		TotalRows:  len(sorted),
		Rows:       []DisplayRow{},
	}
	if len(sorted) == 0 {
		v.Empty = true
		v.Placeholder = PlaceholderText
		return v
	}

	from := (page - 1) * t.pageSize
	to := from + t.pageSize
	if to > len(sorted) {
		to = len(sorted)
	}
	for _, r := range sorted[from:to] {
		v.Rows = append(v.Rows, Display(r))
	}
	return v
}

var rowDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseRowDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range rowDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseBound reads a filter bound. A date-only end bound is moved to the last
// instant of that day.
func parseBound(s string, end bool) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if d, err := time.Parse("2006-01-02", s); err == nil {
		if end {
			return d.Add(24*time.Hour - time.Nanosecond), true
		}
		return d, true
	}
	return parseRowDate(s)
}
