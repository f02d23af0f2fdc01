package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/kakeibo-app/backend/internal/i18n"
	"github.com/kakeibo-app/backend/internal/models"
	"github.com/kakeibo-app/backend/internal/stats"
	"golang.org/x/text/message"
)

// ErrPending is returned when a mutation is started for a control that
// still waits for the response of the previous one.
var ErrPending = errors.New("a request for this control is still pending")

// Session combines the client with the record cache. Every successful
// mutation invalidates the cache.
type Session struct {
	Client *Client
	Cache  *Cache

	mu      sync.Mutex
	pending map[string]bool
}

// NewSession returns a session with an empty cache.
func NewSession(c *Client) *Session {
	return &Session{
		Client:  c,
		Cache:   NewCache(c),
		pending: make(map[string]bool),
	}
}

// begin marks the control as busy. The returned function releases it.
func (s *Session) begin(control string) (func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending[control] {
		return nil, fmt.Errorf("%w: %s", ErrPending, control)
	}
	s.pending[control] = true

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.pending, control)
	}, nil
}

// Records returns the cached record list.
func (s *Session) Records(ctx context.Context) ([]models.Record, error) {
	return s.Cache.Records(ctx)
}

func (s *Session) Create(ctx context.Context, payload models.RecordCreate) (models.Record, error) {
	done, err := s.begin("create")
	if err != nil {
		return models.Record{}, err
	}
	defer done()

	record, err := s.Client.Create(ctx, payload)
	if err != nil {
		return models.Record{}, err
	}

	s.Cache.Invalidate()
	return record, nil
}

func (s *Session) Update(ctx context.Context, id uint64, update models.RecordUpdate) (models.Record, error) {
	done, err := s.begin(fmt.Sprintf("update/%d", id))
	if err != nil {
		return models.Record{}, err
	}
	defer done()

	record, err := s.Client.Update(ctx, id, update)
	if err != nil {
		return models.Record{}, err
	}

	s.Cache.Invalidate()
	return record, nil
}

func (s *Session) Delete(ctx context.Context, id uint64) error {
	done, err := s.begin(fmt.Sprintf("delete/%d", id))
	if err != nil {
		return err
	}
	defer done()

	err = s.Client.Delete(ctx, id)
	if err != nil {
		return err
	}

	s.Cache.Invalidate()
	return nil
}

func (s *Session) DeleteAll(ctx context.Context) error {
	done, err := s.begin("delete-all")
	if err != nil {
		return err
	}
	defer done()

	err = s.Client.DeleteAll(ctx)
	if err != nil {
		return err
	}

	s.Cache.Invalidate()
	return nil
}

// Entry is a record as shown in the list.
type Entry struct {
	Record   models.Record
	Category string // Category with emoji, e.g. "🍽️ 食費"
	Amount   string // Signed amount, e.g. "-¥1,200"
}

// Totals are the sums of the dashboard formatted for display.
type Totals struct {
	Income   string
	Expense  string
	Net      string
	Filtered string
}

// DashboardData is everything the dashboard shows.
type DashboardData struct {
	Balance       stats.Summary
	Monthly       stats.MonthlyStats
	Records       []models.Record // Records matching the filter
	Entries       []Entry         // Records matching the filter, formatted
	FilteredTotal int64
	Totals        Totals
}

// Dashboard calculates the dashboard from the cached records. Amounts
// are formatted in the language of the client.
func (s *Session) Dashboard(ctx context.Context, filter stats.Filter, now time.Time) (DashboardData, error) {
	records, err := s.Records(ctx)
	if err != nil {
		return DashboardData{}, err
	}

	p := message.NewPrinter(i18n.Match(s.Client.Language))
	filtered := stats.Apply(records, filter, now)

	entries := make([]Entry, 0, len(filtered))
	for _, r := range filtered {
		entries = append(entries, Entry{
			Record:   r,
			Category: models.LabelFor(r.Category),
			Amount:   i18n.SignedYen(p, stats.Signed(r)),
		})
	}

	data := DashboardData{
		Balance:       stats.Balance(records, now),
		Monthly:       stats.Monthly(records, now),
		Records:       filtered,
		Entries:       entries,
		FilteredTotal: stats.Total(filtered),
	}

	data.Totals = Totals{
		Income:   i18n.Yen(p, data.Balance.Income),
		Expense:  i18n.Yen(p, data.Balance.Expense),
		Net:      i18n.SignedYen(p, data.Balance.Net),
		Filtered: i18n.Yen(p, data.FilteredTotal),
	}

	return data, nil
}
