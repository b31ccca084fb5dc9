package stockdata

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"

	"stockquote/internal/quote"
)

// Store is an in-memory quote table keyed by symbol.
type Store struct {
	mu     sync.RWMutex
	quotes map[string]quote.Quote
}

func NewStore(seed ...quote.Quote) *Store {
	s := &Store{quotes: make(map[string]quote.Quote, len(seed))}
	for _, q := range seed {
		s.quotes[q.Symbol] = q
	}
	return s
}

func (s *Store) Get(symbol string) (quote.Quote, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q, ok := s.quotes[symbol]
	return q, ok
}

// List returns every quote sorted by symbol.
func (s *Store) List() []quote.Quote {
	s.mu.RLock()
	out := make([]quote.Quote, 0, len(s.quotes))
	for _, q := range s.quotes {
		out = append(out, q)
	}
	s.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out
}

func (s *Store) Put(q quote.Quote) {
	s.mu.Lock()
	s.quotes[q.Symbol] = q
	s.mu.Unlock()
}

// Delete removes symbol and reports whether it was present.
func (s *Store) Delete(symbol string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.quotes[symbol]; !ok {
		return false
	}
	delete(s.quotes, symbol)
	return true
}

// LoadSeed reads a JSON array of quotes from path.
func LoadSeed(path string) ([]quote.Quote, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}
	var qs []quote.Quote
	if err := json.Unmarshal(b, &qs); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	return qs, nil
}
