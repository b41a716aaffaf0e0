// Package keypool rotates API credentials across requests so a single
// rate-limited key does not starve the whole service.
package keypool

import (
	"fmt"
	"strings"
	"sync"
)

type Pool struct {
	mu   sync.Mutex
	keys []string
	next int
}

func New(keys []string) (*Pool, error) {
	cleaned := make([]string, 0, len(keys))
	for _, key := range keys {
		if trimmed := strings.TrimSpace(key); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	if len(cleaned) == 0 {
		return nil, fmt.Errorf("keypool: no credentials configured")
	}
	return &Pool{keys: cleaned}, nil
}

// Next returns the next credential in round-robin order.
func (p *Pool) Next() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	key := p.keys[p.next]
	p.next = (p.next + 1) % len(p.keys)
	return key
}

func (p *Pool) Size() int {
	return len(p.keys)
}
