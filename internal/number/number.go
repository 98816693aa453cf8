// Package number allocates display invoice numbers from a monthly
// counter, e.g. "2025-03-7" for the seventh invoice of March 2025. The
// counter itself is pluggable; the invoice number stays an opaque display
// string everywhere else in the module.
package number

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Counter hands out the next sequence number for a period key and
// remembers it.
type Counter interface {
	Next(key string) (int, error)
	Reset(key string) error
}

// Generator produces invoice numbers from a counter.
type Generator struct {
	counter Counter
}

// NewGenerator returns a generator backed by the given counter.
func NewGenerator(c Counter) *Generator {
	return &Generator{counter: c}
}

// Next allocates the next invoice number for the month of now, applying
// the display format. Supported format tokens: YYYY, MM, <number>.
func (g *Generator) Next(format string, now time.Time) (string, error) {
	key := now.Format("2006-01")
	n, err := g.counter.Next(key)
	if err != nil {
		return "", fmt.Errorf("allocate invoice number: %w", err)
	}
	return Format(format, now, n), nil
}

// Reset clears the sequence for the month of now; the next allocation
// starts back at 1.
func (g *Generator) Reset(now time.Time) error {
	return g.counter.Reset(now.Format("2006-01"))
}

// Format renders an invoice number for the given time and sequence value.
func Format(format string, now time.Time, n int) string {
	r := strings.NewReplacer(
		"YYYY", now.Format("2006"),
		"MM", now.Format("01"),
		"<number>", strconv.Itoa(n),
	)
	return r.Replace(format)
}

// MemCounter is an in-memory counter, used in tests and as a fallback
// when no counter file is configured.
type MemCounter struct {
	mu     sync.Mutex
	counts map[string]int
}

// NewMemCounter returns an empty in-memory counter.
func NewMemCounter() *MemCounter {
	return &MemCounter{counts: make(map[string]int)}
}

// Next increments and returns the count for key.
func (c *MemCounter) Next(key string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[key]++
	return c.counts[key], nil
}

// Reset clears the count for key.
func (c *MemCounter) Reset(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.counts, key)
	return nil
}

// FileCounter persists counts as a small JSON map, so invoice numbers
// survive across CLI invocations.
type FileCounter struct {
	mu   sync.Mutex
	path string
}

// NewFileCounter returns a counter stored at path. The file and its
// directory are created on first use.
func NewFileCounter(path string) *FileCounter {
	return &FileCounter{path: path}
}

// Next increments and returns the count for key, persisting the change.
func (c *FileCounter) Next(key string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	counts, err := c.load()
	if err != nil {
		return 0, err
	}
	counts[key]++
	if err := c.save(counts); err != nil {
		return 0, err
	}
	return counts[key], nil
}

// Reset clears the count for key.
func (c *FileCounter) Reset(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	counts, err := c.load()
	if err != nil {
		return err
	}
	delete(counts, key)
	return c.save(counts)
}

func (c *FileCounter) load() (map[string]int, error) {
	data, err := os.ReadFile(c.path)
	if os.IsNotExist(err) {
		return map[string]int{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read counter file: %w", err)
	}
	counts := map[string]int{}
	if err := json.Unmarshal(data, &counts); err != nil {
		return nil, fmt.Errorf("parse counter file %s: %w", c.path, err)
	}
	return counts, nil
}

func (c *FileCounter) save(counts map[string]int) error {
	data, err := json.Marshal(counts)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("create counter directory: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("write counter file: %w", err)
	}
	return nil
}
