package number_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faktura/invoice-creator/internal/number"
)

var march = time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

func TestFormat(t *testing.T) {
	assert.Equal(t, "2025-03-7", number.Format("YYYY-MM-<number>", march, 7))
	assert.Equal(t, "RE-2025/03/12", number.Format("RE-YYYY/MM/<number>", march, 12))
	assert.Equal(t, "42", number.Format("<number>", march, 42))
}

func TestGenerator_Next(t *testing.T) {
	gen := number.NewGenerator(number.NewMemCounter())

	first, err := gen.Next("YYYY-MM-<number>", march)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-1", first)

	second, err := gen.Next("YYYY-MM-<number>", march)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-2", second)

	// A new month starts a fresh sequence.
	april := march.AddDate(0, 1, 0)
	third, err := gen.Next("YYYY-MM-<number>", april)
	require.NoError(t, err)
	assert.Equal(t, "2025-04-1", third)
}

func TestGenerator_Reset(t *testing.T) {
	gen := number.NewGenerator(number.NewMemCounter())

	_, err := gen.Next("YYYY-MM-<number>", march)
	require.NoError(t, err)
	require.NoError(t, gen.Reset(march))

	n, err := gen.Next("YYYY-MM-<number>", march)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-1", n)
}

func TestMemCounter_Reset(t *testing.T) {
	c := number.NewMemCounter()
	_, err := c.Next("2025-03")
	require.NoError(t, err)
	require.NoError(t, c.Reset("2025-03"))

	n, err := c.Next("2025-03")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestFileCounter_Persists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counters", "invoice-counts.json")

	c := number.NewFileCounter(path)
	n, err := c.Next("2025-03")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// A second counter on the same file continues the sequence.
	c2 := number.NewFileCounter(path)
	n, err = c2.Next("2025-03")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestFileCounter_Reset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoice-counts.json")

	c := number.NewFileCounter(path)
	_, err := c.Next("2025-03")
	require.NoError(t, err)
	require.NoError(t, c.Reset("2025-03"))

	n, err := c.Next("2025-03")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
