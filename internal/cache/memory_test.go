package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperfold/invoice-intel/constants"
	"github.com/paperfold/invoice-intel/internal/analysis"
)

func TestKey(t *testing.T) {
	a := Key("some text", "EU", "Acme")
	assert.Equal(t, a, Key("some text", "EU", "Acme"))
	assert.Len(t, a, 64)

	assert.NotEqual(t, a, Key("other text", "EU", "Acme"))
	assert.NotEqual(t, a, Key("some text", "UAE", "Acme"))
	assert.NotEqual(t, a, Key("some text", "EU", "Globex"))
	// the separators keep field boundaries unambiguous
	assert.NotEqual(t, Key("ab", "c", ""), Key("a", "bc", ""))
	assert.NotEqual(t, Key("a", "bc", ""), Key("a", "b", "c"))
}

func TestMemoryPutGet(t *testing.T) {
	m := NewMemory(4)

	_, ok := m.Get("missing")
	assert.False(t, ok)

	want := analysis.Result{DocClass: constants.DocClassInvoice}
	m.Put("k1", want)

	got, ok := m.Get("k1")
	require.True(t, ok)
	assert.Equal(t, want, got)
	assert.Equal(t, 1, m.Len())
}

func TestMemoryUpdateExistingKey(t *testing.T) {
	m := NewMemory(4)
	m.Put("k1", analysis.Result{DocClass: constants.DocClassInvoice})
	m.Put("k1", analysis.Result{DocClass: constants.DocClassReceipt})

	got, ok := m.Get("k1")
	require.True(t, ok)
	assert.Equal(t, constants.DocClassReceipt, got.DocClass)
	assert.Equal(t, 1, m.Len())
}

func TestMemoryEvictsOldestFirst(t *testing.T) {
	m := NewMemory(2)
	m.Put("k1", analysis.Result{})
	m.Put("k2", analysis.Result{})
	m.Put("k3", analysis.Result{})

	assert.Equal(t, 2, m.Len())
	_, ok := m.Get("k1")
	assert.False(t, ok)
	_, ok = m.Get("k2")
	assert.True(t, ok)
	_, ok = m.Get("k3")
	assert.True(t, ok)
}

func TestNewMemoryDefaultsNonPositiveMax(t *testing.T) {
	m := NewMemory(0)
	m.Put("k1", analysis.Result{})
	assert.Equal(t, 1, m.Len())
}
