package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/arthur-debert/turboterm/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testItem struct {
	ID   int
	Name string
}

func TestNew(t *testing.T) {
	reg := New[testItem]()
	require.NotNil(t, reg)
	assert.Equal(t, 0, reg.Count())
	assert.Empty(t, reg.List())
}

func TestRegister(t *testing.T) {
	reg := New[testItem]()

	t.Run("register valid item", func(t *testing.T) {
		require.NoError(t, reg.Register("item1", testItem{ID: 1, Name: "test"}))
		assert.Equal(t, 1, reg.Count())
		assert.True(t, reg.Has("item1"))
	})

	t.Run("register with empty name", func(t *testing.T) {
		err := reg.Register("", testItem{ID: 2})
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("register duplicate", func(t *testing.T) {
		err := reg.Register("item1", testItem{ID: 3})
		assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
		assert.Equal(t, "item1", errors.GetErrorDetails(err)["name"])
	})
}

func TestGetAndRemove(t *testing.T) {
	reg := New[testItem]()
	require.NoError(t, reg.Register("a", testItem{ID: 1}))

	item, err := reg.Get("a")
	require.NoError(t, err)
	assert.Equal(t, 1, item.ID)

	_, err = reg.Get("missing")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))

	require.NoError(t, reg.Remove("a"))
	assert.False(t, reg.Has("a"))
	assert.True(t, errors.IsErrorCode(reg.Remove("a"), errors.ErrNotFound))
}

func TestListAndOrdered(t *testing.T) {
	reg := New[int]()
	for i, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, reg.Register(name, i))
	}

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, reg.List())
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, reg.Ordered())

	require.NoError(t, reg.Remove("alpha"))
	assert.Equal(t, []string{"zeta", "mid"}, reg.Ordered())
}

func TestMustRegister(t *testing.T) {
	reg := New[int]()
	MustRegister(reg, "one", 1)
	assert.Panics(t, func() { MustRegister(reg, "one", 2) })
}

func TestConcurrentAccess(t *testing.T) {
	reg := New[int]()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = reg.Register(fmt.Sprintf("item%d", i), i)
			_ = reg.Has("item0")
			_ = reg.List()
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 50, reg.Count())
}
