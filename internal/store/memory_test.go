package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counter struct {
	id string
	n  int
}

func (c *counter) SessionID() string { return c.id }

func TestMemoryStore_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore[*counter]()

	require.NoError(t, st.Save(ctx, &counter{id: "a"}))
	got, err := st.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "a", got.id)
	assert.Equal(t, 1, st.Len())

	_, err = st.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, st.Delete(ctx, "a"))
	require.NoError(t, st.Delete(ctx, "a"))
	assert.Equal(t, 0, st.Len())
}

func TestMemoryStore_Update(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore[*counter]()
	require.NoError(t, st.Save(ctx, &counter{id: "a"}))

	boom := errors.New("boom")
	err := st.Update(ctx, "a", func(c *counter) error { return boom })
	assert.ErrorIs(t, err, boom)

	err = st.Update(ctx, "missing", func(c *counter) error { return nil })
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_UpdateSerialises(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore[*counter]()
	require.NoError(t, st.Save(ctx, &counter{id: "a"}))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = st.Update(ctx, "a", func(c *counter) error {
				c.n++
				return nil
			})
		}()
	}
	wg.Wait()

	got, err := st.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 50, got.n)
}
