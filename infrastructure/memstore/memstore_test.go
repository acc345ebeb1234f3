package memstore_test

import (
	"context"
	"math"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jrazmi/crudkit/infrastructure/memstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type note struct {
	ID        int
	Text      string
	Pinned    bool
	UpdatedAt *time.Time
}

type newNote struct {
	ID   *int
	Text string
}

type patchNote struct {
	Text   *string
	Pinned *bool
}

type noteFilter struct {
	Pinned *bool
	Search string
}

func all(n int) (int, int) { return 0, n }

func newStore(t *testing.T) *memstore.Store[note, newNote, patchNote, noteFilter] {
	t.Helper()
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	return memstore.New(memstore.Adapter[note, newNote, patchNote, noteFilter]{
		ID: func(n note) int { return n.ID },
		New: func(id int, p newNote, now time.Time) note {
			return note{ID: id, Text: p.Text}
		},
		Apply: func(n note, p patchNote, now time.Time) (note, bool) {
			changed := false
			if p.Text != nil {
				n.Text = *p.Text
				changed = true
			}
			if p.Pinned != nil {
				n.Pinned = *p.Pinned
				changed = true
			}
			if changed {
				n.UpdatedAt = &now
			}
			return n, changed
		},
		Match: func(n note, f noteFilter) bool {
			if f.Pinned != nil && n.Pinned != *f.Pinned {
				return false
			}
			return f.Search == "" || strings.Contains(strings.ToLower(n.Text), strings.ToLower(f.Search))
		},
		ExplicitID: func(p newNote) (int, bool) {
			if p.ID == nil {
				return 0, false
			}
			return *p.ID, true
		},
	}, memstore.WithClock(func() time.Time { return fixed }))
}

func TestIDsAreNeverReused(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	a, err := s.Create(ctx, newNote{Text: "a"})
	require.NoError(t, err)
	b, err := s.Create(ctx, newNote{Text: "b"})
	require.NoError(t, err)
	assert.Equal(t, 1, a.ID)
	assert.Equal(t, 2, b.ID)

	require.NoError(t, s.Delete(ctx, b.ID))

	c, err := s.Create(ctx, newNote{Text: "c"})
	require.NoError(t, err)
	assert.Equal(t, 3, c.ID)
}

func TestExplicitID(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	ten := 10
	_, err := s.Create(ctx, newNote{ID: &ten, Text: "ten"})
	require.NoError(t, err)

	_, err = s.Create(ctx, newNote{ID: &ten, Text: "again"})
	require.ErrorIs(t, err, memstore.ErrDuplicateID)

	next, err := s.Create(ctx, newNote{Text: "next"})
	require.NoError(t, err)
	assert.Equal(t, 11, next.ID)

	three := 3
	_, err = s.Create(ctx, newNote{ID: &three, Text: "three"})
	require.NoError(t, err)

	list, err := s.List(ctx, noteFilter{}, all)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []int{3, 10, 11}, []int{list[0].ID, list[1].ID, list[2].ID})
}

func TestIDSpaceExhausted(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	top := math.MaxInt
	last, err := s.Create(ctx, newNote{ID: &top, Text: "top"})
	require.NoError(t, err)

	_, err = s.Create(ctx, newNote{Text: "overflow"})
	require.ErrorIs(t, err, memstore.ErrIDExhausted)

	got, err := s.Get(ctx, last.ID)
	require.NoError(t, err)
	assert.Equal(t, "top", got.Text)

	n, err := s.Count(ctx, noteFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	created, err := s.Create(ctx, newNote{Text: "draft"})
	require.NoError(t, err)

	t.Run("empty patch leaves record unchanged", func(t *testing.T) {
		got, err := s.Update(ctx, created.ID, patchNote{})
		require.NoError(t, err)
		assert.Equal(t, created, got)
		assert.Nil(t, got.UpdatedAt)
	})

	t.Run("single field", func(t *testing.T) {
		pinned := true
		got, err := s.Update(ctx, created.ID, patchNote{Pinned: &pinned})
		require.NoError(t, err)
		assert.Equal(t, "draft", got.Text)
		assert.True(t, got.Pinned)
		assert.NotNil(t, got.UpdatedAt)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := s.Update(ctx, 99, patchNote{})
		assert.ErrorIs(t, err, memstore.ErrNotFound)
	})
}

func TestDeleteThenGet(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	created, err := s.Create(ctx, newNote{Text: "x"})
	require.NoError(t, err)
	require.NoError(t, s.Delete(ctx, created.ID))

	_, err = s.Get(ctx, created.ID)
	assert.ErrorIs(t, err, memstore.ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, created.ID), memstore.ErrNotFound)
}

func TestListFilterAndWindow(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	pinned := true
	for _, text := range []string{"Buy milk", "Walk dog", "buy bread", "Call mom"} {
		rec, err := s.Create(ctx, newNote{Text: text})
		require.NoError(t, err)
		if strings.HasPrefix(strings.ToLower(text), "buy") {
			_, err = s.Update(ctx, rec.ID, patchNote{Pinned: &pinned})
			require.NoError(t, err)
		}
	}

	got, err := s.List(ctx, noteFilter{Search: "BUY"}, all)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = s.List(ctx, noteFilter{Pinned: &pinned}, all)
	require.NoError(t, err)
	for _, n := range got {
		assert.True(t, n.Pinned)
	}

	n, err := s.Count(ctx, noteFilter{})
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	got, err = s.List(ctx, noteFilter{}, func(n int) (int, int) { return 1, 3 })
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Walk dog", got[0].Text)
}

func TestConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Create(ctx, newNote{Text: "n"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	list, err := s.List(ctx, noteFilter{}, all)
	require.NoError(t, err)
	require.Len(t, list, 50)

	seen := map[int]bool{}
	for _, n := range list {
		assert.False(t, seen[n.ID])
		seen[n.ID] = true
	}
}
