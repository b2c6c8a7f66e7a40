package comment

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/webtor-io/movie-card/models"
)

func ids(cs []*models.Comment) []int64 {
	res := make([]int64, 0, len(cs))
	for _, c := range cs {
		res = append(res, c.ID)
	}
	return res
}

func TestStore_AppendAndRemove(t *testing.T) {
	s := NewStore()
	a := &models.Comment{ID: 1, Body: "A", Rating: 3}
	b := &models.Comment{ID: 2, Body: "B", Rating: 5}

	s.Append(a)
	s.Append(b)
	assert.Equal(t, []int64{1, 2}, ids(s.List()))

	assert.True(t, s.RemoveByID(1))
	list := s.List()
	require.Len(t, list, 1)
	assert.Same(t, b, list[0])
}

func TestStore_RemoveKeepsOrder(t *testing.T) {
	s := NewStore()
	for i := int64(1); i <= 5; i++ {
		s.Append(&models.Comment{ID: i})
	}
	s.RemoveByID(3)
	assert.Equal(t, []int64{1, 2, 4, 5}, ids(s.List()))
}

func TestStore_RemoveUnknownID(t *testing.T) {
	s := NewStore()
	s.Append(&models.Comment{ID: 1})
	s.Append(&models.Comment{ID: 2})

	assert.NotPanics(t, func() {
		assert.False(t, s.RemoveByID(42))
	})
	assert.Equal(t, []int64{1, 2}, ids(s.List()))

	empty := NewStore()
	assert.False(t, empty.RemoveByID(1))
	assert.Equal(t, 0, empty.Len())
}

func TestStore_RemoveFirstMatchOnly(t *testing.T) {
	s := NewStore()
	s.Append(&models.Comment{ID: 7, Body: "first"})
	s.Append(&models.Comment{ID: 7, Body: "second"})
	s.RemoveByID(7)
	list := s.List()
	require.Len(t, list, 1)
	assert.Equal(t, "second", list[0].Body)
}

func TestStore_NoDedup(t *testing.T) {
	s := NewStore()
	c := &models.Comment{ID: 1}
	s.Append(c)
	s.Append(c)
	assert.Equal(t, 2, s.Len())
}

func TestStore_Add(t *testing.T) {
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	s := NewStore().WithClock(func() time.Time { return now })

	c1 := s.Add(&Draft{Body: "Génial", Rating: 5})
	c2 := s.Add(&Draft{Body: "Bof", Rating: 2})

	assert.Equal(t, now.UnixMilli(), c1.ID)
	assert.Equal(t, now.UnixMilli()+1, c2.ID)
	assert.Equal(t, "01/06/2024", c1.CreatedAt)
	assert.Equal(t, 5, c1.Rating)
	assert.Equal(t, []int64{c1.ID, c2.ID}, ids(s.List()))
}

func TestStore_ListIsCopy(t *testing.T) {
	s := NewStore()
	s.Append(&models.Comment{ID: 1})
	list := s.List()
	list[0] = &models.Comment{ID: 99}
	assert.Equal(t, []int64{1}, ids(s.List()))
}

func TestStore_AddAfterAppend(t *testing.T) {
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	s := NewStore().WithClock(func() time.Time { return now })
	s.Append(&models.Comment{ID: now.UnixMilli() + 10})

	c := s.Add(&Draft{Body: "Après", Rating: 3})
	assert.Equal(t, now.UnixMilli()+11, c.ID)
}

func TestStore_AddConcurrent(t *testing.T) {
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	s := NewStore().WithClock(func() time.Time { return now })

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Add(&Draft{Body: "x", Rating: 1})
		}()
	}
	wg.Wait()

	list := ids(s.List())
	require.Len(t, list, n)
	for i := 1; i < n; i++ {
		assert.Greater(t, list[i], list[i-1])
	}
}
