package comment

import (
	"sync"
	"time"

	"github.com/webtor-io/movie-card/models"
)

type state struct {
	comments []*models.Comment
	lastID   int64
}

// Action is a store mutation. Actions are applied one at a time under
// the store lock.
type Action interface {
	apply(st *state)
}

type AppendAction struct {
	Comment *models.Comment
}

func (a AppendAction) apply(st *state) {
	st.comments = append(st.comments, a.Comment)
	if a.Comment.ID > st.lastID {
		st.lastID = a.Comment.ID
	}
}

// AddAction builds a comment from a draft, allocating the next id from
// At. The built comment is available in Comment once dispatched.
type AddAction struct {
	Draft   *Draft
	At      time.Time
	Comment *models.Comment
}

func (a *AddAction) apply(st *state) {
	id := a.At.UnixMilli()
	if id <= st.lastID {
		id = st.lastID + 1
	}
	a.Comment = &models.Comment{
		ID:        id,
		Body:      a.Draft.Body,
		Rating:    a.Draft.Rating,
		CreatedAt: models.FormatCommentDate(a.At),
	}
	AppendAction{Comment: a.Comment}.apply(st)
}

// RemoveAction drops the first comment with ID. Removed reports
// whether one was found.
type RemoveAction struct {
	ID      int64
	Removed bool
}

func (a *RemoveAction) apply(st *state) {
	for i, c := range st.comments {
		if c.ID == a.ID {
			res := make([]*models.Comment, 0, len(st.comments)-1)
			res = append(res, st.comments[:i]...)
			st.comments = append(res, st.comments[i+1:]...)
			a.Removed = true
			return
		}
	}
}

// Store keeps comments in insertion order. The only mutations are
// Append and RemoveByID.
type Store struct {
	mux sync.RWMutex
	st  state
	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		now: time.Now,
	}
}

func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

func (s *Store) Dispatch(a Action) {
	s.mux.Lock()
	defer s.mux.Unlock()
	a.apply(&s.st)
}

func (s *Store) Append(c *models.Comment) {
	s.Dispatch(AppendAction{Comment: c})
}

// RemoveByID never fails. It returns false when no comment matched.
func (s *Store) RemoveByID(id int64) bool {
	a := &RemoveAction{ID: id}
	s.Dispatch(a)
	return a.Removed
}

// Add turns a validated draft into a comment and appends it.
func (s *Store) Add(d *Draft) *models.Comment {
	a := &AddAction{Draft: d, At: s.now()}
	s.Dispatch(a)
	return a.Comment
}

func (s *Store) List() []*models.Comment {
	s.mux.RLock()
	defer s.mux.RUnlock()
	res := make([]*models.Comment, len(s.st.comments))
	copy(res, s.st.comments)
	return res
}

func (s *Store) Len() int {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return len(s.st.comments)
}
