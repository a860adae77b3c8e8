package activity

// UserActivityStore holds the activities of a single aggregation run.
type UserActivityStore struct {
	activities map[string]*UserActivity
	order      []string
}

// NewUserActivityStore creates an empty store.
func NewUserActivityStore() *UserActivityStore {
	return &UserActivityStore{activities: make(map[string]*UserActivity)}
}

// GetActivity returns the stored activity for identity, or a fresh one that
// is not stored until passed to AddActivity.
func (s *UserActivityStore) GetActivity(identity string) *UserActivity {
	if a, ok := s.activities[identity]; ok {
		return a
	}
	return NewUserActivity(identity)
}

// AddActivity commits a. Committing an identity twice keeps its original position.
func (s *UserActivityStore) AddActivity(a *UserActivity) {
	if _, ok := s.activities[a.Email]; !ok {
		s.order = append(s.order, a.Email)
	}
	s.activities[a.Email] = a
}

// Activities returns the committed activities in first-committed order.
func (s *UserActivityStore) Activities() []*UserActivity {
	out := make([]*UserActivity, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.activities[id])
	}
	return out
}

// Len returns the number of committed identities.
func (s *UserActivityStore) Len() int {
	return len(s.order)
}
