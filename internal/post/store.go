// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package post

import "sync"

// Store holds the single Post instance. Writes are never validated.
type Store struct {
	mu          sync.RWMutex
	post        Post
	subscribers []func(Post)
}

// NewStore creates a store seeded with p.
func NewStore(p Post) *Store {
	return &Store{post: p}
}

// Get returns a copy of the current post.
func (s *Store) Get() Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.post
}

// Set replaces the whole post.
func (s *Store) Set(p Post) {
	s.Update(func(Post) Post { return p })
}

// Update applies fn to the latest post under the lock and stores the result.
// Subscribers are notified after the lock is released.
func (s *Store) Update(fn func(Post) Post) Post {
	s.mu.Lock()
	s.post = fn(s.post)
	next := s.post
	subs := make([]func(Post), len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	for _, sub := range subs {
		sub(next)
	}
	return next
}

// Subscribe registers fn to be called with every updated post.
func (s *Store) Subscribe(fn func(Post)) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.subscribers = append(s.subscribers, fn)
	s.mu.Unlock()
}

// =============================================================================
// INTERACTIONS
// =============================================================================

// Interactions is the viewer's like/retweet state for the preview.
type Interactions struct {
	Liked     bool
	Retweeted bool
}

// Session couples a Store with the viewer's Interactions. The toggles adjust
// the matching metric by one through the store.
type Session struct {
	store *Store

	mu           sync.Mutex
	interactions Interactions
}

// NewSession creates a session over store with nothing liked or retweeted.
func NewSession(store *Store) *Session {
	return &Session{store: store}
}

// Store returns the underlying post store.
func (s *Session) Store() *Store {
	return s.store
}

// Interactions returns the current interaction flags.
func (s *Session) Interactions() Interactions {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interactions
}

// ToggleLike flips Liked and moves Likes by +1 or -1.
func (s *Session) ToggleLike() Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	delta := int64(1)
	if s.interactions.Liked {
		delta = -1
	}
	s.interactions.Liked = !s.interactions.Liked
	return s.store.Update(func(p Post) Post {
		p.Likes = p.Likes.Add(delta)
		return p
	})
}

// ToggleRetweet flips Retweeted and moves Retweets by +1 or -1.
func (s *Session) ToggleRetweet() Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	delta := int64(1)
	if s.interactions.Retweeted {
		delta = -1
	}
	s.interactions.Retweeted = !s.interactions.Retweeted
	return s.store.Update(func(p Post) Post {
		p.Retweets = p.Retweets.Add(delta)
		return p
	})
}
