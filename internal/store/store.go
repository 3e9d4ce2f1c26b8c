// Package store keeps each user's schedule and friends list.
package store

import (
	"context"
	"slices"
	"sync"

	"campus-planner/internal/schedule"
)

// UserData is everything saved for one user.
type UserData struct {
	Schedule schedule.Schedule `json:"schedule"`
	Friends  []string          `json:"friends"`
}

// HasFriend reports whether name is on the friends list.
func (d UserData) HasFriend(name string) bool {
	return slices.Contains(d.Friends, name)
}

// Store reads and writes user data. Get reports false for unknown users.
type Store interface {
	Get(ctx context.Context, user string) (UserData, bool, error)
	Set(ctx context.Context, user string, data UserData) error
}

// Memory is a Store held in process memory.
type Memory struct {
	mu    sync.RWMutex
	users map[string]UserData
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{users: make(map[string]UserData)}
}

// Get returns the data saved for user.
func (m *Memory) Get(ctx context.Context, user string) (UserData, bool, error) {
	if err := ctx.Err(); err != nil {
		return UserData{}, false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.users[user]
	return d, ok, nil
}

// Set replaces the data saved for user.
func (m *Memory) Set(ctx context.Context, user string, data UserData) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data.Schedule = slices.Clone(data.Schedule)
	data.Friends = slices.Clone(data.Friends)

	m.mu.Lock()
	m.users[user] = data
	m.mu.Unlock()
	return nil
}

// Clear removes every user.
func (m *Memory) Clear() {
	m.mu.Lock()
	clear(m.users)
	m.mu.Unlock()
}

var _ Store = (*Memory)(nil)
