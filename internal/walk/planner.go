// Package walk plans a user's walk between classes and finds the friends who
// pass near it.
package walk

import (
	"context"
	"errors"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"campus-planner/internal/campus"
	"campus-planner/internal/geometry"
	"campus-planner/internal/locationtree"
	"campus-planner/internal/pathfinder"
	"campus-planner/internal/schedule"
	"campus-planner/internal/store"
)

var (
	// ErrNoSchedule means the user has not saved a schedule.
	ErrNoSchedule = errors.New("user has no saved schedule")
	// ErrNoEventAtHour means nothing on the user's schedule starts at the hour.
	ErrNoEventAtHour = errors.New("user has no event starting at this hour")
	// ErrNotWalking means the hour is the user's first event of the day.
	ErrNotWalking = errors.New("user is not walking between classes at this hour")
)

// maxFriendSearches bounds how many friend paths are searched at once.
const maxFriendSearches = 8

// Nearby records that a friend, on their own walk, comes within Dist of Loc
// on the user's path.
type Nearby struct {
	Friend string         `json:"friend"`
	Dist   float64        `json:"dist"`
	Loc    geometry.Point `json:"loc"`
}

// Walk is the result of planning a user's walk.
type Walk struct {
	Found  bool
	Path   pathfinder.Path
	Nearby []Nearby
}

// Planner answers walk queries against a fixed campus graph.
type Planner struct {
	graph   *pathfinder.Graph
	catalog *campus.Catalog
	users   store.Store
}

// NewPlanner creates a planner. The graph and catalog are shared read-only by
// every query.
func NewPlanner(graph *pathfinder.Graph, catalog *campus.Catalog, users store.Store) *Planner {
	return &Planner{graph: graph, catalog: catalog, users: users}
}

// ShortestWalk finds the user's walk at hour and, for every mutual friend also
// walking then, the point on the user's path closest to the friend's path.
// A walk with no route has Found set to false and is not an error.
func (p *Planner) ShortestWalk(ctx context.Context, user string, hour schedule.Hour) (Walk, error) {
	data, ok, err := p.users.Get(ctx, user)
	if err != nil {
		return Walk{}, err
	}
	if !ok {
		return Walk{}, ErrNoSchedule
	}

	switch i := schedule.IndexAtHour(data.Schedule, hour); {
	case i < 0:
		return Walk{}, ErrNoEventAtHour
	case i == 0:
		return Walk{}, ErrNotWalking
	}

	path, found, err := p.walkAt(data.Schedule, hour)
	if err != nil {
		return Walk{}, err
	}
	if !found {
		return Walk{Found: false}, nil
	}

	locs, err := path.Locations()
	if err != nil {
		return Walk{}, err
	}
	nearby, err := p.nearbyFriends(ctx, user, data.Friends, hour, locationtree.Build(locs))
	if err != nil {
		return Walk{}, err
	}
	return Walk{Found: true, Path: path, Nearby: nearby}, nil
}

// walkAt resolves the walk in s at hour to buildings and searches for a path.
// found is false when s has no walk at hour or no route exists.
func (p *Planner) walkAt(s schedule.Schedule, hour schedule.Hour) (path pathfinder.Path, found bool, err error) {
	from, to, ok := s.Walk(hour)
	if !ok {
		return pathfinder.Path{}, false, nil
	}
	start, err := p.catalog.ByShortName(from)
	if err != nil {
		return pathfinder.Path{}, false, err
	}
	end, err := p.catalog.ByShortName(to)
	if err != nil {
		return pathfinder.Path{}, false, err
	}
	path, found = p.graph.FindPath(start.Location, end.Location)
	return path, found, nil
}

// nearbyFriends searches each friend's walk concurrently. Results keep the
// order of the friends list.
func (p *Planner) nearbyFriends(ctx context.Context, user string, friends []string, hour schedule.Hour, userTree locationtree.Tree) ([]Nearby, error) {
	results := make([]*Nearby, len(friends))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxFriendSearches)
	for i, friend := range friends {
		i, friend := i, friend
		g.Go(func() error {
			n, err := p.nearbyFriend(ctx, user, friend, hour, userTree)
			if err != nil {
				return fmt.Errorf("friend %q: %w", friend, err)
			}
			results[i] = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	nearby := make([]Nearby, 0, len(friends))
	for _, n := range results {
		if n != nil {
			nearby = append(nearby, *n)
		}
	}
	return nearby, nil
}

// nearbyFriend returns nil when the friend does not count: they have not
// listed the user back, are not walking at hour, or have no route. A friend
// whose schedule names an unknown building is skipped as well.
func (p *Planner) nearbyFriend(ctx context.Context, user, friend string, hour schedule.Hour, userTree locationtree.Tree) (*Nearby, error) {
	data, ok, err := p.users.Get(ctx, friend)
	if err != nil || !ok || !data.HasFriend(user) {
		return nil, err
	}

	path, found, err := p.walkAt(data.Schedule, hour)
	if errors.Is(err, campus.ErrUnknownBuilding) {
		log.Printf("⚠️  Skipping friend %q of %q: %v\n", friend, user, err)
		return nil, nil
	}
	if err != nil || !found {
		return nil, err
	}
	locs, err := path.Locations()
	if err != nil {
		return nil, err
	}

	loc, dist, err := locationtree.ClosestTo(userTree, locs)
	if err != nil {
		return nil, err
	}
	return &Nearby{Friend: friend, Dist: dist, Loc: loc}, nil
}
