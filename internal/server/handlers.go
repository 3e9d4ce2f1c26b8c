package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"campus-planner/internal/campus"
	"campus-planner/internal/geometry"
	"campus-planner/internal/pathfinder"
	"campus-planner/internal/schedule"
	"campus-planner/internal/store"
	"campus-planner/internal/walk"
)

// maxBodyBytes caps the size of a setData request.
const maxBodyBytes = 1 << 20

// GET /api/buildings - All buildings, or those inside x1,x2,y1,y2
func (s *Server) buildingsHandler(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	buildings := s.catalog.All()
	q := r.URL.Query()
	if q.Has("x1") || q.Has("x2") || q.Has("y1") || q.Has("y2") {
		region, err := parseRegion(q)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if buildings, err = s.index.Within(region); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	if q.Get("format") == "geojson" {
		writeJSON(w, campus.BuildingsGeoJSON(buildings))
		return
	}
	writeJSON(w, map[string]any{"buildings": buildings})
}

// GET /api/buildings/nearest - The building closest to x,y
func (s *Server) nearestHandler(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	q := r.URL.Query()
	x, err := floatParam(q, "x")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	y, err := floatParam(q, "y")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	b, dist, ok := s.index.Nearest(geometry.Point{X: x, Y: y})
	if !ok {
		http.Error(w, "no buildings are known", http.StatusNotFound)
		return
	}
	writeJSON(w, map[string]any{"building": b, "dist": dist})
}

// GET /api/getData - Schedule and friends of a user
func (s *Server) getDataHandler(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	user := r.URL.Query().Get("user")
	if user == "" {
		http.Error(w, `required argument "user" was missing`, http.StatusBadRequest)
		return
	}

	data, _, err := s.users.Get(r.Context(), user)
	if err != nil {
		log.Printf("❌ Failed to read data of %q: %v\n", user, err)
		http.Error(w, "failed to read user data", http.StatusInternalServerError)
		return
	}
	if data.Schedule == nil {
		data.Schedule = schedule.Schedule{}
	}
	if data.Friends == nil {
		data.Friends = []string{}
	}
	writeJSON(w, data)
}

// POST /api/setData - Save schedule and friends of a user
func (s *Server) setDataHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("========================================")
	log.Println("📝 Save data request received")
	defer log.Println("========================================")

	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req struct {
		User     json.RawMessage `json:"user"`
		Schedule json.RawMessage `json:"schedule"`
		Friends  json.RawMessage `json:"friends"`
	}
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		log.Printf("❌ Invalid request body: %v\n", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	var user string
	if err := json.Unmarshal(req.User, &user); err != nil || user == "" {
		http.Error(w, `missing or invalid "user" in POST body`, http.StatusBadRequest)
		return
	}
	var sched schedule.Schedule
	if err := json.Unmarshal(req.Schedule, &sched); err != nil || sched == nil {
		http.Error(w, "missing or invalid schedule information", http.StatusBadRequest)
		return
	}
	var friends []string
	if err := json.Unmarshal(req.Friends, &friends); err != nil || friends == nil {
		http.Error(w, "missing or invalid friends", http.StatusBadRequest)
		return
	}

	if err := s.users.Set(r.Context(), user, store.UserData{Schedule: sched, Friends: friends}); err != nil {
		log.Printf("❌ Failed to save data of %q: %v\n", user, err)
		http.Error(w, "failed to save user data", http.StatusInternalServerError)
		return
	}
	log.Printf("✅ Saved %d events and %d friends for %q\n", len(sched), len(friends), user)
	writeJSON(w, map[string]bool{"saved": true})
}

// foundWalkResponse is sent when the walk has a route. Path holds the steps
// in walking order.
type foundWalkResponse struct {
	Found  bool              `json:"found"`
	Path   []pathfinder.Edge `json:"path"`
	Dist   float64           `json:"dist"`
	Nearby []walk.Nearby     `json:"nearby"`
}

// GET /api/shortestPath - Walk of a user at an hour, with nearby friends
func (s *Server) shortestPathHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("========================================")
	log.Println("📍 Shortest path request received")
	defer log.Println("========================================")

	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	q := r.URL.Query()
	user := q.Get("user")
	if user == "" {
		http.Error(w, `required argument "user" was missing`, http.StatusBadRequest)
		return
	}
	if q.Get("hour") == "" {
		http.Error(w, `required argument "hour" was missing`, http.StatusBadRequest)
		return
	}
	hour, err := schedule.ParseHour(q.Get("hour"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	log.Printf("   User: %s  Hour: %s\n", user, hour)

	res, err := s.planner.ShortestWalk(r.Context(), user, hour)
	switch {
	case errors.Is(err, walk.ErrNoSchedule),
		errors.Is(err, walk.ErrNoEventAtHour),
		errors.Is(err, walk.ErrNotWalking),
		errors.Is(err, campus.ErrUnknownBuilding):
		log.Printf("❌ %v\n", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		log.Printf("❌ Walk search failed: %v\n", err)
		http.Error(w, "walk search failed", http.StatusInternalServerError)
		return
	}

	if !res.Found {
		log.Println("❌ No path found")
	} else {
		log.Printf("✅ Path found with %d steps\n", len(res.Path.Steps))
		log.Printf("   Distance: %.2f\n", res.Path.Weight)
		log.Printf("   Friends nearby: %d\n", len(res.Nearby))
	}

	if q.Get("format") == "geojson" {
		writeJSON(w, res.GeoJSON())
		return
	}
	if !res.Found {
		writeJSON(w, map[string]bool{"found": false})
		return
	}
	resp := foundWalkResponse{
		Found:  true,
		Path:   res.Path.Steps,
		Dist:   res.Path.Weight,
		Nearby: res.Nearby,
	}
	if resp.Path == nil {
		resp.Path = []pathfinder.Edge{}
	}
	if resp.Nearby == nil {
		resp.Nearby = []walk.Nearby{}
	}
	writeJSON(w, resp)
}

// GET /api/edges - Campus walkways as line segments for visualization
func (s *Server) edgesHandler(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	log.Printf("📊 Returning %d line segments\n", len(s.lines))
	writeJSON(w, map[string]any{
		"lines":    s.lines,
		"numNodes": s.graph.NumNodes(),
		"numEdges": s.graph.NumEdges(),
	})
}

func floatParam(q url.Values, name string) (float64, error) {
	raw := q.Get(name)
	if raw == "" {
		return 0, fmt.Errorf("required argument %q was missing", name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid number %q for %q", raw, name)
	}
	return v, nil
}

func parseRegion(q url.Values) (geometry.Region, error) {
	var region geometry.Region
	for _, f := range []struct {
		name string
		dst  *float64
	}{
		{"x1", &region.X1}, {"x2", &region.X2}, {"y1", &region.Y1}, {"y2", &region.Y2},
	} {
		v, err := floatParam(q, f.name)
		if err != nil {
			return geometry.Region{}, err
		}
		*f.dst = v
	}
	if region.X1 > region.X2 || region.Y1 > region.Y2 {
		return geometry.Region{}, fmt.Errorf("region %+v has min above max", region)
	}
	return region, nil
}
