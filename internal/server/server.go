// Package server exposes the campus planner over HTTP.
package server

import (
	"encoding/json"
	"log"
	"net/http"

	"campus-planner/internal/campus"
	"campus-planner/internal/geometry"
	"campus-planner/internal/pathfinder"
	"campus-planner/internal/store"
	"campus-planner/internal/walk"
)

// Server holds everything the handlers read. The graph, catalog and index are
// built once at startup and never change.
type Server struct {
	planner    *walk.Planner
	catalog    *campus.Catalog
	index      *campus.Index
	graph      *pathfinder.Graph
	lines      [][2]geometry.Point
	users      store.Store
	corsOrigin string
}

// New creates a server over a loaded campus.
func New(graph *pathfinder.Graph, catalog *campus.Catalog, users store.Store, corsOrigin string) *Server {
	return &Server{
		planner:    walk.NewPlanner(graph, catalog, users),
		catalog:    catalog,
		index:      campus.NewIndex(catalog.All()),
		graph:      graph,
		lines:      campus.EdgeLines(graph.All()),
		users:      users,
		corsOrigin: corsOrigin,
	}
}

// Handler returns the routes of the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/buildings", s.cors(s.buildingsHandler))
	mux.HandleFunc("/api/buildings/nearest", s.cors(s.nearestHandler))
	mux.HandleFunc("/api/getData", s.cors(s.getDataHandler))
	mux.HandleFunc("/api/setData", s.cors(s.setDataHandler))
	mux.HandleFunc("/api/shortestPath", s.cors(s.shortestPathHandler))
	mux.HandleFunc("/api/edges", s.cors(s.edgesHandler))
	mux.HandleFunc("/health", s.cors(s.healthHandler))
	return mux
}

// LogRoutes prints the route table at startup.
func LogRoutes(addr string) {
	log.Printf("Server starting on %s\n", addr)
	log.Println("")
	log.Println("Endpoints:")
	log.Println("  GET  /api/buildings            - List buildings (optional x1,x2,y1,y2 region, format=geojson)")
	log.Println("  GET  /api/buildings/nearest    - Building nearest to x,y")
	log.Println("  GET  /api/getData              - Schedule and friends of a user")
	log.Println("  POST /api/setData              - Save schedule and friends of a user")
	log.Println("  GET  /api/shortestPath         - Walk of a user at an hour, with nearby friends")
	log.Println("  GET  /api/edges                - Campus walkways for rendering")
	log.Println("  GET  /health                   - Check server status")
	log.Println("")
}

// cors adds CORS headers to allow frontend requests.
func (s *Server) cors(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.corsOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		// Handle preflight
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("❌ Failed to write response: %v\n", err)
	}
}

func allowMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		log.Printf("❌ Method not allowed: %s %s\n", r.Method, r.URL.Path)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

// GET /health - Health check endpoint
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"status":       "ready",
		"numNodes":     s.graph.NumNodes(),
		"numEdges":     s.graph.NumEdges(),
		"numBuildings": s.index.Size(),
	})
}
