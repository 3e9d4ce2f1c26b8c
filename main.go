package main

import (
	"log"
	"net/http"

	"campus-planner/internal/campus"
	"campus-planner/internal/config"
	"campus-planner/internal/pathfinder"
	"campus-planner/internal/server"
	"campus-planner/internal/store"
	"campus-planner/internal/store/sqlite"
)

func main() {
	log.Println("========================================")
	log.Println("🚀 Campus Walking Route Server")
	log.Println("========================================")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	edges, err := campus.LoadEdges(cfg.EdgesFile)
	if err != nil {
		log.Fatalf("❌ Failed to load walkways: %v", err)
	}
	graph, err := pathfinder.NewGraph(edges)
	if err != nil {
		log.Fatalf("❌ Failed to build walkway graph: %v", err)
	}
	log.Printf("✅ Walkway graph ready\n")
	log.Printf("   Nodes: %d\n", graph.NumNodes())
	log.Printf("   Edges: %d\n", graph.NumEdges())

	buildings := campus.Buildings
	if cfg.BuildingsFile != "" {
		if buildings, err = campus.LoadBuildingsGeoJSON(cfg.BuildingsFile); err != nil {
			log.Fatalf("❌ Failed to load buildings: %v", err)
		}
	} else {
		log.Println("ℹ️  Using built-in building list")
	}
	catalog, err := campus.NewCatalog(buildings)
	if err != nil {
		log.Fatalf("❌ Invalid building list: %v", err)
	}
	log.Printf("   Buildings: %d\n", len(catalog.All()))

	var users store.Store
	switch cfg.Store {
	case config.StoreSQLite:
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			log.Fatalf("❌ Failed to open user store: %v", err)
		}
		defer db.Close()
		users = db
		log.Printf("   User store: sqlite (%s)\n", cfg.SQLitePath)
	default:
		users = store.NewMemory()
		log.Println("   User store: memory (data is lost on restart)")
	}
	log.Println("")

	srv := server.New(graph, catalog, users, cfg.CORSOrigin)
	server.LogRoutes(cfg.Addr)
	log.Printf("CORS enabled for origin %q\n", cfg.CORSOrigin)
	log.Println("========================================")
	log.Println("")

	if err := http.ListenAndServe(cfg.Addr, srv.Handler()); err != nil {
		log.Fatal(err)
	}
}
