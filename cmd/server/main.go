package main

import (
	"log"

	httpapi "filler-robot/internal/api/http"
	"filler-robot/internal/api/ws"
	"filler-robot/internal/config"
	"filler-robot/internal/session"
	"filler-robot/internal/store"
)

func main() {
	cfg := config.Get()
	mem := store.NewMemoryStore(cfg.MaxSessions)
	mgr := session.NewManager(mem, *cfg, nil)
	hub := ws.NewHub(mgr)
	mgr.SetHub(hub)
	r := httpapi.SetupRouter(mgr, hub)

	log.Printf("listening on %s (strategy=%s, row policy=%s)", cfg.HTTPAddr, cfg.Engine.Strategy, cfg.Engine.RowPolicy)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
