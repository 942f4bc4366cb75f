package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/microshop/services/internal/catalog"
	"github.com/microshop/services/internal/pkg/config"
	"github.com/microshop/services/internal/pkg/telemetry"
)

func main() {
	telemetry.InitLogger()

	cfg := config.LoadProduct()

	store := catalog.NewStore()
	router := catalog.NewRouter(catalog.NewHandler(store))

	slog.Info("product service running", "addr", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		slog.Error("failed to serve", "error", err)
		os.Exit(1)
	}
}
