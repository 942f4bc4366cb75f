package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/microshop/services/internal/pkg/config"
	"github.com/microshop/services/internal/pkg/telemetry"
	"github.com/microshop/services/internal/user"
)

func main() {
	telemetry.InitLogger()

	cfg := config.LoadUser()

	store := user.NewStore()
	router := user.NewRouter(user.NewHandler(store))

	slog.Info("user service running", "addr", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		slog.Error("failed to serve", "error", err)
		os.Exit(1)
	}
}
