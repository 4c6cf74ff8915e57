package cli

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"host-insight/internal/api"
	"host-insight/internal/config"
	"host-insight/internal/llm"
	"host-insight/internal/logs"
	"host-insight/internal/metrics"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()

	logger := logs.NewLogger(cfg.LogBuffer, logs.ParseLevel(cfg.LogLevel))
	registry := metrics.NewRegistry()

	if cfg.APIKey == "" {
		// Not fatal: the missing credential surfaces as an upstream
		// authentication failure folded into the summary text.
		logger.Warn("PERPLEXITY_API_KEY is not set; summaries will fail upstream authentication")
	}

	summarizer := llm.NewClient(cfg, registry, logger)
	handler := api.NewHandler(summarizer, registry, logger)

	mux := http.NewServeMux()
	httpHandler := api.RegisterRoutes(mux, handler)

	addr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: httpHandler,
	}

	logger.Info("server started on " + addr)
	fmt.Printf("%s %s listening on %s\n", api.ServiceName, api.Version, addr)

	return server.ListenAndServe()
}
