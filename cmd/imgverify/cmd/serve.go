package cmd

import (
	"fmt"
	"log/slog"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/sujinee01/Image-Verification-Automation-System/internal/pipeline"
	"github.com/sujinee01/Image-Verification-Automation-System/internal/server"
)

// serveCmd represents the serve command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the verification pipeline over HTTP",
	Long: `Start an HTTP server exposing the verification pipeline.

Endpoints:
  POST /verify   multipart image upload, returns the verification result
  GET  /health   health check
  GET  /metrics  Prometheus metrics

Examples:
  imgverify serve
  imgverify serve --host 0.0.0.0 --port 9000`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		b := pipeline.NewBuilder().
			WithLanguage(cfg.Pipeline.Language).
			WithTessdataPrefix(cfg.Pipeline.TessdataPrefix).
			WithThreshold(cfg.Pipeline.BlockSize, cfg.Pipeline.ThresholdConstant).
			WithMinLines(cfg.Pipeline.MinLines)
		if cfg.Pipeline.DictPath != "" {
			b = b.WithDictionaryPaths(strings.Split(cfg.Pipeline.DictPath, ","))
		}
		pl, err := b.Build()
		if err != nil {
			return fmt.Errorf("failed to build verification pipeline: %w", err)
		}

		srv, err := server.New(server.Config{
			Host:            cfg.Server.Host,
			Port:            cfg.Server.Port,
			MaxUploadMB:     cfg.Server.MaxUploadMB,
			TimeoutSec:      cfg.Server.TimeoutSec,
			ShutdownTimeout: cfg.Server.ShutdownTimeout,
		}, pl, slog.Default())
		if err != nil {
			return fmt.Errorf("failed to create server: %w", err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return srv.Start(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("host", "localhost", "host to bind the server to")
	serveCmd.Flags().IntP("port", "p", 8080, "port to listen on")
	serveCmd.Flags().Int64("max-upload-mb", 20, "maximum upload size in megabytes")
	serveCmd.Flags().Int("timeout", 60, "request timeout in seconds")

	bindings := []struct {
		key  string
		flag string
	}{
		{"server.host", "host"},
		{"server.port", "port"},
		{"server.max_upload_mb", "max-upload-mb"},
		{"server.timeout_sec", "timeout"},
	}
	for _, binding := range bindings {
		if err := viper.BindPFlag(binding.key, serveCmd.Flags().Lookup(binding.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", binding.flag, err))
		}
	}
}
