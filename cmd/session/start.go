package session

import (
	"log/slog"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/flttx/medi-manage-platform-sub000/config"
	"github.com/flttx/medi-manage-platform-sub000/internal/api/http"
	"github.com/flttx/medi-manage-platform-sub000/internal/api/http/router"
	"github.com/flttx/medi-manage-platform-sub000/internal/app"
	"github.com/flttx/medi-manage-platform-sub000/pkg/logs"
)

func NewStartCommand() *cobra.Command {
	var (
		role            string
		port            int
		shutdownTimeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a terminal session",
		Long: `Start one session process: the desktop console or a doctor or patient
terminal. The role decides what the session renders; all roles join the
same sync bus and hold the same dataset.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return err
			}

			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return err
			}
			if role != "" {
				cfg.Session.Role = role
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			if port != 0 {
				cfg.Session.Port = port
			}

			// Set up structured logger before fx starts so all logs use it.
			slog.SetDefault(logs.New(cfg))

			fxApp := fx.New(
				fx.Supply(cfg),
				app.InfraModule,
				app.ServiceModule,
				app.WorkerModule,
				router.Module,
				http.Module,
				fx.Invoke(func(*fiber.App) {}),
				fx.StopTimeout(shutdownTimeout),
				fx.WithLogger(func() fxevent.Logger { return fxevent.NopLogger }),
			)

			fxApp.Run()
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", "", "Session role: desktop, doctor, or patient (overrides config)")
	cmd.Flags().IntVar(&port, "port", 0, "HTTP port for this session (overrides config)")
	cmd.Flags().DurationVar(&shutdownTimeout, "shutdown-timeout", 30*time.Second, "Maximum time to wait for graceful shutdown")

	return cmd
}
