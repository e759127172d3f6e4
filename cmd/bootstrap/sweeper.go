package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"tastebite/internal/pkg/config"
	"tastebite/internal/usecase/commands"

	"go.uber.org/fx"
)

var SweeperModule = fx.Module("sweeper",
	fx.Invoke(RunOfferSweeper),
)

// RunOfferSweeper deactivates expired offers once at startup and then on a
// fixed interval until shutdown.
func RunOfferSweeper(lc fx.Lifecycle, cfg config.OffersConfig, offerCommands commands.OfferCommands) {
	stop := make(chan struct{})
	done := make(chan struct{})

	sweep := func(ctx context.Context) {
		affected, err := offerCommands.DeactivateExpired(ctx)
		if err != nil {
			slog.Error("offer sweep failed", "error", err.Error())
			return
		}
		if affected > 0 {
			slog.Info("deactivated expired offers", "count", affected)
		}
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			sweep(ctx)

			go func() {
				defer close(done)
				ticker := time.NewTicker(cfg.SweepInterval)
				defer ticker.Stop()
				for {
					select {
					case <-stop:
						return
					case <-ticker.C:
						sweepCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
						sweep(sweepCtx)
						cancel()
					}
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			close(stop)
			<-done
			return nil
		},
	})
}
