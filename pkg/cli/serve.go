package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dt-bots/kotori/pkg/cli/config"
	controller "github.com/dt-bots/kotori/pkg/controller/http"
	slackCtrl "github.com/dt-bots/kotori/pkg/controller/slack"
	"github.com/dt-bots/kotori/pkg/domain/types"
	"github.com/dt-bots/kotori/pkg/service/metrics"
	"github.com/dt-bots/kotori/pkg/service/schedule"
	slackSvc "github.com/dt-bots/kotori/pkg/service/slack"
	"github.com/dt-bots/kotori/pkg/service/webfetch"
	"github.com/dt-bots/kotori/pkg/usecase"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg    config.Server
		slackCfg     config.Slack
		providersCfg config.Providers
		scheduleCfg  config.Schedule
		commandsCfg  config.Commands
	)

	flags := joinFlags(
		serverCfg.Flags(),
		slackCfg.Flags(),
		providersCfg.Flags(),
		scheduleCfg.Flags(),
		commandsCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting kotori server",
				slog.String("addr", serverCfg.Addr),
				slog.Any("slack", slackCfg),
				slog.Any("providers", providersCfg),
				slog.Any("schedule", scheduleCfg),
				slog.Any("commands", commandsCfg),
			)

			if !slackCfg.IsConfigured() {
				logger.Warn("bot token not configured; event-path deliveries will be dropped")
			}

			commandSet, err := commandsCfg.Configure()
			if err != nil {
				return err
			}

			m := metrics.New()
			slackClient := slackSvc.New(slackCfg.BotToken, m)
			web := webfetch.New()

			commands := usecase.New(slackClient, web, m, providersCfg.Configure())
			registry := usecase.NewRegistry(commands, commandSet)
			handler := slackCtrl.NewHandler(registry, m)

			server := controller.NewServer(
				ctx,
				serverCfg.Addr,
				handler,
				commands,
				m,
				types.ChannelID(scheduleCfg.QotdChannel),
			)

			// Scheduled quote-of-the-day push, if a channel is configured
			scheduleCtx, stopSchedule := context.WithCancel(ctx)
			defer stopSchedule()
			if scheduleCfg.Enabled() {
				sched, err := schedule.New(scheduleCfg.QotdCron, func(jobCtx context.Context) error {
					return commands.PushQuoteOfTheDay(jobCtx, types.ChannelID(scheduleCfg.QotdChannel))
				})
				if err != nil {
					return err
				}
				go sched.Run(scheduleCtx)
			}

			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
