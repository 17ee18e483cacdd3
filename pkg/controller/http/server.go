package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	slackCtrl "github.com/dt-bots/kotori/pkg/controller/slack"
	"github.com/dt-bots/kotori/pkg/domain/types"
	"github.com/dt-bots/kotori/pkg/service/metrics"
	"github.com/dt-bots/kotori/pkg/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
)

// Server represents the HTTP server
type Server struct {
	*http.Server
	router chi.Router
}

// NewServer creates the HTTP server and wires all routes
func NewServer(
	ctx context.Context,
	addr string,
	slackHandler *slackCtrl.Handler,
	commands *usecase.Commands,
	m *metrics.Metrics,
	qotdChannel types.ChannelID,
) *Server {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	router.Post("/slack/events", slackHandler.HandleEvent)
	router.Get("/test", handleHealth)
	router.Get("/", handleStatusPage)
	router.Get("/qotd", handleQotdTrigger(commands, qotdChannel))
	if m != nil {
		router.Method(http.MethodGet, "/metrics", m.Handler())
	}

	return &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router: router,
	}
}

// handleHealth handles the health probe
func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status":    "OK",
		"message":   "Slack bot is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}); err != nil {
		ctxlog.From(r.Context()).Error("failed to encode health response", "error", err)
	}
}

// handleQotdTrigger is the ad hoc counterpart of the scheduled push
func handleQotdTrigger(commands *usecase.Commands, channel types.ChannelID) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if channel == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			if err := json.NewEncoder(w).Encode(map[string]string{
				"error": "quote-of-the-day channel not configured",
			}); err != nil {
				ctxlog.From(r.Context()).Error("failed to encode response", "error", err)
			}
			return
		}

		if err := commands.PushQuoteOfTheDay(r.Context(), channel); err != nil {
			ctxlog.From(r.Context()).Error("quote of the day push failed", "error", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
			ctxlog.From(r.Context()).Error("failed to encode response", "error", err)
		}
	}
}

// handleStatusPage serves the static status/help page
func handleStatusPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(statusPage)); err != nil {
		ctxlog.From(r.Context()).Error("failed to write status page", "error", err)
	}
}

const statusPage = `<!DOCTYPE html>
<html>
<head>
  <title>Kotori</title>
  <style>
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Oxygen, Ubuntu, Cantarell, sans-serif;
      line-height: 1.6;
      max-width: 800px;
      margin: 0 auto;
      padding: 20px;
      color: #333;
    }
    h1 {
      color: #4A154B;
      border-bottom: 2px solid #4A154B;
      padding-bottom: 10px;
    }
    .status {
      background: #f0f0f0;
      padding: 20px;
      border-radius: 8px;
      margin: 20px 0;
    }
    .commands {
      background: #f8f8f8;
      padding: 20px;
      border-radius: 8px;
    }
    code {
      background: #eee;
      padding: 2px 5px;
      border-radius: 3px;
      font-family: monospace;
    }
  </style>
</head>
<body>
  <h1>🤖 Kotori</h1>

  <div class="status">
    <h2>✨ Status</h2>
    <p>The bot is up and running!</p>
  </div>

  <div class="commands">
    <h2>🎮 Available Commands</h2>
    <ul>
      <li><code>/help</code> - Show help menu</li>
      <li><code>/qotd</code> - Get quote of the day</li>
      <li><code>/trivia</code> - Random trivia</li>
      <li><code>/dadjoke</code> - Get a dad joke</li>
      <li><code>/urban &lt;term&gt;</code> - Urban Dictionary lookup</li>
      <li><code>/beat [time/@XXX]</code> - Convert .beat time</li>
      <li><code>/dt-search &lt;query&gt;</code> - Web search</li>
      <li><code>/weather &lt;city&gt;</code> - Weather info</li>
      <li><code>/axolotl</code> - Random axolotl pics</li>
      <li><code>/catfact</code> - Random cat facts</li>
      <li><code>/dogfact</code> - Random dog facts</li>
      <li>and more!</li>
    </ul>
  </div>

  <p>Made with too much coffee ☕</p>
</body>
</html>
`
