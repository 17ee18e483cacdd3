package slack

import (
	"context"
	"encoding/json"
	"io"
	"mime"
	"net/http"

	"github.com/dt-bots/kotori/pkg/domain/model"
	"github.com/dt-bots/kotori/pkg/service/metrics"
	"github.com/dt-bots/kotori/pkg/usecase"
	"github.com/dt-bots/kotori/pkg/utils/async"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack/slackevents"
)

// Handler handles the Slack webhook endpoint. It normalizes the three inbound
// shapes (JSON event envelope, form-encoded slash command, form-encoded
// interactive payload) into one Event and dispatches through the registry.
type Handler struct {
	registry *usecase.Registry
	metrics  *metrics.Metrics
}

// NewHandler creates a webhook handler
func NewHandler(registry *usecase.Registry, m *metrics.Metrics) *Handler {
	return &Handler{
		registry: registry,
		metrics:  m,
	}
}

// envelope is the subset of the event envelope read before dispatch
type envelope struct {
	Type      string `json:"type"`
	Challenge string `json:"challenge"`
}

// HandleEvent handles POST /slack/events
func (h *Handler) HandleEvent(w http.ResponseWriter, r *http.Request) {
	contentType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch contentType {
	case "application/json":
		h.handleJSONEvent(w, r)
	case "application/x-www-form-urlencoded":
		h.handleFormEvent(w, r)
	default:
		h.writeError(w, r.Context(), goerr.Wrap(model.ErrMalformedRequest, "unsupported content type",
			goerr.V("contentType", contentType)), http.StatusBadRequest)
	}
}

// handleJSONEvent handles the Events API envelope
func (h *Handler) handleJSONEvent(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil || len(body) == 0 {
		h.writeError(w, r.Context(), goerr.Wrap(model.ErrMalformedRequest, "failed to read request body"), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	event, err := slackevents.ParseEvent(body, slackevents.OptionNoVerifyToken())
	if err != nil {
		h.writeError(w, r.Context(), goerr.Wrap(model.ErrMalformedRequest, "failed to parse event"), http.StatusBadRequest)
		return
	}

	// URL verification challenge short-circuits dispatch entirely
	if event.Type == slackevents.URLVerification {
		var env envelope
		if err := json.Unmarshal(body, &env); err != nil {
			h.writeError(w, r.Context(), goerr.Wrap(model.ErrMalformedRequest, "failed to parse challenge"), http.StatusBadRequest)
			return
		}
		ctxlog.From(r.Context()).Info("responding to URL verification challenge")
		h.writeChallenge(w, r.Context(), env.Challenge)
		return
	}

	if event.Type == slackevents.CallbackEvent {
		if msg, ok := event.InnerEvent.Data.(*slackevents.MessageEvent); ok {
			h.dispatchMessage(r.Context(), msg.Text, msg.Channel, msg.User, msg.BotID)
		} else {
			ctxlog.From(r.Context()).Debug("ignoring unhandled inner event",
				"type", event.InnerEvent.Type)
		}
	}

	h.writeOK(w, r.Context())
}

// handleFormEvent handles slash commands and interactive payloads
func (h *Handler) handleFormEvent(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.writeError(w, r.Context(), goerr.Wrap(model.ErrMalformedRequest, "failed to parse form"), http.StatusBadRequest)
		return
	}

	// Interactive component submissions carry a JSON payload field. There are
	// no dispatchable interactions yet, but a URL verification shape is still
	// honored and malformed JSON is still a client error.
	if payload := r.FormValue("payload"); payload != "" {
		var env envelope
		if err := json.Unmarshal([]byte(payload), &env); err != nil {
			h.writeError(w, r.Context(), goerr.Wrap(model.ErrMalformedRequest, "invalid payload format"), http.StatusBadRequest)
			return
		}
		if env.Type == slackevents.URLVerification {
			h.writeChallenge(w, r.Context(), env.Challenge)
			return
		}
		ctxlog.From(r.Context()).Debug("ignoring interactive payload", "type", env.Type)
		h.writeOK(w, r.Context())
		return
	}

	command := r.FormValue("command")
	if command != "" {
		h.dispatchSlashCommand(w, r, command)
		return
	}

	if len(r.Form) == 0 {
		h.writeError(w, r.Context(), goerr.Wrap(model.ErrMalformedRequest, "empty form body"), http.StatusBadRequest)
		return
	}

	// No command field: treat the form fields as a plain message event
	h.dispatchMessage(r.Context(), r.FormValue("text"), r.FormValue("channel_id"), r.FormValue("user_id"), "")
	h.writeOK(w, r.Context())
}

// dispatchSlashCommand runs a slash command synchronously: the interactive
// path's response URL (or the immediate response itself) is the delivery
// mechanism, so the handler must finish before the response is written. An
// unrecognized command returns an empty success with no side effects.
func (h *Handler) dispatchSlashCommand(w http.ResponseWriter, r *http.Request, command string) {
	ev := model.NewSlashCommandEvent(
		command,
		r.FormValue("text"),
		r.FormValue("channel_id"),
		r.FormValue("user_id"),
		r.FormValue("response_url"),
	)

	handler, ok := h.registry.Lookup(ev.Command)
	if !ok {
		ctxlog.From(r.Context()).Debug("unrecognized slash command", "command", command)
		w.WriteHeader(http.StatusOK)
		return
	}

	req := usecase.Request{
		Args:        ev.Args(),
		Text:        ev.Text,
		ChannelID:   ev.ChannelID,
		UserID:      ev.UserID,
		ResponseURL: ev.ResponseURL,
	}
	if err := handler(r.Context(), req); err != nil {
		ctxlog.From(r.Context()).Error("slash command failed", "command", command, "error", err)
		h.countCommand(command, "error")
	} else {
		h.countCommand(command, "ok")
	}

	w.WriteHeader(http.StatusOK)
}

// dispatchMessage handles the event path: the HTTP response is just an
// acknowledgment, so the matched handler (or the URL preview fallback) runs
// detached and delivers its result out-of-band.
func (h *Handler) dispatchMessage(ctx context.Context, text, channelID, userID, botID string) {
	logger := ctxlog.From(ctx)

	// Never react to our own or other bots' messages
	if botID != "" {
		logger.Debug("skipping bot message", "botID", botID)
		return
	}
	if text == "" {
		return
	}

	ev := model.NewMessageEvent(text, channelID, userID)
	req := usecase.Request{
		Args:        ev.Args(),
		Text:        ev.Text,
		ChannelID:   ev.ChannelID,
		UserID:      ev.UserID,
		ResponseURL: ev.ResponseURL,
	}

	handler, ok := h.registry.Lookup(ev.Command)
	command := ev.Command.String()
	if !ok {
		handler, ok = h.registry.Fallback()
		command = "url_preview"
	}
	if !ok {
		return
	}

	async.Dispatch(ctx, func(asyncCtx context.Context) error {
		if err := handler(asyncCtx, req); err != nil {
			h.countCommand(command, "error")
			return err
		}
		h.countCommand(command, "ok")
		return nil
	})
}

func (h *Handler) countCommand(command, status string) {
	if h.metrics != nil {
		h.metrics.CommandsTotal.WithLabelValues(command, status).Inc()
	}
}

func (h *Handler) writeChallenge(w http.ResponseWriter, ctx context.Context, challenge string) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(challenge)); err != nil {
		ctxlog.From(ctx).Error("failed to write challenge response", "error", err)
	}
}

func (h *Handler) writeOK(w http.ResponseWriter, ctx context.Context) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		ctxlog.From(ctx).Error("failed to write response", "error", err)
	}
}

// writeError writes an error response
func (h *Handler) writeError(w http.ResponseWriter, ctx context.Context, err error, status int) {
	ctxlog.From(ctx).Warn("rejecting webhook request", "error", err, "status", status)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	message := err.Error()
	if goErr := goerr.Unwrap(err); goErr != nil {
		message = goErr.Error()
	}
	if err := json.NewEncoder(w).Encode(map[string]string{"error": message}); err != nil {
		ctxlog.From(ctx).Error("failed to encode error response", "error", err)
	}
}
