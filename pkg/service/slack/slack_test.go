package slack_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dt-bots/kotori/pkg/domain/model"
	slackSvc "github.com/dt-bots/kotori/pkg/service/slack"
	"github.com/m-mizutani/gt"
	"github.com/slack-go/slack"
)

func TestDeliverResponseURL(t *testing.T) {
	var got map[string]any
	hook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gt.NoError(t, json.Unmarshal(body, &got))
		w.WriteHeader(http.StatusOK)
	}))
	defer hook.Close()

	svc := slackSvc.New("", nil)
	err := svc.Deliver(context.Background(), model.Message{
		ChannelID:   "C1",
		Text:        "hello",
		ResponseURL: hook.URL,
	})
	gt.NoError(t, err)

	gt.Equal(t, got["text"], "hello")
	gt.Equal(t, got["response_type"], "in_channel")
}

func TestDeliverResponseURLFailure(t *testing.T) {
	hook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer hook.Close()

	svc := slackSvc.New("", nil)
	err := svc.Deliver(context.Background(), model.Message{
		ChannelID:   "C1",
		Text:        "hello",
		ResponseURL: hook.URL,
	})
	gt.Error(t, err)
}

func TestDeliverWithoutToken(t *testing.T) {
	// Without a bot token the channel path drops the message instead of
	// failing the dispatch.
	svc := slackSvc.New("", nil)
	err := svc.Deliver(context.Background(), model.Message{
		ChannelID: "C1",
		Text:      "hello",
	})
	gt.NoError(t, err)
}

func TestDeliverBotToken(t *testing.T) {
	var gotChannel, gotText string
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.NoError(t, r.ParseForm())
		gotChannel = r.FormValue("channel")
		gotText = r.FormValue("text")
		w.Header().Set("Content-Type", "application/json")
		gt.NoError(t, json.NewEncoder(w).Encode(map[string]any{
			"ok": true, "channel": gotChannel, "ts": "123.456",
		}))
	}))
	defer api.Close()

	svc := slackSvc.New("xoxb-test", nil, slack.OptionAPIURL(api.URL+"/"))
	err := svc.Deliver(context.Background(), model.Message{
		ChannelID: "C42",
		Text:      "channel delivery",
	})
	gt.NoError(t, err)
	gt.Equal(t, gotChannel, "C42")
	gt.Equal(t, gotText, "channel delivery")
}

func TestUserInfoWithoutToken(t *testing.T) {
	svc := slackSvc.New("", nil)
	_, err := svc.UserInfo(context.Background(), "U1")
	gt.Error(t, err)
}
