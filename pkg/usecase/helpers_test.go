package usecase_test

import (
	"context"
	"sync"

	"github.com/dt-bots/kotori/pkg/domain/model"
	"github.com/dt-bots/kotori/pkg/domain/types"
	slackgo "github.com/slack-go/slack"
)

// fakeSlack records delivered messages for assertions
type fakeSlack struct {
	mu   sync.Mutex
	msgs []model.Message
	user *slackgo.User
}

func (f *fakeSlack) Deliver(ctx context.Context, msg model.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.msgs = append(f.msgs, msg)
	return nil
}

func (f *fakeSlack) UserInfo(ctx context.Context, userID types.SlackUserID) (*slackgo.User, error) {
	if f.user != nil {
		return f.user, nil
	}
	return &slackgo.User{ID: userID.String()}, nil
}

func (f *fakeSlack) messages() []model.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.Message{}, f.msgs...)
}

func (f *fakeSlack) lastText() string {
	msgs := f.messages()
	if len(msgs) == 0 {
		return ""
	}
	return msgs[len(msgs)-1].Text
}
