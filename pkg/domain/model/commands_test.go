package model_test

import (
	"testing"

	"github.com/dt-bots/kotori/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

func TestCommandSetValidate(t *testing.T) {
	gt.NoError(t, model.DefaultCommandSet().Validate())
	gt.NoError(t, (&model.CommandSet{Enabled: []string{"/help"}}).Validate())
	gt.NoError(t, (&model.CommandSet{Disabled: []string{"/trivia"}}).Validate())

	gt.Error(t, (&model.CommandSet{
		Enabled:  []string{"/help"},
		Disabled: []string{"/trivia"},
	}).Validate())
	gt.Error(t, (&model.CommandSet{Enabled: []string{"help"}}).Validate())
}

func TestCommandSetIsEnabled(t *testing.T) {
	t.Run("default set enables everything", func(t *testing.T) {
		s := model.DefaultCommandSet()
		gt.True(t, s.IsEnabled("/help"))
		gt.True(t, s.IsEnabled("/anything"))
		gt.True(t, s.PreviewsEnabled())
	})

	t.Run("allow-list", func(t *testing.T) {
		s := &model.CommandSet{Enabled: []string{"/help"}}
		gt.True(t, s.IsEnabled("/help"))
		gt.False(t, s.IsEnabled("/trivia"))
	})

	t.Run("deny-list", func(t *testing.T) {
		s := &model.CommandSet{Disabled: []string{"/trivia"}}
		gt.True(t, s.IsEnabled("/help"))
		gt.False(t, s.IsEnabled("/trivia"))
	})

	t.Run("preview toggle", func(t *testing.T) {
		off := false
		gt.False(t, (&model.CommandSet{URLPreviews: &off}).PreviewsEnabled())
	})
}
