package events_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/events"
)

func TestDispatcher(t *testing.T) {
	t.Run("routes events to registered handlers in order", func(t *testing.T) {
		d := events.NewDispatcher()

		var got []string
		d.On("blur", func(e events.Event) { got = append(got, "first:"+e.Field) })
		d.On("blur", func(e events.Event) { got = append(got, "second:"+e.Field) })

		d.Dispatch(events.Event{Name: "blur", Field: "email", Value: "a@b.co"})
		assert.Equal(t, []string{"first:email", "second:email"}, got)
	})

	t.Run("unknown event is a no-op", func(t *testing.T) {
		d := events.NewDispatcher()
		assert.NotPanics(t, func() {
			d.Dispatch(events.Event{Name: "focus"})
		})
	})

	t.Run("nil handler is ignored", func(t *testing.T) {
		d := events.NewDispatcher()
		d.On("blur", nil)
		assert.Empty(t, d.Events())
	})

	t.Run("lists registered event names", func(t *testing.T) {
		d := events.NewDispatcher()
		d.On("blur", func(events.Event) {})
		d.On("input", func(events.Event) {})
		assert.ElementsMatch(t, []string{"blur", "input"}, d.Events())
	})
}
