package contactform_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/contactform"
	"github.com/dmitrymomot/formkit/pkg/events"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

func testController(t *testing.T) *contactform.Controller {
	t.Helper()

	c := contactform.NewController(contactform.Rules(), contactform.WithConfig(contactform.Config{
		DebounceInterval:   20 * time.Millisecond,
		SuccessBannerDelay: 60 * time.Millisecond,
	}))
	t.Cleanup(c.Close)
	return c
}

func fillValid(c *contactform.Controller) {
	s := validSubmission()
	for name, value := range s.Values() {
		c.Dispatch(events.Event{Name: contactform.EventInput, Field: name, Value: value})
	}
}

func TestControllerBlur(t *testing.T) {
	t.Run("shows the error for an invalid field", func(t *testing.T) {
		c := testController(t)
		c.Dispatch(events.Event{Name: contactform.EventBlur, Field: contactform.FieldName, Value: "J"})

		msg, shown := c.FieldError(contactform.FieldName)
		require.True(t, shown)
		assert.Equal(t, "Name must be at least 2 characters long", msg)
		assert.True(t, c.Touched(contactform.FieldName))
	})

	t.Run("clears the error once the value is fixed", func(t *testing.T) {
		c := testController(t)
		c.Dispatch(events.Event{Name: contactform.EventBlur, Field: contactform.FieldName, Value: "J"})
		c.Dispatch(events.Event{Name: contactform.EventBlur, Field: contactform.FieldName, Value: "John"})

		_, shown := c.FieldError(contactform.FieldName)
		assert.False(t, shown)
	})

	t.Run("unknown field is ignored", func(t *testing.T) {
		c := testController(t)
		assert.NotPanics(t, func() {
			c.Dispatch(events.Event{Name: contactform.EventBlur, Field: "newsletter", Value: "x"})
		})
	})
}

func TestControllerInput(t *testing.T) {
	t.Run("stores the value without validating an untouched field", func(t *testing.T) {
		c := testController(t)
		c.Dispatch(events.Event{Name: contactform.EventInput, Field: contactform.FieldEmail, Value: "u"})

		assert.Equal(t, "u", c.Value(contactform.FieldEmail))
		_, shown := c.FieldError(contactform.FieldEmail)
		assert.False(t, shown, "no error before the field was ever validated")
	})

	t.Run("re-validates after the quiet window once an error is showing", func(t *testing.T) {
		c := testController(t)
		c.Dispatch(events.Event{Name: contactform.EventBlur, Field: contactform.FieldEmail, Value: "user@example"})
		_, shown := c.FieldError(contactform.FieldEmail)
		require.True(t, shown)

		// Typing the correction: error must clear only after the window.
		c.Dispatch(events.Event{Name: contactform.EventInput, Field: contactform.FieldEmail, Value: "user@example.c"})
		c.Dispatch(events.Event{Name: contactform.EventInput, Field: contactform.FieldEmail, Value: "user@example.com"})

		assert.Eventually(t, func() bool {
			_, shown := c.FieldError(contactform.FieldEmail)
			return !shown
		}, time.Second, 5*time.Millisecond)
	})
}

func TestControllerFocus(t *testing.T) {
	c := testController(t)
	assert.False(t, c.Touched(contactform.FieldPhone))
	c.Dispatch(events.Event{Name: contactform.EventFocus, Field: contactform.FieldPhone})
	assert.True(t, c.Touched(contactform.FieldPhone))
}

func TestControllerSubmit(t *testing.T) {
	t.Run("invalid form surfaces every field error", func(t *testing.T) {
		c := testController(t)
		err := c.Submit()
		require.Error(t, err)

		for _, name := range contactform.Rules().Names() {
			_, shown := c.FieldError(name)
			assert.True(t, shown, "field %s should show its error after submit", name)
		}
		assert.False(t, c.SuccessVisible())
	})

	t.Run("valid form raises the acknowledgment and assigns an id", func(t *testing.T) {
		c := testController(t)
		fillValid(c)

		require.NoError(t, c.Submit())
		assert.True(t, c.SuccessVisible())
		assert.NotEmpty(t, c.SubmissionID())

		banner, ok := c.BannerComponent()
		require.True(t, ok)
		var b strings.Builder
		require.NoError(t, banner.Render(context.Background(), &b))
		assert.Contains(t, b.String(), `role="status"`)
		assert.Contains(t, b.String(), contactform.SuccessMessage)
	})

	t.Run("form resets after the banner delay", func(t *testing.T) {
		c := testController(t)
		fillValid(c)
		require.NoError(t, c.Submit())

		assert.Eventually(t, func() bool {
			return !c.SuccessVisible()
		}, time.Second, 10*time.Millisecond)

		assert.Empty(t, c.Value(contactform.FieldName))
		assert.Empty(t, c.SubmissionID())
		assert.False(t, c.Touched(contactform.FieldName))
	})

	t.Run("repeat submit restarts the banner delay", func(t *testing.T) {
		c := contactform.NewController(contactform.Rules(), contactform.WithConfig(contactform.Config{
			DebounceInterval:   20 * time.Millisecond,
			SuccessBannerDelay: 150 * time.Millisecond,
		}))
		t.Cleanup(c.Close)
		fillValid(c)

		require.NoError(t, c.Submit())
		time.Sleep(80 * time.Millisecond)
		require.NoError(t, c.Submit())

		// Past the first submit's deadline, inside the second one's window:
		// the banner must still be up.
		time.Sleep(100 * time.Millisecond)
		assert.True(t, c.SuccessVisible())

		assert.Eventually(t, func() bool {
			return !c.SuccessVisible()
		}, time.Second, 10*time.Millisecond)
	})

	t.Run("submit event dispatch runs the same flow", func(t *testing.T) {
		c := testController(t)
		fillValid(c)
		c.Dispatch(events.Event{Name: contactform.EventSubmit})
		assert.True(t, c.SuccessVisible())
	})

	t.Run("submitting clears stale errors on fixed fields", func(t *testing.T) {
		c := testController(t)
		c.Dispatch(events.Event{Name: contactform.EventBlur, Field: contactform.FieldName, Value: "J"})
		fillValid(c)

		require.NoError(t, c.Submit())
		_, shown := c.FieldError(contactform.FieldName)
		assert.False(t, shown)
	})
}

func TestControllerMarkupState(t *testing.T) {
	c := testController(t)
	c.Dispatch(events.Event{Name: contactform.EventBlur, Field: contactform.FieldEmail, Value: "nope"})

	t.Run("invalid field", func(t *testing.T) {
		attrs := c.FieldAttrs(contactform.FieldEmail)
		assert.Equal(t, "true", attrs["aria-invalid"])
		assert.Equal(t, "email-error", attrs["aria-describedby"])
		assert.Equal(t, "form-group form-group--error", c.GroupClass(contactform.FieldEmail))

		comp, ok := c.ErrorComponent(contactform.FieldEmail)
		require.True(t, ok)
		var b strings.Builder
		require.NoError(t, comp.Render(context.Background(), &b))
		assert.Contains(t, b.String(), `id="email-error"`)
		assert.Contains(t, b.String(), "Please enter a valid email address")
	})

	t.Run("valid field", func(t *testing.T) {
		attrs := c.FieldAttrs(contactform.FieldName)
		assert.Equal(t, "false", attrs["aria-invalid"])
		assert.Equal(t, "form-group", c.GroupClass(contactform.FieldName))

		_, ok := c.ErrorComponent(contactform.FieldName)
		assert.False(t, ok)
	})
}

func TestControllerDisabled(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithFormat(logger.FormatText))

	c := contactform.NewController(nil, contactform.WithLogger(log))

	assert.NotPanics(t, func() {
		c.Dispatch(events.Event{Name: contactform.EventBlur, Field: contactform.FieldName, Value: "J"})
		assert.NoError(t, c.Submit())
		c.Reset()
		c.Close()
	})

	_, shown := c.FieldError(contactform.FieldName)
	assert.False(t, shown)
	assert.Contains(t, buf.String(), "validation disabled")
}
