package contactform

import (
	"log/slog"
	"sync"

	"github.com/a-h/templ"
	"github.com/google/uuid"

	"github.com/dmitrymomot/formkit/pkg/debounce"
	"github.com/dmitrymomot/formkit/pkg/events"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/markup"
	"github.com/dmitrymomot/formkit/pkg/rules"
)

// Interaction events the controller reacts to.
const (
	EventFocus  = "focus"
	EventInput  = "input"
	EventBlur   = "blur"
	EventSubmit = "submit"
)

// fieldState is the runtime state of one field, owned by the controller and
// destroyed on reset.
type fieldState struct {
	value      string
	touched    bool
	errorShown bool
	message    string
}

// Option configures a Controller.
type Option func(*Controller)

func WithConfig(cfg Config) Option {
	return func(c *Controller) { c.cfg = cfg.normalized() }
}

func WithLogger(log *slog.Logger) Option {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

// Controller drives the contact form's interaction flow: it owns per-field
// runtime state, routes interaction events through a fixed handler table,
// debounces input re-validation, and runs whole-form validation on submit.
// All methods are safe for concurrent use and none of them panics; a
// controller built without a rule set is a logged no-op.
type Controller struct {
	mu           sync.Mutex
	set          *rules.Set
	cfg          Config
	log          *slog.Logger
	dispatcher   *events.Dispatcher
	debouncer    *debounce.Debouncer
	resetTimer   *debounce.Timer
	states       map[string]*fieldState
	success      bool
	submissionID string
	disabled     bool
}

// NewController builds a controller around a rule table, usually Rules().
// A nil set mirrors a missing form element on the page: the controller is
// created disabled, logs the condition once, and every method becomes a
// no-op instead of failing.
func NewController(set *rules.Set, opts ...Option) *Controller {
	c := &Controller{
		set:        set,
		cfg:        Defaults(),
		log:        slog.Default(),
		dispatcher: events.NewDispatcher(),
		states:     make(map[string]*fieldState),
	}
	for _, opt := range opts {
		opt(c)
	}

	if set == nil {
		c.disabled = true
		c.log.Warn("contact form surface not found, validation disabled")
		return c
	}

	c.debouncer = debounce.New(c.cfg.DebounceInterval)
	for _, name := range set.Names() {
		c.states[name] = &fieldState{}
	}

	c.dispatcher.On(EventFocus, c.handleFocus)
	c.dispatcher.On(EventInput, c.handleInput)
	c.dispatcher.On(EventBlur, c.handleBlur)
	c.dispatcher.On(EventSubmit, func(events.Event) { _ = c.Submit() })

	return c
}

// Dispatch routes an interaction event to its handler. Unknown event names
// and unknown fields are ignored.
func (c *Controller) Dispatch(e events.Event) {
	if c.disabled {
		return
	}
	c.dispatcher.Dispatch(e)
}

func (c *Controller) handleFocus(e events.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if st, ok := c.states[e.Field]; ok {
		st.touched = true
	}
}

// handleInput stores the value and, once an error is already showing,
// schedules a debounced re-validation so the message clears while the user
// types the correction.
func (c *Controller) handleInput(e events.Event) {
	c.mu.Lock()
	st, ok := c.states[e.Field]
	if !ok {
		c.mu.Unlock()
		return
	}
	st.value = e.Value
	revalidate := st.errorShown
	c.mu.Unlock()

	if revalidate {
		field := e.Field
		c.debouncer.Trigger(field, func() { c.validateField(field) })
	}
}

// handleBlur validates the field immediately with the value it left with.
func (c *Controller) handleBlur(e events.Event) {
	c.mu.Lock()
	if st, ok := c.states[e.Field]; ok {
		st.value = e.Value
		st.touched = true
	}
	c.mu.Unlock()

	c.debouncer.Cancel(e.Field)
	c.validateField(e.Field)
}

func (c *Controller) validateField(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	st, ok := c.states[name]
	if !ok {
		return
	}

	res := c.set.EvaluateField(name, st.value)
	st.errorShown = !res.Valid
	st.message = res.Message
}

// Submit intercepts the form submission: it always runs whole-form
// validation over the current field values and surfaces every failing
// field. On success it raises the acknowledgment banner, logs the
// submission under a generated id, and schedules a full reset once the
// banner delay elapses. The returned error, when non-nil, is a
// rules.ValidationErrors.
func (c *Controller) Submit() error {
	if c.disabled {
		return nil
	}

	c.mu.Lock()
	values := make(map[string]string, len(c.states))
	for name, st := range c.states {
		values[name] = st.value
	}
	c.mu.Unlock()

	err := c.set.Evaluate(values)
	verrs := rules.ExtractValidationErrors(err)

	c.mu.Lock()
	for name, st := range c.states {
		st.touched = true
		if msg := verrs.Get(name); msg != "" {
			st.errorShown = true
			st.message = msg
		} else {
			st.errorShown = false
			st.message = ""
		}
	}

	if err != nil {
		c.mu.Unlock()
		c.log.Debug("contact form submission rejected",
			slog.Int("failing_fields", len(verrs)),
		)
		return err
	}

	c.success = true
	c.submissionID = uuid.NewString()
	id := c.submissionID
	// A repeat submit while the banner is up restarts the delay; the stale
	// timer would otherwise cut the new banner short.
	c.resetTimer.Stop()
	c.resetTimer = debounce.After(c.cfg.SuccessBannerDelay, c.Reset)
	c.mu.Unlock()

	c.log.Info("contact form submitted", logger.SubmissionID(id))

	return nil
}

// Reset clears all field runtime state and hides the acknowledgment,
// returning the form to its initial state. Pending timers are cancelled.
func (c *Controller) Reset() {
	if c.disabled {
		return
	}

	c.debouncer.Stop()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.resetTimer.Stop()
	c.resetTimer = nil
	for _, st := range c.states {
		*st = fieldState{}
	}
	c.success = false
	c.submissionID = ""
}

// FieldError returns the message currently displayed for a field, if any.
func (c *Controller) FieldError(name string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	st, ok := c.states[name]
	if !ok || !st.errorShown {
		return "", false
	}
	return st.message, true
}

// Touched reports whether the user has interacted with the field.
func (c *Controller) Touched(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	st, ok := c.states[name]
	return ok && st.touched
}

// Value returns the field's current value.
func (c *Controller) Value(name string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if st, ok := c.states[name]; ok {
		return st.value
	}
	return ""
}

// SuccessVisible reports whether the acknowledgment banner is showing.
func (c *Controller) SuccessVisible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.success
}

// SubmissionID returns the id assigned to the last successful submission,
// empty after reset.
func (c *Controller) SubmissionID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submissionID
}

// ErrorComponent renders the field's error node while an error is showing.
func (c *Controller) ErrorComponent(name string) (templ.Component, bool) {
	msg, ok := c.FieldError(name)
	if !ok {
		return nil, false
	}
	return markup.FieldError(name, msg), true
}

// FieldAttrs returns the accessibility attributes the field's input element
// must carry in its current state.
func (c *Controller) FieldAttrs(name string) templ.Attributes {
	_, invalid := c.FieldError(name)
	return markup.InvalidAttrs(name, invalid)
}

// GroupClass returns the class of the field's container element in its
// current state.
func (c *Controller) GroupClass(name string) string {
	_, invalid := c.FieldError(name)
	return markup.GroupClass(invalid)
}

// BannerComponent renders the success acknowledgment while it is visible.
func (c *Controller) BannerComponent() (templ.Component, bool) {
	if !c.SuccessVisible() {
		return nil, false
	}
	return markup.SuccessBanner(SuccessMessage), true
}

// Close cancels all pending timers. Call it when tearing the form down.
func (c *Controller) Close() {
	if c.disabled {
		return
	}
	c.debouncer.Stop()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetTimer.Stop()
}
