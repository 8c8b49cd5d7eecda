// Package submission turns form input into one call against the shortening
// service and keeps the outcome as display state.
package submission

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/MikhailRaia/url-shortener-client/internal/logger"
	"github.com/MikhailRaia/url-shortener-client/internal/model"
)

// Form field names read by the controller.
const (
	FieldURL             = "url"
	FieldCustomCode      = "custom_code"
	FieldTitle           = "title"
	FieldExpireAfterDays = "expire_after_days"
)

// ErrNoOrigin is returned when there is no page origin to show the short URL under.
var ErrNoOrigin = errors.New("no page origin for short URL")

// Shortener sends a shorten request to the service.
type Shortener interface {
	Shorten(ctx context.Context, req model.ShortenRequest) (model.ShortenResponse, error)
}

// Form is the input surface: named field values and a way to clear them.
type Form interface {
	Value(name string) string
	Reset()
}

// Origin supplies the scheme, host and port the short URL is shown under.
type Origin interface {
	Origin(ctx context.Context) string
}

// StaticOrigin is an Origin that never changes.
type StaticOrigin string

func (o StaticOrigin) Origin(context.Context) string {
	return string(o)
}

// Controller runs submissions and owns the resulting display state.
// Submissions are not serialized; the one that settles last wins.
type Controller struct {
	shortener Shortener
	origin    Origin

	mu    sync.RWMutex
	state State
}

// NewController creates an idle Controller.
func NewController(shortener Shortener, origin Origin) *Controller {
	return &Controller{
		shortener: shortener,
		origin:    origin,
		state:     Idle(),
	}
}

// State returns the latest settled state.
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Submit sends exactly one request built from form and blocks until it
// settles. On success the form is reset; on failure it is left untouched.
func (c *Controller) Submit(ctx context.Context, form Form) State {
	ctx = logger.WithRequestID(ctx, uuid.NewString())
	l := logger.FromContext(ctx)

	l.Debug().Msg("Submission started")

	shortURL, err := c.shorten(ctx, form)
	if err != nil {
		l.Warn().Err(err).Msg("Submission failed")
		return c.settle(Failure(err.Error()))
	}

	state := c.settle(Success(shortURL))
	form.Reset()

	l.Info().Str("short_url", shortURL).Msg("Submission succeeded")

	return state
}

// SubmitAsync runs Submit in its own goroutine. The returned channel
// receives the settled state once and is never closed.
func (c *Controller) SubmitAsync(ctx context.Context, form Form) <-chan State {
	done := make(chan State, 1)

	go func() {
		done <- c.Submit(ctx, form)
	}()

	return done
}

func (c *Controller) shorten(ctx context.Context, form Form) (string, error) {
	req, err := BuildRequest(form)
	if err != nil {
		return "", err
	}

	resp, err := c.shortener.Shorten(ctx, req)
	if err != nil {
		return "", err
	}

	return ComposeShortURL(c.origin.Origin(ctx), resp.ShortCode)
}

func (c *Controller) settle(state State) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = state
	return state
}

// BuildRequest reads the form into a fresh request. Empty optional fields
// stay unset so they are left out of the JSON body.
func BuildRequest(form Form) (model.ShortenRequest, error) {
	req := model.ShortenRequest{
		URL:        form.Value(FieldURL),
		CustomCode: form.Value(FieldCustomCode),
		Title:      form.Value(FieldTitle),
	}

	if raw := form.Value(FieldExpireAfterDays); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil {
			return req, fmt.Errorf("invalid %s %q", FieldExpireAfterDays, raw)
		}
		req.ExpireAfterDays = &days
	}

	return req, nil
}

// ComposeShortURL joins origin and code as <origin>/<code>. The origin is
// used as given apart from trailing slashes.
func ComposeShortURL(origin, code string) (string, error) {
	origin = strings.TrimRight(origin, "/")
	if origin == "" {
		return "", ErrNoOrigin
	}
	return origin + "/" + code, nil
}
