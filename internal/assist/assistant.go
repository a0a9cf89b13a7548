package assist

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/linkforce/internal/busy"
	"github.com/alexisbeaulieu97/linkforce/internal/logger"
	lferrors "github.com/alexisbeaulieu97/linkforce/pkg/errors"
)

var (
	// ErrMissingCredential means no API key was configured.
	ErrMissingCredential = errors.New("API key is missing; set it in the environment")
	// ErrEmptyResponse means the model answered with no text.
	ErrEmptyResponse = errors.New("model returned an empty bio")
	// ErrBusy means a rewrite is already in flight.
	ErrBusy = busy.ErrBusy
)

// Assistant runs one bio rewrite at a time. It never touches the profile;
// callers apply the returned text.
type Assistant struct {
	gen     Generator
	model   string
	timeout time.Duration
	log     *logger.Logger
	gate    busy.Gate
}

// Options configures an Assistant.
type Options struct {
	Model   string
	Timeout time.Duration
	Logger  *logger.Logger
}

// New creates an Assistant. gen may be nil when no credential is available;
// every Rewrite then fails with ErrMissingCredential.
func New(gen Generator, opts Options) *Assistant {
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	return &Assistant{
		gen:     gen,
		model:   opts.Model,
		timeout: opts.Timeout,
		log:     opts.Logger.WithFields(map[string]any{"component": "assist", "model": opts.Model}),
	}
}

// Busy reports whether a rewrite is in flight.
func (a *Assistant) Busy() bool {
	return a.gate.Busy()
}

// Rewrite asks the model for a new bio. Failures are returned as
// *errors.AssistError except ErrBusy, which is returned as is.
func (a *Assistant) Rewrite(ctx context.Context, req Request) (string, error) {
	var bio string
	err := a.gate.Do(func() error {
		text, err := a.rewrite(ctx, req)
		if err != nil {
			return err
		}
		bio = text
		return nil
	})
	if errors.Is(err, busy.ErrBusy) {
		return "", ErrBusy
	}
	if err != nil {
		a.log.Warn(err, "bio generation failed")
		return "", lferrors.NewAssistError(a.model, err)
	}
	a.log.Debug("bio generated")
	return bio, nil
}

func (a *Assistant) rewrite(ctx context.Context, req Request) (string, error) {
	if a.gen == nil {
		return "", ErrMissingCredential
	}
	if req.Tone == "" {
		req.Tone = ToneProfessional
	}

	prompt, err := BuildPrompt(req)
	if err != nil {
		return "", err
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	text, err := a.gen.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
