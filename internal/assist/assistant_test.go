package assist

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lferrors "github.com/alexisbeaulieu97/linkforce/pkg/errors"
)

type fakeGenerator struct {
	mu      sync.Mutex
	text    string
	err     error
	prompts []string
	block   chan struct{}
	started chan struct{}
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()

	if f.started != nil {
		close(f.started)
	}
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return f.text, f.err
}

func TestRewriteReturnsTrimmedText(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{text: "  Building tools for makers 🛠️\n"}
	a := New(gen, Options{})

	bio, err := a.Rewrite(context.Background(), Request{Bio: "old", Keywords: "go, cli", Tone: ToneHype})
	require.NoError(t, err)
	assert.Equal(t, "Building tools for makers 🛠️", bio)

	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], `"old"`)
	assert.Contains(t, gen.prompts[0], `"go, cli"`)
	assert.Contains(t, gen.prompts[0], `"Hype"`)
	assert.Contains(t, gen.prompts[0], "under 150 characters")
	assert.False(t, a.Busy())
}

func TestRewriteMissingCredential(t *testing.T) {
	t.Parallel()

	a := New(nil, Options{Model: "gemini-test"})
	_, err := a.Rewrite(context.Background(), Request{Keywords: "x"})

	var assistErr *lferrors.AssistError
	require.ErrorAs(t, err, &assistErr)
	assert.Equal(t, "gemini-test", assistErr.Model)
	require.ErrorIs(t, err, ErrMissingCredential)
	assert.False(t, a.Busy())
}

func TestRewriteEmptyResponse(t *testing.T) {
	t.Parallel()

	a := New(&fakeGenerator{text: "   "}, Options{})
	_, err := a.Rewrite(context.Background(), Request{})
	require.ErrorIs(t, err, ErrEmptyResponse)
	assert.False(t, a.Busy())
}

func TestRewriteTransportError(t *testing.T) {
	t.Parallel()

	transport := errors.New("connection reset")
	a := New(&fakeGenerator{err: transport}, Options{})

	_, err := a.Rewrite(context.Background(), Request{})
	require.ErrorIs(t, err, transport)
	assert.Contains(t, err.Error(), "assist error [gemini-2.5-flash]")
	assert.False(t, a.Busy())
}

func TestRewriteRejectsReentry(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{text: "done", block: make(chan struct{}), started: make(chan struct{})}
	a := New(gen, Options{})

	result := make(chan error, 1)
	go func() {
		_, err := a.Rewrite(context.Background(), Request{})
		result <- err
	}()

	<-gen.started
	assert.True(t, a.Busy())
	_, err := a.Rewrite(context.Background(), Request{})
	require.ErrorIs(t, err, ErrBusy)

	close(gen.block)
	require.NoError(t, <-result)
	assert.False(t, a.Busy())
}

func TestRewriteHonoursTimeout(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{block: make(chan struct{})}
	a := New(gen, Options{Timeout: 10 * time.Millisecond})

	_, err := a.Rewrite(context.Background(), Request{})
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, a.Busy())
}

func TestParseTone(t *testing.T) {
	t.Parallel()

	tone, err := ParseTone("mysterious")
	require.NoError(t, err)
	assert.Equal(t, ToneMysterious, tone)

	_, err = ParseTone("sarcastic")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Professional")
}

func TestNewGeminiRequiresKey(t *testing.T) {
	t.Parallel()

	_, err := NewGemini(context.Background(), "", "")
	require.ErrorIs(t, err, ErrMissingCredential)
}
