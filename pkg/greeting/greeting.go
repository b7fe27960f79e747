// Package greeting renders the rainbow "Hello, World!" greeting.
package greeting

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/gridctl/greet/pkg/terminal"
)

// DefaultDelay is the pause after each message character.
const DefaultDelay = 100 * time.Millisecond

// ErrNoKeyReader is returned when waiting is enabled but no KeyReader was set.
var ErrNoKeyReader = errors.New("no key reader configured")

// Screen is the terminal surface the greeting is drawn on.
type Screen interface {
	Write(p []byte) (int, error)
	Clear() error
	SetForeground(c terminal.Color) error
	SetBackground(c terminal.Color) error
	Reset() error
}

//go:generate mockgen -destination=mock_key_reader_test.go -package=greeting . KeyReader

// KeyReader blocks until a single keypress has been received.
type KeyReader interface {
	ReadKey() error
}

// Logger receives debug diagnostics while rendering.
type Logger interface {
	Debug(msg string, keyvals ...any)
}

// Renderer draws the greeting on a Screen.
type Renderer struct {
	screen Screen
	keys   KeyReader
	logger Logger
	now    func() time.Time
	user   func() string
	pick   func(n int) int
	sleep  func(time.Duration)
	delay  time.Duration
	wait   bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithKeyReader sets the source of the final keypress.
func WithKeyReader(k KeyReader) Option {
	return func(r *Renderer) { r.keys = k }
}

// WithLogger sets the debug logger.
func WithLogger(l Logger) Option {
	return func(r *Renderer) { r.logger = l }
}

// WithClock sets the time source.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) { r.now = now }
}

// WithUser sets the function returning the displayed user name.
func WithUser(user func() string) Option {
	return func(r *Renderer) { r.user = user }
}

// WithPicker sets the random source. pick(n) must return a value in [0, n).
func WithPicker(pick func(n int) int) Option {
	return func(r *Renderer) { r.pick = pick }
}

// WithSleeper replaces time.Sleep between characters.
func WithSleeper(sleep func(time.Duration)) Option {
	return func(r *Renderer) { r.sleep = sleep }
}

// WithDelay sets the pause after each message character.
func WithDelay(d time.Duration) Option {
	return func(r *Renderer) { r.delay = d }
}

// WithWait controls whether Render ends by waiting for a keypress.
func WithWait(wait bool) Option {
	return func(r *Renderer) { r.wait = wait }
}

// New creates a Renderer drawing on screen.
func New(screen Screen, opts ...Option) *Renderer {
	r := &Renderer{
		screen: screen,
		keys:   noKeyReader{},
		logger: nopLogger{},
		now:    time.Now,
		user:   CurrentUser,
		pick:   rand.Intn,
		sleep:  time.Sleep,
		delay:  DefaultDelay,
		wait:   true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render draws the full greeting and, if waiting is enabled, blocks until a
// key is pressed. The first failing terminal operation aborts the sequence.
func (r *Renderer) Render() error {
	if err := r.screen.Clear(); err != nil {
		return fmt.Errorf("clearing screen: %w", err)
	}
	if err := r.screen.SetBackground(BackgroundColor); err != nil {
		return fmt.Errorf("setting background: %w", err)
	}

	if err := r.printBorder(""); err != nil {
		return err
	}

	if err := r.printWelcome(); err != nil {
		return err
	}

	if err := r.printMessage(); err != nil {
		return err
	}

	if err := r.printArt(); err != nil {
		return err
	}

	if err := r.printBorder("\n"); err != nil {
		return err
	}

	if err := r.screen.Reset(); err != nil {
		return fmt.Errorf("resetting colors: %w", err)
	}

	if !r.wait {
		return nil
	}

	if err := r.printf("\n%s\n", ExitPrompt); err != nil {
		return err
	}
	r.logger.Debug("waiting for keypress")
	if err := r.keys.ReadKey(); err != nil {
		return fmt.Errorf("waiting for keypress: %w", err)
	}
	return nil
}

func (r *Renderer) printBorder(prefix string) error {
	if err := r.screen.SetForeground(BorderColor); err != nil {
		return fmt.Errorf("setting border color: %w", err)
	}
	return r.printf("%s%s\n", prefix, Border)
}

func (r *Renderer) printWelcome() error {
	if err := r.screen.SetForeground(TextColor); err != nil {
		return fmt.Errorf("setting text color: %w", err)
	}

	user := r.user()
	ts := r.now().UTC().Format(TimeLayout)
	r.logger.Debug("greeting user", "user", user, "time", ts)

	if err := r.printf("\nWelcome, %s!\n", user); err != nil {
		return err
	}
	return r.printf("It's %s (UTC)\n\n", ts)
}

func (r *Renderer) printMessage() error {
	chars := Characters(Message)
	r.logger.Debug("printing message", "characters", len(chars), "delay", r.delay)

	for _, ch := range chars {
		color := Rainbow[r.pick(len(Rainbow))]
		if err := r.screen.SetForeground(color); err != nil {
			return fmt.Errorf("setting message color: %w", err)
		}
		if err := r.printf("%s", ch); err != nil {
			return err
		}
		r.sleep(r.delay)
	}
	return nil
}

func (r *Renderer) printArt() error {
	if err := r.screen.SetForeground(ArtColor); err != nil {
		return fmt.Errorf("setting art color: %w", err)
	}
	if err := r.printf("\n\n"); err != nil {
		return err
	}
	for _, line := range Art {
		if err := r.printf("%s\n", line); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) printf(format string, args ...any) error {
	if _, err := fmt.Fprintf(r.screen, format, args...); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

type noKeyReader struct{}

func (noKeyReader) ReadKey() error { return ErrNoKeyReader }

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
