package raymarch

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gogpu/gputypes"
	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/raymarch/scene"
)

// ErrInvalidOptions is returned by LoadOptions when a value is out of range.
var ErrInvalidOptions = errors.New("raymarch: invalid options")

// PowerPreference selects which adapter is requested.
type PowerPreference uint8

// Adapter preferences.
const (
	// PowerHighPerformance prefers a discrete GPU.
	PowerHighPerformance PowerPreference = iota
	// PowerLow prefers an integrated GPU.
	PowerLow
)

func (p PowerPreference) String() string {
	if p == PowerLow {
		return "low-power"
	}
	return "high-performance"
}

// MarshalText implements encoding.TextMarshaler.
func (p PowerPreference) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *PowerPreference) UnmarshalText(text []byte) error {
	switch string(text) {
	case "high-performance":
		*p = PowerHighPerformance
	case "low-power":
		*p = PowerLow
	default:
		return fmt.Errorf("%w: power preference %q", ErrInvalidOptions, text)
	}
	return nil
}

// PresentMode selects how finished frames reach the screen.
type PresentMode uint8

// Present modes.
const (
	// PresentFifo waits for vertical blank. Always supported.
	PresentFifo PresentMode = iota
	// PresentMailbox replaces the queued frame without tearing.
	PresentMailbox
	// PresentImmediate presents at once and may tear.
	PresentImmediate
)

var presentModeNames = [...]string{"fifo", "mailbox", "immediate"}

func (m PresentMode) String() string {
	if int(m) < len(presentModeNames) {
		return presentModeNames[m]
	}
	return fmt.Sprintf("PresentMode(%d)", uint8(m))
}

// MarshalText implements encoding.TextMarshaler.
func (m PresentMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *PresentMode) UnmarshalText(text []byte) error {
	for i, name := range presentModeNames {
		if name == string(text) {
			*m = PresentMode(i)
			return nil
		}
	}
	return fmt.Errorf("%w: present mode %q", ErrInvalidOptions, text)
}

// Options configures the window, the adapter request and the initial scene.
type Options struct {
	Title           string          `toml:"title"`
	Width           uint32          `toml:"width"`
	Height          uint32          `toml:"height"`
	PowerPreference PowerPreference `toml:"power_preference"`
	PresentMode     PresentMode     `toml:"present_mode"`

	// RequiredFeatures and RequiredLimits are passed to the adapter as is.
	RequiredFeatures gputypes.Features `toml:"-"`
	RequiredLimits   gputypes.Limits   `toml:"-"`

	Camera scene.CameraData `toml:"camera"`
	Scene  scene.GuiData    `toml:"scene"`
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Title:           "Ray Marching Fractals",
		Width:           1280,
		Height:          720,
		PowerPreference: PowerHighPerformance,
		PresentMode:     PresentFifo,
		RequiredLimits:  gputypes.DefaultLimits(),
		Camera:          scene.DefaultCamera(),
		Scene:           scene.DefaultGui(),
	}
}

// Option modifies Options.
//
// Example:
//
//	opts := raymarch.NewOptions(
//		raymarch.WithSize(1920, 1080),
//		raymarch.WithPowerPreference(raymarch.PowerLow),
//	)
type Option func(*Options)

// NewOptions applies opts over DefaultOptions.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(o *Options) {
		o.Title = title
	}
}

// WithSize sets the initial window size. Zero dimensions are ignored.
func WithSize(width, height uint32) Option {
	return func(o *Options) {
		if width > 0 && height > 0 {
			o.Width, o.Height = width, height
		}
	}
}

// WithPowerPreference sets the adapter preference.
func WithPowerPreference(p PowerPreference) Option {
	return func(o *Options) {
		o.PowerPreference = p
	}
}

// WithPresentMode sets the surface present mode.
func WithPresentMode(m PresentMode) Option {
	return func(o *Options) {
		o.PresentMode = m
	}
}

// WithFeatures sets the device features to request.
func WithFeatures(f gputypes.Features) Option {
	return func(o *Options) {
		o.RequiredFeatures = f
	}
}

// WithLimits sets the device limits to request.
func WithLimits(l gputypes.Limits) Option {
	return func(o *Options) {
		o.RequiredLimits = l
	}
}

// WithScene sets the initial panel settings.
func WithScene(g scene.GuiData) Option {
	return func(o *Options) {
		o.Scene = g.Clamped()
	}
}

// WithCamera sets the initial camera. The distance is raised to
// MinDistance and the angles are normalized.
func WithCamera(c scene.CameraData) Option {
	return func(o *Options) {
		c.Zoom(0)
		c.Rotate(0, 0)
		o.Camera = c
	}
}

// LoadOptions decodes TOML from r over DefaultOptions. Keys that are absent
// keep their defaults; scene values are clamped to their editable ranges.
func LoadOptions(r io.Reader) (Options, error) {
	o := DefaultOptions()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&o); err != nil {
		return Options{}, fmt.Errorf("raymarch: decode options: %w", err)
	}
	if err := o.validate(); err != nil {
		return Options{}, err
	}
	o.Scene = o.Scene.Clamped()
	// Standardizes phi and clamps theta.
	o.Camera.Rotate(0, 0)
	return o, nil
}

// LoadOptionsFile reads options from the TOML file at path.
func LoadOptionsFile(path string) (Options, error) {
	f, err := os.Open(path)
	if err != nil {
		return Options{}, fmt.Errorf("raymarch: open options: %w", err)
	}
	defer f.Close()
	return LoadOptions(f)
}

func (o Options) validate() error {
	if o.Width == 0 || o.Height == 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidOptions, o.Width, o.Height)
	}
	if o.Camera.MinDistance <= 0 {
		return fmt.Errorf("%w: camera min_distance %g must be positive", ErrInvalidOptions, o.Camera.MinDistance)
	}
	if o.Camera.OriginDistance < o.Camera.MinDistance {
		return fmt.Errorf("%w: camera origin_distance %g is below min_distance %g",
			ErrInvalidOptions, o.Camera.OriginDistance, o.Camera.MinDistance)
	}
	return nil
}
