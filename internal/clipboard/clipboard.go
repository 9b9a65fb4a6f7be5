// Package clipboard copies text to the system clipboard or, when that is
// unavailable, to the terminal selection via OSC 52.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	sysclip "github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// Clipboard modes accepted by Select.
const (
	ModeAuto   = "auto"
	ModeNative = "native"
	ModeOSC52  = "osc52"
)

// ErrUnsupported is returned by Native when no clipboard utility is available.
var ErrUnsupported = errors.New("system clipboard is not supported")

// Writer copies text somewhere the user can paste it from.
type Writer interface {
	Write(text string) error
	Name() string
}

// Native writes to the system clipboard.
type Native struct {
	writeAll    func(string) error
	unsupported bool
}

// NewNative returns a system clipboard writer.
func NewNative() *Native {
	return &Native{writeAll: sysclip.WriteAll, unsupported: sysclip.Unsupported}
}

// Write implements Writer.
func (n *Native) Write(text string) error {
	if n.unsupported {
		return ErrUnsupported
	}
	if err := n.writeAll(text); err != nil {
		return fmt.Errorf("failed to write system clipboard: %w", err)
	}
	return nil
}

// Name implements Writer.
func (n *Native) Name() string { return ModeNative }

// OSC52 asks the terminal to place text in its selection.
type OSC52 struct {
	out    io.Writer
	getenv func(string) string
}

// NewOSC52 returns a writer emitting escape sequences to out.
func NewOSC52(out io.Writer) *OSC52 {
	return &OSC52{out: out, getenv: os.Getenv}
}

// Write implements Writer.
func (o *OSC52) Write(text string) error {
	seq := osc52.New(text)
	switch {
	case o.getenv("TMUX") != "":
		seq = seq.Tmux()
	case strings.HasPrefix(o.getenv("TERM"), "screen") || o.getenv("STY") != "":
		seq = seq.Screen()
	}
	if _, err := seq.WriteTo(o.out); err != nil {
		return fmt.Errorf("failed to write osc52 sequence: %w", err)
	}
	return nil
}

// Name implements Writer.
func (o *OSC52) Name() string { return ModeOSC52 }

// Fallback tries Primary and uses Secondary when it fails.
type Fallback struct {
	Primary   Writer
	Secondary Writer
	// OnFallback, when set, observes the primary failure.
	OnFallback func(err error)
}

// Write implements Writer.
func (f *Fallback) Write(text string) error {
	err := f.Primary.Write(text)
	if err == nil {
		return nil
	}
	if f.OnFallback != nil {
		f.OnFallback(err)
	}
	if serr := f.Secondary.Write(text); serr != nil {
		return errors.Join(err, serr)
	}
	return nil
}

// Name implements Writer.
func (f *Fallback) Name() string {
	return f.Primary.Name() + "+" + f.Secondary.Name()
}

// Select builds a writer for mode. In auto mode the system clipboard is used
// when detected, with OSC 52 as the fallback.
func Select(mode string, out io.Writer) (Writer, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", ModeAuto:
		native := NewNative()
		if native.unsupported {
			return NewOSC52(out), nil
		}
		return &Fallback{Primary: native, Secondary: NewOSC52(out)}, nil
	case ModeNative:
		return NewNative(), nil
	case ModeOSC52:
		return NewOSC52(out), nil
	default:
		return nil, fmt.Errorf("unknown clipboard mode %q (expected auto, native or osc52)", mode)
	}
}
