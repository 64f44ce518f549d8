package bubble

import (
	"errors"
	"io"
	"slices"
	"strings"
	"testing"
)

// memBackend records commands and writes their names on WriteTo.
type memBackend struct {
	Recorder
	width, height int
	begun, ended  bool
}

func (m *memBackend) Begin(width, height int) error {
	m.width, m.height = width, height
	m.begun = true
	return nil
}

func (m *memBackend) End() error {
	if !m.begun {
		return ErrNotBegun
	}
	m.ended = true
	return nil
}

func (m *memBackend) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	for _, c := range m.Commands() {
		sb.WriteString(c.Type().String())
		sb.WriteByte('\n')
	}
	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}

func TestCommandTypeString(t *testing.T) {
	tests := []struct {
		ct   CommandType
		want string
	}{
		{CmdMoveTo, "MoveTo"},
		{CmdLineTo, "LineTo"},
		{CmdArcTo, "ArcTo"},
		{CmdQuadTo, "QuadTo"},
		{CmdClose, "Close"},
		{CmdFillStroke, "FillStroke"},
		{CommandType(254), "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.ct.String(); got != tt.want {
				t.Errorf("CommandType.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRegistry(t *testing.T) {
	const name = "mem-test"
	RegisterBackend(name, func() Backend { return &memBackend{} })
	t.Cleanup(func() { UnregisterBackend(name) })

	if !IsRegistered(name) {
		t.Fatalf("IsRegistered(%q) = false", name)
	}
	if !slices.Contains(Backends(), name) {
		t.Errorf("Backends() = %v, missing %q", Backends(), name)
	}

	b, err := NewBackend(name)
	if err != nil {
		t.Fatalf("NewBackend() error = %v", err)
	}
	if err := Render(b, 200, 100, NewStyle()); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	m := b.(*memBackend)
	if m.width != 200 || m.height != 100 || !m.ended {
		t.Errorf("backend state = %+v", m)
	}

	var sb strings.Builder
	if _, err := b.WriteTo(&sb); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	want := "MoveTo\nLineTo\nArcTo\nLineTo\nArcTo\nLineTo\nQuadTo\nQuadTo\nArcTo\nLineTo\nArcTo\nClose\nFillStroke\n"
	if sb.String() != want {
		t.Errorf("recorded sequence =\n%s\nwant\n%s", sb.String(), want)
	}
}

func TestNewBackendUnknown(t *testing.T) {
	_, err := NewBackend("no-such-backend")
	if !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("NewBackend() error = %v, want ErrUnknownBackend", err)
	}
}

func TestRegisterBackendPanics(t *testing.T) {
	const name = "mem-dup"
	RegisterBackend(name, func() Backend { return &memBackend{} })
	t.Cleanup(func() { UnregisterBackend(name) })

	tests := []struct {
		name    string
		backend string
		factory BackendFactory
	}{
		{"duplicate", name, func() Backend { return &memBackend{} }},
		{"nil factory", "mem-nil", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("RegisterBackend() did not panic")
				}
			}()
			RegisterBackend(tt.backend, tt.factory)
		})
	}
}

func TestRecorderReset(t *testing.T) {
	rec := NewRecorder()
	rec.MoveTo(1, 2)
	rec.ClosePath()
	rec.Reset()
	if n := len(rec.Commands()); n != 0 {
		t.Errorf("len(Commands()) after Reset = %d, want 0", n)
	}
}
