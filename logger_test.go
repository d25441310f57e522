package bezier

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNopHandler(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("nopHandler.Enabled(%v) = true, want false", level)
		}
	}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("nopHandler.Handle() = %v, want nil", err)
	}
	if _, ok := h.WithAttrs([]slog.Attr{slog.String("key", "val")}).(nopHandler); !ok {
		t.Error("nopHandler.WithAttrs() didn't return a nopHandler")
	}
	if _, ok := h.WithGroup("group").(nopHandler); !ok {
		t.Error("nopHandler.WithGroup() didn't return a nopHandler")
	}
}

func TestSetLoggerNilRestoresSilent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(slog.Default())
	SetLogger(nil)
	l := Logger()
	if l == nil {
		t.Fatal("SetLogger(nil) should set a nop logger, not nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should produce a disabled logger")
	}
}

func TestCalculateLogs(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	c := New[float64](10, 3)
	c.Push(NewMirrored(Pt(-1.0, -1.0), Pt(0.0, 0.0)))
	c.Push(NewMirrored(Pt(5.0, -1.0), Pt(6.0, 0.0)))
	c.Calculate()
	if err := c.KnotInsert(0.5); err != nil {
		t.Fatal(err)
	}
	c.Calculate()

	out := buf.String()
	for _, want := range []string{
		`msg="calculated curve" segments=1 ignored=0 recomputed=1 points=10`,
		`msg="inserted knot" segment=0 t=0.5`,
		`msg="calculated curve" segments=2 ignored=0 recomputed=2 points=20`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output doesn't contain %q:\n%s", want, out)
		}
	}
}
