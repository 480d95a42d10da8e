// © 2026 The samecheck authors. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package logger

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"testing"
)

func TestLogfWriter(t *testing.T) {
	var (
		logged  bool
		message string
	)
	logf := func(format string, args ...any) {
		logged = true
		message = fmt.Sprintf(format, args...)
	}
	Logf(logf).Write([]byte("hello"))
	if !logged {
		t.Fatal("Logf writer didn't log")
	}
	if message != "hello" {
		t.Fatalf("want %q, got %q", "hello", message)
	}
}

func TestContextRoundTrip(t *testing.T) {
	l := New(nil)
	ctx := Put(context.Background(), l)
	if Get(ctx) != l {
		t.Fatal("Get didn't return the logger put into the context")
	}
}

func TestGetWithoutLogger(t *testing.T) {
	// A bare context yields a usable logger that discards everything.
	l := Get(context.Background())
	if l == nil {
		t.Fatal("Get returned nil")
	}
	Info(context.Background(), "goes nowhere")
}

func TestAttachedHandlerReceivesRecords(t *testing.T) {
	var buf bytes.Buffer
	l := New(nil)
	l.Attach(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: l.Level}))
	ctx := Put(context.Background(), l)

	Info(ctx, "audited", slog.Int("files", 3))
	if !strings.Contains(buf.String(), "audited") || !strings.Contains(buf.String(), "files=3") {
		t.Fatalf("record not handled: %q", buf.String())
	}

	buf.Reset()
	Debug(ctx, "hidden at info level")
	if buf.Len() != 0 {
		t.Fatalf("debug record must be filtered at info level: %q", buf.String())
	}

	l.Level.Set(slog.LevelDebug)
	Debug(ctx, "visible at debug level")
	if !strings.Contains(buf.String(), "visible at debug level") {
		t.Fatalf("debug record missing after lowering the level: %q", buf.String())
	}
}

func TestFanOut(t *testing.T) {
	var a, b bytes.Buffer
	l := New(nil)
	l.Attach(slog.NewTextHandler(&a, &slog.HandlerOptions{Level: l.Level}))
	l.Attach(slog.NewTextHandler(&b, &slog.HandlerOptions{Level: l.Level}))

	Warn(Put(context.Background(), l), "both")
	if !strings.Contains(a.String(), "both") || !strings.Contains(b.String(), "both") {
		t.Fatalf("record not fanned out: a=%q b=%q", a.String(), b.String())
	}
}
