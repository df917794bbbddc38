// SPDX-License-Identifier: EPL-2.0

package region

import (
	"bytes"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/ik5/wavsnip/audio"
	"github.com/ik5/wavsnip/command"
	"github.com/ik5/wavsnip/internal/audiotest"
)

var testInfo = audio.Info{Channels: 1, SampleRate: 1000, SampleWidth: 2, TotalFrames: 5000}

func newRegion(t *testing.T, start, end int, opts ...Option) (*Region, *audiotest.MemSource) {
	t.Helper()

	src := audiotest.NewMemSource(testInfo)
	r, err := New(testInfo, src, start, end, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	return r, src
}

func TestNew_Clamps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name               string
		start, end         int
		wantStart, wantEnd int
	}{
		{name: "inside", start: 100, end: 200, wantStart: 100, wantEnd: 200},
		{name: "whole file", start: 0, end: 5000, wantStart: 0, wantEnd: 5000},
		{name: "negative start", start: -50, end: 200, wantStart: 0, wantEnd: 200},
		{name: "end past file", start: 100, end: 9000, wantStart: 100, wantEnd: 5000},
		{name: "start after end", start: 300, end: 200, wantStart: 200, wantEnd: 200},
		{name: "both past file", start: 6000, end: 7000, wantStart: 5000, wantEnd: 5000},
		{name: "both negative", start: -10, end: -5, wantStart: 0, wantEnd: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r, _ := newRegion(t, tt.start, tt.end)
			if r.Start() != tt.wantStart || r.End() != tt.wantEnd {
				t.Errorf("New(%d, %d) = [%d-%d], want [%d-%d]",
					tt.start, tt.end, r.Start(), r.End(), tt.wantStart, tt.wantEnd)
			}

			if len(r.Bytes()) != r.Len()*testInfo.FrameSize() {
				t.Errorf("len(Bytes()) = %d, want %d", len(r.Bytes()), r.Len()*testInfo.FrameSize())
			}
		})
	}
}

func TestSet_Idempotent(t *testing.T) {
	t.Parallel()

	r, src := newRegion(t, 0, 5000)

	if err := r.Set(1200, 3400); err != nil {
		t.Fatal(err)
	}
	first := r.Bytes()

	if err := r.Set(1200, 3400); err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(first, r.Bytes()) {
		t.Error("Set() twice with the same bounds returned different bytes")
	}

	if !bytes.Equal(r.Bytes(), src.PCM[2400:6800]) {
		t.Error("Bytes() does not match the source slice")
	}
}

func TestSet_ReadErrorKeepsRegion(t *testing.T) {
	t.Parallel()

	r, src := newRegion(t, 10, 20)
	before := r.Bytes()

	errRead := errors.New("disk gone")
	src.Err = errRead

	if err := r.Set(100, 200); !errors.Is(err, errRead) {
		t.Fatalf("Set() error = %v, want %v", err, errRead)
	}

	if r.Start() != 10 || r.End() != 20 || !bytes.Equal(before, r.Bytes()) {
		t.Errorf("region changed after failed Set: %s", r)
	}
}

func TestNew_ReadError(t *testing.T) {
	t.Parallel()

	src := audiotest.NewMemSource(testInfo)
	src.Err = errors.New("unreadable")

	if _, err := New(testInfo, src, 0, 10); err == nil {
		t.Error("New() error = nil, want read error")
	}
}

func TestNudge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name               string
		side               command.Side
		seconds            float64
		wantStart, wantEnd int
	}{
		{name: "start later", side: command.Left, seconds: 0.5, wantStart: 1500, wantEnd: 3000},
		{name: "start earlier", side: command.Left, seconds: -0.25, wantStart: 750, wantEnd: 3000},
		{name: "start before file", side: command.Left, seconds: -5, wantStart: 0, wantEnd: 3000},
		{name: "start past end", side: command.Left, seconds: 3, wantStart: 3000, wantEnd: 3000},
		{name: "end later", side: command.Right, seconds: 1, wantStart: 1000, wantEnd: 4000},
		{name: "end past file", side: command.Right, seconds: 10, wantStart: 1000, wantEnd: 5000},
		{name: "end before start", side: command.Right, seconds: -2.5, wantStart: 500, wantEnd: 500},
		{name: "rounded", side: command.Right, seconds: 0.0016, wantStart: 1000, wantEnd: 3002},
		{name: "huge end", side: command.Right, seconds: 1e20, wantStart: 1000, wantEnd: 5000},
		{name: "huge negative end", side: command.Right, seconds: -1e20, wantStart: 0, wantEnd: 0},
		{name: "huge start", side: command.Left, seconds: 1e20, wantStart: 3000, wantEnd: 3000},
		{name: "huge negative start", side: command.Left, seconds: -1e20, wantStart: 0, wantEnd: 3000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r, _ := newRegion(t, 1000, 3000)
			if err := r.Nudge(tt.side, tt.seconds); err != nil {
				t.Fatalf("Nudge() error = %v", err)
			}

			if r.Start() != tt.wantStart || r.End() != tt.wantEnd {
				t.Errorf("Nudge(%s, %v) = [%d-%d], want [%d-%d]",
					tt.side, tt.seconds, r.Start(), r.End(), tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestNudge_RoundTrip(t *testing.T) {
	t.Parallel()

	r, _ := newRegion(t, 2000, 4000)

	if err := r.Nudge(command.Left, -0.5); err != nil {
		t.Fatal(err)
	}

	if err := r.Nudge(command.Left, 0.5); err != nil {
		t.Fatal(err)
	}

	if r.Start() != 2000 {
		t.Errorf("Start() after -0.5/+0.5 = %d, want 2000", r.Start())
	}
}

func TestApply_HugeMagnitude(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text               string
		wantStart, wantEnd int
	}{
		{"r99999999999999999999", 100, 1000},
		{"l99999999999999999999", 500, 500},
		{"l-99999999999999999999", 0, 500},
	}

	info := audio.Info{Channels: 1, SampleRate: 8000, SampleWidth: 2, TotalFrames: 1000}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			r, err := New(info, audiotest.NewMemSource(info), 100, 500)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}

			cmd, err := command.Parse(tt.text)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.text, err)
			}

			if err := r.Apply(cmd); err != nil {
				t.Fatalf("Apply() error = %v", err)
			}

			if r.Start() != tt.wantStart || r.End() != tt.wantEnd {
				t.Errorf("Apply(%s) = [%d-%d], want [%d-%d]",
					tt.text, r.Start(), r.End(), tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestApply(t *testing.T) {
	t.Parallel()

	r, _ := newRegion(t, 1000, 2000)

	if err := r.Apply(command.Command{Side: command.Right, Delta: -0.5}); err != nil {
		t.Fatal(err)
	}

	if r.End() != 1500 {
		t.Errorf("End() = %d, want 1500", r.End())
	}
}

func TestRandom_KeepsLengthAndBounds(t *testing.T) {
	t.Parallel()

	r, src := newRegion(t, 0, 1234, WithRand(rand.New(rand.NewPCG(1, 2))))

	for range 500 {
		if err := r.Random(); err != nil {
			t.Fatalf("Random() error = %v", err)
		}

		if r.Len() != 1234 {
			t.Fatalf("Len() = %d, want 1234", r.Len())
		}

		if r.Start() < 0 || r.End() > testInfo.TotalFrames {
			t.Fatalf("region %s outside file", r)
		}

		fs := testInfo.FrameSize()
		if !bytes.Equal(r.Bytes(), src.PCM[r.Start()*fs:r.End()*fs]) {
			t.Fatalf("Bytes() stale after Random(): %s", r)
		}
	}
}

func TestRandom_CannotPlace(t *testing.T) {
	t.Parallel()

	r, src := newRegion(t, 0, 5000)
	reads := src.Reads

	err := r.Random()
	if !errors.Is(err, ErrCannotPlace) {
		t.Fatalf("Random() error = %v, want ErrCannotPlace", err)
	}

	if r.Start() != 0 || r.End() != 5000 {
		t.Errorf("region changed: %s", r)
	}

	if src.Reads != reads {
		t.Error("Random() reread the source although it could not place the region")
	}
}

func TestRegion_Times(t *testing.T) {
	t.Parallel()

	r, _ := newRegion(t, 1500, 4000)

	if r.StartTime() != 1500*time.Millisecond {
		t.Errorf("StartTime() = %v, want 1.5s", r.StartTime())
	}

	if r.EndTime() != 4*time.Second {
		t.Errorf("EndTime() = %v, want 4s", r.EndTime())
	}

	if r.Duration() != 2500*time.Millisecond {
		t.Errorf("Duration() = %v, want 2.5s", r.Duration())
	}

	if got, want := r.String(), "[1500-4000] 1.500s-4.000s"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestCanPlace(t *testing.T) {
	t.Parallel()

	r, _ := newRegion(t, 0, 4999)
	if !r.CanPlace() {
		t.Error("CanPlace() = false for a region one frame shorter than the file")
	}

	r.Set(0, 5000)
	if r.CanPlace() {
		t.Error("CanPlace() = true for a whole-file region")
	}
}
