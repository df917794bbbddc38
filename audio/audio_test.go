// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestInfo_Derived(t *testing.T) {
	t.Parallel()

	info := Info{Channels: 2, SampleRate: 8000, SampleWidth: 2, TotalFrames: 16000}

	if got := info.FrameSize(); got != 4 {
		t.Errorf("FrameSize() = %d, want 4", got)
	}

	if got := info.BitDepth(); got != 16 {
		t.Errorf("BitDepth() = %d, want 16", got)
	}

	if got := info.Duration(); got != 2*time.Second {
		t.Errorf("Duration() = %v, want 2s", got)
	}

	if got := info.FrameTime(4000); got != 500*time.Millisecond {
		t.Errorf("FrameTime(4000) = %v, want 500ms", got)
	}

	if got := info.Seconds(2000); got != 0.25 {
		t.Errorf("Seconds(2000) = %v, want 0.25", got)
	}
}

func TestInfo_FramesIn(t *testing.T) {
	t.Parallel()

	info := Info{Channels: 1, SampleRate: 44100, SampleWidth: 2, TotalFrames: 44100}

	tests := []struct {
		seconds float64
		want    int
	}{
		{0, 0},
		{1, 44100},
		{-0.5, -22050},
		{0.00001, 0},
		{0.00002, 1},
		{2, 44100},
		{-3, -44100},
		{1e20, 44100},
		{-1e20, -44100},
		{math.Inf(1), 44100},
		{math.NaN(), 0},
	}

	for _, tt := range tests {
		if got := info.FramesIn(tt.seconds); got != tt.want {
			t.Errorf("FramesIn(%v) = %d, want %d", tt.seconds, got, tt.want)
		}
	}
}

func TestInfo_ZeroRate(t *testing.T) {
	t.Parallel()

	var info Info
	if got := info.FrameTime(100); got != 0 {
		t.Errorf("FrameTime() with zero rate = %v, want 0", got)
	}

	if got := info.Seconds(100); got != 0 {
		t.Errorf("Seconds() with zero rate = %v, want 0", got)
	}
}

func TestInfo_Validate(t *testing.T) {
	t.Parallel()

	valid := Info{Channels: 1, SampleRate: 8000, SampleWidth: 2, TotalFrames: 10}

	tests := []struct {
		name    string
		mutate  func(*Info)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Info) {}},
		{name: "empty file", mutate: func(i *Info) { i.TotalFrames = 0 }},
		{name: "no channels", mutate: func(i *Info) { i.Channels = 0 }, wantErr: true},
		{name: "no rate", mutate: func(i *Info) { i.SampleRate = 0 }, wantErr: true},
		{name: "wide samples", mutate: func(i *Info) { i.SampleWidth = 8 }, wantErr: true},
		{name: "negative frames", mutate: func(i *Info) { i.TotalFrames = -1 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			info := valid
			tt.mutate(&info)

			err := info.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInfo) {
					t.Errorf("Validate() error = %v, want ErrInvalidInfo", err)
				}
				return
			}

			if err != nil {
				t.Errorf("Validate() error = %v, want nil", err)
			}
		})
	}
}
