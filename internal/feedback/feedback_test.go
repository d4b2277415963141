package feedback

import (
	"math"
	"testing"
	"time"

	"github.com/faiface/beep"

	"github.com/iburimskiy/svg-pan/internal/gesture"
)

func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 64)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestToneLength(t *testing.T) {
	sr := beep.SampleRate(8000)
	got := drain(Tone(sr, 440, 25*time.Millisecond))
	if want := sr.N(25 * time.Millisecond); len(got) != want {
		t.Fatalf("samples = %d, want %d", len(got), want)
	}
}

func TestToneIsBoundedAndDecays(t *testing.T) {
	sr := beep.SampleRate(8000)
	got := drain(Tone(sr, 440, 50*time.Millisecond))
	peak := func(from, to int) float64 {
		m := 0.0
		for _, s := range got[from:to] {
			m = math.Max(m, math.Abs(s[0]))
			if s[0] != s[1] {
				t.Fatalf("channels differ: %v", s)
			}
		}
		return m
	}
	q := len(got) / 4
	head, tail := peak(0, q), peak(3*q, len(got))
	if head > 0.3 {
		t.Errorf("peak %v exceeds 0.3", head)
	}
	if tail >= head {
		t.Errorf("tone does not decay: head=%v tail=%v", head, tail)
	}
}

func TestTickFrequency(t *testing.T) {
	start, ok := tickFrequency(gesture.Started)
	if !ok {
		t.Fatal("start should tick")
	}
	end, ok := tickFrequency(gesture.Ended)
	if !ok || end >= start {
		t.Errorf("end tick %v should be lower than start %v", end, start)
	}
	for _, ev := range []gesture.Event{gesture.None, gesture.Panned, gesture.Reset} {
		if _, ok := tickFrequency(ev); ok {
			t.Errorf("%v should be silent", ev)
		}
	}
}

func TestDisabledPlayerIsSilent(t *testing.T) {
	p, err := New(false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if p.Enabled() {
		t.Error("disabled player reports enabled")
	}
	p.Play(gesture.Started)
	p.Close()

	var nilPlayer *Player
	nilPlayer.Play(gesture.Ended)
	nilPlayer.Close()
}
