package tui

import (
	"fmt"
	"testing"
	"time"

	"github.com/kudoshq/kudoticker/internal/recognition"
)

func makeRecognitions(n int) []recognition.Recognition {
	records := make([]recognition.Recognition, n)
	for i := range records {
		records[i] = recognition.Recognition{
			Amount: 10 + i,
			Reason: fmt.Sprintf("Reason %d", i),
			Giver:  recognition.Person{Name: fmt.Sprintf("Giver %d", i)},
			Receiver: recognition.Person{
				Name:       fmt.Sprintf("Receiver %d", i),
				Department: "Engineering",
			},
		}
	}
	return records
}

func TestDisplayList_Length(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 0},
		{1, 2},
		{2, 4},
		{3, 6},
		{4, 7},
		{10, 13},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("n=%d", tt.n), func(t *testing.T) {
			got := displayList(makeRecognitions(tt.n))
			if len(got) != tt.want {
				t.Errorf("len(displayList) = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestDisplayList_PrefixMatchesHead(t *testing.T) {
	records := makeRecognitions(5)
	got := displayList(records)

	for i := 0; i < loopPrefix; i++ {
		if got[len(records)+i] != records[i] {
			t.Errorf("appended element %d = %+v, want head element %+v",
				i, got[len(records)+i], records[i])
		}
	}
}

func TestDisplayList_ShortInput(t *testing.T) {
	records := makeRecognitions(2)
	got := displayList(records)

	// With fewer than loopPrefix records, the whole sequence is duplicated.
	if len(got) != 4 {
		t.Fatalf("len(displayList) = %d, want 4", len(got))
	}
	if got[2] != records[0] || got[3] != records[1] {
		t.Error("duplicated prefix does not match the input head")
	}
}

func TestAdvance(t *testing.T) {
	tests := []struct {
		speed   float64
		elapsed time.Duration
		want    float64
	}{
		{30, 500 * time.Millisecond, 15},
		{30, 0, 0},
		{2, time.Second, 2},
		{2, 100 * time.Millisecond, 0.2},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v@%v", tt.speed, tt.elapsed), func(t *testing.T) {
			got := advance(tt.speed, tt.elapsed)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("advance(%v, %v) = %v, want %v", tt.speed, tt.elapsed, got, tt.want)
			}
		})
	}
}

func TestStep(t *testing.T) {
	tests := []struct {
		name          string
		offset, adv   float64
		contentExtent int
		want          float64
	}{
		{"advances", 0, 1.5, 30, 1.5},
		{"accumulates", 10.25, 0.5, 30, 10.75},
		{"wraps at extent", 29.5, 0.5, 30, 0},
		{"wraps past extent", 29.5, 3, 30, 0},
		{"zero advance holds", 12, 0, 30, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := step(tt.offset, tt.adv, tt.contentExtent); got != tt.want {
				t.Errorf("step(%v, %v, %d) = %v, want %v",
					tt.offset, tt.adv, tt.contentExtent, got, tt.want)
			}
		})
	}
}

func TestStep_NeverLeavesRange(t *testing.T) {
	const extent = 30
	offset := 0.0
	for i := 0; i < 1000; i++ {
		offset = step(offset, 0.7, extent)
		if offset < 0 || offset >= extent {
			t.Fatalf("iteration %d: offset %v escaped [0, %d)", i, offset, extent)
		}
	}
}

func TestStep_StrictlyIncreasesUntilWrap(t *testing.T) {
	const extent = 9
	offset := 0.0
	wrapped := false
	for i := 0; i < 100; i++ {
		next := step(offset, 0.4, extent)
		if next == 0 && offset > 0 {
			wrapped = true
			break
		}
		if next <= offset {
			t.Fatalf("iteration %d: offset did not strictly increase (%v -> %v)", i, offset, next)
		}
		offset = next
	}
	if !wrapped {
		t.Error("offset never wrapped to 0")
	}
}
