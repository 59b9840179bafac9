package analysis

import (
	"math"
	"strings"
	"testing"

	"github.com/san-kum/freefall/internal/dynamo"
)

func testSeries() dynamo.SampleSeries {
	var s dynamo.SampleSeries
	for i := 1; i <= 10; i++ {
		s.Append(dynamo.Sample{
			Time:     float64(i),
			Position: 100 - float64(i*10),
			Velocity: -float64(i),
		})
	}
	return s
}

func TestNewPhasePortrait(t *testing.T) {
	p := NewPhasePortrait(testSeries())
	if len(p.Points) != 10 {
		t.Fatalf("expected 10 points, got %d", len(p.Points))
	}
	if p.Points[0].X != 1 || p.Points[0].Y != 90 {
		t.Errorf("first point: got %+v", p.Points[0])
	}
}

func TestPhasePortraitASCII(t *testing.T) {
	out := NewPhasePortrait(testSeries()).ASCII(40, 12)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 12 {
		t.Fatalf("expected 12 rows, got %d", len(lines))
	}
	if !strings.Contains(out, "•") {
		t.Error("expected plotted points")
	}
}

func TestPhasePortraitASCIIEmpty(t *testing.T) {
	var p *PhasePortrait
	if p.ASCII(40, 10) != "" {
		t.Error("nil portrait should render empty")
	}
	if NewPhasePortrait(dynamo.SampleSeries{}).ASCII(40, 10) != "" {
		t.Error("empty portrait should render empty")
	}
}

func TestApproachTime(t *testing.T) {
	s := testSeries()

	got, ok := ApproachTime(s, 10, 0.5)
	if !ok || got != 5 {
		t.Errorf("expected t=5, got %v (ok=%v)", got, ok)
	}

	if _, ok := ApproachTime(s, 100, 0.99); ok {
		t.Error("speed never reaches 99 m/s")
	}
	if _, ok := ApproachTime(s, math.Inf(1), 0.5); ok {
		t.Error("infinite terminal velocity is never approached")
	}
}
