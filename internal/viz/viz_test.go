package viz

import (
	"bytes"
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/freefall/internal/dynamo"
)

func testResult(model string, n int) *dynamo.Result {
	res := &dynamo.Result{Model: model, Metrics: map[string]float64{"peak_speed": 3}, Terminated: dynamo.TerminatedGround}
	for i := 0; i < n; i++ {
		res.Series.Append(dynamo.Sample{
			Time:     float64(i) * 0.1,
			Position: float64(n - i),
			Velocity: -float64(i),
			NetForce: 1 / float64(i+1),
		})
	}
	return res
}

func TestFormatSample(t *testing.T) {
	s := dynamo.Sample{Time: 0.005, Position: 399.9995095, Velocity: -0.0981, NetForce: 0.566037}
	expected := "Time: 0.005 Height: 400 NetForce: 0.566 Velocity: 0.098 "
	if got := FormatSample(s); got != expected {
		t.Errorf("FormatSample() = %q, want %q", got, expected)
	}
}

func TestConsole(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, "[constant] ")
	c.OnSample(dynamo.Sample{Time: 1, Position: 2, Velocity: -3, NetForce: 4})
	c.OnSample(dynamo.Sample{Time: 2, Position: 1, Velocity: -4, NetForce: 3})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "[constant] Time: 1 Height: 2 ") {
		t.Errorf("unexpected line %q", lines[0])
	}
}

func TestPlotResult(t *testing.T) {
	var buf bytes.Buffer
	if err := PlotResult(&buf, testResult("constant", 20), 5, 40); err != nil {
		t.Fatalf("plot failed: %v", err)
	}
	out := buf.String()
	for _, ch := range Channels {
		if !strings.Contains(out, ch.Caption) {
			t.Errorf("missing plot %q", ch.Caption)
		}
	}
}

func TestPlotResultEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := PlotResult(&buf, testResult("newton", 0), 5, 40); err != nil {
		t.Fatalf("plot failed: %v", err)
	}
	if !strings.Contains(buf.String(), "no samples") {
		t.Errorf("expected empty notice, got %q", buf.String())
	}
}

func TestPlotCompare(t *testing.T) {
	var buf bytes.Buffer
	results := []*dynamo.Result{testResult("constant", 20), testResult("newton", 18)}
	if err := PlotCompare(&buf, results, 5, 40); err != nil {
		t.Fatalf("compare failed: %v", err)
	}
	if !strings.Contains(buf.String(), "constant / newton") {
		t.Error("caption should name both runs")
	}

	if err := PlotCompare(&buf, []*dynamo.Result{testResult("x", 0)}, 5, 40); err == nil {
		t.Error("expected error for empty series")
	}
}

func TestSummary(t *testing.T) {
	out := Summary(testResult("constant", 10), 16.8)
	for _, want := range []string{"constant gravity", "ground", "peak_speed", "16.800 m/s"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q", want)
		}
	}

	if !strings.Contains(Summary(testResult("newton", 3), math.Inf(1)), "never") {
		t.Error("expected 'never' for infinite terminal speed")
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline(nil, 5); got != "─────" {
		t.Errorf("unexpected empty sparkline %q", got)
	}
	if Sparkline([]float64{1, 2, 3}, 10) == "" {
		t.Error("expected sparkline output")
	}
}

func TestReplayScrub(t *testing.T) {
	var m tea.Model = NewReplay([]*dynamo.Result{testResult("constant", 5), testResult("newton", 3)})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}})
	for i := 0; i < 10; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{']'}})
	}
	if got := m.(Replay).Frame(); got != 4 {
		t.Errorf("expected frame clamped to 4, got %d", got)
	}

	// paused: ticks do not advance
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m, _ = m.Update(TickMsg{})
	if got := m.(Replay).Frame(); got != 0 {
		t.Errorf("expected frame 0 after restart, got %d", got)
	}

	view := m.View()
	if !strings.Contains(view, "constant") || !strings.Contains(view, "newton") {
		t.Error("view should show both runs")
	}
}

func TestReplayEmpty(t *testing.T) {
	if !strings.Contains(NewReplay(nil).View(), "no samples") {
		t.Error("expected empty notice")
	}
}
