package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/freefall/internal/dynamo"
)

const (
	shaftHeight = 20
	shaftWidth  = 9
	frameRate   = 30
)

var (
	shaftStyle = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, true, false, true).BorderForeground(lipgloss.Color("240"))
	groundRow  = lipgloss.NewStyle().Foreground(lipgloss.Color("94")).Render(strings.Repeat("▀", shaftWidth+2))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Replay steps through finished series sample by sample, one shaft per run.
type Replay struct {
	results []*dynamo.Result
	top     float64
	frame   int
	frames  int
	speed   int
	running bool
}

func NewReplay(results []*dynamo.Result) Replay {
	r := Replay{results: results, speed: 1, running: true}
	for _, res := range results {
		if res.Series.Len() > r.frames {
			r.frames = res.Series.Len()
		}
		for _, x := range res.Series.Position {
			if x > r.top {
				r.top = x
			}
		}
	}
	if r.top == 0 {
		r.top = 1
	}
	return r
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (r Replay) Init() tea.Cmd { return tick() }

func (r Replay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return r, tea.Quit
		case " ":
			r.running = !r.running
		case "r":
			r.frame = 0
		case "[", "left", "h":
			r.scrub(-1)
		case "]", "right", "l":
			r.scrub(1)
		case "+", "=":
			r.speed *= 2
		case "-":
			if r.speed > 1 {
				r.speed /= 2
			}
		}
		return r, nil
	case TickMsg:
		if r.running {
			r.scrub(r.speed)
			if r.frame >= r.frames-1 {
				r.running = false
			}
		}
		return r, tick()
	}
	return r, nil
}

func (r *Replay) scrub(n int) {
	r.frame += n
	if r.frame >= r.frames {
		r.frame = r.frames - 1
	}
	if r.frame < 0 {
		r.frame = 0
	}
}

// Frame reports the current sample index.
func (r Replay) Frame() int { return r.frame }

func (r Replay) View() string {
	if r.frames == 0 {
		return "no samples to replay\n"
	}

	columns := make([]string, 0, len(r.results))
	for _, res := range r.results {
		columns = append(columns, r.column(res))
	}

	var b strings.Builder
	b.WriteString(Title.Render("freefall replay") + "\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, columns...))
	b.WriteString("\n" + ProgressBar(float64(r.frame+1)/float64(r.frames), 40))
	b.WriteString(fmt.Sprintf(" %d/%d  x%d", r.frame+1, r.frames, r.speed))
	b.WriteString(helpStyle.Render("\nspace pause  [ ] scrub  + - speed  r restart  q quit"))
	return b.String()
}

func (r Replay) column(res *dynamo.Result) string {
	i := r.frame
	if i >= res.Series.Len() {
		i = res.Series.Len() - 1
	}
	if i < 0 {
		return Subtle.Render(res.Model + ": no samples")
	}
	s := res.Series.At(i)

	level := shaftHeight - 1 - int(s.Position/r.top*float64(shaftHeight-1)+0.5)
	rows := make([]string, shaftHeight)
	for y := range rows {
		rows[y] = strings.Repeat(" ", shaftWidth)
		if y == level {
			rows[y] = strings.Repeat(" ", shaftWidth/2) + "●" + strings.Repeat(" ", shaftWidth/2)
		}
	}
	shaft := shaftStyle.Render(strings.Join(rows, "\n")) + "\n" + groundRow

	stats := strings.Join([]string{
		Title.Render(res.Model),
		labelStyle.Render("time") + valueStyle.Render(fmt.Sprintf("%.3f s", s.Time)),
		labelStyle.Render("height") + valueStyle.Render(fmt.Sprintf("%.2f m", s.Position)),
		labelStyle.Render("velocity") + valueStyle.Render(fmt.Sprintf("%.3f m/s", s.Velocity)),
		labelStyle.Render("net force") + valueStyle.Render(fmt.Sprintf("%.4f N", s.NetForce)),
	}, "\n")

	return lipgloss.JoinHorizontal(lipgloss.Top, shaft, "  ", stats, "    ")
}

// RunReplay opens the replay in the terminal and blocks until it closes.
func RunReplay(results []*dynamo.Result) error {
	p := tea.NewProgram(NewReplay(results), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
