package viz

import (
	"fmt"
	"io"

	"github.com/san-kum/freefall/internal/dynamo"
)

// Console prints one diagnostic line per sample:
//
//	Time: 0.005 Height: 400 NetForce: 0.566 Velocity: 0.098
type Console struct {
	w      io.Writer
	prefix string
}

func NewConsole(w io.Writer, prefix string) *Console {
	return &Console{w: w, prefix: prefix}
}

func (c *Console) OnSample(s dynamo.Sample) {
	fmt.Fprintf(c.w, "%s%s\n", c.prefix, FormatSample(s))
}

// FormatSample renders a sample with net force rounded to 4 decimals and the
// falling speed, positive downward, rounded to 3.
func FormatSample(s dynamo.Sample) string {
	return fmt.Sprintf("Time: %.6g Height: %.6g NetForce: %.6g Velocity: %.6g ",
		s.Time, s.Position, dynamo.RoundTo(s.NetForce, 0.0001), dynamo.RoundTo(-s.Velocity, 0.001))
}
