package optim

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/san-kum/freefall/internal/dynamo"
)

// Point is one evaluated grid cell.
type Point struct {
	Params map[string]float64
	Result *dynamo.Result
	Value  float64
}

type GridSearch struct {
	paramNames []string
	ranges     [][]float64
}

func NewGridSearch(params []string, ranges [][]float64) *GridSearch {
	return &GridSearch{paramNames: params, ranges: ranges}
}

func (g *GridSearch) Size() int {
	n := 1
	for _, r := range g.ranges {
		n *= len(r)
	}
	return n
}

// Search runs every combination of parameter values and reads metricName from
// each result. It returns all points in grid order plus the one with the
// lowest value.
func (g *GridSearch) Search(
	ctx context.Context,
	build func(params map[string]float64) (dynamo.Runner, error),
	metricName string,
) ([]Point, Point, error) {
	if len(g.paramNames) != len(g.ranges) {
		return nil, Point{}, fmt.Errorf("%d params but %d ranges", len(g.paramNames), len(g.ranges))
	}

	points := make([]Point, 0, g.Size())
	if err := g.searchRecursive(ctx, 0, make(map[string]float64), build, metricName, &points); err != nil {
		return points, Point{}, err
	}

	best := Point{Value: math.Inf(1)}
	for _, p := range points {
		if p.Value < best.Value {
			best = p
		}
	}
	return points, best, nil
}

func (g *GridSearch) searchRecursive(
	ctx context.Context,
	depth int,
	current map[string]float64,
	build func(map[string]float64) (dynamo.Runner, error),
	metricName string,
	points *[]Point,
) error {
	if depth == len(g.paramNames) {
		runner, err := build(current)
		if err != nil {
			return fmt.Errorf("%s: %w", formatParams(g.paramNames, current), err)
		}

		result, err := runner.Run(ctx)
		if err != nil {
			return fmt.Errorf("%s: %w", formatParams(g.paramNames, current), err)
		}

		val, ok := result.Metrics[metricName]
		if !ok {
			return fmt.Errorf("unknown metric: %s", metricName)
		}
		*points = append(*points, Point{Params: current, Result: result, Value: val})
		return nil
	}

	paramName := g.paramNames[depth]
	for _, val := range g.ranges[depth] {
		newParams := make(map[string]float64)
		for k, v := range current {
			newParams[k] = v
		}
		newParams[paramName] = val

		if err := g.searchRecursive(ctx, depth+1, newParams, build, metricName, points); err != nil {
			return err
		}
	}
	return nil
}

// ParseRange reads "name=v1,v2,v3" or "name=min:max:steps".
func ParseRange(spec string) (string, []float64, error) {
	name, values, ok := strings.Cut(spec, "=")
	if !ok || name == "" {
		return "", nil, fmt.Errorf("invalid range %q, want name=v1,v2 or name=min:max:steps", spec)
	}

	if parts := strings.Split(values, ":"); len(parts) == 3 {
		lo, err1 := strconv.ParseFloat(parts[0], 64)
		hi, err2 := strconv.ParseFloat(parts[1], 64)
		n, err3 := strconv.Atoi(parts[2])
		if err1 != nil || err2 != nil || err3 != nil || n < 1 {
			return "", nil, fmt.Errorf("invalid range %q", spec)
		}
		if n == 1 {
			return name, []float64{lo}, nil
		}
		out := make([]float64, n)
		step := (hi - lo) / float64(n-1)
		for i := range out {
			out[i] = lo + float64(i)*step
		}
		return name, out, nil
	}

	var out []float64
	for _, s := range strings.Split(values, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return "", nil, fmt.Errorf("invalid value %q in %q", s, spec)
		}
		out = append(out, v)
	}
	return name, out, nil
}

func formatParams(names []string, params map[string]float64) string {
	parts := make([]string, 0, len(names))
	for _, n := range names {
		if v, ok := params[n]; ok {
			parts = append(parts, fmt.Sprintf("%s=%g", n, v))
		}
	}
	return strings.Join(parts, " ")
}
