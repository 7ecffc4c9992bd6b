package command

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/danielCantwell/rsvg/internal/svg"
)

const usage = `Commands:
  html                          print the scene markup
  draw <rect|circle|path> X Y   create a zero-sized shape at (X, Y)
  move INDEX X Y                move a shape
  resize rect INDEX W H         set a rect's width and height
  resize circle INDEX R         set a circle's radius
  resize path INDEX POINT X Y   move one point of a path
  convert X Y                   convert top-left screen coordinates to grid coordinates
  help                          show this message`

// Dispatcher executes text commands against a grid. It owns the grid for
// the duration of each call and is not safe for concurrent use.
type Dispatcher struct {
	grid *svg.Grid
	log  *slog.Logger
}

// NewDispatcher creates a dispatcher. A nil logger falls back to slog.Default.
func NewDispatcher(grid *svg.Grid, log *slog.Logger) *Dispatcher {
	if log == nil {
		log = slog.Default()
	}
	return &Dispatcher{grid: grid, log: log}
}

// Grid returns the grid the dispatcher mutates.
func (d *Dispatcher) Grid() *svg.Grid {
	return d.grid
}

// Execute runs one command line and returns the text to show the user.
func (d *Dispatcher) Execute(line string) (string, error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return "", ErrEmptyCommand
	}

	out, err := d.dispatch(args[0], args[1:])
	if err != nil {
		d.log.Warn("command failed", "command", args[0], "error", err)
		return "", err
	}
	d.log.Debug("command executed", "command", args[0], "args", args[1:])
	return out, nil
}

func (d *Dispatcher) dispatch(name string, args []string) (string, error) {
	switch name {
	case "html", "render":
		return d.grid.Render(), nil
	case "draw":
		return d.draw(args)
	case "move":
		return "", d.move(args)
	case "resize":
		return "", d.resize(args)
	case "convert":
		return d.convert(args)
	case "help":
		return usage, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownCommand, name)
	}
}

func (d *Dispatcher) draw(args []string) (string, error) {
	switch {
	case len(args) == 0:
		return "", fmt.Errorf("%w: shape and coordinates are required to draw", ErrInvalidArgument)
	case len(args) < 3:
		return "", fmt.Errorf("%w: X and Y arguments required to draw %s", ErrInvalidArgument, args[0])
	case len(args) > 3:
		return "", fmt.Errorf("%w: too many arguments, only X and Y are required to draw %s", ErrInvalidArgument, args[0])
	}

	xy, err := parseFloats(args[1], args[2])
	if err != nil {
		return "", err
	}

	i, err := d.grid.CreateShape(args[0], xy[0], xy[1])
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s created at index %d", args[0], i), nil
}

func (d *Dispatcher) move(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("%w: the following values are required to move a shape: [shape_index, new_x, new_y]", ErrInvalidArgument)
	}

	i, err := parseIndex(args[0])
	if err != nil {
		return err
	}
	xy, err := parseFloats(args[1], args[2])
	if err != nil {
		return err
	}
	return d.grid.MoveShape(i, xy[0], xy[1])
}

// resizeArity is the number of arguments after the kind for each resize form.
var resizeArity = map[svg.Kind]struct {
	n    int
	help string
}{
	svg.KindRect:   {3, "index, width, and height are required to resize a rect"},
	svg.KindCircle: {2, "index and radius are required to resize a circle"},
	svg.KindPath:   {4, "shape index, point index, new_x, and new_y are required to resize a path"},
}

func (d *Dispatcher) resize(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: a shape type, index, and new dimensions are required for resizing", ErrInvalidArgument)
	}

	kind, err := svg.ParseKind(args[0])
	if err != nil {
		return fmt.Errorf("unable to resize unknown shape %s: %w", args[0], err)
	}
	rest := args[1:]
	if arity := resizeArity[kind]; len(rest) != arity.n {
		return fmt.Errorf("%w: %s", ErrInvalidArgument, arity.help)
	}

	i, err := parseIndex(rest[0])
	if err != nil {
		return err
	}

	var spec svg.ResizeSpec
	switch kind {
	case svg.KindRect:
		wh, err := parseFloats(rest[1], rest[2])
		if err != nil {
			return err
		}
		spec = svg.Pair{A: wh[0], B: wh[1]}
	case svg.KindCircle:
		r, err := parseFloat(rest[1])
		if err != nil {
			return err
		}
		spec = svg.Single{Value: r}
	case svg.KindPath:
		j, err := parseIndex(rest[1])
		if err != nil {
			return err
		}
		xy, err := parseFloats(rest[2], rest[3])
		if err != nil {
			return err
		}
		spec = svg.IndexedPoint{Index: j, X: xy[0], Y: xy[1]}
	}

	return d.grid.ResizeShape(i, spec)
}

// convert maps a point given in top-left screen coordinates into the
// grid's coordinate system.
func (d *Dispatcher) convert(args []string) (string, error) {
	if len(args) != 2 {
		return "", fmt.Errorf("%w: X and Y are required to convert a point", ErrInvalidArgument)
	}
	xy, err := parseFloats(args...)
	if err != nil {
		return "", err
	}

	p, err := d.grid.FromScreen(svg.Point{X: xy[0], Y: xy[1]}, svg.TopLeftDownRight)
	if err != nil {
		return "", err
	}
	return strconv.FormatFloat(p.X, 'f', -1, 64) + " " + strconv.FormatFloat(p.Y, 'f', -1, 64), nil
}
