package layout

import (
	"io"
	"math"

	"github.com/charmbracelet/log"
)

// DefaultMaxDepth bounds recursion into nested flex containers. Subtrees
// below the cap are laid out as fixed-size leaves instead of crashing the
// run with a stack overflow.
const DefaultMaxDepth = 512

// Unconstrained marks an axis with no available-size limit.
var Unconstrained = math.Inf(1)

// Constraint is the available space offered to a measurement. Either axis
// may be Unconstrained.
type Constraint struct {
	AvailableWidth  float64
	AvailableHeight float64
}

// Measurement is the result of measuring a box's content.
//
// Width and Height are the natural content-box size under the constraint.
// MinContent and MaxContent are the intrinsic widths: the least-breakable
// unit and the never-wrapped width. Baseline, when present, is the distance
// from the content-box top to the first baseline.
type Measurement struct {
	Width, Height          float64
	MinContent, MaxContent float64
	Baseline               float64
	HasBaseline            bool
}

// ContentBackend is the external flow-layout primitive. The engine calls
// Measure for intrinsic sizing of non-flex content and Layout to flow a
// non-flex subtree into its finalized content box (given relative to the
// box's own border box).
//
// A Measure error never aborts layout; the engine logs it and falls back to
// a text-run heuristic.
type ContentBackend interface {
	Measure(t *Tree, id NodeID, c Constraint) (Measurement, error)
	Layout(t *Tree, id NodeID, contentBox Rect)
}

// Context carries the state of one top-level layout invocation: the content
// backend, the measurement cache, the logger, and the recursion budget.
// Contexts are not safe for concurrent use; run one layout at a time per
// tree.
type Context struct {
	// Backend supplies measurement and flow layout for non-flex content.
	// When nil the built-in text heuristic is used for everything.
	Backend ContentBackend

	// Logger receives measurement fallbacks and resolver safety stops.
	// Defaults to a discarding logger.
	Logger *log.Logger

	// MaxDepth caps nested-container recursion. Zero means DefaultMaxDepth.
	MaxDepth int

	depth int
	cache map[NodeID]Measurement
}

// NewContext returns a context with a discarding logger and the default
// recursion budget.
func NewContext() *Context {
	return &Context{
		Logger:   log.New(io.Discard),
		MaxDepth: DefaultMaxDepth,
	}
}

func (ctx *Context) logger() *log.Logger {
	if ctx.Logger == nil {
		ctx.Logger = log.New(io.Discard)
	}
	return ctx.Logger
}

func (ctx *Context) maxDepth() int {
	if ctx.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return ctx.MaxDepth
}

// beginRun resets per-run state when entering the top-level invocation.
// Cached measurements survive every nested pass of the same run and are
// dropped only here, at the start of the next run.
func (ctx *Context) beginRun() {
	if ctx.depth == 0 {
		ctx.cache = make(map[NodeID]Measurement)
	}
}
