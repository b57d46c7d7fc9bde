// SPDX-License-Identifier: MIT

package container

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/cratefit/geometry"
)

const (
	panicNilLogger = "container: WithLogger: nil logger"
	panicNilSolver = "container: WithSolver: nil solver"
)

// Option configures a Container at construction.
type Option func(*Container)

// WithLogger routes debug records (rejections, commits) to l.
// The default logger discards everything. Panics on nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(c *Container) { c.log = l }
}

// WithSolver replaces the rectangle/segment predicate used by the crossing
// test. The default is geometry.PlaneSolver{}. Panics on nil.
func WithSolver(s geometry.Solver) Option {
	if s == nil {
		panic(panicNilSolver)
	}

	return func(c *Container) { c.solver = s }
}

func discardLogger() *log.Logger { return log.New(io.Discard) }
