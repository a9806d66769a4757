package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"schema-inherit/internal/ports"
)

// HierarchyReport lists the anomalies of a class hierarchy.
type HierarchyReport struct {
	// UnknownParents holds "child -> parent" pairs whose parent is not
	// part of the analysis. They are tolerated: the chain ends there.
	UnknownParents []string

	// Cycles holds each superclass cycle once, starting at the first
	// class of the cycle in discovery order.
	Cycles [][]string
}

type HierarchyChecker struct {
	Graph ports.AnalysisGraphPort
}

func NewHierarchyChecker(graph ports.AnalysisGraphPort) HierarchyChecker {
	return HierarchyChecker{Graph: graph}
}

// Check walks every superclass chain once. Cycles are reported as a
// failed precondition together with the full report.
func (c HierarchyChecker) Check(ctx context.Context) (HierarchyReport, error) {
	report := HierarchyReport{}
	done := map[string]struct{}{}

	for _, name := range c.Graph.ClassNames() {
		position := map[string]int{}
		var path []string
		current := name
		for current != "" {
			if _, ok := done[current]; ok {
				break
			}
			if start, ok := position[current]; ok {
				report.Cycles = append(report.Cycles, append([]string(nil), path[start:]...))
				break
			}
			parent, declared := c.Graph.Parent(current)
			if !declared {
				report.UnknownParents = append(report.UnknownParents, fmt.Sprintf("%s -> %s", path[len(path)-1], current))
				break
			}
			position[current] = len(path)
			path = append(path, current)
			current = parent
		}
		for _, visited := range path {
			done[visited] = struct{}{}
		}
	}

	log.Ctx(ctx).Debug().
		Int("unknown_parents", len(report.UnknownParents)).
		Int("cycles", len(report.Cycles)).
		Msg("class hierarchy checked")

	if len(report.Cycles) > 0 {
		cycles := make([]string, 0, len(report.Cycles))
		for _, cycle := range report.Cycles {
			cycles = append(cycles, strings.Join(append(cycle, cycle[0]), " -> "))
		}
		return report, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("superclass cycle: " + strings.Join(cycles, "; "))
	}
	return report, nil
}
