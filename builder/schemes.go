// SPDX-License-Identifier: MIT
// Package: pathstep/builder
//
// schemes.go - named ID and weight schemes for presets and configuration.
//
// ID schemes:
//   - "auto"      pool labels while they suffice, Excel columns beyond that.
//   - "pool"      the graph's A..Z name pool.
//   - "letters"   SymbolIDFn, at most 26 vertices.
//   - "excel"     ExcelColumnIDFn: A..Z, AA, AB, ...
//   - "decimal"   DefaultIDFn: 0, 1, 2, ...
//   - "prefix:P"  SymbolNumberIDFn(P): P0, P1, ...
//
// Weight schemes: "integer" (1..9), "uniform" [1,10), "exponential"
// (mean 4, rounded) and "constant" (DefaultEdgeWeight).

package builder

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pathstep/core"
)

// Scheme names accepted by IDScheme and WeightScheme.
const (
	IDsAuto    = "auto"
	IDsPool    = "pool"
	IDsLetters = "letters"
	IDsExcel   = "excel"
	IDsDecimal = "decimal"
	idsPrefix  = "prefix:"

	WeightsInteger     = "integer"
	WeightsUniform     = "uniform"
	WeightsExponential = "exponential"
	WeightsConstant    = "constant"
)

// poolCapacity is how many vertices the pool and letter schemes can name.
const poolCapacity = len(core.DefaultLabels)

// IDScheme resolves a named ID scheme for a build that names order vertices.
// Pass order 0 to check the name only.
func IDScheme(name string, order int) (BuilderOption, error) {
	scheme, prefix, hasPrefix := strings.Cut(strings.TrimSpace(name), ":")
	scheme = strings.ToLower(scheme)
	if hasPrefix {
		if scheme+":" != idsPrefix || prefix == "" {
			return nil, fmt.Errorf("IDScheme(%q): %w", name, ErrUnknownScheme)
		}
		return WithSymbNumb(prefix), nil
	}

	switch scheme {
	case IDsAuto, "":
		if order > poolCapacity {
			return WithExcelColumnIDs(), nil
		}
		return WithPoolIDs(), nil
	case IDsPool, IDsLetters:
		if order > poolCapacity {
			return nil, fmt.Errorf("IDScheme(%q): %d vertices, at most %d: %w",
				name, order, poolCapacity, ErrSchemeTooSmall)
		}
		if scheme == IDsLetters {
			return WithSymbolIDs(), nil
		}
		return WithPoolIDs(), nil
	case IDsExcel:
		return WithExcelColumnIDs(), nil
	case IDsDecimal:
		return WithDefaultIDs(), nil
	default:
		return nil, fmt.Errorf("IDScheme(%q): %w", name, ErrUnknownScheme)
	}
}

// WeightScheme resolves a named edge weight distribution.
func WeightScheme(name string) (BuilderOption, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case WeightsInteger, "":
		return WithIntegerWeight(1, 9), nil
	case WeightsUniform:
		return WithUniformWeight(1, 10), nil
	case WeightsExponential:
		return WithExponentialWeight(0.25), nil
	case WeightsConstant:
		return WithConstantWeight(DefaultEdgeWeight), nil
	default:
		return nil, fmt.Errorf("WeightScheme(%q): %w", name, ErrUnknownScheme)
	}
}
