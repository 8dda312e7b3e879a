// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package verdict

import (
	"errors"
	"fmt"
	"time"

	"github.com/H0llyW00dzZ/keybox-integrity-checker/src/internal/keybox"
	x509certs "github.com/H0llyW00dzZ/keybox-integrity-checker/src/internal/x509/certs"
)

// Input carries everything a strategy needs for one evaluation. Each
// invocation owns its Input exclusively; strategies are stateless and safe
// for concurrent use.
type Input struct {
	// Keybox is the extracted bundle. Nil when extraction failed
	// structurally.
	Keybox *keybox.Keybox

	// Structural is the extraction failure, if any. The categorical
	// strategy treats it as fatal for report validity; the score strategy
	// as a heavy penalty.
	Structural *keybox.StructuralError

	// Now is the evaluation instant. Expiry uses strict comparison:
	// a certificate expiring exactly at Now is not expired.
	Now time.Time
}

// Strategy combines independent risk signals into one verdict. Two
// implementations exist because the severity models differ: Categorical
// produces a precedence-ordered status, Score produces a penalty score with
// risk bands. Both emit an audit entry for every check, in evaluation order.
type Strategy interface {
	// Name identifies the strategy in reports and CLI/MCP parameters.
	Name() string

	// Evaluate produces the report. It never fails: structural problems
	// are part of the verdict, not errors.
	Evaluate(in Input) *ValidationReport
}

// Strategy names accepted by ForName.
const (
	StrategyCategorical = "categorical"
	StrategyScore       = "score"
)

// ErrUnknownStrategy indicates a strategy name outside the known set.
var ErrUnknownStrategy = errors.New("verdict: unknown strategy")

// ForName resolves a strategy by name. The empty string selects the default
// (categorical).
func ForName(name string) (Strategy, error) {
	switch name {
	case "", StrategyCategorical:
		return Categorical{}, nil
	case StrategyScore:
		return Score{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Validate is the composition the outer surfaces call: parse raw XML,
// extract the keybox, and evaluate it with the given strategy at the given
// instant.
//
// A malformed document returns a *keybox.InputFormatError and no report.
// Structural failures and certificate decode failures are folded into the
// report by the strategy.
func Validate(raw []byte, strategy Strategy, now time.Time) (*ValidationReport, error) {
	kb, err := keybox.FromXML(raw)
	if err != nil {
		var structural *keybox.StructuralError
		if errors.As(err, &structural) {
			return strategy.Evaluate(Input{Structural: structural, Now: now}), nil
		}
		return nil, err
	}

	return strategy.Evaluate(Input{Keybox: kb, Now: now}), nil
}

// decoder is shared by the strategies. It is stateless apart from the block
// type constant, so one instance serves all invocations.
var decoder = x509certs.New()

// daysBetween returns the signed whole-day difference from now until t,
// negative when t is in the past.
func daysBetween(now, t time.Time) int {
	return int(t.Sub(now).Hours() / 24)
}
