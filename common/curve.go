package common

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

var ErrUnknownCurve = errors.New("common: unknown curve")

// Curve maps [0,1] onto [0,1]. Implementations are expected to be monotonic.
type Curve interface {
	Evaluate(t float64) float64
}

// CurveFunc adapts a plain function to Curve.
type CurveFunc func(t float64) float64

func (f CurveFunc) Evaluate(t float64) float64 {
	return Clamp01(f(Clamp01(t)))
}

var (
	Linear    = CurveFunc(func(t float64) float64 { return t })
	EaseIn    = CurveFunc(func(t float64) float64 { return t * t })
	EaseOut   = CurveFunc(func(t float64) float64 { return t * (2 - t) })
	EaseInOut = CurveFunc(func(t float64) float64 { return t * t * (3 - 2*t) })
)

// NamedCurve resolves a curve by name. An empty name is EaseInOut.
func NamedCurve(name string) (Curve, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "ease_in_out":
		return EaseInOut, nil
	case "linear":
		return Linear, nil
	case "ease_in":
		return EaseIn, nil
	case "ease_out":
		return EaseOut, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCurve, name)
}

// ScriptCurve evaluates a tengo snippet. The snippet reads `t` and assigns
// its result to `out`, e.g. `out = math.pow(t, 3)`.
type ScriptCurve struct {
	source   string
	compiled *tengo.Compiled
	failed   bool
}

func NewScriptCurve(src string) (*ScriptCurve, error) {
	script := tengo.NewScript([]byte(src))
	_ = script.Add("t", 0.0)
	_ = script.Add("out", 0.0)
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("common: compile curve script: %w", err)
	}
	return &ScriptCurve{source: src, compiled: compiled}, nil
}

// Evaluate runs the script. Runtime failures degrade to linear and are
// logged once per curve.
func (c *ScriptCurve) Evaluate(t float64) float64 {
	t = Clamp01(t)
	if c == nil || c.compiled == nil || c.failed {
		return t
	}
	if err := c.compiled.Set("t", t); err != nil {
		c.fail(err)
		return t
	}
	if err := c.compiled.Run(); err != nil {
		c.fail(err)
		return t
	}
	return Clamp01(c.compiled.Get("out").Float())
}

func (c *ScriptCurve) Source() string {
	if c == nil {
		return ""
	}
	return c.source
}

func (c *ScriptCurve) fail(err error) {
	c.failed = true
	log.Printf("curve: script failed, falling back to linear: %v", err)
}
