package easing

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// scripts define `ease := func(g) { ... }`; the dispatch line calls it
// with the current gradient and captures the result.
const easeDispatchScript = `
__result = ease(__gradient)
`

// Script is an easing hook backed by a compiled tengo script. The
// script must define an `ease` function taking the gradient and
// returning the remapped gradient.
//
// A Script is not safe for concurrent use; give each evaluating
// goroutine its own instance.
type Script struct {
	compiled *tengo.Compiled
}

// NewScript compiles an easing script.
func NewScript(src []byte) (*Script, error) {
	full := string(src) + "\n" + easeDispatchScript
	script := tengo.NewScript([]byte(full))
	_ = script.Add("__gradient", 0.0)
	_ = script.Add("__result", 0.0)

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("easing: compile script: %w", err)
	}
	return &Script{compiled: compiled}, nil
}

// Ease runs the script. A script error returns the gradient unchanged:
// easing must never fault an evaluation mid-frame.
func (s *Script) Ease(gradient float64) float64 {
	if s == nil || s.compiled == nil {
		return gradient
	}
	if err := s.compiled.Set("__gradient", gradient); err != nil {
		return gradient
	}
	if err := s.compiled.Run(); err != nil {
		return gradient
	}
	return s.compiled.Get("__result").Float()
}
