/*
Copyright © 2025 Daniel Rivas <danielrivasmd@gmail.com>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/
package keymap

////////////////////////////////////////////////////////////////////////////////////////////////////

import (
	"fmt"
	"regexp"
	"strings"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

type Kind int

const (
	KindPlain Kind = iota
	KindSpecialChar
	KindModTap
	KindLayerTap
	KindMomentary
	KindTransparent
	KindControl
)

func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindSpecialChar:
		return "special"
	case KindModTap:
		return "mod-tap"
	case KindLayerTap:
		return "layer-tap"
	case KindMomentary:
		return "momentary"
	case KindTransparent:
		return "transparent"
	case KindControl:
		return "control"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

////////////////////////////////////////////////////////////////////////////////////////////////////

// Binding is one key action declared at a key position.
// The set of implementations is closed to this package.
type Binding interface {
	Kind() Kind
	String() string
}

// Plain is a simple key press, e.g. &kp Q or &kp C_MUTE
type Plain struct {
	Code string
}

// SpecialChar is a key press on a wrapped code, e.g. &kp RA(A)
type SpecialChar struct {
	Code string
}

// ModTap holds Mod and taps Tap, e.g. &mt LSHFT E
type ModTap struct {
	Mod string
	Tap string
}

// LayerTap holds Layer and taps Tap, e.g. &lt NAV ESC
type LayerTap struct {
	Layer string
	Tap   string
}

// Momentary activates Layer while held, e.g. &mo NUM
type Momentary struct {
	Layer string
}

// Transparent defers to the layer below: &trans
type Transparent struct{}

// Control covers every other behavior, e.g. &bt BT_CLR, &out OUT_TOG, &sys_reset
type Control struct {
	Behavior string
	Params   []string
}

func (Plain) Kind() Kind       { return KindPlain }
func (SpecialChar) Kind() Kind { return KindSpecialChar }
func (ModTap) Kind() Kind      { return KindModTap }
func (LayerTap) Kind() Kind    { return KindLayerTap }
func (Momentary) Kind() Kind   { return KindMomentary }
func (Transparent) Kind() Kind { return KindTransparent }
func (Control) Kind() Kind     { return KindControl }

func (b Plain) String() string       { return "&kp " + b.Code }
func (b SpecialChar) String() string { return "&kp " + b.Code }
func (b ModTap) String() string      { return "&mt " + b.Mod + " " + b.Tap }
func (b LayerTap) String() string    { return "&lt " + b.Layer + " " + b.Tap }
func (b Momentary) String() string   { return "&mo " + b.Layer }
func (Transparent) String() string   { return "&trans" }

func (b Control) String() string {
	return strings.Join(append([]string{"&" + b.Behavior}, b.Params...), " ")
}

////////////////////////////////////////////////////////////////////////////////////////////////////

var behaviorName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// ParseBinding classifies a single declaration such as "&mt LSHFT E".
// Whitespace between tokens is free-form.
func ParseBinding(raw string) (Binding, error) {
	fields := strings.Fields(raw)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "&") {
		return nil, fmt.Errorf("binding %q does not start with '&'", raw)
	}

	behavior := strings.TrimPrefix(fields[0], "&")
	if !behaviorName.MatchString(behavior) {
		return nil, fmt.Errorf("invalid behavior name %q", fields[0])
	}
	params := fields[1:]

	switch {
	case behavior == "trans" && len(params) == 0:
		return Transparent{}, nil
	case behavior == "kp" && len(params) == 1:
		if strings.Contains(params[0], "(") {
			return SpecialChar{Code: params[0]}, nil
		}
		return Plain{Code: params[0]}, nil
	case behavior == "mt" && len(params) == 2:
		return ModTap{Mod: params[0], Tap: params[1]}, nil
	case behavior == "lt" && len(params) == 2:
		return LayerTap{Layer: params[0], Tap: params[1]}, nil
	case behavior == "mo" && len(params) == 1:
		return Momentary{Layer: params[0]}, nil
	default:
		return Control{Behavior: behavior, Params: params}, nil
	}
}

////////////////////////////////////////////////////////////////////////////////////////////////////

// splitBindings cuts a bindings body (comments already stripped) into declarations
func splitBindings(body string) ([]Binding, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, fmt.Errorf("empty bindings")
	}
	if !strings.HasPrefix(body, "&") {
		lead := strings.Fields(body)[0]
		return nil, fmt.Errorf("unexpected %q before first binding", lead)
	}

	var out []Binding
	for _, part := range strings.Split(body[1:], "&") {
		b, err := ParseBinding("&" + part)
		if err != nil {
			return nil, fmt.Errorf("binding %d: %w", len(out)+1, err)
		}
		out = append(out, b)
	}
	return out, nil
}

////////////////////////////////////////////////////////////////////////////////////////////////////
