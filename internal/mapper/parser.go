package mapper

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/soar/padbridge/internal/element"
	"github.com/soar/padbridge/internal/ffb"
)

// The mapper mini-language: TypeName(param, param, ...). Type names are the
// mapper variant names; parameters are element names, direction tokens, or
// nested mapper expressions. A backslash escapes the character after it so
// that parentheses and commas can appear inside parameters.

// FromString parses a mapper specification into an element-mapper tree. All
// failures are returned as error values; the whole string must be consumed.
func FromString(text string) (Mapper, error) {
	m, remainder, err := parseOne(text)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(remainder) != "" {
		return nil, fmt.Errorf("unexpected trailing characters %q", remainder)
	}
	return m, nil
}

func parseOne(text string) (Mapper, string, error) {
	typeName, params, remainder, err := extractParts(text)
	if err != nil {
		return nil, "", err
	}
	factory, ok := mapperFactories[strings.ToLower(typeName)]
	if !ok {
		return nil, "", fmt.Errorf("unknown mapper type %q", typeName)
	}
	m, err := factory(splitParams(params))
	if err != nil {
		return nil, "", err
	}
	return m, remainder, nil
}

// extractParts splits a specification into its type name, its raw parameter
// list and the remainder after the matching close parenthesis. A bare type
// name with no parameter list is accepted. Unbalanced parentheses fail here,
// before any semantic checking.
func extractParts(text string) (typeName, params, remainder string, err error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return "", "", "", fmt.Errorf("empty mapper specification")
	}

	open := -1
	escaped := false
	for i, r := range s {
		if escaped {
			escaped = false
			continue
		}
		switch r {
		case '\\':
			escaped = true
		case '(':
			open = i
		case ')':
			return "", "", "", fmt.Errorf("unbalanced parentheses in %q", text)
		}
		if open >= 0 {
			break
		}
	}

	if open < 0 {
		return s, "", "", nil
	}

	depth := 0
	escaped = false
	for i := open; i < len(s); i++ {
		if escaped {
			escaped = false
			continue
		}
		switch s[i] {
		case '\\':
			escaped = true
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return strings.TrimSpace(s[:open]), s[open+1 : i], s[i+1:], nil
			}
		}
	}
	return "", "", "", fmt.Errorf("unbalanced parentheses in %q", text)
}

// splitParams splits a raw parameter list on top-level commas; commas inside
// nested parentheses or behind a backslash escape do not count.
func splitParams(params string) []string {
	if strings.TrimSpace(params) == "" {
		return nil
	}
	var out []string
	depth := 0
	escaped := false
	start := 0
	for i := 0; i < len(params); i++ {
		if escaped {
			escaped = false
			continue
		}
		switch params[i] {
		case '\\':
			escaped = true
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				out = append(out, strings.TrimSpace(params[start:i]))
				start = i + 1
			}
		}
	}
	out = append(out, strings.TrimSpace(params[start:]))
	return out
}

// unescape removes backslash escapes from a parameter.
func unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	escaped := false
	for _, r := range s {
		if escaped {
			b.WriteRune(r)
			escaped = false
			continue
		}
		if r == '\\' {
			escaped = true
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// mapperFactories dispatches per mapper type, validating parameter count and
// content. Populated in init because the combinator factories recurse into
// FromString, which reads this map.
var mapperFactories map[string]func(params []string) (Mapper, error)

func init() {
	mapperFactories = map[string]func(params []string) (Mapper, error){
		"axis":               makeAxisMapper,
		"digitalaxis":        makeDigitalAxisMapper,
		"button":             makeButtonMapper,
		"pov":                makePovMapper,
		"keyboard":           makeKeyboardMapper,
		"mousebutton":        makeMouseButtonMapper,
		"mouseaxis":          makeMouseAxisMapper,
		"mousespeedmodifier": makeMouseSpeedModifierMapper,
		"invert":             makeInvertMapper,
		"split":              makeSplitMapper,
		"compound":           makeCompoundMapper,
		"null":               makeNullMapper,
	}
}

func axisParams(typeName string, params []string) (element.Axis, AxisDirection, error) {
	if len(params) < 1 || len(params) > 2 {
		return 0, 0, fmt.Errorf("%s requires an axis name and an optional direction, got %d parameters", typeName, len(params))
	}
	axis, ok := element.AxisFromString(unescape(params[0]))
	if !ok {
		return 0, 0, fmt.Errorf("%s: unknown axis %q", typeName, params[0])
	}
	direction := DirectionBoth
	if len(params) == 2 {
		direction, ok = directionFromString(unescape(params[1]))
		if !ok {
			return 0, 0, fmt.Errorf("%s: unknown direction %q", typeName, params[1])
		}
	}
	return axis, direction, nil
}

func makeAxisMapper(params []string) (Mapper, error) {
	axis, direction, err := axisParams("Axis", params)
	if err != nil {
		return nil, err
	}
	return NewAxisMapper(axis, direction), nil
}

func makeDigitalAxisMapper(params []string) (Mapper, error) {
	axis, direction, err := axisParams("DigitalAxis", params)
	if err != nil {
		return nil, err
	}
	return NewDigitalAxisMapper(axis, direction), nil
}

func makeButtonMapper(params []string) (Mapper, error) {
	if len(params) != 1 {
		return nil, fmt.Errorf("Button requires exactly one button number, got %d parameters", len(params))
	}
	n, ok := buttonNumberFromString(unescape(params[0]))
	if !ok {
		return nil, fmt.Errorf("Button: invalid button number %q", params[0])
	}
	return NewButtonMapper(element.Button(n - 1)), nil
}

func makePovMapper(params []string) (Mapper, error) {
	if len(params) != 1 {
		return nil, fmt.Errorf("Pov requires exactly one direction, got %d parameters", len(params))
	}
	d, ok := element.POVDirectionFromString(unescape(params[0]))
	if !ok {
		return nil, fmt.Errorf("Pov: unknown direction %q", params[0])
	}
	return NewPovMapper(d), nil
}

func makeKeyboardMapper(params []string) (Mapper, error) {
	if len(params) != 1 {
		return nil, fmt.Errorf("Keyboard requires exactly one key, got %d parameters", len(params))
	}
	k, ok := keyFromString(unescape(params[0]))
	if !ok {
		return nil, fmt.Errorf("Keyboard: unknown key %q", params[0])
	}
	return NewKeyboardMapper(k), nil
}

func makeMouseButtonMapper(params []string) (Mapper, error) {
	if len(params) != 1 {
		return nil, fmt.Errorf("MouseButton requires exactly one button name, got %d parameters", len(params))
	}
	b, ok := mouseButtonFromString(unescape(params[0]))
	if !ok {
		return nil, fmt.Errorf("MouseButton: unknown button %q", params[0])
	}
	return NewMouseButtonMapper(b), nil
}

func makeMouseAxisMapper(params []string) (Mapper, error) {
	if len(params) < 1 || len(params) > 2 {
		return nil, fmt.Errorf("MouseAxis requires an axis name and an optional direction, got %d parameters", len(params))
	}
	a, ok := mouseAxisFromString(unescape(params[0]))
	if !ok {
		return nil, fmt.Errorf("MouseAxis: unknown axis %q", params[0])
	}
	direction := DirectionBoth
	if len(params) == 2 {
		direction, ok = directionFromString(unescape(params[1]))
		if !ok {
			return nil, fmt.Errorf("MouseAxis: unknown direction %q", params[1])
		}
	}
	return NewMouseAxisMapper(a, direction), nil
}

func makeMouseSpeedModifierMapper(params []string) (Mapper, error) {
	if len(params) != 1 {
		return nil, fmt.Errorf("MouseSpeedModifier requires exactly one percentage, got %d parameters", len(params))
	}
	pct, err := strconv.ParseUint(strings.TrimSpace(unescape(params[0])), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("MouseSpeedModifier: invalid percentage %q", params[0])
	}
	return NewMouseSpeedModifierMapper(uint32(pct)), nil
}

func makeInvertMapper(params []string) (Mapper, error) {
	if len(params) != 1 {
		return nil, fmt.Errorf("Invert requires exactly one nested mapper, got %d parameters", len(params))
	}
	child, err := FromString(params[0])
	if err != nil {
		return nil, err
	}
	return NewInvertMapper(child), nil
}

func makeSplitMapper(params []string) (Mapper, error) {
	if len(params) != 2 {
		return nil, fmt.Errorf("Split requires exactly two nested mappers, got %d parameters", len(params))
	}
	positive, err := FromString(params[0])
	if err != nil {
		return nil, err
	}
	negative, err := FromString(params[1])
	if err != nil {
		return nil, err
	}
	return NewSplitMapper(positive, negative), nil
}

func makeCompoundMapper(params []string) (Mapper, error) {
	if len(params) == 0 || len(params) > MaxCompoundChildren {
		return nil, fmt.Errorf("Compound requires between 1 and %d nested mappers, got %d parameters", MaxCompoundChildren, len(params))
	}
	children := make([]Mapper, 0, len(params))
	for _, p := range params {
		child, err := FromString(p)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return NewCompoundMapper(children...)
}

func makeNullMapper(params []string) (Mapper, error) {
	if len(params) != 0 {
		return nil, fmt.Errorf("Null takes no parameters, got %d", len(params))
	}
	return NewNullMapper(), nil
}

// ActuatorFromString parses a force-feedback actuator descriptor: Default,
// Disabled, SingleAxis(axis[, direction]) or MagnitudeProjection(axis, axis).
// The whole string must be consumed.
func ActuatorFromString(text string) (ffb.Actuator, error) {
	typeName, params, remainder, err := extractParts(text)
	if err != nil {
		return ffb.Actuator{}, err
	}
	if strings.TrimSpace(remainder) != "" {
		return ffb.Actuator{}, fmt.Errorf("unexpected trailing characters %q", remainder)
	}

	plist := splitParams(params)
	switch strings.ToLower(typeName) {
	case "default":
		if len(plist) != 0 {
			return ffb.Actuator{}, fmt.Errorf("Default takes no parameters, got %d", len(plist))
		}
		return ffb.DefaultActuator(), nil

	case "disabled":
		if len(plist) != 0 {
			return ffb.Actuator{}, fmt.Errorf("Disabled takes no parameters, got %d", len(plist))
		}
		return ffb.Actuator{}, nil

	case "singleaxis":
		if len(plist) < 1 || len(plist) > 2 {
			return ffb.Actuator{}, fmt.Errorf("SingleAxis requires an axis name and an optional direction, got %d parameters", len(plist))
		}
		axis, ok := element.AxisFromString(unescape(plist[0]))
		if !ok {
			return ffb.Actuator{}, fmt.Errorf("SingleAxis: unknown axis %q", plist[0])
		}
		direction := ffb.DirectionBoth
		if len(plist) == 2 {
			d, ok := directionFromString(unescape(plist[1]))
			if !ok {
				return ffb.Actuator{}, fmt.Errorf("SingleAxis: unknown direction %q", plist[1])
			}
			switch d {
			case DirectionPositive:
				direction = ffb.DirectionPositive
			case DirectionNegative:
				direction = ffb.DirectionNegative
			}
		}
		return ffb.Actuator{Mode: ffb.ActuatorSingleAxis, Axis: axis, Direction: direction}, nil

	case "magnitudeprojection":
		if len(plist) != 2 {
			return ffb.Actuator{}, fmt.Errorf("MagnitudeProjection requires exactly two axis names, got %d parameters", len(plist))
		}
		first, ok := element.AxisFromString(unescape(plist[0]))
		if !ok {
			return ffb.Actuator{}, fmt.Errorf("MagnitudeProjection: unknown axis %q", plist[0])
		}
		second, ok := element.AxisFromString(unescape(plist[1]))
		if !ok {
			return ffb.Actuator{}, fmt.Errorf("MagnitudeProjection: unknown axis %q", plist[1])
		}
		if first == second {
			return ffb.Actuator{}, fmt.Errorf("MagnitudeProjection: axes must differ, got %q twice", plist[0])
		}
		return ffb.Actuator{Mode: ffb.ActuatorMagnitudeProjection, Axis: first, Axis2: second}, nil
	}
	return ffb.Actuator{}, fmt.Errorf("unknown actuator type %q", typeName)
}
