package mapper

import (
	"strconv"
	"strings"

	"github.com/soar/padbridge/internal/osinput"
)

// Read-only name tables consulted by the parser. Initialized once, never
// mutated at runtime.

var keyNames = map[string]osinput.Key{
	"esc": osinput.KeyEsc, "escape": osinput.KeyEsc,
	"1": osinput.Key1, "2": osinput.Key2, "3": osinput.Key3, "4": osinput.Key4,
	"5": osinput.Key5, "6": osinput.Key6, "7": osinput.Key7, "8": osinput.Key8,
	"9": osinput.Key9, "0": osinput.Key0,
	"backspace": osinput.KeyBackspace,
	"tab":       osinput.KeyTab,
	"q":         osinput.KeyQ, "w": osinput.KeyW, "e": osinput.KeyE, "r": osinput.KeyR,
	"t": osinput.KeyT, "y": osinput.KeyY, "u": osinput.KeyU, "i": osinput.KeyI,
	"o": osinput.KeyO, "p": osinput.KeyP,
	"enter": osinput.KeyEnter, "return": osinput.KeyEnter,
	"ctrl": osinput.KeyLeftCtrl, "lctrl": osinput.KeyLeftCtrl,
	"a": osinput.KeyA, "s": osinput.KeyS, "d": osinput.KeyD, "f": osinput.KeyF,
	"g": osinput.KeyG, "h": osinput.KeyH, "j": osinput.KeyJ, "k": osinput.KeyK,
	"l":     osinput.KeyL,
	"shift": osinput.KeyLeftShift, "lshift": osinput.KeyLeftShift,
	"z": osinput.KeyZ, "x": osinput.KeyX, "c": osinput.KeyC, "v": osinput.KeyV,
	"b": osinput.KeyB, "n": osinput.KeyN, "m": osinput.KeyM,
	"alt": osinput.KeyLeftAlt, "lalt": osinput.KeyLeftAlt,
	"space": osinput.KeySpace,
	"f1":    osinput.KeyF1, "f2": osinput.KeyF2, "f3": osinput.KeyF3,
	"f4": osinput.KeyF4, "f5": osinput.KeyF5, "f6": osinput.KeyF6,
	"f7": osinput.KeyF7, "f8": osinput.KeyF8, "f9": osinput.KeyF9,
	"f10": osinput.KeyF10, "f11": osinput.KeyF11, "f12": osinput.KeyF12,
	"home": osinput.KeyHome, "end": osinput.KeyEnd,
	"pageup": osinput.KeyPageUp, "pagedown": osinput.KeyPageDown,
	"insert": osinput.KeyInsert, "delete": osinput.KeyDelete,
	"uparrow": osinput.KeyUpArrow, "downarrow": osinput.KeyDownArrow,
	"leftarrow": osinput.KeyLeftArrow, "rightarrow": osinput.KeyRightArrow,
}

// keyFromString resolves a key name or a raw numeric keycode (decimal or
// 0x-prefixed hexadecimal).
func keyFromString(s string) (osinput.Key, bool) {
	name := strings.ToLower(strings.TrimSpace(s))
	if k, ok := keyNames[name]; ok {
		return k, true
	}
	n, err := strconv.ParseUint(name, 0, 16)
	if err != nil || n == 0 {
		return 0, false
	}
	return osinput.Key(n), true
}

var mouseButtonNames = map[string]osinput.MouseButton{
	"left":    osinput.MouseLeft,
	"middle":  osinput.MouseMiddle,
	"right":   osinput.MouseRight,
	"x1":      osinput.MouseX1,
	"back":    osinput.MouseX1,
	"x2":      osinput.MouseX2,
	"forward": osinput.MouseX2,
}

func mouseButtonFromString(s string) (osinput.MouseButton, bool) {
	b, ok := mouseButtonNames[strings.ToLower(strings.TrimSpace(s))]
	return b, ok
}

var mouseAxisNames = map[string]osinput.MouseAxis{
	"x":               osinput.MouseAxisX,
	"horizontal":      osinput.MouseAxisX,
	"y":               osinput.MouseAxisY,
	"vertical":        osinput.MouseAxisY,
	"wheelhorizontal": osinput.MouseWheelHorizontal,
	"wheelx":          osinput.MouseWheelHorizontal,
	"wheelvertical":   osinput.MouseWheelVertical,
	"wheely":          osinput.MouseWheelVertical,
}

func mouseAxisFromString(s string) (osinput.MouseAxis, bool) {
	a, ok := mouseAxisNames[strings.ToLower(strings.TrimSpace(s))]
	return a, ok
}

// directionFromString resolves a half-axis direction token.
func directionFromString(s string) (AxisDirection, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "both", "b":
		return DirectionBoth, true
	case "+", "positive", "pos":
		return DirectionPositive, true
	case "-", "negative", "neg":
		return DirectionNegative, true
	}
	return DirectionBoth, false
}

// buttonNumberFromString resolves a 1-based virtual button number.
func buttonNumberFromString(s string) (int, bool) {
	name := strings.TrimSpace(s)
	name = strings.TrimPrefix(strings.ToLower(name), "button")
	n, err := strconv.Atoi(strings.TrimSpace(name))
	if err != nil || n < 1 || n > 16 {
		return 0, false
	}
	return n, true
}
