package app

import "github.com/SzymonSkrzypczyk/calc-wizard/internal/session"

// keyBindings maps terminal keys to keypad symbols on the calculator screen.
var keyBindings = map[string]string{
	"0": "0", "1": "1", "2": "2", "3": "3", "4": "4",
	"5": "5", "6": "6", "7": "7", "8": "8", "9": "9",
	".": ".",
	"(": "(",
	")": ")",
	"%": "%",
	"^": "^",
	"+": "+",
	"-": "−",
	"*": "×",
	"x": "×",
	"/": "÷",
	"r": "√",
	"s": session.KeySin,
	"c": session.KeyCos,
	"t": session.KeyTan,

	"enter":     session.KeyEquals,
	"=":         session.KeyEquals,
	"backspace": session.KeyBackspace,
	"esc":       session.KeyClear,
	"delete":    session.KeyClear,
}

// keypadRows is the on-screen keypad, top to bottom.
var keypadRows = [][]string{
	{"sin", "cos", "tan", "√"},
	{"(", ")", "^", "%"},
	{"AC", "⌫", "÷", "×"},
	{"7", "8", "9", "−"},
	{"4", "5", "6", "+"},
	{"1", "2", "3", "="},
	{"0", "."},
}

// keyHints is shown on the help screen.
var keyHints = [][2]string{
	{"0-9 .", "digits and decimal point"},
	{"+ - * /", "add, subtract, multiply (also x), divide"},
	{"% ^", "remainder, power"},
	{"( )", "parentheses"},
	{"r", "square root (√)"},
	{"s c t", "sin, cos, tan of the current number (radians)"},
	{"enter or =", "evaluate"},
	{"backspace", "delete last symbol"},
	{"esc or delete", "clear (AC)"},
	{"h", "history"},
	{"d", "calendar"},
	{"?", "this help"},
	{"q or ctrl+c", "quit"},
	{"", ""},
	{"History", "↑/↓ select, enter edit note, esc back, q close"},
	{"Note", "enter save, esc cancel"},
	{"Calendar", "arrows move, [ ] change month, t today, enter show day"},
}
