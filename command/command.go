// SPDX-License-Identifier: EPL-2.0

// Package command parses the short region adjustments typed by the user.
//
// A command is a side letter, an optional minus sign and a decimal number of
// seconds:
//
//	l1      move the region start one second later
//	l-0.5   move the region start half a second earlier
//	r2.25   move the region end 2.25 seconds later
//
// Only lowercase side letters are accepted.
package command

import (
	"fmt"
	"regexp"
	"strconv"
)

type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}

	return "right"
}

// Command moves one region boundary by Delta seconds.
type Command struct {
	Side  Side
	Delta float64
}

func (c Command) String() string {
	letter := "l"
	if c.Side == Right {
		letter = "r"
	}

	return letter + strconv.FormatFloat(c.Delta, 'f', -1, 64)
}

var grammar = regexp.MustCompile(`^([lr])(-?)(\d+(?:\.\d*)?|\.\d+)$`)

// Parse parses text into a Command.
func Parse(text string) (Command, error) {
	m := grammar.FindStringSubmatch(text)
	if m == nil {
		return Command{}, fmt.Errorf("%w: %q", ErrInvalidCommand, text)
	}

	amount, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return Command{}, fmt.Errorf("%w: %q: %w", ErrInvalidCommand, text, err)
	}

	if m[2] == "-" {
		amount = -amount
	}

	side := Left
	if m[1] == "r" {
		side = Right
	}

	return Command{Side: side, Delta: amount}, nil
}
