package cli

import (
	"fmt"
	"slices"
	"strings"
)

// choiceValue is a string flag restricted to a fixed set of values.
type choiceValue struct {
	value   *string
	choices []string
}

func newChoiceValue(target *string, def string, choices ...string) *choiceValue {
	*target = def
	return &choiceValue{value: target, choices: choices}
}

// String implements pflag.Value.
func (c *choiceValue) String() string {
	return *c.value
}

// Set implements pflag.Value.
func (c *choiceValue) Set(s string) error {
	if !slices.Contains(c.choices, s) {
		return fmt.Errorf("invalid choice %q (choose from %s)", s, strings.Join(c.choices, ", "))
	}
	*c.value = s
	return nil
}

// Type implements pflag.Value.
func (c *choiceValue) Type() string {
	return "string"
}

// usage appends the allowed values to a flag description.
func (c *choiceValue) usage(desc string) string {
	return desc + ": " + strings.Join(c.choices, ", ")
}
