package argolis

import (
	"errors"
	"fmt"
	"strings"
)

var ErrNilAction = errors.New("option action is nil")
var ErrInvalidArgPolicy = errors.New("invalid arg policy")
var ErrNoName = errors.New("option has neither short nor long name")

// NoShortName is passed to NewOptSpec for long-only options
const NoShortName rune = 0

// ArgPolicy tells whether an option value is forbidden, optional or mandatory
type ArgPolicy int

const (
	NoArg ArgPolicy = iota
	MaybeArg
	ExpectArg
)

func (p ArgPolicy) String() string {
	switch p {
	case NoArg:
		return "no-arg"
	case MaybeArg:
		return "maybe-arg"
	case ExpectArg:
		return "expect-arg"
	}
	return fmt.Sprintf("ArgPolicy(%d)", int(p))
}

func (p ArgPolicy) isValid() bool {
	return p >= NoArg && p <= ExpectArg
}

// Action is called when the option is met on the command line.
// value is set for MaybeArg and ExpectArg options if the value was given
type Action func(spec OptSpec, value Value)

// OptSpec describes an option: its names, its ArgPolicy and the Action to invoke
type OptSpec struct {
	shortName rune
	longName  string
	argPolicy ArgPolicy
	action    Action
}

// NewOptSpec creates an option descriptor. shortName can be NoShortName and longName
// can be empty, but not both. action is required
func NewOptSpec(shortName rune, longName string, argPolicy ArgPolicy, action Action) (OptSpec, error) {
	if action == nil {
		return OptSpec{}, ErrNilAction
	}
	if !argPolicy.isValid() {
		return OptSpec{}, fmt.Errorf("%w: %d", ErrInvalidArgPolicy, int(argPolicy))
	}
	if shortName == NoShortName && longName == "" {
		return OptSpec{}, ErrNoName
	}
	return OptSpec{
		shortName: shortName,
		longName:  longName,
		argPolicy: argPolicy,
		action:    action,
	}, nil
}

// MustOptSpec is like NewOptSpec but panics on invalid arguments.
// It simplifies declaring option lists in variable initializers
func MustOptSpec(shortName rune, longName string, argPolicy ArgPolicy, action Action) OptSpec {
	spec, err := NewOptSpec(shortName, longName, argPolicy, action)
	if err != nil {
		panic(fmt.Sprintf("argolis: option %s: %v", formatNames(shortName, longName), err))
	}
	return spec
}

func (s OptSpec) ShortName() rune {
	return s.shortName
}

func (s OptSpec) LongName() string {
	return s.longName
}

func (s OptSpec) ArgPolicy() ArgPolicy {
	return s.argPolicy
}

// Act invokes the option action. Panics of the action are not recovered
func (s OptSpec) Act(value Value) {
	s.action(s, value)
}

// String returns option names the way they are spelled on the command line: "-c/--count"
func (s OptSpec) String() string {
	return formatNames(s.shortName, s.longName)
}

func formatNames(shortName rune, longName string) string {
	var names []string
	if shortName != NoShortName {
		names = append(names, "-"+string(shortName))
	}
	if longName != "" {
		names = append(names, "--"+longName)
	}
	return strings.Join(names, "/")
}
