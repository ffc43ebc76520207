package argolis

import (
	"errors"
	"fmt"
)

var ErrBadOpt = errors.New("unknown option")
var ErrMissingArg = errors.New("missing argument for option")
var ErrUnexpectedArg = errors.New("unexpected argument for option")

type ErrorKind int

const (
	// BadOpt means the option name is empty or not registered
	BadOpt ErrorKind = iota
	// MissingArg means an ExpectArg option got no value
	MissingArg
	// UnexpectedArg means a NoArg option got an inline value
	UnexpectedArg
)

func (k ErrorKind) String() string {
	switch k {
	case BadOpt:
		return "bad-opt"
	case MissingArg:
		return "missing-arg"
	case UnexpectedArg:
		return "unexpected-arg"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

func (k ErrorKind) sentinel() error {
	switch k {
	case BadOpt:
		return ErrBadOpt
	case MissingArg:
		return ErrMissingArg
	case UnexpectedArg:
		return ErrUnexpectedArg
	}
	return errors.New(k.String())
}

// Error is reported for every option that can't be evaluated.
// Item is the command line token as it was given: for combined options
// it's the whole cluster ("-abc"), not the failed char
type Error struct {
	Kind ErrorKind
	Item string
}

func (e Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind.sentinel(), e.Item)
}

// Unwrap allows errors.Is(err, ErrBadOpt) and friends
func (e Error) Unwrap() error {
	return e.Kind.sentinel()
}
