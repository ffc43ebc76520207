// Package argolis scans command line args, dispatching options to the actions
// of registered OptSpecs and passing positional arguments to a handler.
package argolis

import (
	"errors"
	"io"
	"log/slog"

	"github.com/cardinalby/go-argolis/iterator"
)

// ArgHandler receives free-standing (positional) arguments
type ArgHandler func(arg string)

// ErrorHandler receives every option error in the order of args
type ErrorHandler func(err Error)

// Parser dispatches command line options to the actions of registered OptSpecs
// and passes positional arguments to ArgHandler.
// It keeps no state between Parse calls but is not safe for concurrent use
// if the callbacks are not
type Parser struct {
	registry     Registry
	combiAllowed bool
	abortOnError bool
	onArg        ArgHandler
	onErr        ErrorHandler
	logger       *slog.Logger
}

func NewParser(specs ...OptSpec) *Parser {
	return &Parser{
		registry: *NewRegistry(specs...),
		onArg:    func(string) {},
		onErr:    func(Error) {},
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func (p *Parser) AddOpt(spec OptSpec) {
	p.registry.Add(spec)
}

// SetCombiAllowed sets whether short options can be combined after a single dash:
// "-ac" is equivalent to "-a -c", not to "--ac".
// Default value is `false`
func (p *Parser) SetCombiAllowed(allowed bool) {
	p.combiAllowed = allowed
}

// SetAbortOnError sets the behavior of Parse() on the first option error.
// If `true`, all the remaining args are dropped, positional ones included.
// If `false`, parsing continues with the next arg.
// Default value is `false`
func (p *Parser) SetAbortOnError(abort bool) {
	p.abortOnError = abort
}

// OnArg replaces the positional arguments handler. nil resets it to no-op
func (p *Parser) OnArg(handler ArgHandler) {
	if handler == nil {
		handler = func(string) {}
	}
	p.onArg = handler
}

// OnErr replaces the error handler. nil resets it to no-op
func (p *Parser) OnErr(handler ErrorHandler) {
	if handler == nil {
		handler = func(Error) {}
	}
	p.onErr = handler
}

// SetLogger sets a logger for debug records of the dispatching. nil disables logging
func (p *Parser) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	p.logger = logger
}

// Lookup finds a registered option by short (one char) or long name
func (p *Parser) Lookup(name string) (OptSpec, bool) {
	return p.registry.Find(name)
}

// Parse scans argv, where argv[0] is the program name and is skipped.
// Callbacks are invoked synchronously in the order of args. Every error passed to
// the error handler is also returned, joined by errors.Join. Panics of the
// callbacks are not recovered
func (p *Parser) Parse(argv []string) error {
	if len(argv) == 0 {
		return nil
	}

	var errs []error
	iterator.Iterate(argv[1:], p.combiAllowed, func(step iterator.Step) iterator.YieldInstr {
		switch {
		case step.Role.Has(iterator.StepRoleArg):
			p.onArg(step.Arg)
			return iterator.YieldNext
		case step.Role.Has(iterator.StepRoleTerminator):
			p.logger.Debug("end of options", "index", step.Index)
			return iterator.YieldNext
		}

		instr := iterator.YieldNext
		consumed, errKind, failed := p.eval(step)
		if consumed {
			instr |= iterator.YieldConsumeValue
		}
		if !failed {
			return instr
		}

		err := Error{Kind: errKind, Item: step.Arg}
		p.logger.Debug("option error", "kind", errKind, "item", step.Arg, "name", step.Name)
		errs = append(errs, err)
		p.onErr(err)
		if p.abortOnError {
			p.logger.Debug("parsing aborted", "dropped", len(argv)-1-step.Index-1)
			return iterator.YieldStop
		}
		return instr
	})

	return errors.Join(errs...)
}

// eval resolves the step option and invokes its action.
// A lookahead value is consumed by MaybeArg and ExpectArg options and declined by NoArg ones.
// Unknown options consume it as well: it's most probably their value
func (p *Parser) eval(step iterator.Step) (consumed bool, errKind ErrorKind, failed bool) {
	isLookahead := step.Role.Has(iterator.StepRoleLookahead)
	value := Value{}
	if step.HasValue() {
		value = NewValue(step.Value)
	}

	if step.Name == "" {
		return isLookahead, BadOpt, true
	}
	spec, found := p.registry.Find(step.Name)
	if !found {
		return isLookahead, BadOpt, true
	}

	switch spec.argPolicy {
	case ExpectArg:
		if !value.IsSet() {
			return false, MissingArg, true
		}
	case NoArg:
		if value.IsSet() {
			if !isLookahead {
				return false, UnexpectedArg, true
			}
			p.logger.Debug("lookahead declined", "option", spec.String(), "value", step.Value)
			value = Value{}
		}
	}

	p.logger.Debug("option", "option", spec.String(), "value", value.String(), "isSet", value.IsSet())
	spec.Act(value)
	return isLookahead && value.IsSet(), 0, false
}
