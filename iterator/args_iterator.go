package iterator

import (
	"fmt"
	"unicode/utf8"

	"github.com/cardinalby/go-argolis/item"
)

type StepRole int

func (r StepRole) Has(role StepRole) bool {
	return r&role != 0
}

const (
	StepRoleOpt        StepRole = 1 << iota
	StepRoleInline              = 1 << iota // modifies StepRoleOpt
	StepRoleLookahead           = 1 << iota // modifies StepRoleOpt
	StepRoleCombined            = 1 << iota // modifies StepRoleOpt
	StepRoleTerminator          = 1 << iota
	StepRoleArg                 = 1 << iota
)

type Step struct {
	// Index is the position of Arg in the iterated args
	Index int
	// Arg is the token the step comes from. All steps of a combined cluster share it
	Arg   string
	Name  string
	Value string
	// Role is sum of StepRole constants. Possible values:
	// StepRoleOpt                      // no value
	// StepRoleOpt | StepRoleInline     // Value is taken from "name=value"
	// StepRoleOpt | StepRoleLookahead  // Value is the next token, consumed only on YieldConsumeValue
	// StepRoleOpt | StepRoleCombined   // not the last name of a cluster, never has a value
	// StepRoleOpt | StepRoleCombined | StepRoleLookahead  // last name of a cluster followed by a value
	// StepRoleTerminator
	// StepRoleArg
	Role StepRole
}

// HasValue tells whether Value is meaningful for the step
func (s Step) HasValue() bool {
	return s.Role.Has(StepRoleInline) || s.Role.Has(StepRoleLookahead)
}

type YieldInstr int

func (i YieldInstr) Has(instr YieldInstr) bool {
	return i&instr != 0
}

const (
	// YieldNext instructs to continue iteration
	YieldNext YieldInstr = 1 << iota

	// YieldConsumeValue in combination with YieldNext instructs to skip the token
	// that was offered as a StepRoleLookahead value. Ignored for other steps
	YieldConsumeValue = 1 << iota

	// YieldStop instructs to stop iteration. Remaining tokens are dropped,
	// including the ones that would be yielded as StepRoleArg
	YieldStop = 1 << iota
)

// YieldFunc is a function that is called for each step.
// Steps are yielded in the order of args, one per option name (a cluster "-abc"
// yields 3 steps), one per terminator and one per positional arg.
type YieldFunc func(step Step) YieldInstr

// Iterate scans args (without the program name) in two states. While scanning options
// each token is classified with item.Classify. The first item.Arg or item.EndOfOptions
// switches to collecting positionals: all remaining tokens, the triggering arg included
// (the terminator excluded), are yielded as StepRoleArg without classification.
func Iterate(args []string, combiAllowed bool, yield YieldFunc) {
	for i := 0; i < len(args); {
		arg := args[i]
		var instr YieldInstr
		consumable := false

		switch it := item.Classify(arg, combiAllowed).(type) {
		case item.Single:
			step, hasLookahead := withLookahead(Step{Index: i, Arg: arg, Name: it.Name, Role: StepRoleOpt}, args, i)
			instr = yield(step)
			consumable = hasLookahead

		case item.Combi:
			names := it.Names
			for {
				_, size := utf8.DecodeRuneInString(names)
				name := names[:size]
				names = names[size:]
				if names == "" {
					step, hasLookahead := withLookahead(
						Step{Index: i, Arg: arg, Name: name, Role: StepRoleOpt | StepRoleCombined},
						args, i,
					)
					instr = yield(step)
					consumable = hasLookahead
					break
				}
				if yield(Step{Index: i, Arg: arg, Name: name, Role: StepRoleOpt | StepRoleCombined}).Has(YieldStop) {
					return
				}
			}

		case item.Full:
			instr = yield(Step{Index: i, Arg: arg, Name: it.Name, Value: it.Value, Role: StepRoleOpt | StepRoleInline})

		case item.EndOfOptions:
			if yield(Step{Index: i, Arg: arg, Role: StepRoleTerminator}).Has(YieldStop) {
				return
			}
			yieldArgs(args, i+1, yield)
			return

		case item.Arg:
			yieldArgs(args, i, yield)
			return

		default:
			panic(fmt.Sprintf("iterator: unexpected item %T", it))
		}

		if instr.Has(YieldStop) {
			return
		}
		i++
		if consumable && instr.Has(YieldConsumeValue) {
			i++
		}
	}
}

// withLookahead offers the next token as a value if it can't be an option
func withLookahead(step Step, args []string, i int) (Step, bool) {
	if i+1 >= len(args) || !item.IsArg(args[i+1]) {
		return step, false
	}
	step.Value = args[i+1]
	step.Role |= StepRoleLookahead
	return step, true
}

func yieldArgs(args []string, from int, yield YieldFunc) {
	for i := from; i < len(args); i++ {
		if yield(Step{Index: i, Arg: args[i], Role: StepRoleArg}).Has(YieldStop) {
			return
		}
	}
}
