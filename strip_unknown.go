package argolis

import (
	"github.com/cardinalby/go-argolis/iterator"
)

// StripUnknown splits args (without the program name) into the ones Parse would
// evaluate without BadOpt errors and the rest: tokens with unknown option names
// together with the values they would consume. Actions are not invoked.
// A combined cluster is unknown if any of its names is unknown
func (p *Parser) StripUnknown(args []string) (res, stripped []string) {
	unknown := make([]bool, len(args))
	owner := make([]int, len(args))
	for i := range owner {
		owner[i] = i
	}

	iterator.Iterate(args, p.combiAllowed, func(step iterator.Step) iterator.YieldInstr {
		if !step.Role.Has(iterator.StepRoleOpt) {
			return iterator.YieldNext
		}
		spec, found := p.registry.Find(step.Name)
		if !found {
			unknown[step.Index] = true
		}
		if step.Role.Has(iterator.StepRoleLookahead) && (!found || spec.argPolicy != NoArg) {
			owner[step.Index+1] = step.Index
			return iterator.YieldNext | iterator.YieldConsumeValue
		}
		return iterator.YieldNext
	})

	for i, arg := range args {
		if unknown[owner[i]] {
			stripped = append(stripped, arg)
		} else {
			res = append(res, arg)
		}
	}
	return res, stripped
}
