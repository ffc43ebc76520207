package item

import "strings"

const (
	// Prefix starts every option token
	Prefix = '-'
	// Terminator ends option scanning
	Terminator = "--"
	// ValueSeparator separates an option name from its inline value
	ValueSeparator = '='
)

// IsArg tells whether arg can't be an option: it's shorter than 2 chars
// or doesn't start with Prefix. A lone "-" is an arg.
func IsArg(arg string) bool {
	return len(arg) < 2 || arg[0] != Prefix
}

// Classify returns the shape of arg.
// If combiAllowed, every single-dashed token longer than 2 chars is a Combi,
// even if it contains ValueSeparator or spells a long option name.
func Classify(arg string, combiAllowed bool) Item {
	if IsArg(arg) {
		return Arg{}
	}

	if arg == Terminator {
		return EndOfOptions{}
	}
	if len(arg) == 2 {
		return Single{Name: arg[1:]}
	}

	baseIndex := 1
	if arg[1] == Prefix {
		baseIndex++
	}
	if baseIndex == 1 && combiAllowed {
		return Combi{Names: arg[baseIndex:]}
	}

	nameValue := arg[baseIndex:]
	separatorIndex := strings.IndexByte(nameValue, ValueSeparator)
	if separatorIndex < 0 {
		return Single{Name: nameValue}
	}
	return Full{
		Name:  nameValue[:separatorIndex],
		Value: nameValue[separatorIndex+1:],
	}
}
