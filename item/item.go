package item

// Kind identifies the shape of a classified command line token
type Kind int

const (
	KindArg Kind = iota
	KindSingle
	KindCombi
	KindFull
	KindEndOfOptions
)

func (k Kind) String() string {
	switch k {
	case KindArg:
		return "arg"
	case KindSingle:
		return "single"
	case KindCombi:
		return "combi"
	case KindFull:
		return "full"
	case KindEndOfOptions:
		return "end-of-options"
	}
	return "unknown"
}

// Item is a closed set of token shapes: Single, Combi, Full, EndOfOptions and Arg.
// Only this package can implement it.
type Item interface {
	Kind() Kind
	isItem()
}

// Single is an option name without inline value: "-a", "-all", "--all"
type Single struct {
	Name string
}

// Combi is a cluster of one-char option names after a single prefix: "-abc".
// Names is the whole remainder and is never split here.
type Combi struct {
	Names string
}

// Full is an option name with an inline value: "-num=37", "--num=37"
type Full struct {
	Name  string
	Value string
}

// EndOfOptions is the "--" marker
type EndOfOptions struct{}

// Arg is anything that is not an option
type Arg struct{}

func (Single) Kind() Kind       { return KindSingle }
func (Combi) Kind() Kind        { return KindCombi }
func (Full) Kind() Kind         { return KindFull }
func (EndOfOptions) Kind() Kind { return KindEndOfOptions }
func (Arg) Kind() Kind          { return KindArg }

func (Single) isItem()       {}
func (Combi) isItem()        {}
func (Full) isItem()         {}
func (EndOfOptions) isItem() {}
func (Arg) isItem()          {}
