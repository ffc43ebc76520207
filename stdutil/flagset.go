package stdutil

import (
	"errors"
	"flag"
	"fmt"
	"unicode/utf8"

	"github.com/cardinalby/go-argolis"
)

type boolFlag interface {
	IsBoolFlag() bool
}

func isBoolFlag(f *flag.Flag) bool {
	if boolFlag, ok := f.Value.(boolFlag); ok {
		return boolFlag.IsBoolFlag()
	}
	return false
}

// Binding passes option values to the flags of a flag.FlagSet
// and collects the errors returned by flag.Value.Set
type Binding struct {
	flagSet *flag.FlagSet
	specs   []argolis.OptSpec
	errs    []error
}

// Bind creates an option for every flag defined in flagSet.
// One-char flag names become short names, longer ones become long names.
// shortNames optionally assigns a short name to a long flag: {"count": 'c'}.
// Bool flags are NoArg options setting "true", other flags are ExpectArg options
// passing the raw value to flag.Value.Set
func Bind(flagSet *flag.FlagSet, shortNames map[string]rune) (*Binding, error) {
	b := &Binding{flagSet: flagSet}
	var errs []error
	flagSet.VisitAll(func(f *flag.Flag) {
		spec, err := b.newOptSpec(f, shortNames[f.Name])
		if err != nil {
			errs = append(errs, fmt.Errorf(`flag "%s": %w`, f.Name, err))
			return
		}
		b.specs = append(b.specs, spec)
	})
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return b, nil
}

func (b *Binding) newOptSpec(f *flag.Flag, shortName rune) (argolis.OptSpec, error) {
	longName := f.Name
	if utf8.RuneCountInString(f.Name) == 1 {
		if shortName != argolis.NoShortName {
			return argolis.OptSpec{}, errors.New("one-char flag can't have a short alias")
		}
		shortName, _ = utf8.DecodeRuneInString(f.Name)
		longName = ""
	}

	if isBoolFlag(f) {
		return argolis.NewOptSpec(shortName, longName, argolis.NoArg, func(_ argolis.OptSpec, _ argolis.Value) {
			b.set(f, "true")
		})
	}
	return argolis.NewOptSpec(shortName, longName, argolis.ExpectArg, func(_ argolis.OptSpec, value argolis.Value) {
		b.set(f, value.String())
	})
}

func (b *Binding) set(f *flag.Flag, value string) {
	if err := b.flagSet.Set(f.Name, value); err != nil {
		b.errs = append(b.errs, fmt.Errorf(`invalid value "%s" for flag -%s: %w`, value, f.Name, err))
	}
}

// OptSpecs returns options in the lexicographical order of flag names
func (b *Binding) OptSpecs() []argolis.OptSpec {
	return append([]argolis.OptSpec(nil), b.specs...)
}

// Err returns errors of flag.Value.Set calls made so far
func (b *Binding) Err() error {
	return errors.Join(b.errs...)
}

// GetVisitedFlagNames returns names of the flags that have been set
func GetVisitedFlagNames(flagSet *flag.FlagSet) map[string]struct{} {
	flags := make(map[string]struct{})
	flagSet.Visit(func(f *flag.Flag) {
		flags[f.Name] = struct{}{}
	})
	return flags
}
