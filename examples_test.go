package argolis

import (
	"fmt"
)

func ExampleParser() {
	count := "1"
	adjective := ""
	p := NewParser(
		MustOptSpec('c', "count", ExpectArg, func(_ OptSpec, value Value) {
			count = value.String()
		}),
		MustOptSpec('a', "adjective", MaybeArg, func(_ OptSpec, value Value) {
			adjective = value.Or("dear")
		}),
	)
	p.OnArg(func(arg string) {
		fmt.Printf("Hello, %s %s x%s\n", adjective, arg, count)
	})

	if err := p.Parse([]string{"greet", "--count", "3", "-a", "friend", "Bob"}); err != nil {
		panic(err)
	}
	// Output: Hello, friend Bob x3
}

func ExampleParser_SetCombiAllowed() {
	on := func(spec OptSpec, value Value) {
		fmt.Printf("opt %s value %q set %v\n", spec, value.String(), value.IsSet())
	}
	p := NewParser(
		MustOptSpec('a', "all", NoArg, on),
		MustOptSpec('n', "num", ExpectArg, on),
	)
	p.SetCombiAllowed(true)
	p.OnArg(func(arg string) {
		fmt.Println("arg", arg)
	})
	p.OnErr(func(err Error) {
		fmt.Println(err)
	})

	_ = p.Parse([]string{"prog", "-an", "37", "-x", "--", "-a"})
	// Output:
	// opt -a/--all value "" set false
	// opt -n/--num value "37" set true
	// unknown option: -x
	// arg -a
}

func ExampleParser_SetAbortOnError() {
	p := NewParser()
	p.SetAbortOnError(true)
	p.OnArg(func(arg string) {
		fmt.Println("arg", arg)
	})
	p.OnErr(func(err Error) {
		fmt.Println(err.Kind, err.Item)
	})

	_ = p.Parse([]string{"prog", "--unknown", "foo"})
	// Output: bad-opt --unknown
}
