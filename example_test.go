package predkit_test

import (
	"fmt"

	"go.llib.dev/frameless/pkg/must"
	"go.llib.dev/predkit"
)

func Example() {
	// guard a dynamic hook invocation:
	// every positional argument must be a string,
	// and the "retries" keyword argument must exist and be an integer
	guard := predkit.And(
		must.Must(predkit.NPos(predkit.AtMost(3))),
		must.Must(predkit.Args(
			predkit.Where(predkit.IsString),
			predkit.KW("retries", predkit.IsInt),
		)),
	)

	fmt.Println(guard(predkit.CallTo("a", "b").WithKW("retries", 3)))
	fmt.Println(guard(predkit.CallTo("a", 42).WithKW("retries", 3)))
	fmt.Println(guard(predkit.CallTo("a", "b")))
	// Output:
	// true
	// false
	// false
}

func ExampleIndex() {
	// the first positional argument, if present, must be a string
	fn := must.Must(predkit.ArgsAt(predkit.Index(0), predkit.Where(predkit.IsString)))

	fmt.Println(fn(predkit.CallTo()))
	fmt.Println(fn(predkit.CallTo("a")))
	fmt.Println(fn(predkit.CallTo(4)))
	fmt.Println(fn(predkit.CallTo("a", 8).WithKW("k", 15)))
	// Output:
	// true
	// true
	// false
	// true
}

func ExampleIndex_negative() {
	// a negative index resolves against each call's actual argument count
	fn := must.Must(predkit.ArgsAt(predkit.Index(-1), predkit.Where(predkit.IsString)))

	fmt.Println(fn(predkit.CallTo(1, 2, "x")))
	fmt.Println(fn(predkit.CallTo(1, 2, 3, "y")))
	// Output:
	// true
	// true
}

func ExampleNot() {
	// Not holds when none of the given predicates hold
	fn := predkit.Not(
		predkit.All(predkit.IsString),
		predkit.All(predkit.IsInt),
	)

	fmt.Println(fn(predkit.CallTo(1.5)))
	fmt.Println(fn(predkit.CallTo("a")))
	// Output:
	// true
	// false
}

func ExampleZip() {
	fn := predkit.Zip(predkit.IsString, predkit.IsInt)

	fmt.Println(fn(predkit.CallTo("a", 42)))
	fmt.Println(fn(predkit.CallTo(42, "a")))
	// Output:
	// true
	// false
}
