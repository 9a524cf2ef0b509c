package scopekit_test

import (
	"errors"
	"fmt"

	"github.com/evan-idocoding/scopekit"
)

func ExampleNew() {
	state := 0
	func() {
		g := scopekit.New(0, func(*int) { state = 1000 })
		defer g.Drop()

		fmt.Println("before exit:", state)
	}()
	fmt.Println("after exit:", state)

	// Output:
	// before exit: 0
	// after exit: 1000
}

func ExampleGuard_Value() {
	g := scopekit.New(7, func(v *int) { fmt.Println("cleanup saw", *v) })
	*g.Value() = 42
	g.Drop()

	// Output:
	// cleanup saw 42
}

func ExampleGuard_Drop_early() {
	func() {
		g := scopekit.Defer(func() { fmt.Println("released") })
		defer g.Drop()

		g.Drop() // release before scope exit
		fmt.Println("still in scope, dropped:", g.Dropped())
	}()

	// Output:
	// released
	// still in scope, dropped: true
}

func ExampleDefer() {
	func() {
		a := scopekit.Defer(func() { fmt.Println("A") })
		defer a.Drop()
		b := scopekit.Defer(func() { fmt.Println("B") })
		defer b.Drop()

		fmt.Println("body")
	}()

	// Output:
	// body
	// B
	// A
}

func ExampleRun() {
	scopekit.Run(func(s *scopekit.Scope) {
		s.Defer(func() { fmt.Println("first registered, last run") })
		s.Defer(func() { fmt.Println("last registered, first run") })
		fmt.Println("body")
	})

	// Output:
	// body
	// last registered, first run
	// first registered, last run
}

func ExampleRun_panic() {
	defer func() {
		fmt.Println("recovered:", recover())
	}()

	scopekit.Run(func(s *scopekit.Scope) {
		s.Defer(func() { fmt.Println("cleanup runs during unwind") })
		panic("boom")
	})

	// Output:
	// cleanup runs during unwind
	// recovered: boom
}

func ExampleRunErr() {
	err := scopekit.RunErr(func(s *scopekit.Scope) error {
		s.DeferErr(func() error { return errors.New("flush failed") })
		return errors.New("body failed")
	})
	fmt.Println(err)

	// Output:
	// body failed
	// flush failed
}

func ExampleAttach() {
	total := 0
	scopekit.Run(func(s *scopekit.Scope) {
		g := scopekit.Attach(s, 1, func(n *int) { total = *n })
		*g.Value() += 41
	})
	fmt.Println("total:", total)

	// Output:
	// total: 42
}

func ExampleWithErrorHandler() {
	d := scopekit.DeferErr(func() error { return errors.New("close failed") },
		scopekit.WithName("spool"),
		scopekit.WithTag("dir", "/tmp/spool"),
		scopekit.WithErrorHandler(func(info scopekit.ErrorInfo) {
			fmt.Printf("name=%s tags=%v err=%v\n", info.Name, info.Tags, info.Err)
		}),
	)
	d.Drop()

	// Output:
	// name=spool tags=[{dir /tmp/spool}] err=close failed
}
