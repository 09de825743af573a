package signals_test

import (
	"fmt"

	"github.com/kode4food/signals"
)

func ExampleNew() {
	sig, err := signals.New([]signals.Point[float64, float64]{
		{Time: 2, Value: 3},
		{Time: 0, Value: 1},
		{Time: 1, Value: 1.1},
	}, 0, 4, "x")
	if err != nil {
		panic(err)
	}
	fmt.Println(sig)
	// Output:
	// start, end: [0, 4)
	// data: [(0, {x: 1}), (1, {x: 1.1}), (2, {x: 3})]
}

func ExampleRolling() {
	sig, _ := signals.New([]signals.Point[int, int]{
		{Time: 0, Value: 1},
		{Time: 1, Value: 2},
		{Time: 2, Value: 3},
		{Time: 3, Value: 4},
	}, 0, 4, "x")

	fmt.Println(signals.Rolling(sig, 0, 2))
	// Output:
	// start, end: [0, 2)
	// data: [(0, {x: [1 2]}), (1, {x: [2 3]}), (2, {x: [3 4]}), (3, {x: [4]})]
}

func ExampleSignal_Interp() {
	sig, _ := signals.New([]signals.Point[int, string]{
		{Time: 0, Value: "idle"},
		{Time: 5, Value: "busy"},
	}, 0, 10, "state")

	s, _ := sig.Interp(7)
	fmt.Println(s["state"])
	// Output: busy
}
