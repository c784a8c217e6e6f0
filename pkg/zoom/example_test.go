package zoom_test

import (
	"fmt"

	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/hierarchy"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/partition"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/record"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/zoom"
)

func ExampleNavigator() {
	tree := hierarchy.Build([]record.Record{
		{Reason: "Food", Species: "Stork", Continent: "Europe"},
		{Reason: "Food", Species: "Crane", Continent: "Asia"},
		{Reason: "Breeding", Species: "Crane", Continent: "Asia"},
	})
	nav := zoom.New(tree, partition.Compute(tree, partition.Options{}), zoom.Options{})

	food, _ := tree.Find("Food")
	stork, _ := tree.Find("Food", "Stork")

	nav.Click(food)
	for _, p := range []float64{0, 0.5, 1} {
		a := nav.Advance(p).Arcs[stork].Arc
		fmt.Printf("p=%.1f stork %.3f..%.3f ring %.1f\n", p, a.X0, a.X1, a.Y0)
	}
	fmt.Println("focus:", nav.Focus().Path)
	// Output:
	// p=0.0 stork 0.000..2.094 ring 2.0
	// p=0.5 stork 0.000..2.618 ring 1.5
	// p=1.0 stork 0.000..3.142 ring 1.0
	// focus: [Food]
}
