package partition_test

import (
	"fmt"

	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/hierarchy"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/partition"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/record"
)

func ExampleCompute() {
	tree := hierarchy.Build([]record.Record{
		{Reason: "Food", Species: "Stork", Continent: "Europe"},
		{Reason: "Food", Species: "Stork", Continent: "Africa"},
		{Reason: "Food", Species: "Crane", Continent: "Asia"},
		{Reason: "Breeding", Species: "Crane", Continent: "Asia"},
	})
	l := partition.Compute(tree, partition.Options{})

	for _, id := range l.Children(hierarchy.Root) {
		a := l.Arc(id)
		fmt.Printf("%-8s %.4f..%.4f ring %.0f\n", tree.Name(id), a.X0, a.X1, a.Y0)
	}
	// Output:
	// Food     0.0000..4.7124 ring 1
	// Breeding 4.7124..6.2832 ring 1
}
