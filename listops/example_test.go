package listops_test

import (
	"fmt"

	"github.com/Krypto02/Lab0/listops"
	"github.com/Krypto02/Lab0/value"
)

// ExampleFlatten concatenates sublists one level deep.
func ExampleFlatten() {
	nested, _ := value.ParseNested("[[1,2],[3,4],[5]]")
	fmt.Println(value.Join(listops.Flatten(nested), ","))
	// Output: 1,2,3,4,5
}

// ExampleShuffle demonstrates reproducible seeded shuffling: the same
// seed always yields the same permutation.
func ExampleShuffle() {
	in, _ := value.ParseList("1,2,3,4,5")
	a := listops.Shuffle(in, listops.WithSeed(42))
	b := listops.Shuffle(in, listops.WithSeed(42))
	fmt.Println(value.Join(a, ",") == value.Join(b, ","))
	// Output: true
}
