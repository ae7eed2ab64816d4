package textprep_test

import (
	"fmt"

	"github.com/Krypto02/Lab0/textprep"
)

// ExampleTokenize normalizes a sentence into lowercase tokens.
func ExampleTokenize() {
	fmt.Println(textprep.Tokenize("Hello, World! How are you?"))
	// Output: hello world how are you
}

// ExampleRemoveStopwords filters common words out of a sentence.
func ExampleRemoveStopwords() {
	fmt.Println(textprep.RemoveStopwords("this is a test", []string{"is", "a"}))
	// Output: this test
}
