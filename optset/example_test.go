package optset_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvlist/optset"
)

// ExampleSet_Parse declares two options, parses and prints the result.
func ExampleSet_Parse() {
	s := optset.New(optset.WithAutoHelp(false))
	s.Add(optset.NewFlag("dry-run", false))
	s.Add(optset.NewValue[int]("retries", true))

	if err := s.Parse([]string{"--retries", "3", "--dry-run"}); err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = s.Print(os.Stdout, true)
	// Output:
	// [dry-run] <set>
	//  retries INT  = "3"
}
