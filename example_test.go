package linkrank_test

import (
	"fmt"

	"github.com/katalvlaran/linkrank"
	"github.com/katalvlaran/linkrank/core"
)

// Example ranks a four-page corpus with the iterative engine.
func Example() {
	g, err := core.FromAdjacency(map[string][]string{
		"1.html": {"2.html"},
		"2.html": {"1.html", "3.html"},
		"3.html": {"2.html", "4.html"},
		"4.html": {"2.html"},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	ranks, err := linkrank.IterateRank(g, linkrank.DefaultDamping, 1e-9)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	top := ranks.Top(1)[0]
	fmt.Printf("top page: %s, total: %.4f\n", top.Page, ranks.Sum())

	// Output:
	// top page: 2.html, total: 1.0000
}
