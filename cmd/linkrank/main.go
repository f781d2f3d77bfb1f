// Command linkrank ranks the pages of a link graph by PageRank.
package main

import "github.com/katalvlaran/linkrank/internal/cli"

func main() {
	cli.Execute()
}
