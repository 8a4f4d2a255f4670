// Command dsakit runs the binary search tree, Dijkstra and coin-change tools.
package main

import "github.com/katalvlaran/dsakit/internal/cli"

func main() {
	cli.Execute()
}
