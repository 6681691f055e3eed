// This program provides a CLI for submitting transactions and inspecting
// a node's chain and peer list over the v1 API.
package main

import "github.com/driftchain/node/app/tooling/client/cmd"

func main() {
	cmd.Execute()
}
