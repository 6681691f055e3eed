package genesis_test

import "testing"

import "github.com/driftchain/node/foundation/blockchain/genesis"

func TestBuildDeterministic(t *testing.T) {
	c1 := genesis.Build("00")
	c2 := genesis.Build("00")

	if c1.Head() != c2.Head() {
		t.Fatalf("genesis blocks differ across builds: %+v != %+v", c1.Head(), c2.Head())
	}
}

func TestBuildSatisfiesSuffix(t *testing.T) {
	c := genesis.Build("00")
	if !c.Head().IsValid("00") {
		t.Fatal("genesis block must satisfy the configured suffix")
	}
}
