package snowflake

import (
	"hash/fnv"
	"os"
	"sync"

	bwsnowflake "github.com/bwmarrin/snowflake"
)

// nodeMask keeps a node id within the 10 bits bwmarrin reserves for it.
const nodeMask = 0x3FF

var (
	mu   sync.Mutex
	node *bwsnowflake.Node
)

// SetNodeID selects the worker node for order ids. Ids above 1023 wrap.
func SetNodeID(id int64) error {
	n, err := bwsnowflake.NewNode(id & nodeMask)
	if err != nil {
		return err
	}
	mu.Lock()
	node = n
	mu.Unlock()
	return nil
}

// Next returns a fresh order id. Without SetNodeID the node is derived from
// the host name.
func Next() int64 {
	mu.Lock()
	if node == nil {
		node = machineNode()
	}
	n := node
	mu.Unlock()
	return n.Generate().Int64()
}

func machineNode() *bwsnowflake.Node {
	name, err := os.Hostname()
	if err != nil {
		name = "storefront"
	}
	sum := fnv.New32a()
	sum.Write([]byte(name))
	n, err := bwsnowflake.NewNode(int64(sum.Sum32()) & nodeMask)
	if err != nil {
		// unreachable after masking; node 0 keeps Next total
		n, _ = bwsnowflake.NewNode(0)
	}
	return n
}
