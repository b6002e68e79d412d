package partition_test

import (
	"fmt"

	"github.com/katalvlaran/community/builder"
	"github.com/katalvlaran/community/partition"
)

// ExamplePartition_MoveNode shows aggregates following a committed move.
func ExamplePartition_MoveNode() {
	// Two triangles 0-1-2 and 3-4-5 joined by the bridge 2–3.
	g, _ := builder.BuildGraph(nil, nil,
		builder.Complete(3), builder.Complete(3), builder.Bridge(2, 3))
	p, _ := partition.NewFromMembership(g, []int{0, 0, 0, 1, 1, 1})

	fmt.Println("inside:", p.TotalWeightInComm(0), p.TotalWeightInComm(1))
	p.MoveNode(2, 1)
	fmt.Println("inside:", p.TotalWeightInComm(0), p.TotalWeightInComm(1))
	fmt.Println("members:", p.Members(1))
	// Output:
	// inside: 3 3
	// inside: 1 4
	// members: [2 3 4 5]
}
