package testing

import (
	"math/rand"
	"strconv"
)

// Node is a graph vertex for hashing fixtures.
type Node struct {
	ID     int
	Name   string
	Weight float64
	Tags   []string
	Left   *Node
	Right  *Node
}

func MakeByteArrayPayload(size int) []byte {
	payload := make([]byte, size)
	for i := 0; i < len(payload); i++ {
		payload[i] = byte(i)
	}
	return payload
}

var letterRunes = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZäöüß")

func MakeRandomString(rnd *rand.Rand, n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letterRunes[rnd.Intn(len(letterRunes))]
	}
	return string(b)
}

// MakeTree returns a complete binary tree of the given depth. Node ids are assigned breadth first starting at 1.
func MakeTree(depth int) *Node {
	return makeSubtree(1, depth)
}

func makeSubtree(id, depth int) *Node {
	if depth <= 0 {
		return nil
	}
	return &Node{
		ID:     id,
		Name:   "node-" + strconv.Itoa(id),
		Weight: float64(id) / 2,
		Tags:   []string{"depth", strconv.Itoa(depth)},
		Left:   makeSubtree(2*id, depth-1),
		Right:  makeSubtree(2*id+1, depth-1),
	}
}

// MakeRing returns the first of n nodes linked in both directions, the last one pointing back to the first.
func MakeRing(n int) *Node {
	if n <= 0 {
		return nil
	}
	nodes := make([]*Node, n)
	for i := range nodes {
		nodes[i] = &Node{ID: i, Name: "ring-" + strconv.Itoa(i)}
	}
	for i, node := range nodes {
		node.Right = nodes[(i+1)%n]
		node.Left = nodes[(i+n-1)%n]
	}
	return nodes[0]
}
