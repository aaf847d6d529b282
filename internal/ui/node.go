package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Node is one overlay element. Class and ID select its CSS rules; Bounds is recomputed from its
// style on every Layout. Hidden nodes are neither drawn nor hit.
type Node struct {
	Type   string // panel, label or button
	Class  string
	ID     string
	Text   string
	Hidden bool
	Bounds rl.Rectangle
}

// NewNode returns a visible node.
func NewNode(typ, class, id, text string) *Node {
	return &Node{Type: typ, Class: class, ID: id, Text: text}
}
