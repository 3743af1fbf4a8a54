// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ui declares the page structure as a tree of [Node]s and
// mounts it into the browser document.
package ui

import (
	"html"
	"maps"
	"slices"
	"strings"
)

// Node is an element in the UI tree.
type Node struct {

	// Tag is the HTML tag name.
	Tag string

	// ID is the element id attribute, if any.
	ID string

	// Style is the inline CSS style.
	Style string

	// Attrs are additional attributes.
	Attrs map[string]string

	// Children are the child elements, in order.
	Children []*Node

	// OnMounted is called once the element is attached to the document.
	OnMounted func()
}

// NewNode returns a new [Node] with the given tag.
func NewNode(tag string) *Node {
	return &Node{Tag: tag}
}

// SetID sets the [Node.ID].
func (n *Node) SetID(id string) *Node {
	n.ID = id
	return n
}

// SetStyle sets the [Node.Style].
func (n *Node) SetStyle(style string) *Node {
	n.Style = style
	return n
}

// SetAttr sets an attribute.
func (n *Node) SetAttr(name, value string) *Node {
	if n.Attrs == nil {
		n.Attrs = map[string]string{}
	}
	n.Attrs[name] = value
	return n
}

// OnMount sets the [Node.OnMounted] hook.
func (n *Node) OnMount(fn func()) *Node {
	n.OnMounted = fn
	return n
}

// AddChild appends c to the children of n and returns n.
func (n *Node) AddChild(c *Node) *Node {
	n.Children = append(n.Children, c)
	return n
}

// AttrNames returns the attribute names in sorted order.
func (n *Node) AttrNames() []string {
	return slices.Sorted(maps.Keys(n.Attrs))
}

// Walk calls fn on n and its descendants, depth first,
// stopping early when fn returns false.
func (n *Node) Walk(fn func(n *Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// FindByID returns the node with the given id, or nil.
func (n *Node) FindByID(id string) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if c.ID == id {
			found = c
			return false
		}
		return true
	})
	return found
}

// HTML returns the static markup of the tree, which is served
// before the WASM program replaces it with the live tree.
func (n *Node) HTML() string {
	var sb strings.Builder
	n.writeHTML(&sb)
	return sb.String()
}

func (n *Node) writeHTML(sb *strings.Builder) {
	sb.WriteString("<" + n.Tag)
	if n.ID != "" {
		sb.WriteString(` id="` + html.EscapeString(n.ID) + `"`)
	}
	for _, k := range n.AttrNames() {
		sb.WriteString(" " + k + `="` + html.EscapeString(n.Attrs[k]) + `"`)
	}
	if n.Style != "" {
		sb.WriteString(` style="` + html.EscapeString(n.Style) + `"`)
	}
	sb.WriteString(">")
	for _, c := range n.Children {
		c.writeHTML(sb)
	}
	sb.WriteString("</" + n.Tag + ">")
}
