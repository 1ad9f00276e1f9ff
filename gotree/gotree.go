// Package gotree renders nested diagnostics as an indented tree.
package gotree

import "strings"

const (
	newLine      = "\n"
	emptySpace   = "    "
	middleItem   = "├── "
	continueItem = "│   "
	lastItem     = "└── "
)

type (
	tree struct {
		text  string
		items []Tree
	}

	// Tree is a node of text with ordered children.
	Tree interface {
		Add(text string) Tree
		AddTree(tree Tree)
		Items() []Tree
		Text() string
		Print() string
	}
)

// New returns a tree with a single root node.
func New(text string) Tree {
	return &tree{
		text:  text,
		items: []Tree{},
	}
}

// Add appends a leaf and returns it.
func (t *tree) Add(text string) Tree {
	n := New(text)
	t.items = append(t.items, n)
	return n
}

// AddTree appends a subtree.
func (t *tree) AddTree(tree Tree) {
	t.items = append(t.items, tree)
}

func (t *tree) Text() string {
	return t.text
}

func (t *tree) Items() []Tree {
	return t.items
}

// Print returns the tree drawn with box characters, one node per line.
func (t *tree) Print() string {
	var sb strings.Builder
	sb.WriteString(t.Text())
	sb.WriteString(newLine)
	printItems(&sb, t.Items(), nil)
	return sb.String()
}

func printText(sb *strings.Builder, text string, spaces []bool, last bool) {
	var prefix string
	for _, space := range spaces {
		if space {
			prefix += emptySpace
		} else {
			prefix += continueItem
		}
	}

	indicator := middleItem
	if last {
		indicator = lastItem
	}
	for i, line := range strings.Split(text, newLine) {
		if i > 0 {
			// continuation lines of a multi-line node
			if last {
				indicator = emptySpace
			} else {
				indicator = continueItem
			}
		}
		sb.WriteString(prefix + indicator + line + newLine)
	}
}

func printItems(sb *strings.Builder, items []Tree, spaces []bool) {
	for i, item := range items {
		last := i == len(items)-1
		printText(sb, item.Text(), spaces, last)
		if len(item.Items()) > 0 {
			child := append(append([]bool{}, spaces...), last)
			printItems(sb, item.Items(), child)
		}
	}
}
