package bst

import (
	"fmt"
	"strings"
)

// Visualize renders the tree as an ASCII branch diagram, one key per line.
// Right children are listed before left children and are tagged "R:" and "L:"
// so that one-child nodes keep their side. An empty tree renders as "(empty)".
//
//	50
//	├── R: 70
//	│   └── L: 60
//	└── L: 30
func (t *Tree[K]) Visualize() string {
	if t.root == nil {
		return "(empty)\n"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%v\n", t.root.Key)
	renderChildren(&sb, t.root, "")

	return sb.String()
}

func renderChildren[K any](sb *strings.Builder, n *Node[K], prefix string) {
	type child struct {
		tag  string
		node *Node[K]
	}
	kids := make([]child, 0, 2)
	if n.right != nil {
		kids = append(kids, child{"R", n.right})
	}
	if n.left != nil {
		kids = append(kids, child{"L", n.left})
	}

	for i, c := range kids {
		connector, extension := "├── ", "│   "
		if i == len(kids)-1 {
			connector, extension = "└── ", "    "
		}
		fmt.Fprintf(sb, "%s%s%s: %v\n", prefix, connector, c.tag, c.node.Key)
		renderChildren(sb, c.node, prefix+extension)
	}
}
