package tree

import (
	"strconv"
	"strings"

	"github.com/benz9527/xtree/lib/queue"
)

/*
String dumps the tree top-down, the left child first.

	(5, five)<1>
	├── L: (3)<0>
	└── R: (9, nine)<0>

Red-Black tree nodes carry the color before the black height, like <B2>.
*/
func (t *tree[K, V]) String() string {
	if t.root == nil {
		return "<empty>"
	}

	type frame struct {
		n      *node[K, V]
		prefix string
		label  string
		isLast bool
	}

	builder := strings.Builder{}
	stack := queue.NewLinkedStack[frame]()
	stack.Push(frame{n: t.root})
	for !stack.IsEmpty() {
		f, _ := stack.Pop()
		childPrefix := ""
		if f.n != t.root {
			_, _ = builder.WriteString(f.prefix)
			if f.isLast {
				_, _ = builder.WriteString("└── ")
				childPrefix = f.prefix + "    "
			} else {
				_, _ = builder.WriteString("├── ")
				childPrefix = f.prefix + "│   "
			}
			_, _ = builder.WriteString(f.label)
		}
		_, _ = builder.WriteString(t.nodeString(f.n))
		_, _ = builder.WriteString("\n")

		// Pushed in reverse, the left child is printed first.
		switch {
		case f.n.left != nil && f.n.right != nil:
			stack.Push(frame{n: f.n.right, prefix: childPrefix, label: "R: ", isLast: true})
			stack.Push(frame{n: f.n.left, prefix: childPrefix, label: "L: "})
		case f.n.left != nil:
			stack.Push(frame{n: f.n.left, prefix: childPrefix, label: "L: ", isLast: true})
		case f.n.right != nil:
			stack.Push(frame{n: f.n.right, prefix: childPrefix, label: "R: ", isLast: true})
		default:
		}
	}
	return strings.TrimSuffix(builder.String(), "\n")
}

func (t *tree[K, V]) nodeString(n *node[K, V]) string {
	h := strconv.Itoa(n.height)
	if t.Kind() == RedBlack {
		h = n.color.String() + h
	}
	return n.entry.String() + "<" + h + ">"
}
