package bptree

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// Dump renders the tree's current node structure as a multi-line string,
// for debugging shape, splits, and rebalancing. formatKey/formatValue
// render individual entries; pass nil for either to fall back to fmt's
// default formatting.
func (t *Tree[K, V]) Dump(formatKey func(K) string, formatValue func(V) string) string {
	if formatKey == nil {
		formatKey = func(k K) string { return fmt.Sprintf("%v", k) }
	}
	if formatValue == nil {
		formatValue = func(v V) string { return fmt.Sprintf("%v", v) }
	}

	header := fmt.Sprintf("Tree(depth=%d count=%d order=%d)\n", t.depth, t.count, t.order)
	p := tp.New()
	dumpNode(p, t.root, t.rootCount, formatKey, formatValue)
	return header + p.String()
}

func dumpNode[K any, V any](p tp.Tree, n node[K, V], cnt int, formatKey func(K) string, formatValue func(V) string) {
	switch x := n.(type) {
	case *leafNode[K, V]:
		for i := 0; i < cnt; i++ {
			p.AddNode(formatKey(x.keys[i]) + "=" + formatValue(x.values[i]))
		}
	case *interiorNode[K, V]:
		for i := 0; i < cnt; i++ {
			label := "*"
			if i > 0 {
				label = formatKey(x.keys[i])
			}
			branch := p.AddBranch(label)
			link := x.children[i]
			dumpNode(branch, link.child, link.entriesCount, formatKey, formatValue)
		}
	}
}
