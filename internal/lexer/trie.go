package lexer

import "stenolex/internal/rules"

// trieEntry is one indexed rule along with everything needed to test it as a
// candidate without touching the rule itself.
type trieEntry struct {
	rule    *rules.Rule
	keys    string // full s-keys, unordered characters included
	letters string // rule letters, case-folded
	extra   string // unordered characters required from the leading stroke
}

type trieNode struct {
	children map[byte]*trieNode
	entries  []trieEntry
}

// trie is a prefix tree over ordered s-keys. Unlike a plain map it returns
// the entries under every prefix of a lookup key, and it allows duplicate
// keys, so one lookup yields every rule whose keys could begin the remaining
// input.
type trie struct {
	root trieNode
}

func (t *trie) add(key string, e trieEntry) {
	node := &t.root
	for i := 0; i < len(key); i++ {
		child := node.children[key[i]]
		if child == nil {
			child = &trieNode{}
			if node.children == nil {
				node.children = make(map[byte]*trieNode)
			}
			node.children[key[i]] = child
		}
		node = child
	}
	node.entries = append(node.entries, e)
}

// match returns the entries under every prefix of key, shortest prefix
// first. The root node matches the empty prefix of everything.
func (t *trie) match(key string) []trieEntry {
	node := &t.root
	out := append([]trieEntry(nil), node.entries...)
	for i := 0; i < len(key); i++ {
		node = node.children[key[i]]
		if node == nil {
			break
		}
		out = append(out, node.entries...)
	}
	return out
}
