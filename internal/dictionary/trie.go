package dictionary

import (
	"sort"
	"strings"
)

// Trie is a prefix-tree word store supporting O(len) exact lookup,
// prefix-existence checks, and definition retrieval. All lookups are
// case-insensitive. Build it once, then treat it as read-only; a loaded
// Trie is safe to share across concurrent solver and generator runs.
type Trie struct {
	root  *node
	count int
}

type node struct {
	children   map[byte]*node
	isWord     bool
	definition string
}

// New returns an empty dictionary.
func New() *Trie {
	return &Trie{root: &node{}}
}

// Add inserts a word with an optional definition (empty string for none).
// Idempotent: re-adding a word overwrites its definition without double
// counting.
func (t *Trie) Add(word, definition string) {
	n := t.root
	for _, c := range []byte(strings.ToUpper(word)) {
		if n.children == nil {
			n.children = make(map[byte]*node)
		}
		child, ok := n.children[c]
		if !ok {
			child = &node{}
			n.children[c] = child
		}
		n = child
	}
	if !n.isWord {
		n.isWord = true
		t.count++
	}
	n.definition = definition
}

func (t *Trie) traverse(text string) *node {
	n := t.root
	for _, c := range []byte(strings.ToUpper(text)) {
		child, ok := n.children[c]
		if !ok {
			return nil
		}
		n = child
	}
	return n
}

// Contains reports whether word was added as a complete word.
func (t *Trie) Contains(word string) bool {
	n := t.traverse(word)
	return n != nil && n.isWord
}

// ContainsPrefix reports whether any added word starts with prefix. The
// empty prefix is always present. This is the check the solver leans on
// to prune dead permutation branches.
func (t *Trie) ContainsPrefix(prefix string) bool {
	return t.traverse(prefix) != nil
}

// Definition returns the stored definition for word, if any.
func (t *Trie) Definition(word string) (string, bool) {
	n := t.traverse(word)
	if n == nil || !n.isWord || n.definition == "" {
		return "", false
	}
	return n.definition, true
}

// Len returns the number of distinct complete words stored.
func (t *Trie) Len() int { return t.count }

// WordsWithPrefix returns all stored words starting with prefix, in
// lexicographic order. Deterministic ordering keeps seeded generation
// reproducible.
func (t *Trie) WordsWithPrefix(prefix string) []string {
	n := t.traverse(prefix)
	if n == nil {
		return nil
	}
	var out []string
	collect(n, strings.ToUpper(prefix), &out)
	return out
}

func collect(n *node, prefix string, out *[]string) {
	if n.isWord {
		*out = append(*out, prefix)
	}
	keys := make([]byte, 0, len(n.children))
	for c := range n.children {
		keys = append(keys, c)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	for _, c := range keys {
		collect(n.children[c], prefix+string(c), out)
	}
}
