package core

import (
	"sort"
	"strings"

	"github.com/dghubble/trie"
)

// prefixIndex finds the registered namespace prefixes of a symbol. Matches
// come back in registration order; the trie only narrows the candidates.
type prefixIndex struct {
	trie *trie.PathTrie
}

func newPrefixIndex() prefixIndex {
	return prefixIndex{
		trie: trie.NewPathTrieWithConfig(&trie.PathTrieConfig{
			Segmenter: namespaceSegmenter,
		}),
	}
}

func (x prefixIndex) get(prefix string) (*namespaceEntry, bool) {
	value := x.trie.Get(prefix)
	if value == nil {
		return nil, false
	}
	return value.(*namespaceEntry), true
}

func (x prefixIndex) put(entry *namespaceEntry) {
	x.trie.Put(entry.prefix, entry)
}

func (x prefixIndex) delete(prefix string) {
	x.trie.Delete(prefix)
}

func (x prefixIndex) matching(symbol string) []*namespaceEntry {
	var matches []*namespaceEntry
	x.trie.WalkPath(symbol, func(key string, value interface{}) error {
		matches = append(matches, value.(*namespaceEntry))
		return nil
	})
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].seq < matches[j].seq
	})
	return matches
}

// namespaceSegmenter splits a symbol after every separator, so `A\B\C`
// segments as `A\`, `B\`, `C`. Every normalized prefix is then a whole number
// of segments and a string prefix of a symbol is exactly a trie ancestor.
func namespaceSegmenter(path string, start int) (segment string, next int) {
	if len(path) == 0 || start < 0 || start > len(path)-1 {
		return "", -1
	}
	end := strings.Index(path[start:], NamespaceSeparator)
	if end == -1 {
		return path[start:], -1
	}
	return path[start : start+end+1], start + end + 1
}
