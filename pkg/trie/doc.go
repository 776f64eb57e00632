// ## Overview
// Package trie implements a fixed-alphabet prefix tree of lowercase words.
// Every node holds one child slot per letter of the alphabet and a flag marking
// whether the path from the root to it spells a stored word. Words are added with
// Insert and read back, lexicographically sorted, with CollectAllWords or ForEachWord.
//
// ## Example usage:
//
//	t := trie.New(trie.DefaultAlphabetSize)
//	if err := t.InsertAll("sony", "soney", "moto"); err != nil {
//	    // errors.Is(err, trie.ErrInvalidCharacter)
//	}
//
//	for _, word := range t.CollectAllWords() {
//	    fmt.Println(word) // moto, soney, sony
//	}
//
// Insert is not atomic: when a word holds a character outside the alphabet, the
// nodes created for the valid part before it stay in the tree, but no word is stored.
//
// A Trie has no internal locking. Readers may share it as long as no Insert runs
// at the same time.
package trie
