// Package lexicon provides the static lexical resources used for query
// expansion: a synonym synset table, a legal-domain thesaurus, and the
// risk-flag word lists. All lookups are pure functions over fixed tables.
package lexicon
