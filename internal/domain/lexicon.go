package domain

// Pronunciation is an ordered list of phonemes for a single word.
type Pronunciation []string

// Lexicon maps a word to its pronunciations, in the order they were loaded.
// A word may have more than one pronunciation (e.g. "read").
type Lexicon map[string][]Pronunciation

// Add appends a pronunciation for word, preserving load order.
func (l Lexicon) Add(word string, pron Pronunciation) {
	l[word] = append(l[word], pron)
}

// Lookup returns up to nbest pronunciations for word, or nil when the word
// is unknown. nbest <= 0 means all.
func (l Lexicon) Lookup(word string, nbest int) []Pronunciation {
	prons, ok := l[word]
	if !ok {
		return nil
	}
	if nbest > 0 && len(prons) > nbest {
		return prons[:nbest]
	}
	return prons
}

// MergeFrom copies all pronunciations from other into l. Pronunciations of
// words present in both are appended after the existing ones.
func (l Lexicon) MergeFrom(other Lexicon) {
	for word, prons := range other {
		l[word] = append(l[word], prons...)
	}
}

// Guess is one predicted (or looked-up) pronunciation for a word.
type Guess struct {
	Word     string        `json:"word"`
	Phonemes Pronunciation `json:"phonemes"`
}
