package llm

import "fmt"

// SynonymPrompt asks for the senses of word and the synonyms of each sense.
func SynonymPrompt(word string) string {
	return fmt.Sprintf(`You are a thesaurus. List the common senses of the word below and, for each sense, its synonyms.

WORD: %q

Rules:
- One group per sense, most common sense first
- At most 4 groups, at most 8 synonyms per group
- Single words or short phrases, lowercase, no definitions
- Include the word itself in a group only if it is a lemma of that sense
- If the word is not an English word, return an empty list

Return ONLY JSON of the form:
{"senses": [{"synonyms": ["...", "..."]}]}`, word)
}
