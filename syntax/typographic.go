package syntax

/*
BSD 3-Clause License

Copyright (c) 2025-26, the tidemark authors

Please refer to the License file in the repository root.
*/

// typoRule is a literal typographic replacement.
type typoRule struct {
	from string
	to   string
}

// Ordered longest-first so "---" wins over "--".
var typoRules = []typoRule{
	{"---", "—"}, // em dash
	{"--", "–"},  // en dash
	{"...", "…"}, // ellipsis
	{"(c)", "©"},
	{"(C)", "©"},
	{"(r)", "®"},
	{"(R)", "®"},
	{"(tm)", "™"},
	{"(TM)", "™"},
}

// Typographic recognizes a typographic shorthand starting exactly at
// pos and returns its replacement. This is a rendering-time helper: the
// inline tokenizer does not consume these, since replacements do not
// affect byte ranges.
func Typographic(src Source, pos, end int) (replacement string, length int, ok bool) {
	for _, r := range typoRules {
		if matchAt(src, pos, end, r.from) {
			return r.to, len(r.from), true
		}
	}
	return "", 0, false
}
