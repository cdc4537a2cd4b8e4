package subject

import "strings"

// aliases maps lower-cased, trimmed input to a canonical display name.
// Trailing dots are stripped before lookup so "Maths." resolves too.
var aliases = map[string]string{}

func init() {
	add := func(canonical string, alts ...string) {
		aliases[strings.ToLower(canonical)] = canonical
		for _, a := range alts {
			aliases[a] = canonical
		}
	}
	add("Mathematics", "math", "maths")
	add("Physics", "phy", "phys")
	add("Chemistry", "chem")
	add("Biology", "bio")
	add("History", "hist")
	add("Geography", "geo", "geog")
	add("English", "eng", "english language")
	add("Computer Science", "cs", "compsci", "comp sci", "programming", "computers")
	add("Economics", "eco", "econ")
}

// Normalize canonicalizes a free-text subject name. Known aliases map to a
// fixed display form; anything else is title-cased. Pure and total: empty or
// blank input comes back as "".
func Normalize(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}
	key := strings.ToLower(strings.TrimRight(trimmed, "."))
	key = strings.Join(strings.Fields(key), " ")
	if canonical, ok := aliases[key]; ok {
		return canonical
	}
	return titleCase(trimmed)
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r := []rune(w)
		r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
