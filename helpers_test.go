package ukkonen

// allSuffixes returns every non-empty suffix of text.
func allSuffixes(text []byte) [][]byte {
	out := make([][]byte, 0, len(text))
	for i := 0; i < len(text); i++ {
		out = append(out, text[i:])
	}
	return out
}

// allSubstrings returns every non-empty substring of text.
func allSubstrings(text []byte) [][]byte {
	var out [][]byte
	for i := 0; i < len(text); i++ {
		for j := i + 1; j <= len(text); j++ {
			out = append(out, text[i:j])
		}
	}
	return out
}
