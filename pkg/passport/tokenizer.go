package passport

import "strings"

// Tokenize splits a record block into its key:value pairs. Tokens may be
// separated by any whitespace, including newlines. Each token is split at its
// first colon, so the value may itself contain colons. A repeated key keeps
// its last value.
func Tokenize(block string) (map[string]string, error) {
	tokens := strings.Fields(block)
	fields := make(map[string]string, len(tokens))

	for _, tok := range tokens {
		key, value, ok := strings.Cut(tok, ":")
		if !ok {
			return nil, &MalformedTokenError{Token: tok}
		}
		fields[key] = value
	}

	return fields, nil
}
