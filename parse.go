package pdbfetch

import (
	"encoding/json"
	"strings"
)

// ParseList splits the raw text content of an identifier list into an
// ordered sequence of identifiers.
//
// The delimiter is decided once for the whole input: if the text contains
// at least one comma it is treated as comma-delimited, otherwise as
// newline-delimited. Mixed delimiters are not supported; when a comma is
// present, newlines are ordinary whitespace.
//
// Tokens are trimmed of leading and trailing whitespace and empty tokens
// are dropped. Order of first appearance is preserved and duplicates are
// kept; no case normalization or charset validation is performed.
func ParseList(text string) []string {
	sep := "\n"
	if strings.Contains(text, ",") {
		sep = ","
	}

	var ids []string
	for _, tok := range strings.Split(text, sep) {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		ids = append(ids, tok)
	}
	return ids
}

// searchResults mirrors the subset of a PDB Search API response needed to
// pull out entry identifiers.
type searchResults struct {
	ResultSet []struct {
		Identifier string `json:"identifier"`
	} `json:"result_set"`
}

// ParseSearchResults extracts the ordered identifier list from a PDB Search
// API results document. Entries without an identifier are skipped.
// Returns EINVALID if the document is not valid JSON or has no result set.
func ParseSearchResults(data []byte) ([]string, error) {
	var results searchResults
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, Errorf(EINVALID, "search results are not valid JSON: %v", err)
	}
	if results.ResultSet == nil {
		return nil, Errorf(EINVALID, "search results have no result_set")
	}

	var ids []string
	for _, item := range results.ResultSet {
		if item.Identifier == "" {
			continue
		}
		ids = append(ids, item.Identifier)
	}
	return ids, nil
}
