package checks

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// JSON value kinds reported for non-object bodies.
const (
	JSONObject  = "object"
	JSONArray   = "array"
	JSONString  = "string"
	JSONNumber  = "number"
	JSONBoolean = "boolean"
	JSONNull    = "null"
)

var errInvalidJSON = errors.New("invalid JSON body")

// DescribeJSON returns the kind of a JSON body and, for objects, its top-level keys in
// document order.
func DescribeJSON(body []byte) ([]string, string, error) {
	if !json.Valid(body) {
		return nil, "", errInvalidJSON
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, "", fmt.Errorf("failed to read JSON body: %w", err)
	}

	switch v := tok.(type) {
	case json.Delim:
		if v != '{' {
			return nil, JSONArray, nil
		}
	case string:
		return nil, JSONString, nil
	case json.Number:
		return nil, JSONNumber, nil
	case bool:
		return nil, JSONBoolean, nil
	case nil:
		return nil, JSONNull, nil
	}

	keys := []string{}
	seen := make(map[string]bool)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, "", fmt.Errorf("failed to read JSON key: %w", err)
		}
		key, _ := tok.(string)
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}

		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, "", fmt.Errorf("failed to read value of %q: %w", key, err)
		}
	}

	return keys, JSONObject, nil
}

// HTMLTitle returns the trimmed text of the document's first <title> element.
func HTMLTitle(body []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML body: %w", err)
	}
	return strings.TrimSpace(doc.Find("title").First().Text()), nil
}
