package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/gowebpki/jcs"
)

// maxSafeInteger is the largest integer an IEEE-754 double holds exactly (2^53-1)
var maxSafeInteger = big.NewInt(1<<53 - 1)

// Canonicalizer renders values as RFC 8785 canonical JSON.
// Equal responses always produce identical bytes, which makes the output
// suitable for hashing and diffing. Integers outside the IEEE-754 safe range
// (asset totals, amounts) are emitted as decimal strings so no digit is lost.
//
//go:generate mockgen -source=canonical.go -destination=../mocks/canonical.go -package=mocks -mock_names=Canonicalizer=MockCanonicalizer
type Canonicalizer interface {
	Canonicalize(v interface{}) ([]byte, error)
}

type jcsCanonicalizer struct {
	json JSON
}

// NewCanonicalizer creates a canonicalizer that encodes with json before canonicalizing
func NewCanonicalizer(json JSON) Canonicalizer {
	return &jcsCanonicalizer{json: json}
}

func (c *jcsCanonicalizer) Canonicalize(v interface{}) ([]byte, error) {
	data, err := c.json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal: %w", err)
	}

	data, err = quoteLargeIntegers(data)
	if err != nil {
		return nil, fmt.Errorf("failed to canonicalize: %w", err)
	}

	out, err := jcs.Transform(data)
	if err != nil {
		return nil, fmt.Errorf("failed to canonicalize: %w", err)
	}
	return out, nil
}

// quoteLargeIntegers rewrites integers beyond ±(2^53-1) as JSON strings.
// jcs parses numbers as float64, which would round them.
func quoteLargeIntegers(data []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var tree interface{}
	if err := dec.Decode(&tree); err != nil {
		return nil, err
	}

	changed := false
	tree = quoteNumbers(tree, &changed)
	if !changed {
		return data, nil
	}
	return json.Marshal(tree)
}

func quoteNumbers(v interface{}, changed *bool) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		for k, e := range t {
			t[k] = quoteNumbers(e, changed)
		}
	case []interface{}:
		for i, e := range t {
			t[i] = quoteNumbers(e, changed)
		}
	case json.Number:
		s := t.String()
		if strings.ContainsAny(s, ".eE") {
			return t
		}
		n, ok := new(big.Int).SetString(s, 10)
		if ok && n.CmpAbs(maxSafeInteger) > 0 {
			*changed = true
			return s
		}
	}
	return v
}
