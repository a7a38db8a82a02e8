package adapter

import (
	"encoding/json"
)

// JSON is the codec shared by the indexer client, which decodes response
// bodies and error messages, and the CLI, which prints responses.
// Tests swap it for a mock to force decode and encode failures.
//
//go:generate mockgen -source=json.go -destination=../mocks/json.go -package=mocks -mock_names=JSON=MockJSON
type JSON interface {
	Marshal(v interface{}) ([]byte, error)
	MarshalIndent(v interface{}, prefix, indent string) ([]byte, error)
	Unmarshal(data []byte, v interface{}) error
}

// RealJSON backs JSON with encoding/json. The algorand model types carry
// kebab-case tags matching the indexer's wire names, so no custom codec is needed.
type RealJSON struct{}

// NewJSON returns the codec used by default for indexer responses
func NewJSON() JSON {
	return &RealJSON{}
}

// Marshal feeds the canonicalizer
func (j *RealJSON) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

// MarshalIndent renders the default CLI output
func (j *RealJSON) MarshalIndent(v interface{}, prefix, indent string) ([]byte, error) {
	return json.MarshalIndent(v, prefix, indent)
}

// Unmarshal decodes indexer response bodies into the algorand model types
func (j *RealJSON) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}
