package astio

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"gryphon/internal/ast"
)

// EncodeJSON marshals tree into its JSON wire form.
func EncodeJSON(tree *ast.GryphonAST) ([]byte, error) {
	data, err := json.MarshalIndent(ToGryphonASTWire(tree), "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "astio: encode json")
	}
	return data, nil
}

// DecodeJSON unmarshals a JSON wire document into a GryphonAST.
func DecodeJSON(data []byte) (*ast.GryphonAST, error) {
	var w GryphonASTWire
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, errors.Wrap(err, "astio: decode json")
	}
	tree, err := FromGryphonASTWire(&w)
	if err != nil {
		return nil, errors.Wrap(err, "astio: decode json")
	}
	return tree, nil
}

// EncodeYAML marshals tree into its YAML wire form, used for golden-file
// fixtures.
func EncodeYAML(tree *ast.GryphonAST) ([]byte, error) {
	data, err := yaml.Marshal(ToGryphonASTWire(tree))
	if err != nil {
		return nil, errors.Wrap(err, "astio: encode yaml")
	}
	return data, nil
}

// DecodeYAML unmarshals a YAML wire document into a GryphonAST.
func DecodeYAML(data []byte) (*ast.GryphonAST, error) {
	var w GryphonASTWire
	if err := yaml.Unmarshal(data, &w); err != nil {
		return nil, errors.Wrap(err, "astio: decode yaml")
	}
	tree, err := FromGryphonASTWire(&w)
	if err != nil {
		return nil, errors.Wrap(err, "astio: decode yaml")
	}
	return tree, nil
}
