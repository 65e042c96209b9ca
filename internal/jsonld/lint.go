// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package jsonld

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var lintSchema string

var compiledSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewStringLoader(lintSchema))
})

// LintError lists the problems found in one document.
type LintError struct {
	Type     string
	Problems []string
}

func (e *LintError) Error() string {
	return fmt.Sprintf("%s document: %s", e.Type, strings.Join(e.Problems, "; "))
}

// Lint checks a document against the publishing rules: @context and @type
// present, no blank or placeholder strings, no empty arrays or objects, and
// the keys each document type cannot do without. It returns a *LintError
// when the document would publish bad data.
func Lint(d Document) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compiling lint schema: %w", err)
	}
	result, err := schema.Validate(gojsonschema.NewGoLoader(d))
	if err != nil {
		return fmt.Errorf("validating %s document: %w", d.Type(), err)
	}
	if result.Valid() {
		return nil
	}

	lerr := &LintError{Type: d.Type()}
	for _, re := range result.Errors() {
		field := re.Field()
		if field == "" {
			field = "(root)"
		}
		lerr.Problems = append(lerr.Problems, field+": "+re.Description())
	}
	return lerr
}
