package apireport

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// The document schema ships inside the binary and is immutable for the
// process lifetime. It is compiled lazily on first use and cached; there is
// no reset API.

//go:embed api-document.schema.json
var schemaText string

const schemaURL = "api-document.schema.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func documentSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, strings.NewReader(schemaText)); err != nil {
			schemaErr = fmt.Errorf("load document schema: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("compile document schema: %w", schemaErr)
		}
	})
	return compiledSchema, schemaErr
}

// ValidateDocument checks an in-memory document against the schema. The
// document is round-tripped through JSON so ordered containers and model
// types validate by their wire shape. A violation is returned as Issues.
func ValidateDocument(doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document for validation: %w", err)
	}
	var plain any
	if err := json.Unmarshal(data, &plain); err != nil {
		return fmt.Errorf("decode document for validation: %w", err)
	}
	return validatePlain(plain)
}

// ValidateFile reads a persisted document and checks it against the schema.
// The returned error names the file; the wrapped Issues identify the
// offending paths within it.
func ValidateFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read api document: %w", err)
	}
	var plain any
	if err := json.Unmarshal(data, &plain); err != nil {
		return fmt.Errorf("%s: parse api document: %w", path, err)
	}
	if err := validatePlain(plain); err != nil {
		return fmt.Errorf("%s: api document does not conform to the schema: %w", path, err)
	}
	return nil
}

func validatePlain(doc any) error {
	sch, err := documentSchema()
	if err != nil {
		return err
	}
	if err := sch.Validate(doc); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			return issuesFrom(ve)
		}
		return err
	}
	return nil
}

// issuesFrom flattens a validation error tree into leaf Issues, keeping the
// instance path and the failing keyword for each.
func issuesFrom(ve *jsonschema.ValidationError) Issues {
	var iss Issues
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			iss = append(iss, Issue{
				Path:    e.InstanceLocation,
				Keyword: lastSegment(e.KeywordLocation),
				Message: e.Message,
			})
			return
		}
		for _, c := range e.Causes {
			walk(c)
		}
	}
	walk(ve)
	return iss
}

func lastSegment(keywordLocation string) string {
	if i := strings.LastIndexByte(keywordLocation, '/'); i >= 0 {
		return keywordLocation[i+1:]
	}
	return keywordLocation
}
