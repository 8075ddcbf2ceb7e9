// Package schema validates settings and case documents against the embedded JSON schemas.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	schemafs "github.com/AndreyAkinshin/dictmatch/schema"
)

const (
	configSchemaName = "config.schema.json"
	caseSchemaName   = "case.schema.json"
)

var (
	configSchema *jsonschema.Schema
	caseSchema   *jsonschema.Schema
	compileOnce  sync.Once
	compileErr   error
)

// compileSchemas compiles all embedded schemas once.
func compileSchemas() error {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()

		for _, name := range []string{configSchemaName, caseSchemaName} {
			data, err := schemafs.FS.ReadFile(name)
			if err != nil {
				compileErr = fmt.Errorf("read %s: %w", name, err)
				return
			}
			doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
			if err != nil {
				compileErr = fmt.Errorf("unmarshal %s: %w", name, err)
				return
			}
			if err := compiler.AddResource(name, doc); err != nil {
				compileErr = fmt.Errorf("add %s resource: %w", name, err)
				return
			}
		}

		var err error
		configSchema, err = compiler.Compile(configSchemaName)
		if err != nil {
			compileErr = fmt.Errorf("compile config schema: %w", err)
			return
		}

		caseSchema, err = compiler.Compile(caseSchemaName)
		if err != nil {
			compileErr = fmt.Errorf("compile case schema: %w", err)
			return
		}
	})

	return compileErr
}

// ValidateConfig validates JSON data against the settings schema.
func ValidateConfig(data []byte) error {
	return validate(data, func() *jsonschema.Schema { return configSchema }, "config")
}

// ValidateCases validates JSON data against the case file schema.
func ValidateCases(data []byte) error {
	return validate(data, func() *jsonschema.Schema { return caseSchema }, "case file")
}

func validate(data []byte, schema func() *jsonschema.Schema, what string) error {
	if err := compileSchemas(); err != nil {
		return err
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := schema().Validate(v); err != nil {
		return fmt.Errorf("%s validation failed: %w", what, err)
	}

	return nil
}
