// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Decode compiles CUE (or JSON) source, unifies it with the definition named
// def in schema, requires every value to be concrete and decodes the result
// into T. Schema failures are returned as *SchemaError.
func Decode[T any](schema string, data []byte, def string, opts ...Option) (*T, error) {
	o := applyOptions(opts)
	if err := CheckFileSize(data, o.maxFileSize, o.filename); err != nil {
		return nil, err
	}

	ctx := cuecontext.New()
	user := ctx.CompileBytes(data, cue.Filename(o.filename))
	if err := user.Err(); err != nil {
		return nil, describe(err, o.filename, cue.Value{}, nil)
	}
	return unify[T](ctx, schema, def, user, o)
}

// DecodeValue is Decode for a document already decoded into plain Go values,
// typically the map produced by a TOML or YAML decoder.
func DecodeValue[T any](schema string, data any, def string, opts ...Option) (*T, error) {
	o := applyOptions(opts)

	ctx := cuecontext.New()
	user := ctx.Encode(data)
	if err := user.Err(); err != nil {
		return nil, describe(err, o.filename, cue.Value{}, nil)
	}
	return unify[T](ctx, schema, def, user, o)
}

func unify[T any](ctx *cue.Context, schema, def string, user cue.Value, o options) (*T, error) {
	schemaValue := ctx.CompileString(schema)
	if err := schemaValue.Err(); err != nil {
		return nil, fmt.Errorf("internal error: compile schema: %w", err)
	}
	root := schemaValue.LookupPath(cue.ParsePath(def))
	if err := root.Err(); err != nil {
		return nil, fmt.Errorf("internal error: schema definition %s: %w", def, err)
	}

	unified := root.Unify(user)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, describe(err, o.filename, user, o.labels)
	}

	var out T
	if err := unified.Decode(&out); err != nil {
		return nil, describe(err, o.filename, user, o.labels)
	}
	return &out, nil
}
