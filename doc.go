package sift

// Package sift is the data-integrity boundary between untrusted input and
// business logic. It provides:
//
// - A declarative SchemaNode model (objects, sequences, scalars, enums)
// - A validator that deep-copies its input and collects every violation in
//   one pass, surfacing them as a single aggregated ValidationError
// - A pruner that deletes schema-unknown properties from a document without
//   validating the properties it keeps
// - A query-parameter normalizer that reconciles repeated-key multimaps with
//   the schema's scalar-vs-sequence declarations before deserialization
//
// Design policy:
// - Keep only public APIs in the root package; put builders under dsl/, the
//   schema-definition loader under schemayaml/, and the CLI under cmd/sift.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	root := dsl.Object().
//		Field("limit", dsl.Int()).
//		Field("quote", dsl.Array(dsl.String())).
//		MustBuild()
//	v := sift.NewValidator(root)
//	out, err := v.Validate(ctx, doc)
//
//	params, err := sift.ValidateParams(ctx, root, mm)
