package main

import (
	"context"
	"flag"
	"fmt"
	"net/url"
	"os"

	gojson "github.com/goccy/go-json"

	sift "github.com/annokit/sift"
	"github.com/annokit/sift/schemayaml"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "validate":
		validateCmd(os.Args[2:])
	case "params":
		paramsCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "sift CLI\n\nUsage:\n  sift validate -schema schema.yaml [-strict] [-prune] doc.json\n  sift params -schema schema.yaml 'order=asc&limit=5'")
}

func validateCmd(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	var schemaPath string
	var strict, prune bool
	fs.StringVar(&schemaPath, "schema", "", "YAML schema definition")
	fs.BoolVar(&strict, "strict", false, "reject schema-unknown properties")
	fs.BoolVar(&prune, "prune", false, "delete schema-unknown properties before validating")
	_ = fs.Parse(args)
	if schemaPath == "" || fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}

	root := loadSchema(schemaPath)
	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fatalf("read document: %v", err)
	}
	doc, err := sift.DecodeDocument(data)
	if err != nil {
		fatalf("decode document: %v", err)
	}
	if prune {
		if m, ok := doc.(map[string]any); ok {
			sift.Prune(m, root)
		}
	}

	var opts []sift.ValidatorOption
	if strict {
		opts = append(opts, sift.Strict())
	}
	out, err := sift.NewValidator(root, opts...).Validate(context.Background(), doc)
	report(out, err)
}

func paramsCmd(args []string) {
	fs := flag.NewFlagSet("params", flag.ExitOnError)
	var schemaPath string
	fs.StringVar(&schemaPath, "schema", "", "YAML schema definition")
	_ = fs.Parse(args)
	if schemaPath == "" || fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}

	root := loadSchema(schemaPath)
	vals, err := url.ParseQuery(fs.Arg(0))
	if err != nil {
		fatalf("parse query: %v", err)
	}
	out, err := sift.ValidateParams(context.Background(), root, sift.FromValues(vals))
	report(out, err)
}

func loadSchema(path string) *sift.SchemaNode {
	data, err := os.ReadFile(path)
	if err != nil {
		fatalf("read schema: %v", err)
	}
	root, err := schemayaml.Load(data)
	if err != nil {
		fatalf("load schema: %v", err)
	}
	return root
}

func report(out any, err error) {
	if err != nil {
		if ve, ok := sift.AsValidationError(err); ok {
			for _, v := range ve.Violations {
				fmt.Fprintln(os.Stderr, v.String())
			}
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
	enc := gojson.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fatalf("encode result: %v", err)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
