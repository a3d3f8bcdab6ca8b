package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/hanpama/querytrail/internal/codegen"
	"github.com/hanpama/querytrail/internal/language"
)

const rootUsage = `querytrail — GraphQL selection-trail code generator

USAGE:
  querytrail <command> [flags]

COMMANDS:
  generate         Generate query trail companion types from GraphQL SDL
  help             Show help for any command
`

const generateUsage = `generate FLAGS:
  -schema <file>   GraphQL SDL file. Repeatable; at least one required
  -out <file>      Output file (default: stdout)
  -pkg <name>      Package name for the generated file (default: querytrails)

Diagnostics are printed to stderr. The generated file is always written, but
the command exits non-zero when any diagnostics were recorded.
`

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	global := flag.NewFlagSet("querytrail", flag.ContinueOnError)
	global.SetOutput(new(bytes.Buffer)) // silence automatic output
	if err := global.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, rootUsage)
		return err
	}
	remaining := global.Args()
	if len(remaining) == 0 {
		fmt.Fprint(os.Stderr, rootUsage)
		return fmt.Errorf("missing command")
	}

	cmd := remaining[0]
	cmdArgs := remaining[1:]
	switch cmd {
	case "generate":
		return cmdGenerate(cmdArgs)
	case "help":
		return cmdHelp(cmdArgs)
	default:
		fmt.Fprint(os.Stderr, rootUsage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func cmdHelp(args []string) error {
	if len(args) == 0 {
		fmt.Print(rootUsage)
		return nil
	}
	switch args[0] {
	case "generate":
		fmt.Print(generateUsage)
	default:
		fmt.Print(rootUsage)
	}
	return nil
}

// repeatedString collects every occurrence of a repeatable flag.
type repeatedString []string

func (r *repeatedString) String() string { return strings.Join(*r, ",") }

func (r *repeatedString) Set(v string) error {
	*r = append(*r, v)
	return nil
}

func cmdGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(new(bytes.Buffer))

	var schemas repeatedString
	fs.Var(&schemas, "schema", "GraphQL SDL file (repeatable)")
	out := fs.String("out", "", "output file (default: stdout)")
	pkg := fs.String("pkg", "querytrails", "package name for the generated file")

	if err := fs.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, generateUsage)
		return err
	}
	if len(schemas) == 0 {
		fmt.Fprint(os.Stderr, generateUsage)
		return fmt.Errorf("at least one -schema file is required")
	}

	doc, err := loadSchemas(schemas)
	if err != nil {
		return err
	}

	src, diags, err := codegen.Generate(doc, codegen.Options{PackageName: *pkg})
	if err != nil {
		return err
	}

	if *out == "" {
		if _, err := os.Stdout.Write(src); err != nil {
			return err
		}
	} else if err := os.WriteFile(*out, src, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", *out, err)
	}

	if len(diags) > 0 {
		printDiagnostics(diags)
		return fmt.Errorf("%d diagnostic(s) recorded", len(diags))
	}
	return nil
}

func loadSchemas(paths []string) (*language.SchemaDocument, error) {
	doc := &language.SchemaDocument{}
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		parsed, err := language.ParseSchema(path, string(data))
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		doc.Definitions = append(doc.Definitions, parsed.Definitions...)
		doc.Extensions = append(doc.Extensions, parsed.Extensions...)
	}
	return doc, nil
}

func printDiagnostics(diags []codegen.Diagnostic) {
	warn := color.New(color.FgYellow, color.Bold).Sprint("warning:")
	for _, d := range diags {
		if pos := d.Pos(); pos != "" {
			fmt.Fprintf(os.Stderr, "%s %s: %s\n", warn, pos, d.Message())
		} else {
			fmt.Fprintf(os.Stderr, "%s %s\n", warn, d.Message())
		}
	}
}
