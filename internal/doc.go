// Package internal runs the simplification rules over Elm source files.
//
// Engine: reads a file, parses it, resolves names, finds simplifications
// and converts them to issues. Issues covered by a `simplint:ignore`
// comment are dropped, and the rest take the severity configured for
// their rule group. Results may be cached by content hash.
//
// LintRule: a configurable rule group (boolean-simplification,
// list-simplification, ...).
//
// Watcher: lints files again when they are written.
//
// SourceCode: the content of a source file as a collection of lines.
//
// Usage:
//
//	engine, err := internal.NewEngine(nil)
//	if err != nil {
//	    // handle error
//	}
//	engine.IgnoreRule("tuple-simplification")
//
//	issues, err := engine.Run("src/Main.elm")
//	if err != nil {
//	    // handle error
//	}
//
//	for _, issue := range issues {
//	    fmt.Printf("Found issue: %s at %s\n", issue.Message, issue.Start)
//	}
package internal
