// Package mapping resolves which descriptor format applies to a project.
//
// # Overview
//
// A [Mapping] encapsulates one descriptor format: it knows its file
// extension and priority, can locate a candidate descriptor inside a
// directory, decides whether a read [Context] belongs to it, and supplies a
// [Reader] that turns a file or stream into a [pom.Model].
//
// A [Registry] holds the mappings in resolution order: descending priority,
// ties broken by registration order. The native XML mapping is registered
// with the lowest priority and accepts any context without a source, so it
// acts as the fallback.
//
//	reg := mapping.NewRegistry(yamlpom.New(), tomlpom.New(), xmlpom.New())
//	file := reg.Locate("proj")             // proj/pom.yaml, or proj/pom.xml
//	reader, err := reg.Resolve(ctx)        // first accepting mapping wins
//
// # Contexts
//
// [Context] is an immutable value. Stages that need to point a read at a
// different file build a new context with [Context.WithSource] instead of
// mutating a shared options map.
//
// [pom.Model]: github.com/matzehuels/polyglot/pkg/pom.Model
package mapping
