// Package pkg provides the core libraries for polyglot descriptor translation.
//
// # Overview
//
// Polyglot lets a Maven-style build read project descriptors written in
// YAML, TOML, HCL or JSON as if they were pom.xml. The pkg directory is
// organized into these areas:
//
//  1. [pom] - The canonical project model and its XML codec
//  2. [mapping] - Format mappings, the read context and the registry
//  3. [companion] - Companion and dump files holding translations
//  4. [processor] - The read pipeline (locate, translate, read)
//  5. [project] - Build entry points and descriptor identity restoration
//
// # Architecture
//
// The typical data flow through polyglot:
//
//	project directory
//	         ↓
//	Registry.Locate      → proj/pom.yaml
//	         ↓
//	Processor.Locate     → proj/.polyglot.pom.yaml (empty placeholder)
//	         ↓
//	Processor.ReadFile   → yaml mapping reads pom.yaml,
//	                       pom.xml rendering written to the companion
//	         ↓
//	build engine         → operates on the companion
//	         ↓
//	PolyglotBuilder      → results report proj/pom.yaml again
//
// Native directories (a plain pom.xml) skip the companion entirely.
//
// # Supporting packages
//
//   - [errors] - Coded errors shared by every package
//   - [observability] - Hooks for translation and build events
//   - [buildinfo] - Version information injected at build time
//
// [pom]: github.com/matzehuels/polyglot/pkg/pom
// [mapping]: github.com/matzehuels/polyglot/pkg/mapping
// [companion]: github.com/matzehuels/polyglot/pkg/companion
// [processor]: github.com/matzehuels/polyglot/pkg/processor
// [project]: github.com/matzehuels/polyglot/pkg/project
// [errors]: github.com/matzehuels/polyglot/pkg/errors
// [observability]: github.com/matzehuels/polyglot/pkg/observability
// [buildinfo]: github.com/matzehuels/polyglot/pkg/buildinfo
package pkg
