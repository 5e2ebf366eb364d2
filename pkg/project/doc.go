// Package project builds projects from descriptors and restores the
// identity of translated descriptors on the results.
//
// [Builder] is the contract of a build engine. Its five entry points mirror
// the ways a build can start: a descriptor file (or directory), a repository
// artifact with or without a stub fallback, an explicit [ModelSource], and a
// batch of files with optional module discovery.
//
// [Engine] is a small reference engine that reads descriptors through a
// [ModelProcessor], reports basic problems and summarizes direct
// dependencies. It does not resolve anything remotely.
//
// [PolyglotBuilder] wraps any Builder. A translated project is built from its
// companion file; PolyglotBuilder rewrites every result so the project, its
// model and the result itself report the original descriptor instead:
//
//	engine := project.NewEngine(proc, logger)
//	builder := project.NewPolyglotBuilder(engine, logger)
//	res, err := builder.Build("proj", project.Request{})
//	// res.POMFile() == "proj/pom.yaml", not "proj/.polyglot.pom.yaml"
package project
