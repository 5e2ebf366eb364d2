// Package pom defines the canonical project model and its native XML codec.
//
// # Overview
//
// Every descriptor format supported by polyglot is translated into a [Model]
// before the rest of the build sees it. The native format is the Maven
// pom.xml layout:
//
//	m, _ := pom.ReadFile("pom.xml")
//	data, _ := pom.Marshal(m)
//
// # Rendering
//
// [Marshal] and [Write] emit an XML declaration followed by a <project>
// element in the Maven 4.0.0 namespace, indented with two spaces. Rendering
// is deterministic: properties keep their insertion order, so rendering the
// same model twice yields identical bytes.
//
// # Descriptor File
//
// [Model.DescriptorFile] is not serialized. It records which file on disk a
// model should be considered to originate from and is rewritten by the
// translation pipeline.
package pom
