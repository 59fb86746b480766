// Package orchestrator wires the definition pipeline: resolve (value or
// loader), transform, validate and render, then hand the output to a writer.
// Nothing is written unless every earlier stage succeeds.
package orchestrator
