// Package render turns app definitions into declaration source files.
//
// A Renderer owns one target language. NewDeclaration validates a definition,
// applies defaults and resolves enum values to symbolic names; renderers then
// lay the declaration out in their own syntax. OutputPath derives where the
// result is written.
package render
