// Package gpuinfo identifies the active GPU and answers capability questions
// about it.
//
// A ContextProber opens a transient graphics context through a
// domain.GraphicsBackend, reads the renderer, vendor and extension strings and
// releases the context again. A Cache keeps the first result so the context is
// created at most once per cache lifetime. Classify maps a renderer string to
// an Architecture, and the query functions derive capability flags from it.
//
// Every query is total: the failure sentinel identity classifies as
// ArchUnknown / VendorUnknown and all capabilities report false.
package gpuinfo
