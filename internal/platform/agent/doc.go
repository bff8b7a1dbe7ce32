// Package agent provides the agent-backed implementation of
// store.ExcuseRepository. It embeds each request into a fixed "Technical Fog"
// prompt and delegates to a generation.Backend, returning the generated text
// verbatim.
package agent
