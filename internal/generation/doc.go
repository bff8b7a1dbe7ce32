// Package generation defines the boundary between the excuse repositories and
// external text-generation capabilities (LLMs). It abstracts the details of the
// concrete API integration (Gemini) behind the Backend interface so the
// repository layer can be tested without a network.
package generation
