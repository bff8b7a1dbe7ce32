// Package gemini provides an implementation of the generation.Backend interface
// that uses Google's Gemini API.
//
// This package is an infrastructure adapter: it connects the agent-backed
// excuse repository to Google's external Gemini service without exposing the
// genai client types to the rest of the application.
//
// Key behaviors:
//
//  1. Construction fails fast with generation.ErrInvalidConfig when the API key
//     or model name is missing, so a misconfigured agent variant never starts
//     serving requests.
//  2. Every Generate call sends the prompt together with a fixed system
//     instruction describing the "professional excuse generator" persona.
//  3. Exactly one GenerateContent call is made per Generate. There is no retry
//     or backoff; failures are returned as *generation.FailureError.
//  4. An empty model answer is returned as an empty string, not an error.
package gemini
