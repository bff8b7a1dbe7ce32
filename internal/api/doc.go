// Package api is the boundary between callers and the excuse service.
//
// Invoker turns an Event into a discriminated Result carrying an HTTP-style
// status and a JSON-ready body. ExcuseHandler serves Invoker over HTTP and
// the excuse CLI calls it directly.
package api
