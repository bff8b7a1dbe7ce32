// Package service contains the excuse use cases. It orchestrates the flow
// between the delivery mechanisms (HTTP, CLI) and the excuse repository
// defined in internal/store.
//
// Key components:
//
// 1. ExcuseService:
//   - Single entry point, Execute, which dispatches an Operation
//   - Never calls the repository itself; every path that produces an excuse
//     is an Operation value that can be inspected and tested on its own
//
// 2. Operations:
//   - GenerateExcuse validates its request at construction, so a blank
//     request never yields an operation
//   - GenerateVague takes no input and dispatches a nested repository operation
//   - Each operation runs at most once and records its State
//
// 3. Error Handling:
//   - Repository errors are translated at the tier boundary: invalid requests
//     become *InvalidRequestError, everything else becomes
//     *GenerationFailureError with the original cause preserved
//   - Callers use errors.Is with ErrInvalidRequest / ErrGenerationFailed
//
// The service depends only on the store.ExcuseRepository interface and never
// on a concrete repository variant.
package service
