// SPDX-License-Identifier: MIT

package dense

// Test-Bridge (White-Box) for Buffer Identity and Options Resolution
//
// Purpose:
//   - Expose the unexported backing buffer and the options snapshot to
//     dense_test ONLY, so ownership-transfer tests can assert buffer identity
//     without widening the production API.
//
// Provided Surface:
//   - Buffer_TestOnly: the live backing slice (shared, not a copy).
//   - GatherWidth_TestOnly: the effective width exactly as Fprint resolves it.
//   - PanicOutputWidthNegative_TestOnly: the width-guard panic message.

// Buffer_TestOnly returns the live backing slice of m so tests can assert
// aliasing after Clone, Take and MoveFrom. Never use outside tests.
func Buffer_TestOnly[T Numeric](m *Matrix[T]) []T { return m.data }

// GatherWidth_TestOnly resolves the effective output width exactly as Fprint
// does, including the package-wide default seeding.
func GatherWidth_TestOnly(opts ...Option) int { return gatherOptions(opts...).width }

// PanicOutputWidthNegative_TestOnly mirrors the message raised by the width
// guards so panic assertions track the single source of truth.
const PanicOutputWidthNegative_TestOnly = panicOutputWidthNegative
