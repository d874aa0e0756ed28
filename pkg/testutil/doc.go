// Package testutil provides helpers shared by turboterm tests.
//
// Key components:
//   - Isolate: points XDG config and state lookups at temporary directories
//     and clears TURBOTERM_* variables so tests never see the user's setup
//   - CreateFile / ReadFile: small filesystem helpers that fail the test on
//     error
//
// Each test should be completely isolated with no shared state.
package testutil
