// Package verify decides how each fragment must behave and checks a
// captured toolchain run against that decision.
//
// It implements the back half of the verification pipeline:
//   - Classification: per fragment, choose exactly one strategy —
//     skip, expect failure, or expect success. Classification always
//     resolves; there is no failure mode here.
//   - Expectation extraction: literal expected-output/expected-error
//     strings parsed from trailing `// expected output:` and
//     `// expected error:` comment blocks.
//   - Verification: substring matching of every expectation against the
//     sanitized captured streams, combined with the exit-code check.
//
// One external run is authoritative; there are no retries.
package verify
