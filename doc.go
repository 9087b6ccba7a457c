// Package portfoy provides the types and functions needed to turn a personal
// portfolio into a text prompt for a large language model.
//
// The core functionalities include:
//   - Snapshot: the read-only inputs of a prompt (total value, risk level,
//     asset allocation, target allocation and recent value history).
//   - Holdings: deriving a Snapshot from a flat list of assets, grouping them
//     by type and computing a weighted risk score.
//   - Formatting: Money and Percent know how to print themselves the way the
//     Turkish locale does ("125.000 ₺", "%45.3").
//   - Decoding: reading a Snapshot from JSON, optionally picking every field
//     with a JSONPath expression so that any export format can be used.
//
// The prompt itself is rendered by the prompt package, and the clipboard
// package provides the "copy" capability used by the promptgen tool.
package portfoy
