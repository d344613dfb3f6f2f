// Package writers turns resolved roster entries into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (CSV/TSV columns, JSON/JSONL, XLSX).
//   - The core engine stays domain-only; the app stays orchestration-only.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
