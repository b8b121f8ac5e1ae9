// Package metadata orchestrates the model annotation pipeline: hash a local
// weight file, resolve its registry records, and persist them as a sidecar.
//
// Registry records stay opaque end to end. The package only probes the few
// fields it needs (the model reference for the follow-up lookup, display
// names for rendering); everything else is carried verbatim so sidecars
// survive registry schema growth.
package metadata
