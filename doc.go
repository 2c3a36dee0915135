// Package spikesync measures how synchronous a set of spike trains is,
// using an adaptive, parameter‑free coincidence window.
//
// 🚀 What is spikesync?
//
//	A small, deterministic, pure‑Go toolkit that brings together:
//		• Train model: indicator (±1 per time bin) and time‑stamp forms
//		• Coincidence detection: per‑spike 0/1 decisions against a partner
//		• Multivariate profiles: averaging over all N−1 partners
//		• Merging: union of times, maximum of values
//		• Scores: SYNC value and SYNC distance, pairwise SYNC matrix
//		• Generators: regular, Poisson and jittered synthetic trains
//
// ✨ Why choose spikesync?
//
//   - No tuning – the coincidence window adapts to local firing rates
//   - One pipeline – both representations flow through train.Sequence
//   - Deterministic – identical input and options, identical output,
//     whatever the worker count
//   - Pure Go – no cgo
//
// Under the hood, everything is organized under these subpackages:
//
//	train/       — Sequence interface, Indicator and Timestamps forms, neighbor lookup
//	coincidence/ — Tau, Detect, Multivariate, Merge, SyncValue, Synchronization, Matrix
//	builder/     — deterministic synthetic trains and rasterization
//	cmd/spikesync — command‑line front end (sync, matrix, generate)
//
// Quick example:
//
//	a := train.Timestamps{0, 3, 6}
//	b := train.Timestamps{1, 4}
//	res, _ := coincidence.Synchronization([]train.Sequence{a, b})
//	fmt.Printf("SYNC=%.2f\n", res.Value) // SYNC=0.80
//
// See the package docs of train, coincidence and builder for contracts and
// complexity notes.
package spikesync
