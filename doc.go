// SPDX-License-Identifier: MIT

// Package urbandesign is a small 1-D placement engine: closed intervals,
// a disjoint interval set with exact union and subtraction, weighted
// categorical sampling and Gaussian/natural decay curves, used to pick
// positions along an edge (a street frontage, a plot side) while keeping
// out of excluded zones.
//
// Packages:
//
//	interval/  — Interval, Relation classifier, disjoint Set algebra and length-weighted draws
//	sampling/  — Categorical sampler, deterministic seeded sources
//	decay/     — decay curves and the Gaussian Distribution (decay, density, mass)
//	placement/ — Placer: domain minus exclusions, weighted by a decay curve; YAML config
//	logger/    — per-package logger facade, zap backend
//
// Quick example:
//
//	domain  [0 ──────────────────────────── 60]
//	exclude      [12──18]     [30─31.5]
//	feasible [0──12] [18─────30] [31.5──────60]
//
// A position is drawn by picking a run with probability proportional to its
// weight, then a uniform point inside it. Every draw takes an explicit
// source, so a fixed seed replays the same placements.
//
//	go run ./cmd/placesample -config frontage.yaml -n 10
package urbandesign
