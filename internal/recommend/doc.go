// Toolscout - SaaS Tool Discovery and Recommendation Engine
// Copyright 2026 Toolscout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/toolscout/toolscout

// Package recommend implements the personalized recommendation and ranking
// engine: multi-factor scoring under intent-dependent weights, additive
// context boosting, confidence and reason generation, diversity-constrained
// top-K selection, and final assembly with effort classification and ROI
// projection.
//
// The engine is a library-level contract. It performs no I/O: the catalog,
// profile, behavior, and context arrive fully materialized, and every
// invocation is a pure function of its inputs. Factor scorers implement the
// FactorScorer interface; the standard five live in the scoring subpackage.
package recommend
