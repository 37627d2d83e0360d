// Toolscout - SaaS Tool Discovery and Recommendation Engine
// Copyright 2026 Toolscout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/toolscout/toolscout

// Package scoring implements the five factor scorers behind the
// recommend.FactorScorer interface: profile fit, behavior fit,
// integration fit, price fit, and feature fit.
//
// Every scorer is a pure function of the tool and the request. Missing
// optional data contributes neutrally, and every result is clamped to
// [0, 1]. Scorers hold only a pointer to the shared immutable Knowledge
// tables and are safe for concurrent use.
package scoring
