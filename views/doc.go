// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package views derives display data from already-fetched polls.

Everything here is a pure function over models values: percentages per
option, polls ranked by vote count, and a chronological activity series.
No function performs I/O or can fail; fetching is the handlers' job.
*/
package views
