// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package ragflow is a retrieval-augmented-generation pipeline toolkit: it expands a user
// question into multiple reformulations, generates generalized "step-back" questions,
// searches the web for each query, and iteratively refines a single summary across the
// retrieved documents.
package ragflow

import (
	// for raw string prompt constants
	_ "github.com/MakeNowJust/heredoc/v2"
)

// Version is the version of the ragflow toolkit.
var Version = "v0.0.0"
