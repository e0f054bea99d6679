// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package summarize

import (
	"github.com/MakeNowJust/heredoc/v2"

	"github.com/go-a2a/ragflow/internal/pool"
)

// seedSystemPrompt produces the initial summary from the first document alone.
var seedSystemPrompt = heredoc.Doc(`
	Write a concise summary of the text provided by the user.
	Return only the summary, with no preamble.
`)

// refineSystemPrompt revises an existing summary with one new document.
var refineSystemPrompt = heredoc.Doc(`
	Your job is to produce a final summary. You are given an existing summary
	and some new context. Refine the existing summary with any new, relevant
	information from the context: keep established correct content, and only
	add or adjust where the new context contributes information. If the
	context is not useful, return the existing summary unchanged.
	Return only the summary, with no preamble.
`)

// refinePrompt assembles the user turn for one refinement step.
func refinePrompt(summary, content string) string {
	sb := pool.String.Get()
	defer func() {
		sb.Reset()
		pool.String.Put(sb)
	}()

	sb.WriteString("Existing summary:\n")
	sb.WriteString(summary)
	sb.WriteString("\n\nNew context:\n------------\n")
	sb.WriteString(content)
	sb.WriteString("\n------------")
	return sb.String()
}
