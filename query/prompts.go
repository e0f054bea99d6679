// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package query

import (
	"github.com/MakeNowJust/heredoc/v2"
)

// expandSystemPrompt instructs the model to produce the reworded variants of
// the user question, one per line. The parser tolerates the model ignoring
// the "exactly three" instruction.
var expandSystemPrompt = heredoc.Doc(`
	You are an AI language model assistant. Your task is to generate exactly
	three different versions of the given user question to retrieve relevant
	documents from a web search. By generating multiple perspectives on the
	user question, your goal is to help the user overcome some of the
	limitations of distance-based similarity search.

	Provide these alternative questions separated by newlines, without
	numbering and without any additional text.
`)

// stepBackSystemPrompt instructs the model to generalize a question into a
// single step-back question.
var stepBackSystemPrompt = heredoc.Doc(`
	You are an expert at world knowledge. Your task is to step back and
	paraphrase a question to a more generic step-back question, which is
	easier to answer. Only return the step-back question.
`)

// stepBackFewShot holds the fixed worked examples embedded before the actual
// question. They are part of the step-back contract.
var stepBackFewShot = []struct {
	question string
	stepBack string
}{
	{
		question: "Could the members of The Police perform lawful arrests?",
		stepBack: "what can the members of The Police do?",
	},
	{
		question: "Jan Sindel's was born in what country?",
		stepBack: "what is Jan Sindel's personal history?",
	},
}
