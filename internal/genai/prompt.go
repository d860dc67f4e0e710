package genai

import (
	"fmt"
	"strings"
)

const persona = "You are AskUner, the official AI assistant for the University of Energy and Natural Resources (UENR) in Sunyani, Ghana. " +
	"Provide accurate, helpful information about UENR. Be conversational but professional. " +
	"Focus on UENR-specific information and be as detailed as possible."

const closingInstruction = "Please provide a comprehensive answer about UENR. If the question is specific to " +
	"a department, program, or person at UENR, focus on that aspect. Include relevant details."

// BuildPrompt embeds the persona, the session's earlier exchanges in
// chronological order and the current question.
func BuildPrompt(question string, history []Exchange) string {
	var b strings.Builder
	b.WriteString(persona)
	b.WriteString("\n\n")

	if context := formatHistory(history); context != "" {
		fmt.Fprintf(&b, "Context from previous conversation: %s\n\n", context)
	}

	fmt.Fprintf(&b, "Question: %s\n\n", question)
	b.WriteString(closingInstruction)
	return b.String()
}

// formatHistory renders exchanges as "User: ...\nBot: ..." blocks joined by newlines.
func formatHistory(history []Exchange) string {
	blocks := make([]string, 0, len(history))
	for _, ex := range history {
		blocks = append(blocks, "User: "+ex.Question+"\nBot: "+ex.Answer)
	}
	return strings.Join(blocks, "\n")
}
