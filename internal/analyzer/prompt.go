package analyzer

import "strings"

// analysisPrompt asks the model for exactly the JSON shape Analysis decodes.
const analysisPrompt = `Analyze this codebase and provide: 1) A project_summary describing what the code does, 2) A list of recommendations for improvements. Format your response as JSON with keys "project_summary" and "recommendations" (an array).`

// AssemblePrompt builds the full analysis prompt: the instruction block
// followed by the extracted project context.
func AssemblePrompt(input string) string {
	var b strings.Builder

	b.WriteString(analysisPrompt)
	b.WriteString("\n\n# Codebase\n\n")
	b.WriteString(input)

	return b.String()
}
