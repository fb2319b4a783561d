package assembler

// CopyInstructions returns the LLM-specific usage instructions appended to
// every generated document and exposed as a standalone operation.
func CopyInstructions() string {
	return `This file contains universal coding standards and project context that work with any LLM.
Copy the content as follows:

### Claude (Anthropic)
1. Rename this file to ` + "`CLAUDE.md`" + `
2. Place it in your project root directory
3. Claude will read it automatically

### ChatGPT (OpenAI)
1. Create a new Project in ChatGPT
2. Copy this content into the Project's Custom Instructions
3. Or upload it to the Project's Knowledge base

### Gemini (Google)
1. For Firebase Studio: copy to ` + "`.idx/airules.md`" + `
2. For GitHub: copy to ` + "`.gemini/styleguide.md`" + `
3. For general use: reference sections as needed

### Other LLMs
- Use as a system prompt or context document
- Reference key sections as needed
- Adapt the file name to your LLM's conventions
`
}
