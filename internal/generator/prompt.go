package generator

import "fmt"

// returns the system prompt demanding structured JSON output
func buildSystemPrompt() string {
	const prompt = `You are an expert software developer. Generate clean, production-ready code based on the user's prompt.

IMPORTANT: Always respond with valid JSON in this exact format:
{
  "files": [
    {
      "filename": "example.js",
      "content": "// actual code content here",
      "language": "javascript"
    }
  ],
  "explanation": "Brief explanation of the generated code and its key features"
}

Guidelines:
- Generate complete, functional code
- Include proper error handling where appropriate
- Use modern best practices for the specified language/framework
- If multiple files are needed, include them all in the files array
- Keep explanations concise but informative
- Ensure code is properly formatted and indented`

	return prompt
}

// renders the user message for a request
func buildUserPrompt(req Request) string {
	if req.Framework != "" {
		return fmt.Sprintf("Generate %s with %s code for: %s", req.Language, req.Framework, req.Prompt)
	}

	return fmt.Sprintf("Generate %s code for: %s", req.Language, req.Prompt)
}
