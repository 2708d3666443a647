package intake

import _ "embed"

var (
	//go:embed prompts/interviewer.txt
	interviewerPrompt string
	//go:embed prompts/synthesis.txt
	synthesisDirective string
)
