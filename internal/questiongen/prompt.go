package questiongen

import (
	"fmt"
	"strings"

	"github.com/prepdeck/prepdeck/internal/interview"
)

const systemPrompt = `You are an experienced interviewer preparing a mock interview for a job candidate.

Rules:
- Generate exactly the requested number of questions, in the order they should be asked.
- Match every question to the requested interview type and overall difficulty.
- Questions must be specific to the role, and to the company and job description when given.
- Each question must be self-contained: the candidate answers it without follow-up clarification.
- When coding questions are requested, include 1-2 of them, marked with "coding": true, solvable in the stated language within the session's time limits. All other questions have "coding": false.
- When coding questions are not requested, every question has "coding": false.
- Behavioral and HR questions should invite concrete examples from the candidate's experience, not yes/no answers.
- Do not number the questions inside the text field.`

// buildUserMessage constructs the user message from the setup metadata.
// resumeText, when non-empty, is the extracted text of the uploaded resume.
func buildUserMessage(md interview.Metadata, count int, resumeText string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Role: %s\n", md.Role)
	if md.Company != "" {
		fmt.Fprintf(&b, "Company: %s\n", md.Company)
	}
	fmt.Fprintf(&b, "Interview type: %s\n", md.Type)
	fmt.Fprintf(&b, "Difficulty: %s\n", md.Difficulty)
	fmt.Fprintf(&b, "Number of questions: %d\n", count)
	fmt.Fprintf(&b, "Include coding questions: %t\n", md.IncludeCoding)
	if md.IncludeCoding && md.Language != "" {
		fmt.Fprintf(&b, "Coding language: %s\n", md.Language)
	}

	if md.JobDescription != "" {
		b.WriteString("\nJob description:\n")
		b.WriteString(md.JobDescription)
		b.WriteString("\n")
	}

	if resumeText != "" {
		b.WriteString("\nCandidate resume:\n")
		b.WriteString(resumeText)
		b.WriteString("\n")
	}

	return b.String()
}
