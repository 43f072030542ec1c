package service

import (
	"fmt"
	"strings"

	"github.com/kingrain94/pitchcraft-api/internal/domain"
)

const (
	PlaceholderProspectName = "{{prospect_name}}"
	PlaceholderJobTitle     = "{{job_title}}"
	PlaceholderCompany      = "{{company}}"
	PlaceholderPainPoint    = "{{pain_point}}"
	PlaceholderDescription  = "{{description}}"
)

const defaultPromptTemplate = `Write a 120-250 word professional cold email with:
- Recipient: %s, %s at %s
- What you provide: %s
- Pain Point/Problem: %s
- Tone: Direct but polite
- Structure:
  1. Personalized opener (reference their role/company)
  2. Clear value proposition based on what you provide and how it solves their pain point
  3. Specific call-to-action question
Avoid:
- Generic phrases ("I hope you're doing well")
- Overly salesy language
- Long paragraphs`

// ComposePrompt builds the instruction sent to the model. A custom template
// is only honored for pro owners and only when it is not blank; every other
// case uses the default instruction.
func ComposePrompt(fields domain.PitchFields, isPro bool, customTemplate string) string {
	if isPro && strings.TrimSpace(customTemplate) != "" {
		return fillTemplate(customTemplate, fields)
	}
	return fmt.Sprintf(defaultPromptTemplate,
		fields.ProspectName,
		fields.JobTitle,
		fields.Company,
		fields.Description,
		fields.PainPoint,
	)
}

// fillTemplate replaces every placeholder in a single pass, so values that
// themselves look like placeholders are not expanded again. Unknown
// placeholders are left as written.
func fillTemplate(template string, fields domain.PitchFields) string {
	r := strings.NewReplacer(
		PlaceholderProspectName, fields.ProspectName,
		PlaceholderJobTitle, fields.JobTitle,
		PlaceholderCompany, fields.Company,
		PlaceholderPainPoint, fields.PainPoint,
		PlaceholderDescription, fields.Description,
	)
	return r.Replace(template)
}

// SubjectLine is prepended to every completion.
func SubjectLine(company string) string {
	return fmt.Sprintf("Subject: Quick question about %s\n\n", company)
}
