package dto

import "github.com/kingrain94/pitchcraft-api/internal/domain"

// GeneratePitchRequest carries the prospect fields. Limits are enforced by the
// generation service so that every violation is reported at once.
type GeneratePitchRequest struct {
	ProspectName   string `json:"prospect_name" example:"Dana Whitfield"`
	JobTitle       string `json:"job_title" example:"VP Operations"`
	Company        string `json:"company" example:"Acme Logistics"`
	PainPoint      string `json:"pain_point" example:"Manual route planning eats two days a week"`
	Description    string `json:"description" example:"Route optimization software for regional fleets"`
	CustomTemplate string `json:"custom_template,omitempty" example:"Hi {{prospect_name}}, saw {{company}} is dealing with {{pain_point}}."`
}

type ArchiveRequest struct {
	Format string `json:"format" example:"csv"`
}

func (r *GeneratePitchRequest) ToFields() domain.PitchFields {
	return domain.PitchFields{
		ProspectName: r.ProspectName,
		JobTitle:     r.JobTitle,
		Company:      r.Company,
		PainPoint:    r.PainPoint,
		Description:  r.Description,
	}
}
