package dto

import (
	"github.com/kingrain94/pitchcraft-api/internal/domain"
)

// FromPitch converts a Pitch domain model to a PitchResponse DTO
func FromPitch(p *domain.Pitch) *PitchResponse {
	if p == nil {
		return nil
	}
	return &PitchResponse{
		ID:               p.ID,
		OwnerID:          p.OwnerID,
		ProspectName:     p.ProspectName,
		JobTitle:         p.ProspectTitle,
		Company:          p.ProspectCompany,
		PainPoint:        p.PainPoint,
		Description:      p.OfferDescription,
		GeneratedText:    p.GeneratedText,
		IsPro:            p.IsPro,
		BillingReference: p.BillingReference,
		CreatedAt:        p.CreatedAt,
	}
}

func FromPitches(pitches []domain.Pitch) []PitchResponse {
	responses := make([]PitchResponse, len(pitches))
	for i := range pitches {
		responses[i] = *FromPitch(&pitches[i])
	}
	return responses
}

func FromAccountStatus(s *domain.AccountStatus) *AccountStatusResponse {
	return &AccountStatusResponse{
		OwnerID:          s.OwnerID,
		Plan:             string(s.Plan),
		IsPro:            s.IsPro,
		BillingReference: s.BillingReference,
		UsageCount:       s.UsageCount,
		Limit:            s.Limit,
		Remaining:        s.Remaining,
	}
}
