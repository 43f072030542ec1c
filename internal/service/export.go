package service

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/kingrain94/pitchcraft-api/internal/domain"
)

const (
	ExportFormatJSON = "json"
	ExportFormatCSV  = "csv"
)

var exportHeader = []string{
	"id",
	"prospect_name",
	"prospect_title",
	"prospect_company",
	"pain_point",
	"offer_description",
	"generated_text",
	"is_pro",
	"created_at",
}

// ParseExportFormat defaults to json.
func ParseExportFormat(format string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", ExportFormatJSON:
		return ExportFormatJSON, nil
	case ExportFormatCSV:
		return ExportFormatCSV, nil
	}
	return "", ErrInvalidExportFormat
}

func ExportContentType(format string) string {
	if format == ExportFormatCSV {
		return "text/csv"
	}
	return "application/json"
}

// WriteExport serializes pitches in the given format. Billing references are
// never exported.
func WriteExport(w io.Writer, format string, pitches []domain.Pitch) error {
	switch format {
	case ExportFormatJSON:
		type exportedPitch struct {
			ID               int64     `json:"id"`
			ProspectName     string    `json:"prospect_name"`
			ProspectTitle    string    `json:"prospect_title"`
			ProspectCompany  string    `json:"prospect_company"`
			PainPoint        string    `json:"pain_point"`
			OfferDescription string    `json:"offer_description"`
			GeneratedText    string    `json:"generated_text"`
			IsPro            bool      `json:"is_pro"`
			CreatedAt        time.Time `json:"created_at"`
		}
		out := make([]exportedPitch, len(pitches))
		for i, p := range pitches {
			out[i] = exportedPitch{
				ID:               p.ID,
				ProspectName:     p.ProspectName,
				ProspectTitle:    p.ProspectTitle,
				ProspectCompany:  p.ProspectCompany,
				PainPoint:        p.PainPoint,
				OfferDescription: p.OfferDescription,
				GeneratedText:    p.GeneratedText,
				IsPro:            p.IsPro,
				CreatedAt:        p.CreatedAt,
			}
		}
		return json.NewEncoder(w).Encode(out)

	case ExportFormatCSV:
		writer := csv.NewWriter(w)
		if err := writer.Write(exportHeader); err != nil {
			return fmt.Errorf("failed to write CSV header: %w", err)
		}
		for _, p := range pitches {
			record := []string{
				strconv.FormatInt(p.ID, 10),
				p.ProspectName,
				p.ProspectTitle,
				p.ProspectCompany,
				p.PainPoint,
				p.OfferDescription,
				p.GeneratedText,
				strconv.FormatBool(p.IsPro),
				p.CreatedAt.Format(time.RFC3339),
			}
			if err := writer.Write(record); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		writer.Flush()
		return writer.Error()
	}
	return ErrInvalidExportFormat
}
