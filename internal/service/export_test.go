package service

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingrain94/pitchcraft-api/internal/domain"
)

func exportFixture() []domain.Pitch {
	ref := "cs_secret"
	return []domain.Pitch{{
		ID:               1,
		OwnerID:          "user1",
		ProspectName:     "Dana Whitfield",
		ProspectTitle:    "VP Operations",
		ProspectCompany:  "Acme, Inc.",
		PainPoint:        "routes",
		OfferDescription: "software",
		GeneratedText:    "Subject: Quick question about Acme, Inc.\n\nHi Dana",
		IsPro:            true,
		BillingReference: &ref,
		CreatedAt:        time.Date(2025, 3, 20, 10, 0, 0, 0, time.UTC),
	}}
}

func TestParseExportFormat(t *testing.T) {
	for in, want := range map[string]string{"": "json", "json": "json", " CSV ": "csv"} {
		got, err := ParseExportFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseExportFormat("xlsx")
	assert.ErrorIs(t, err, ErrInvalidExportFormat)
}

func TestWriteExport_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteExport(&buf, ExportFormatCSV, exportFixture()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, exportHeader, records[0])
	assert.Equal(t, "Acme, Inc.", records[1][3])
	assert.Equal(t, "Subject: Quick question about Acme, Inc.\n\nHi Dana", records[1][6])
	assert.Equal(t, "2025-03-20T10:00:00Z", records[1][8])
	assert.NotContains(t, buf.String(), "cs_secret")
}

func TestWriteExport_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteExport(&buf, ExportFormatJSON, exportFixture()))

	assert.NotContains(t, buf.String(), "cs_secret")

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "Dana Whitfield", decoded[0]["prospect_name"])
	assert.Equal(t, true, decoded[0]["is_pro"])
}

func TestWriteExport_UnknownFormat(t *testing.T) {
	assert.ErrorIs(t, WriteExport(&bytes.Buffer{}, "xml", nil), ErrInvalidExportFormat)
}
