package export

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/paperfold/invoice-intel/constants"
	"github.com/paperfold/invoice-intel/internal/analysis"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWorkbookXLSX(t *testing.T) {
	vendor := "Acme GmbH"
	total := 1200.0
	rows := []Row{
		{
			FileName: "inv-001.txt",
			Result: analysis.Result{
				Fields: analysis.Fields{
					VendorName:  &vendor,
					TotalAmount: &total,
					Currency:    "USD",
				},
				DocClass:         constants.DocClassInvoice,
				RiskScore:        constants.RiskLow,
				ComplianceStatus: constants.RecordCompliant,
				Approval:         constants.DecisionPass,
			},
		},
		{
			FileName: "odd.txt",
			Result: analysis.Result{
				DocClass:         constants.DocClassOther,
				RiskScore:        constants.RiskHigh,
				ComplianceStatus: constants.RecordNeedsReview,
				Approval:         constants.DecisionFail,
				IsFlagged:        true,
				FlagReason:       "Unusually high amount",
			},
		},
	}

	data, err := NewService(testLogger()).WorkbookXLSX(rows)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Equal(t, []string{"Analyses"}, sheets)

	cell := func(ref string) string {
		v, err := f.GetCellValue("Analyses", ref)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "File", cell("A1"))
	assert.Equal(t, "Flag Reason", cell("N1"))

	assert.Equal(t, "inv-001.txt", cell("A2"))
	assert.Equal(t, "invoice", cell("B2"))
	assert.Equal(t, "Acme GmbH", cell("C2"))
	assert.Equal(t, "—", cell("D2"))
	assert.Equal(t, "1200", cell("F2"))
	assert.Equal(t, "pass", cell("K2"))

	assert.Equal(t, "odd.txt", cell("A3"))
	assert.Equal(t, "high", cell("I3"))
	assert.Equal(t, "TRUE", cell("M3"))
	assert.Equal(t, "Unusually high amount", cell("N3"))
}

func TestWorkbookXLSXNoRows(t *testing.T) {
	data, err := NewService(testLogger()).WorkbookXLSX(nil)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
