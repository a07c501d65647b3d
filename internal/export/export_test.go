package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"qa-insights-go/internal/types"
	"qa-insights-go/internal/types/fixtures"
)

func TestFormatCSV(t *testing.T) {
	ic := fixtures.InternetCable("Ana", "C-1", 80, 70, 60, fixtures.Summary(`He said "hi", then left`))
	bk := fixtures.Banking("Bo", "C-2", 100, 90)

	lines := strings.Split(FormatCSV([]types.AnalysisResult{ic, bk}), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, strings.Join(CSVHeaders, ","), lines[0])
	assert.Len(t, CSVHeaders, 22)
	assert.Equal(t,
		`C-1,Ana,2024-03-01T10:00:00Z,05:00,General,Unknown,"He said ""hi"", then left",true,Resolved,Fixed on call,0,70.00,80,70,60,,,,0,0,,`,
		lines[1])
	assert.Equal(t,
		`C-2,Bo,2024-03-01T10:00:00Z,05:00,General,Unknown,Customer called about an issue.,true,Resolved,Fixed on call,0,95.00,,,90,,,,0,0,,`,
		lines[2])
}

func TestFormatCSV_JoinsPhrasesAndFormatsNumbers(t *testing.T) {
	r := fixtures.InternetCable("Ana", "C-1", 81, 70, 60)
	p := r.AgentPerformance.CorePillars.(types.InternetCablePillars)
	p.ProcedureFlow.Deviations = []string{"skipped reboot", "no recap"}
	p.Empathy.SuggestedPhrases = []string{"I hear you"}
	r.AgentPerformance.CorePillars = p
	r.CustomerSentiment.PositivePercentage = 62.5

	row := strings.Split(FormatCSV([]types.AnalysisResult{r}), "\n")[1]
	assert.Contains(t, row, ",70.33,")
	assert.Contains(t, row, ",skipped reboot; no recap,,I hear you,62.5,0,")
}

func TestFormatCSV_Empty(t *testing.T) {
	assert.Equal(t, strings.Join(CSVHeaders, ","), FormatCSV(nil))
}

func TestEscapeCSVField(t *testing.T) {
	assert.Equal(t, "plain", escapeCSVField("plain"))
	assert.Equal(t, `"a,b"`, escapeCSVField("a,b"))
	assert.Equal(t, `"say ""x"""`, escapeCSVField(`say "x"`))
	assert.Equal(t, "\"two\nlines\"", escapeCSVField("two\nlines"))
	assert.Equal(t, " lead", escapeCSVField(" lead"))
}

func TestFixed(t *testing.T) {
	assert.Equal(t, "70.00", fixed(70, 2))
	assert.Equal(t, "13", fixed(12.5, 0))
	assert.Equal(t, "66.7", fixed(200.0/3, 1))
}

func TestFormatText_InternetCable(t *testing.T) {
	r := fixtures.InternetCable("Ana", "C-1", 80, 70, 60, fixtures.Unresolved("Needs technician"))
	r.Resolution.ReasonDetail = "Line fault"
	r.TroubleshootingFlow = []string{"Restart modem", "Check cabling", "Ping test"}
	fb := types.TroubleshootingFeedback{0: types.StepChecked, 1: types.StepNA}

	out := FormatText("c1.txt", r, "follow up Friday", fb, types.CampaignInternetCable)

	assert.True(t, strings.HasPrefix(out, "Analysis for: c1.txt\n"+strings.Repeat("-", 50)))
	assert.Contains(t, out, "- Date & Time: 2024-03-01 10:00:00 UTC")
	assert.Contains(t, out, "- Call Outcome: Not Resolved (Line fault)")
	assert.Contains(t, out, "CORE PILLAR PERFORMANCE (Call Quality Score: 70.0%)")
	assert.Contains(t, out, "- Procedure Flow (80%):\n  - Deviations: None\n  - Efficiency: N/A")
	assert.Contains(t, out, "Score: 1/2 (50%)")
	assert.Contains(t, out, "  1. Restart modem [Necessary]\n  2. Check cabling [N/A]\n  3. Ping test [Not Reviewed]")
	assert.True(t, strings.HasSuffix(out, "NOTES & COMMENTS\nfollow up Friday"))
}

func TestFormatText_NoFeedbackNoNote(t *testing.T) {
	r := fixtures.InternetCable("Ana", "C-1", 80, 70, 60)
	r.TroubleshootingFlow = []string{"Restart modem"}

	out := FormatText("c1.txt", r, "", nil, types.CampaignInternetCable)
	assert.NotContains(t, out, "\nScore:")
	assert.Contains(t, out, "  1. Restart modem\n")
	assert.NotContains(t, out, "NOTES & COMMENTS")
	assert.True(t, strings.HasSuffix(out, "- Recommendations:"))
}

func TestFormatText_AllStepsNA(t *testing.T) {
	r := fixtures.InternetCable("Ana", "C-1", 80, 70, 60)
	r.TroubleshootingFlow = []string{"Restart modem"}

	out := FormatText("c1.txt", r, "", types.TroubleshootingFeedback{0: types.StepNA}, types.CampaignInternetCable)
	assert.Contains(t, out, "Score: N/A")
}

func TestFormatText_Banking(t *testing.T) {
	r := fixtures.Banking("Bo", "C-2", 100, 90)
	r.SecurityVerification = []string{"Date of Birth", "Last Statement"}

	out := FormatText("c2.txt", r, "", nil, types.CampaignBanking)
	assert.Contains(t, out, "CORE PILLAR PERFORMANCE (Call Quality Score: 95.0%)")
	assert.Contains(t, out, "- Account Verification (100%):\n  - Client Name Verified: Yes")
	assert.Contains(t, out, "ROOT CAUSE & SECURITY VERIFICATION")
	assert.Contains(t, out, "  1. Date of Birth\n  2. Last Statement")
	assert.NotContains(t, out, "Procedure Flow")
}

func TestFormatText_BankingGeneralInquiryUsesDefaultSection(t *testing.T) {
	r := fixtures.GeneralInquiry("Bo", "C-3", 75)

	out := FormatText("c3.txt", r, "", nil, types.CampaignBanking)
	assert.Contains(t, out, "Call Quality Score: 0.0%")
	assert.Contains(t, out, "- Procedure Flow (N/A%):")
	assert.Contains(t, out, "- Empathy (75%):")
	assert.Contains(t, out, "- Troubleshooting Steps:\n  None")
}

func TestWriteWorkbook(t *testing.T) {
	items := fixtures.Items(
		fixtures.InternetCable("Ana", "C-1", 80, 70, 60, fixtures.CallType("Outage"), fixtures.Unresolved("Needs technician")),
		fixtures.InternetCable("Bo", "C-2", 90, 90, 90, fixtures.CallType("Billing")),
	)

	var buf bytes.Buffer
	require.NoError(t, WriteWorkbook(&buf, types.CampaignInternetCable, items))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetSummary, SheetCalls, SheetDrivers}, f.GetSheetList())

	v, err := f.GetCellValue(SheetSummary, "B3")
	require.NoError(t, err)
	assert.Equal(t, "2", v)

	v, err = f.GetCellValue(SheetCalls, "A1")
	require.NoError(t, err)
	assert.Equal(t, "callId", v)
	v, err = f.GetCellValue(SheetCalls, "A3")
	require.NoError(t, err)
	assert.Equal(t, "C-2", v)
	v, err = f.GetCellValue(SheetCalls, "L3")
	require.NoError(t, err)
	assert.Equal(t, "90", v)

	rows, err := f.GetRows(SheetDrivers)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, DriverHeaders, rows[0])
	assert.Equal(t, "Outage", rows[1][0])
	assert.Equal(t, "Billing", rows[2][0])

	rows, err = f.GetRows(SheetSummary)
	require.NoError(t, err)
	last := rows[len(rows)-1]
	assert.Equal(t, []string{"Needs technician", "1"}, last)
}

func TestWriteWorkbook_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteWorkbook(&buf, types.CampaignBanking, nil))
	assert.NotZero(t, buf.Len())
}
