package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/justcomments/justcomments/internal/export"
	"github.com/justcomments/justcomments/internal/sinks"
)

// ExportController serializes the selected records into the downstream
// formats, either as a file download or as a clipboard payload the browser
// places on the clipboard itself.
type ExportController struct{}

func NewExportController() *ExportController {
	return &ExportController{}
}

// DownloadCSV streams the CSV export as an attachment.
func (ctl *ExportController) DownloadCSV(c *gin.Context) {
	store := getWorkspace(c).Store
	cols := export.Columns(store.Visibility())
	body := export.CSV(store.EffectiveExportSet(), cols)

	serveAttachment(c, sinks.ExportFileName(store.DocumentName(), ".csv"), sinks.MIMECSV, []byte(body))
}

// DownloadText streams the plain-text export as an attachment.
func (ctl *ExportController) DownloadText(c *gin.Context) {
	store := getWorkspace(c).Store
	cols := export.Columns(store.Visibility())
	body := export.Text(store.EffectiveExportSet(), cols)

	serveAttachment(c, sinks.ExportFileName(store.DocumentName(), ".txt"), sinks.MIMEText, []byte(body))
}

// DownloadXLSX streams the spreadsheet export as an attachment.
func (ctl *ExportController) DownloadXLSX(c *gin.Context) {
	store := getWorkspace(c).Store
	cols := export.Columns(store.Visibility())

	body, err := export.XLSX(store.EffectiveExportSet(), cols)
	if err != nil {
		respondInternalError(c, err)
		return
	}

	serveAttachment(c, sinks.ExportFileName(store.DocumentName(), ".xlsx"), sinks.MIMEXLSX, body)
}

type ClipboardPayload struct {
	Format string `json:"format"`
	Text   string `json:"text"`
}

// Clipboard returns the formatted text for the browser to write to the
// clipboard: "table" yields the quoted tab-separated form that pastes into
// spreadsheets, "text" (the default) yields the plain-text form.
func (ctl *ExportController) Clipboard(c *gin.Context) {
	store := getWorkspace(c).Store
	cols := export.Columns(store.Visibility())
	records := store.EffectiveExportSet()

	format := c.DefaultQuery("format", "text")
	var body string
	switch format {
	case "table":
		body = export.TSV(records, cols)
	case "text":
		body = export.Text(records, cols)
	default:
		respondBadRequest(c, "Format must be \"table\" or \"text\"")
		return
	}

	c.JSON(http.StatusOK, ClipboardPayload{Format: format, Text: body})
}

func serveAttachment(c *gin.Context, filename, mime string, body []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, mime, body)
}
