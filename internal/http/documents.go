package http

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/justcomments/justcomments/internal/annotations"
	"github.com/justcomments/justcomments/internal/pdfdoc"
)

// OpenFunc opens a byte buffer as a paginated document. It is the seam to
// the parsing backend; tests substitute a fake.
type OpenFunc func(data []byte) (annotations.Source, error)

// DefaultOpen adapts the PDF backend to OpenFunc.
func DefaultOpen(data []byte) (annotations.Source, error) {
	return pdfdoc.Open(data)
}

// DocumentsController handles uploading, unloading and resetting the
// document of the current workspace.
type DocumentsController struct {
	open          OpenFunc
	maxUploadSize int64
}

func NewDocumentsController(open OpenFunc, maxUploadSize int64) *DocumentsController {
	return &DocumentsController{
		open:          open,
		maxUploadSize: maxUploadSize,
	}
}

type UploadResult struct {
	FileName string `json:"file_name"`
	Pages    int    `json:"pages"`
	Comments int    `json:"comments"`
}

// Upload extracts the comments of an uploaded document and replaces the
// workspace's record set. On any backend failure the record set is cleared;
// no partial results are kept. A concurrent upload that finished later with
// a newer generation wins, and the stale one reports a conflict.
func (ctl *DocumentsController) Upload(c *gin.Context) {
	ws := getWorkspace(c)

	file, header, err := c.Request.FormFile("document")
	if err != nil {
		respondBadRequest(c, "Document file not provided")
		return
	}
	defer file.Close()

	if header.Size > ctl.maxUploadSize {
		respondBadRequest(c, fmt.Sprintf("File too large (max %d MB)", ctl.maxUploadSize/(1024*1024)))
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, ctl.maxUploadSize+1))
	if err != nil {
		respondInternalError(c, fmt.Errorf("reading upload: %w", err))
		return
	}

	gen := ws.Store.BeginExtraction()

	doc, err := ctl.open(data)
	if err != nil {
		ws.Store.ClearIfCurrent(gen)
		respondBadRequest(c, fmt.Sprintf("Failed to parse document: %v", err))
		return
	}

	records, err := annotations.Extract(doc)
	if err != nil {
		ws.Store.ClearIfCurrent(gen)
		respondBadRequest(c, fmt.Sprintf("Failed to extract comments: %v", err))
		return
	}

	if !ws.Store.CommitExtraction(gen, header.Filename, records) {
		respondConflict(c, "Superseded by a newer upload")
		return
	}

	c.JSON(http.StatusOK, UploadResult{
		FileName: header.Filename,
		Pages:    doc.NumPages(),
		Comments: len(records),
	})
}

// Unload drops the current document but keeps the column settings.
func (ctl *DocumentsController) Unload(c *gin.Context) {
	getWorkspace(c).Store.Unload()
	c.JSON(http.StatusOK, SuccessResponse{Message: "Document unloaded"})
}

// Reset performs a full reset, restoring default column settings as well.
func (ctl *DocumentsController) Reset(c *gin.Context) {
	getWorkspace(c).Store.Reset()
	c.JSON(http.StatusOK, SuccessResponse{Message: "Workspace reset"})
}
