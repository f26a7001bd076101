package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/justcomments/justcomments/internal/entities"
)

// CommentsController exposes the normalized record set and the current
// selection and column state to the UI layer.
type CommentsController struct{}

func NewCommentsController() *CommentsController {
	return &CommentsController{}
}

type CommentsResponse struct {
	FileName   string                    `json:"file_name"`
	Comments   []entities.CommentRecord  `json:"comments"`
	Count      int                       `json:"count"`
	Selection  []int                     `json:"selection"`
	Visibility entities.ColumnVisibility `json:"visibility"`
}

func (ctl *CommentsController) List(c *gin.Context) {
	store := getWorkspace(c).Store

	records := store.Records()
	selection := store.Selection()
	if selection == nil {
		selection = []int{}
	}
	if records == nil {
		records = []entities.CommentRecord{}
	}

	c.JSON(http.StatusOK, CommentsResponse{
		FileName:   store.DocumentName(),
		Comments:   records,
		Count:      len(records),
		Selection:  selection,
		Visibility: store.Visibility(),
	})
}
