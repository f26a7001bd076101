package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/justcomments/justcomments/internal/entities"
	"github.com/justcomments/justcomments/internal/workspace"
)

// SettingsController manages the selection and column visibility of the
// current workspace.
type SettingsController struct{}

func NewSettingsController() *SettingsController {
	return &SettingsController{}
}

type SelectionRequest struct {
	Kind string `json:"kind" binding:"required"`
	IDs  []int  `json:"ids"`
}

// SetSelection replaces the selection. "kind" is either "include" or
// "exclude"; either representation is normalized to an explicit index set
// before it is stored.
func (ctl *SettingsController) SetSelection(c *gin.Context) {
	var req SelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid selection request: "+err.Error())
		return
	}

	kind := workspace.SelectionKind(req.Kind)
	if kind != workspace.SelectionInclude && kind != workspace.SelectionExclude {
		respondBadRequest(c, "Selection kind must be \"include\" or \"exclude\"")
		return
	}

	store := getWorkspace(c).Store
	if err := store.SetSelection(kind, req.IDs); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	selection := store.Selection()
	if selection == nil {
		selection = []int{}
	}
	c.JSON(http.StatusOK, gin.H{"selection": selection})
}

// SetColumns applies a column visibility map. The comment column is forced
// visible regardless of the request body.
func (ctl *SettingsController) SetColumns(c *gin.Context) {
	var req entities.ColumnVisibility
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid column visibility: "+err.Error())
		return
	}

	for col := range req {
		if !col.Valid() {
			respondBadRequest(c, "Unknown column: "+string(col))
			return
		}
	}

	store := getWorkspace(c).Store
	store.SetColumnVisibility(req)
	c.JSON(http.StatusOK, gin.H{"visibility": store.Visibility()})
}
