package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"seosik/internal/port"
	"seosik/internal/resolver"
)

// RemoteHandler serves listings from the remote bid store.
type RemoteHandler struct {
	storage    port.RemoteStorage
	sharedRoot string
}

// NewRemoteHandler creates a new RemoteHandler rooted at the shared bid folder.
func NewRemoteHandler(storage port.RemoteStorage, sharedRoot string) *RemoteHandler {
	return &RemoteHandler{storage: storage, sharedRoot: sharedRoot}
}

// ListFiles handles GET /api/v1/remote/:folder/files. It lists the entries
// of one bid folder under the shared root.
func (h *RemoteHandler) ListFiles(c *gin.Context) {
	if h.storage == nil {
		RespondError(c, http.StatusServiceUnavailable, "REMOTE_UNAVAILABLE", "remote storage is not configured")
		return
	}
	folder := c.Param("folder")
	names, err := h.storage.List(c.Request.Context(), "/"+h.sharedRoot+"/"+folder)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"folder": folder, "files": names})
}

// ListForms handles GET /api/v1/remote/:folder/forms. It lists already
// extracted form artifacts in the folder's forms directory.
func (h *RemoteHandler) ListForms(c *gin.Context) {
	if h.storage == nil {
		RespondError(c, http.StatusServiceUnavailable, "REMOTE_UNAVAILABLE", "remote storage is not configured")
		return
	}
	folder := c.Param("folder")
	names, err := h.storage.List(c.Request.Context(), resolver.RemoteFormsPath(h.sharedRoot, folder))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"folder": folder, "forms": names})
}
