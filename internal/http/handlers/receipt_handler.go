// README: Receipt upload and listing endpoints.
package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripweaver/internal/modules/receipt"
	"tripweaver/internal/types"
)

// maxReceiptBytes caps uploads at 10 MiB.
const maxReceiptBytes = 10 << 20

type ReceiptHandler struct {
	receipts *receipt.Service
}

func NewReceiptHandler(svc *receipt.Service) *ReceiptHandler {
	return &ReceiptHandler{receipts: svc}
}

func (h *ReceiptHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		writeError(c, http.StatusBadRequest, "file required")
		return
	}
	if file.Size > maxReceiptBytes {
		writeError(c, http.StatusBadRequest, "file too large")
		return
	}
	f, err := file.Open()
	if err != nil {
		writeError(c, http.StatusBadRequest, "unreadable file")
		return
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, maxReceiptBytes))
	if err != nil {
		writeError(c, http.StatusBadRequest, "unreadable file")
		return
	}

	rec, err := h.receipts.Save(c.Request.Context(), types.ID(c.Param("id")), file.Filename, file.Header.Get("Content-Type"), data)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "receipt": rec})
}

func (h *ReceiptHandler) List(c *gin.Context) {
	recs, err := h.receipts.ListByTrip(c.Request.Context(), types.ID(c.Param("id")))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"receipts": recs})
}
