package handlers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"heater_sizing/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	contentTypePDF  = "application/pdf"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type renderFunc func(ctx context.Context, ev models.Evaluation, w io.Writer) error

// @Summary      PDF report
// @Tags         reports
// @Accept       json
// @Produce      application/pdf
// @Param        body  body      EvaluateRequest  true  "Form payload"
// @Success      200   {file}    file
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/report/pdf [post]
func (h *Handler) reportPDF(c *gin.Context) {
	h.report(c, "pdf", contentTypePDF, h.services.Report.PDF)
}

// @Summary      XLSX export
// @Tags         reports
// @Accept       json
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        body  body      EvaluateRequest  true  "Form payload"
// @Success      200   {file}    file
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/report/xlsx [post]
func (h *Handler) reportXLSX(c *gin.Context) {
	h.report(c, "xlsx", contentTypeXLSX, h.services.Report.XLSX)
}

func (h *Handler) report(c *gin.Context, ext, contentType string, render renderFunc) {
	ev, ok := h.bindAndEvaluate(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := render(c.Request.Context(), ev, &buf); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errRenderReport, "report_render_failed", err, "kind", ext)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="heater-sizing-%s.%s"`, ev.ID, ext))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
