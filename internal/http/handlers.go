package http

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/aeadbench/internal/errors"
	"github.com/allisson/aeadbench/internal/httputil"
	"github.com/allisson/aeadbench/internal/report"
)

// ErrNoCampaign is returned by /campaigns/latest before any campaign has finished.
var ErrNoCampaign = errors.Wrap(errors.ErrNotFound, "no campaign has finished yet")

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// latestCampaignHandler renders the held campaign with the report JSON writer, or the CSV
// writer when ?format=csv is given.
func latestCampaignHandler(latest *LatestCampaign, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		campaign := latest.Get()
		if campaign == nil {
			httputil.HandleErrorGin(c, ErrNoCampaign, logger)
			return
		}

		format := c.DefaultQuery("format", report.FormatJSON)
		var buf bytes.Buffer
		writer, err := report.NewWriter(format, &buf)
		if err != nil {
			httputil.HandleErrorGin(c, err, logger)
			return
		}
		if err := writer.Write(campaign); err != nil {
			httputil.HandleErrorGin(c, err, logger)
			return
		}

		contentType := "application/json; charset=utf-8"
		if format == report.FormatCSV {
			contentType = "text/csv; charset=utf-8"
		}
		c.Data(http.StatusOK, contentType, buf.Bytes())
	}
}
