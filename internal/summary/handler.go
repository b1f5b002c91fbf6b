package summary

import (
	"net/http"
	"time"

	"github.com/frahmantamala/budget-tracker/internal"
	"github.com/frahmantamala/budget-tracker/internal/transport"
)

type ServiceAPI interface {
	Summarize(year int, month time.Month) (*MonthlySummary, error)
	CurrentMonth() (int, time.Month)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

// GetSummary serves the monthly report. The month query parameter is
// optional and defaults to the current calendar month.
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	var (
		year  int
		month time.Month
	)

	if monthParam := r.URL.Query().Get("month"); monthParam != "" {
		ym, err := time.Parse("2006-01", monthParam)
		if err != nil {
			h.Logger.Warn("GetSummary: malformed month parameter", "month", monthParam)
			h.HandleServiceError(w, internal.ErrInvalidMonth)
			return
		}
		year, month = ym.Year(), ym.Month()
	} else {
		year, month = h.Service.CurrentMonth()
	}

	report, err := h.Service.Summarize(year, month)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, report)
}
