package rates

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"cbr-rates/internal/models"
	"cbr-rates/internal/service/logger"

	"github.com/gorilla/mux"
)

// RatesService is what the HTTP surface needs from the resolver.
type RatesService interface {
	GetRatesForDate(ctx context.Context, date models.Date) ([]models.Rate, error)
	ListAllRates(ctx context.Context, limit, offset int) ([]models.CurrencyRate, error)
	ListCurrencyCodes(ctx context.Context) ([]string, error)
	DeleteRatesForCurrency(ctx context.Context, charCode string) (int64, error)
}

type Handler struct {
	rates  RatesService
	logger logger.RequestLogger
	loc    *time.Location
}

func New(r RatesService, l logger.RequestLogger, loc *time.Location) *Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{rates: r, logger: l, loc: loc}
}

func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/", h.getToday).Methods(http.MethodGet)
	r.HandleFunc("/currencies", h.getCurrencyCodes).Methods(http.MethodGet)
	r.HandleFunc("/rates", h.getAllRates).Methods(http.MethodGet)
	r.HandleFunc("/delete", h.deleteRates).Methods(http.MethodGet)
	// anything not shaped like a date falls through to the router's 404
	r.HandleFunc("/{day:[0-9]{4}-[0-9]{2}-[0-9]{2}}", h.getDay).Methods(http.MethodGet)
}

type dayResponse struct {
	Date       models.Date   `json:"date"`
	Currencies []models.Rate `json:"currencies"`
}

func (h *Handler) getToday(w http.ResponseWriter, r *http.Request) {
	h.serveDay(w, r, models.Today(h.loc))
}

func (h *Handler) getDay(w http.ResponseWriter, r *http.Request) {
	day, err := models.ParseDate(mux.Vars(r)["day"])
	if err != nil {
		// matched the route pattern but is not a real calendar date
		st := http.StatusNotFound
		http.NotFound(w, r)
		_ = h.logger.LogRequest(r.Context(), r.URL.Path, &st, nil)
		return
	}
	h.serveDay(w, r, day)
}

func (h *Handler) serveDay(w http.ResponseWriter, r *http.Request, day models.Date) {
	rates, err := h.rates.GetRatesForDate(r.Context(), day)
	if err != nil {
		st := writeErr(w, err)
		_ = h.logger.LogRequest(r.Context(), r.URL.Path, &st, &day)
		return
	}
	if rates == nil {
		rates = []models.Rate{}
	}

	st := writeJSON(w, dayResponse{Date: day, Currencies: rates})
	_ = h.logger.LogRequest(r.Context(), r.URL.Path, &st, &day)
}

func (h *Handler) getCurrencyCodes(w http.ResponseWriter, r *http.Request) {
	codes, err := h.rates.ListCurrencyCodes(r.Context())
	if err != nil {
		st := writeErr(w, err)
		_ = h.logger.LogRequest(r.Context(), r.URL.Path, &st, nil)
		return
	}
	if codes == nil {
		codes = []string{}
	}

	st := writeJSON(w, map[string][]string{"currencies": codes})
	_ = h.logger.LogRequest(r.Context(), r.URL.Path, &st, nil)
}

func (h *Handler) getAllRates(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		st := writeErr(w, err)
		_ = h.logger.LogRequest(r.Context(), r.URL.Path, &st, nil)
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		st := writeErr(w, err)
		_ = h.logger.LogRequest(r.Context(), r.URL.Path, &st, nil)
		return
	}

	rows, err := h.rates.ListAllRates(r.Context(), limit, offset)
	if err != nil {
		st := writeErr(w, err)
		_ = h.logger.LogRequest(r.Context(), r.URL.Path, &st, nil)
		return
	}
	if rows == nil {
		rows = []models.CurrencyRate{}
	}

	st := writeJSON(w, map[string][]models.CurrencyRate{"rates": rows})
	_ = h.logger.LogRequest(r.Context(), r.URL.Path, &st, nil)
}

type deleteOKResponse struct {
	Status  string `json:"Status"`
	Deleted int64  `json:"Number of deleted rates"`
}

type deleteErrResponse struct {
	Status string `json:"Status"`
	Msg    string `json:"Msg"`
}

// deleteRates keeps the original contract: a missing char_code is reported
// as a structured error body with HTTP 200, not a 4xx.
func (h *Handler) deleteRates(w http.ResponseWriter, r *http.Request) {
	charCode := strings.TrimSpace(r.URL.Query().Get("char_code"))
	if charCode == "" {
		st := writeJSON(w, deleteErrResponse{Status: "error", Msg: "not specified currency char_code"})
		_ = h.logger.LogRequest(r.Context(), r.URL.Path, &st, nil)
		return
	}

	n, err := h.rates.DeleteRatesForCurrency(r.Context(), charCode)
	if err != nil {
		st := writeErr(w, err)
		_ = h.logger.LogRequest(r.Context(), r.URL.Path, &st, nil)
		return
	}

	st := writeJSON(w, deleteOKResponse{Status: "ok", Deleted: n})
	_ = h.logger.LogRequest(r.Context(), r.URL.Path, &st, nil)
}

func queryInt(r *http.Request, key string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, models.BizError("bad_request", key+" must be a non-negative integer")
	}
	return v, nil
}

func writeJSON(w http.ResponseWriter, body any) int {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(body)
	return http.StatusOK
}

func writeErr(w http.ResponseWriter, err error) int {
	status := http.StatusInternalServerError
	code := "internal_error"

	var bizErr *models.BusinessError
	switch {
	case errors.Is(err, models.ErrUpstreamUnavailable):
		status = http.StatusBadGateway
		code = "upstream_unavailable"
	case errors.As(err, &bizErr):
		status = http.StatusBadRequest
		code = bizErr.Code
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(models.BusinessError{Code: code, Message: err.Error()})

	return status
}
