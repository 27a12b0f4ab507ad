package httptransport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"sync"

	"github.com/Zhima-Mochi/beverage-machine/internal/application/machine"
	"github.com/Zhima-Mochi/beverage-machine/internal/domain/beverage"
	domainInventory "github.com/Zhima-Mochi/beverage-machine/internal/domain/inventory"
	"github.com/Zhima-Mochi/beverage-machine/internal/domain/sales"
	"github.com/Zhima-Mochi/beverage-machine/internal/observability"
	httppresentation "github.com/Zhima-Mochi/beverage-machine/internal/presentation/http"
	"github.com/go-chi/chi/v5"
)

// Machine is the part of the vending machine exposed over HTTP.
type Machine interface {
	Dispense(ctx context.Context, req beverage.Request) machine.Result
	PrintPurchasesReport(ctx context.Context)
	PurchasesReport() sales.PurchasesReport
}

type Stock interface {
	Levels(ctx context.Context) map[beverage.Beverage]int
	Restock(ctx context.Context, b beverage.Beverage, quantity int) (int, error)
}

// Handler serves the machine over HTTP. The machine assumes exclusive access, so every call
// into it goes through mu.
type Handler struct {
	mu      sync.Mutex
	machine Machine
	stock   Stock
	tel     observability.Observability
}

func NewHandler(m Machine, stock Stock, tel observability.Observability) *Handler {
	if tel == nil {
		tel = observability.Nop()
	}
	return &Handler{
		machine: m,
		stock:   stock,
		tel:     tel,
	}
}

func (h *Handler) Router() *chi.Mux {
	r := chi.NewRouter()
	r.Use(httppresentation.ObservabilityMiddleware(h.tel))

	r.Post("/dispense", h.handleDispense)
	r.Get("/report", h.handleReport)
	r.Post("/report/print", h.handlePrintReport)
	r.Get("/stock", h.handleStock)
	r.Post("/stock/{beverage}/restock", h.handleRestock)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, errors.New("not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
	})

	return r
}

type dispenseRequest struct {
	Beverage string `json:"beverage"`
	ExtraHot bool   `json:"extra_hot"`
	Sugar    int    `json:"sugar"`
	Money    int64  `json:"money"`
}

type dispenseResponse struct {
	Beverage string          `json:"beverage"`
	Outcome  machine.Outcome `json:"outcome"`
	Missing  int64           `json:"missing,omitempty"`
	Error    string          `json:"error,omitempty"`
}

func (h *Handler) handleDispense(w http.ResponseWriter, r *http.Request) {
	var body dispenseRequest
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	req, err := toBeverageRequest(body)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	h.mu.Lock()
	result := h.machine.Dispense(r.Context(), req)
	h.mu.Unlock()

	resp := dispenseResponse{
		Beverage: req.Beverage.ID(),
		Outcome:  result.Outcome,
		Missing:  result.Missing,
	}
	if result.Err != nil {
		resp.Error = result.Err.Error()
	}
	writeJSON(w, statusForOutcome(result.Outcome), resp)
}

func toBeverageRequest(body dispenseRequest) (beverage.Request, error) {
	b, err := beverage.Parse(body.Beverage)
	if err != nil {
		return beverage.Request{}, err
	}
	if body.ExtraHot {
		if b, err = beverage.New(b.Kind, beverage.ExtraHot); err != nil {
			return beverage.Request{}, err
		}
	}
	sugar, err := beverage.ParseSugar(body.Sugar)
	if err != nil {
		return beverage.Request{}, err
	}
	return beverage.NewRequest(b, sugar, body.Money)
}

func statusForOutcome(o machine.Outcome) int {
	switch o {
	case machine.OutcomeServed:
		return http.StatusOK
	case machine.OutcomeRejected:
		return http.StatusPaymentRequired
	case machine.OutcomeShortage:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	report := h.machine.PurchasesReport()
	h.mu.Unlock()

	writeJSON(w, http.StatusOK, report)
}

func (h *Handler) handlePrintReport(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	h.machine.PrintPurchasesReport(r.Context())
	h.mu.Unlock()

	w.WriteHeader(http.StatusAccepted)
}

type stockLevel struct {
	Beverage string `json:"beverage"`
	Quantity int    `json:"quantity"`
}

func (h *Handler) handleStock(w http.ResponseWriter, r *http.Request) {
	levels := h.stock.Levels(r.Context())
	out := make([]stockLevel, 0, len(levels))
	for b, n := range levels {
		out = append(out, stockLevel{Beverage: b.ID(), Quantity: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Beverage < out[j].Beverage })
	writeJSON(w, http.StatusOK, out)
}

type restockRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) handleRestock(w http.ResponseWriter, r *http.Request) {
	b, err := beverage.Parse(chi.URLParam(r, "beverage"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	var body restockRequest
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	remaining, err := h.stock.Restock(r.Context(), b, body.Quantity)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stockLevel{Beverage: b.ID(), Quantity: remaining})
}

func decodeJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domainInventory.ErrNotFound):
		writeError(w, http.StatusNotFound, err)
	case errors.Is(err, beverage.ErrUnknownBeverage),
		errors.Is(err, beverage.ErrUnknownSugar),
		errors.Is(err, beverage.ErrNegativeMoney),
		errors.Is(err, domainInventory.ErrInvalidQuantity):
		writeError(w, http.StatusBadRequest, err)
	default:
		writeError(w, http.StatusInternalServerError, err)
	}
}
