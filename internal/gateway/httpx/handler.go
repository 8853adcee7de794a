package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jcmexdev/ecommerce-checkout/internal/cart"
	"github.com/jcmexdev/ecommerce-checkout/internal/catalog"
	"github.com/jcmexdev/ecommerce-checkout/internal/checkout"
	"github.com/jcmexdev/ecommerce-checkout/internal/checkout/journal"
	"github.com/jcmexdev/ecommerce-checkout/internal/gateway/httpx/middlewares"
	"github.com/jcmexdev/ecommerce-checkout/internal/pkg/cache"
	"github.com/jcmexdev/ecommerce-checkout/internal/store"
)

// idempotencyTTL bounds how long a checkout response can be replayed.
const idempotencyTTL = 24 * time.Hour

// JournalReader is the slice of the journal the gateway needs for the
// status endpoint.
type JournalReader interface {
	Latest(ctx context.Context, checkoutID string) (*journal.Entry, error)
}

// Handler exposes the store over HTTP.
type Handler struct {
	store   *store.Store
	journal JournalReader // nil-safe: status endpoint returns 404
	cache   cache.Cache   // nil-safe: idempotent replay disabled
}

func NewHandler(s *store.Store, j JournalReader, c cache.Cache) *Handler {
	return &Handler{store: s, journal: j, cache: c}
}

// ListProducts returns the catalog in registration order.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products := h.store.Products()

	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ProductResponse{
			Name:             p.Name(),
			Price:            p.Price().String(),
			Quantity:         p.Quantity(),
			RequiresShipping: p.RequiresShipping(),
			WeightKg:         p.Weight().String(),
		})
	}

	writeJSON(w, http.StatusOK, out)
}

// AddToCart puts units of a product into the customer's cart.
func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req AddToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if req.Customer == "" || req.Product == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "customer and product are required")
		return
	}

	if err := h.store.AddToCart(req.Customer, req.Product, req.Quantity); err != nil {
		h.writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Checkout runs the customer's cart through the checkout. When the client
// supplies an X-Idempotency-Key that was already used, the stored response
// is replayed instead of charging again.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if req.Customer == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "customer is required")
		return
	}

	idempKey := middlewares.IdempotencyKey(r.Context())
	if body, ok := h.replay(r.Context(), idempKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Idempotency-Replayed", "true")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(body))
		return
	}

	slog.InfoContext(r.Context(), "running checkout",
		"request_id", middlewares.RequestID(r.Context()), "customer", req.Customer)

	summary, err := h.store.Checkout(r.Context(), req.Customer)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	resp := mapSummaryToResponse(summary)

	if idempKey != "" && h.cache != nil {
		if body, err := json.Marshal(resp); err == nil {
			key := h.cache.GenerateKey("checkout", idempKey)
			if err := h.cache.Set(r.Context(), key, string(body), idempotencyTTL); err != nil {
				slog.ErrorContext(r.Context(), "failed to store idempotency record", "error", err)
			}
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetCheckout returns the latest journal entry for a checkout id.
func (h *Handler) GetCheckout(w http.ResponseWriter, r *http.Request) {
	checkoutID := chi.URLParam(r, "id")
	if checkoutID == "" {
		writeError(w, http.StatusBadRequest, "checkout_id_required", "")
		return
	}
	if h.journal == nil {
		writeError(w, http.StatusNotFound, "checkout_not_found", "journal disabled")
		return
	}

	entry, err := h.journal.Latest(r.Context(), checkoutID)
	if err != nil {
		writeError(w, http.StatusNotFound, "checkout_not_found", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, JournalEntryResponse{
		CheckoutID:  entry.CheckoutID,
		Status:      string(entry.Status),
		CurrentStep: entry.CurrentStep,
		Errors:      entry.ErrorMessages,
		TraceID:     entry.TraceID,
		UpdatedAt:   entry.UpdatedAt.UTC().Format(time.RFC3339Nano),
	})
}

// replay returns the stored response body for an idempotency key, if any.
func (h *Handler) replay(ctx context.Context, idempKey string) (string, bool) {
	if idempKey == "" || h.cache == nil {
		return "", false
	}

	body, err := h.cache.Get(ctx, h.cache.GenerateKey("checkout", idempKey))
	if err != nil {
		slog.ErrorContext(ctx, "idempotency lookup failed", "error", err)
		return "", false
	}
	return body, body != ""
}

// writeDomainError maps domain conditions onto HTTP statuses. Business
// aborts are 422 with the literal condition line as the message; unknown
// names are 404; anything else is a 500.
func (h *Handler) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case checkout.IsAbort(err):
		writeError(w, http.StatusUnprocessableEntity, "checkout_rejected", err.Error())
	case errors.Is(err, cart.ErrQuantityNotPositive),
		errors.Is(err, cart.ErrExceedsStock),
		errors.Is(err, cart.ErrTotalExceedsStock):
		writeError(w, http.StatusUnprocessableEntity, "cart_rejected", err.Error())
	case errors.Is(err, catalog.ErrNotFound):
		writeError(w, http.StatusNotFound, "product_not_found", err.Error())
	case errors.Is(err, store.ErrCustomerNotFound):
		writeError(w, http.StatusNotFound, "customer_not_found", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
	}
}

func mapSummaryToResponse(s *checkout.Summary) CheckoutResponse {
	resp := CheckoutResponse{
		CheckoutID: s.CheckoutID,
		Subtotal:   s.Subtotal.String(),
		Shipping:   s.ShippingFee.String(),
		Amount:     s.Total.String(),
	}

	for _, line := range s.Lines {
		resp.Lines = append(resp.Lines, ReceiptLineResponse{
			Quantity:  line.Quantity,
			Name:      line.Name,
			LineTotal: line.Total.String(),
		})
	}

	if s.Notice != nil {
		shipment := &ShipmentResponse{TotalWeightKg: s.Notice.TotalWeight.String()}
		for _, g := range s.Notice.Groups {
			shipment.Groups = append(shipment.Groups, ShipmentGroupResponse{
				Count:       g.Count,
				Name:        g.Name,
				WeightGrams: g.WeightGrams(),
			})
		}
		resp.Shipment = shipment
	}

	var report strings.Builder
	checkout.Render(&report, s)
	resp.Report = report.String()

	return resp
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{
		Error:   code,
		Message: msg,
	})
}
