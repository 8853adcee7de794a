package httpx

type AddToCartRequest struct {
	Customer string `json:"customer"`
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

type CheckoutRequest struct {
	Customer string `json:"customer"`
}

type ProductResponse struct {
	Name             string `json:"name"`
	Price            string `json:"price"`
	Quantity         int    `json:"quantity"`
	RequiresShipping bool   `json:"requires_shipping"`
	WeightKg         string `json:"weight_kg"`
}

type ReceiptLineResponse struct {
	Quantity  int    `json:"quantity"`
	Name      string `json:"name"`
	LineTotal string `json:"line_total"`
}

type ShipmentGroupResponse struct {
	Count       int    `json:"count"`
	Name        string `json:"name"`
	WeightGrams int64  `json:"weight_grams"`
}

type ShipmentResponse struct {
	Groups        []ShipmentGroupResponse `json:"groups"`
	TotalWeightKg string                  `json:"total_weight_kg"`
}

type CheckoutResponse struct {
	CheckoutID string                `json:"checkout_id"`
	Lines      []ReceiptLineResponse `json:"lines"`
	Subtotal   string                `json:"subtotal"`
	Shipping   string                `json:"shipping"`
	Amount     string                `json:"amount"`
	Shipment   *ShipmentResponse     `json:"shipment,omitempty"`

	// Report is the literal console form: the shipment notice block (when
	// present) followed by the receipt block.
	Report string `json:"report"`
}

type JournalEntryResponse struct {
	CheckoutID  string `json:"checkout_id"`
	Status      string `json:"status"`
	CurrentStep string `json:"current_step,omitempty"`
	Errors      string `json:"errors"`
	TraceID     string `json:"trace_id,omitempty"`
	UpdatedAt   string `json:"updated_at"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
