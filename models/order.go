package models

import "time"

const (
	OrderStatusPending   = "Pending"
	OrderStatusPlaced    = "Placed"
	OrderStatusConfirmed = "Confirmed"
	OrderStatusShipping  = "Shipping"
	OrderStatusDelivered = "Delivered"
	OrderStatusCancelled = "Cancelled"
)

// PaymentMethodCOD is the only supported payment method.
const PaymentMethodCOD = "COD"

type OrderItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	LineTotal   float64 `json:"lineTotal"`
}

// Order is the confirmation view model. Its totals and line items come
// from the upstream checkout echo, never from the client-side preview.
type Order struct {
	ID                string      `json:"id"`
	CustomerID        int         `json:"customerId"`
	CustomerName      string      `json:"customerName"`
	CustomerEmail     string      `json:"customerEmail"`
	CustomerPhone     string      `json:"customerPhone"`
	RecipientName     string      `json:"recipientName"`
	RecipientPhone    string      `json:"recipientPhone"`
	Address           string      `json:"address"`
	Note              string      `json:"note"`
	Items             []OrderItem `json:"items"`
	Subtotal          float64     `json:"subtotal"`
	Discount          float64     `json:"discount"`
	Total             float64     `json:"total"`
	Status            string      `json:"status"`
	PaymentMethod     string      `json:"paymentMethod"`
	CreatedAt         time.Time   `json:"createdAt"`
	UpdatedAt         time.Time   `json:"updatedAt"`
	EstimatedDelivery time.Time   `json:"estimatedDelivery"`
}

// CheckoutRequest is what the checkout form submits to the gateway.
// Line items are not part of it; the server-side cart is the source.
type CheckoutRequest struct {
	CustomerName   string `json:"customerName" binding:"required"`
	CustomerEmail  string `json:"customerEmail" binding:"required,email"`
	CustomerPhone  string `json:"customerPhone" binding:"required"`
	RecipientName  string `json:"recipientName" binding:"required"`
	RecipientPhone string `json:"recipientPhone" binding:"required"`
	Address        string `json:"address" binding:"required"`
	Note           string `json:"note"`
}

// CheckoutItem is a cart line reduced for submission. Price and name are
// deliberately absent: the upstream API prices the order itself.
type CheckoutItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CheckoutPayload is the wire shape of POST /buyer/orders/checkout.
type CheckoutPayload struct {
	CustomerName   string         `json:"customerName"`
	CustomerEmail  string         `json:"customerEmail"`
	CustomerPhone  string         `json:"customerPhone"`
	RecipientName  string         `json:"recipientName"`
	RecipientPhone string         `json:"recipientPhone"`
	Address        string         `json:"address"`
	Note           string         `json:"note"`
	Items          []CheckoutItem `json:"items"`
	CustomerID     int            `json:"customerId"`
}

type CheckoutResponseItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	UnitPrice   float64 `json:"unitPrice"`
	Quantity    int     `json:"quantity"`
	LineTotal   float64 `json:"lineTotal"`
}

// CheckoutResponse is the upstream checkout echo with server-computed
// totals, the ground truth for the confirmation view.
type CheckoutResponse struct {
	ID             string                 `json:"id"`
	RecipientName  string                 `json:"recipientName"`
	RecipientPhone string                 `json:"recipientPhone"`
	Address        string                 `json:"address"`
	Status         string                 `json:"status"`
	Items          []CheckoutResponseItem `json:"items"`
	Subtotal       float64                `json:"subtotal"`
	Discount       float64                `json:"discount"`
	Total          float64                `json:"total"`
}
