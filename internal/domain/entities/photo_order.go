package entities

// OrderStatus is derived from the processor's payment state; it is never
// stored by this system.
type OrderStatus string

const (
	OrderStatusUnpaid      OrderStatus = "unpaid"
	OrderStatusNotExist    OrderStatus = "ORDER_NOT_EXIST"
	OrderStatusProcessing  OrderStatus = "ORDER_PROCESSING"
	OrderStatusEffectively OrderStatus = "ORDER_EFFECTIVELY"
	OrderStatusExpired     OrderStatus = "ORDER_EXPIRED"
)

// PaymentNotSucceededMessage is shown when the customer must pay again.
const PaymentNotSucceededMessage = "Payment not success"

var orderStatusLabels = map[OrderStatus]string{
	OrderStatusUnpaid:      "Unpaid",
	OrderStatusNotExist:    "Unpaid",
	OrderStatusProcessing:  "Processing",
	OrderStatusEffectively: "Effectively",
	OrderStatusExpired:     "Payment failed",
}

// OrderStatusFromString validates a status received from the outside.
func OrderStatusFromString(v string) (OrderStatus, bool) {
	s := OrderStatus(v)
	if _, ok := orderStatusLabels[s]; ok {
		return s, true
	}
	return "", false
}

func (s OrderStatus) Label() string {
	if l, ok := orderStatusLabels[s]; ok {
		return l
	}
	return string(s)
}

// PhotoOrder is reconstructed per request from the photo API and processor.
type PhotoOrder struct {
	OrderID         string      `json:"orderId"`
	SpecCode        string      `json:"specCode"`
	Status          OrderStatus `json:"status"`
	PreviewImageURL string      `json:"previewImageUrl,omitempty"`
	FinalImageURL   string      `json:"finalImageUrl,omitempty"`
	OriginalBgURL   string      `json:"originalBackgroundImageUrl,omitempty"`
	Issues          []string    `json:"issues"`
	AmountInCents   int64       `json:"amountInCents,omitempty"`
	Currency        string      `json:"currency,omitempty"`
	PaymentStatus   string      `json:"paymentStatus,omitempty"`
	PaymentIntentID string      `json:"paymentIntentId,omitempty"`
	CustomerMessage string      `json:"customerMessage,omitempty"`
}

// DeriveOrderStatus maps the processor status and the reconciliation outcome
// to an order status and a customer-facing message. It never defaults to
// success: only a succeeded payment that was reconciled is effective.
func DeriveOrderStatus(paymentStatus PaymentStatus, reconciled bool) (OrderStatus, string) {
	switch paymentStatus {
	case PaymentStatusSucceeded:
		if reconciled {
			return OrderStatusEffectively, ""
		}
		return OrderStatusNotExist, UnexpectedPaymentMessage
	case PaymentStatusProcessing:
		return OrderStatusProcessing, ""
	case PaymentStatusRequiresPaymentMethod:
		return OrderStatusExpired, PaymentNotSucceededMessage
	default:
		return OrderStatusExpired, UnexpectedPaymentMessage
	}
}
