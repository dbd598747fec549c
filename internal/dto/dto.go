package dto

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Success  bool   `json:"success"`
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Message  string `json:"message"`
}

type ProductQuery struct {
	Category string
	Search   string
	Sort     string
}

type CartAddRequest struct {
	UserID    string  `json:"userId"`
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Size      string  `json:"size"`
	Image     string  `json:"image"`
}

type CartUpdateRequest struct {
	Quantity int `json:"quantity"`
}

type OrderRequest struct {
	UserID       string           `json:"userId"`
	Items        []map[string]any `json:"items"`
	Total        float64          `json:"total"`
	ShippingInfo map[string]any   `json:"shippingInfo"`
	PaymentInfo  map[string]any   `json:"paymentInfo"`
}

type OrderResponse struct {
	Success bool   `json:"success"`
	OrderID string `json:"orderId"`
}

type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}
