package models

// Error payloads follow the API convention: an "error" message plus optional
// "details" for field-level context.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

type RegisterRequest struct {
	Name           string `json:"name" binding:"required,min=2"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=6"`
	Phone          string `json:"phone" binding:"omitempty"`
	LoginMethod    string `json:"login_method" binding:"omitempty,oneof=email google facebook"`
	IsBusinessUser bool   `json:"is_business_user"`
}

type LoginRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password"`
	LoginMethod string `json:"login_method"`
}

type UpdateUserRequest struct {
	Name      *string `json:"name"`
	Phone     *string `json:"phone"`
	AvatarURL *string `json:"avatar_url"`
}

type PushTokenRequest struct {
	UserID    int    `json:"userId" binding:"required"`
	PushToken string `json:"pushToken" binding:"required"`
}

type CreateBusinessRequest struct {
	UserID         int      `json:"user_id" binding:"required"`
	Name           string   `json:"name" binding:"required"`
	Description    string   `json:"description"`
	Image          string   `json:"image"`
	Type           string   `json:"type"`
	Phone          string   `json:"phone" binding:"required"`
	Email          string   `json:"email"`
	Address        string   `json:"address"`
	Location       string   `json:"location"`
	Categories     []string `json:"categories"`
	PaymentMethods []string `json:"payment_methods"`
	DeliveryFee    float64  `json:"delivery_fee"`
	MinOrder       float64  `json:"min_order"`
	DeliveryTime   string   `json:"delivery_time"`
	OrderMode      string   `json:"order_mode"`
}

// UpdateBusinessRequest uses pointers so absent fields keep their current
// values (merge semantics).
type UpdateBusinessRequest struct {
	Name                *string    `json:"name"`
	Description         *string    `json:"description"`
	Image               *string    `json:"image"`
	Type                *string    `json:"type"`
	Phone               *string    `json:"phone"`
	Email               *string    `json:"email"`
	Address             *string    `json:"address"`
	Location            *string    `json:"location"`
	Categories          *[]string  `json:"categories"`
	PaymentMethods      *[]string  `json:"payment_methods"`
	DeliveryFee         *float64   `json:"delivery_fee"`
	MinOrder            *float64   `json:"min_order"`
	DeliveryTime        *string    `json:"delivery_time"`
	OrderMode           *string    `json:"order_mode"`
	Status              *string    `json:"status"`
	CustomOrdersEnabled *bool      `json:"custom_orders_enabled"`
	DeliveryEnabled     *bool      `json:"delivery_enabled"`
	PickupEnabled       *bool      `json:"pickup_enabled"`
	SpinWheelEnabled    *bool      `json:"spin_wheel_enabled"`
	SpinDiscounts       *[]float64 `json:"spin_discounts"`
}

type CreateProductRequest struct {
	BusinessID  int     `json:"business_id" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	InStock     *bool   `json:"in_stock"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Image       *string  `json:"image"`
	Category    *string  `json:"category"`
	InStock     *bool    `json:"in_stock"`
}

// CreateOrderRequest mirrors the mobile checkout payload: camelCase keys at
// the top level, snake_case inside the item snapshots.
type CreateOrderRequest struct {
	UserID          *int             `json:"userId"`
	DeviceID        *string          `json:"deviceId"`
	BusinessID      int              `json:"businessId" binding:"required"`
	OrderNumber     string           `json:"orderNumber"`
	DeliveryType    string           `json:"deliveryType" binding:"required,oneof=delivery pickup"`
	CustomerName    string           `json:"customerName" binding:"required"`
	CustomerPhone   string           `json:"customerPhone" binding:"required"`
	CustomerEmail   string           `json:"customerEmail" binding:"required"`
	DeliveryAddress *string          `json:"deliveryAddress"`
	PaymentMethod   string           `json:"paymentMethod" binding:"required"`
	Subtotal        float64          `json:"subtotal"`
	DeliveryFee     float64          `json:"deliveryFee"`
	DiscountCode    *string          `json:"discountCode"`
	DiscountAmount  float64          `json:"discountAmount"`
	Total           float64          `json:"total" binding:"required"`
	Notes           *string          `json:"notes"`
	Items           []OrderItemInput `json:"items" binding:"required,min=1"`
}

type OrderItemInput struct {
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
}

type UpdateOrderStatusRequest struct {
	OrderID     int     `json:"orderId" binding:"required"`
	UserID      int     `json:"userId" binding:"required"`
	Status      string  `json:"status" binding:"required"`
	TrackingURL *string `json:"trackingUrl"`
}

type CreateCustomOrderRequest struct {
	BusinessID         int     `json:"business_id" binding:"required"`
	UserID             *int    `json:"user_id"`
	DeviceID           *string `json:"device_id"`
	CustomerName       string  `json:"customer_name" binding:"required"`
	CustomerPhone      string  `json:"customer_phone" binding:"required"`
	Description        string  `json:"description" binding:"required"`
	ImageURL           *string `json:"image_url"`
	DeliveryPreference string  `json:"delivery_preference" binding:"required,oneof=delivery pickup"`
}

type QuoteCustomOrderRequest struct {
	Amount float64 `json:"amount" binding:"required"`
	Note   string  `json:"note"`
}

type UpdateCustomOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending quoted accepted rejected"`
}

type CreateAdRequest struct {
	BusinessID int    `json:"business_id" binding:"required"`
	Title      string `json:"title" binding:"required"`
	Image      string `json:"image" binding:"required"`
	Link       string `json:"link"`
}

type UpdateAdRequest struct {
	Title    *string `json:"title"`
	Image    *string `json:"image"`
	Link     *string `json:"link"`
	IsActive *bool   `json:"is_active"`
}

type ValidateSpinCodeRequest struct {
	Code       string `json:"code" binding:"required"`
	BusinessID int    `json:"business_id" binding:"required"`
}

type MarkSpinCodeUsedRequest struct {
	Code string `json:"code" binding:"required"`
}

type SpinRequest struct {
	BusinessID int     `json:"businessId" binding:"required"`
	UserID     *int    `json:"userId"`
	DeviceID   *string `json:"deviceId"`
}

type FavoriteRequest struct {
	UserID     int `json:"user_id" binding:"required"`
	BusinessID int `json:"business_id" binding:"required"`
}

type CreateAddressRequest struct {
	UserID    int    `json:"user_id" binding:"required"`
	Label     string `json:"label"`
	Address   string `json:"address" binding:"required"`
	Phone     string `json:"phone"`
	IsDefault bool   `json:"is_default"`
}

type ResetPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type VerifyResetCodeRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

type UpdatePasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Code        string `json:"code" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}
