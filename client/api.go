package client

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"local-market/models"
)

// Reads swallow errors and hand back empty results; the app renders what it
// has and the next refresh fills the rest in. Writes return the error.

func (c *Client) FetchBusinesses(category, search string) []models.Business {
	q := url.Values{}
	if category != "" {
		q.Set("category", category)
	}
	if search != "" {
		q.Set("search", search)
	}
	path := "/api/businesses"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	businesses := []models.Business{}
	if err := c.getJSON(path, &businesses); err != nil {
		c.logger.Debug().Err(err).Msg("fetch businesses failed")
		return []models.Business{}
	}
	return businesses
}

func (c *Client) FetchUserBusinesses(userID int) []models.Business {
	businesses := []models.Business{}
	err := c.getJSON("/api/businesses?user_id="+strconv.Itoa(userID), &businesses)
	if err != nil {
		return []models.Business{}
	}
	return businesses
}

// BusinessDetail pairs a business with its catalog, as returned by the
// business detail endpoint.
type BusinessDetail struct {
	Business *models.Business `json:"business"`
	Products []models.Product `json:"products"`
}

func (c *Client) FetchBusiness(id int) *BusinessDetail {
	var detail BusinessDetail
	if err := c.getJSON("/api/businesses/"+strconv.Itoa(id), &detail); err != nil {
		return nil
	}
	return &detail
}

func (c *Client) FetchProducts(businessID int) []models.Product {
	products := []models.Product{}
	err := c.getJSON("/api/products?business_id="+strconv.Itoa(businessID), &products)
	if err != nil {
		return []models.Product{}
	}
	return products
}

func (c *Client) FetchAds() []models.Ad {
	ads := []models.Ad{}
	if err := c.getJSON("/api/ads", &ads); err != nil {
		return []models.Ad{}
	}
	return ads
}

func (c *Client) FetchUserOrders(userID int) []models.Order {
	orders := []models.Order{}
	err := c.getJSON("/api/orders?user_id="+strconv.Itoa(userID), &orders)
	if err != nil {
		return []models.Order{}
	}
	return orders
}

func (c *Client) FetchDeviceOrders(deviceID string) []models.Order {
	orders := []models.Order{}
	err := c.getJSON("/api/orders?device_id="+url.QueryEscape(deviceID), &orders)
	if err != nil {
		return []models.Order{}
	}
	return orders
}

func (c *Client) FetchBusinessOrders(businessIDs []int) []models.Order {
	if len(businessIDs) == 0 {
		return []models.Order{}
	}
	parts := make([]string, len(businessIDs))
	for i, id := range businessIDs {
		parts[i] = strconv.Itoa(id)
	}

	orders := []models.Order{}
	err := c.getJSON("/api/orders?business_ids="+strings.Join(parts, ","), &orders)
	if err != nil {
		return []models.Order{}
	}
	return orders
}

// TrackOrder returns nil for unknown order numbers; absence is a normal
// lookup result, not an error.
func (c *Client) TrackOrder(orderNumber string) *models.Order {
	var order models.Order
	err := c.getJSON("/api/orders/track/"+url.PathEscape(orderNumber), &order)
	if err != nil {
		return nil
	}
	return &order
}

func (c *Client) FetchNotifications(userID int) []models.Notification {
	notifications := []models.Notification{}
	err := c.getJSON("/api/notifications?user_id="+strconv.Itoa(userID), &notifications)
	if err != nil {
		return []models.Notification{}
	}
	return notifications
}

func (c *Client) FetchFavorites(userID int) []models.Business {
	businesses := []models.Business{}
	err := c.getJSON("/api/favorites?user_id="+strconv.Itoa(userID), &businesses)
	if err != nil {
		return []models.Business{}
	}
	return businesses
}

func (c *Client) FetchCustomOrders(businessID int) []models.CustomOrder {
	orders := []models.CustomOrder{}
	err := c.getJSON("/api/custom-orders?business_id="+strconv.Itoa(businessID), &orders)
	if err != nil {
		return []models.CustomOrder{}
	}
	return orders
}

func (c *Client) FetchSpinCodes(deviceID string) []models.SpinCode {
	codes := []models.SpinCode{}
	err := c.getJSON("/api/spin-codes?device_id="+url.QueryEscape(deviceID), &codes)
	if err != nil {
		return []models.SpinCode{}
	}
	return codes
}

func (c *Client) CreateOrder(req *models.CreateOrderRequest) (*models.Order, error) {
	var order models.Order
	if err := c.sendJSON(http.MethodPost, "/api/orders", req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) UpdateOrderStatus(req *models.UpdateOrderStatusRequest) (*models.Order, error) {
	var order models.Order
	if err := c.sendJSON(http.MethodPatch, "/api/orders/status", req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) ValidateSpinCode(code string, businessID int) (*models.SpinCode, error) {
	req := models.ValidateSpinCodeRequest{Code: code, BusinessID: businessID}
	var sc models.SpinCode
	if err := c.sendJSON(http.MethodPost, "/api/spin-codes/validate", req, &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}

func (c *Client) MarkSpinCodeUsed(code string) error {
	req := models.MarkSpinCodeUsedRequest{Code: code}
	return c.sendJSON(http.MethodPost, "/api/spin-codes/use", req, nil)
}

func (c *Client) Spin(req *models.SpinRequest) (*models.SpinCode, error) {
	var sc models.SpinCode
	if err := c.sendJSON(http.MethodPost, "/api/spin-codes/spin", req, &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}

func (c *Client) CreateCustomOrder(req *models.CreateCustomOrderRequest) (*models.CustomOrder, error) {
	var co models.CustomOrder
	if err := c.sendJSON(http.MethodPost, "/api/custom-orders", req, &co); err != nil {
		return nil, err
	}
	return &co, nil
}

func (c *Client) AddFavorite(userID, businessID int) error {
	req := models.FavoriteRequest{UserID: userID, BusinessID: businessID}
	return c.sendJSON(http.MethodPost, "/api/favorites", req, nil)
}

func (c *Client) RemoveFavorite(userID, businessID int) error {
	req := models.FavoriteRequest{UserID: userID, BusinessID: businessID}
	return c.sendJSON(http.MethodDelete, "/api/favorites", req, nil)
}

func (c *Client) MarkNotificationRead(id int) error {
	return c.sendJSON(http.MethodPatch, fmt.Sprintf("/api/notifications/%d/read", id), nil, nil)
}

func (c *Client) MarkAllNotificationsRead(userID int) error {
	return c.sendJSON(http.MethodPatch,
		"/api/notifications/read-all?user_id="+strconv.Itoa(userID), nil, nil)
}

// AuthResponse is the register/login payload: the account plus a JWT.
type AuthResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

func (c *Client) Register(req *models.RegisterRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.sendJSON(http.MethodPost, "/api/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Login(req *models.LoginRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.sendJSON(http.MethodPost, "/api/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) SavePushToken(userID int, token string) error {
	req := models.PushTokenRequest{UserID: userID, PushToken: token}
	return c.sendJSON(http.MethodPost, "/api/users/push-token", req, nil)
}
