package client

import (
	"encoding/json"
	"strconv"
	"strings"
	"sync"
	"time"
)

// FlexFloat decodes from either a JSON number or a numeric string. Catalog
// payloads from older app versions serialize prices as strings.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = FlexFloat(v)
	return nil
}

func (f FlexFloat) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(f))
}

// CartProduct is the input to AddItem: a catalog product plus the business
// it belongs to.
type CartProduct struct {
	ProductID    int       `json:"product_id"`
	BusinessID   int       `json:"business_id"`
	BusinessName string    `json:"business_name"`
	Name         string    `json:"name"`
	Price        FlexFloat `json:"price"`
	Image        string    `json:"image"`
	Quantity     int       `json:"quantity"` // 0 means 1
}

// CartItem is one cart line. The same product added twice merges into one
// line with a higher quantity.
type CartItem struct {
	ID           int64   `json:"id"`
	ProductID    int     `json:"product_id"`
	BusinessID   int     `json:"business_id"`
	BusinessName string  `json:"business_name"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
	Image        string  `json:"image"`
}

// CustomOrderDraft is a custom order request held locally until the business
// responds.
type CustomOrderDraft struct {
	ID                 int64     `json:"id"`
	BusinessID         int       `json:"business_id"`
	BusinessName       string    `json:"business_name"`
	CustomerName       string    `json:"customer_name"`
	CustomerPhone      string    `json:"customer_phone"`
	Description        string    `json:"description"`
	ImageURL           string    `json:"image_url,omitempty"`
	DeliveryPreference string    `json:"delivery_preference"`
	Status             string    `json:"status"`
	QuoteAmount        *float64  `json:"quote_amount,omitempty"`
	QuoteNote          string    `json:"quote_note,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

// BusinessCart groups cart items by business for the multi-business cart
// screen.
type BusinessCart struct {
	BusinessID   int
	BusinessName string
	Items        []CartItem
	Total        float64
	ItemCount    int
}

// CartStore holds the cart and pending custom order requests for the life of
// the process. All operations are safe for concurrent use.
type CartStore struct {
	mu                 sync.Mutex
	items              []CartItem
	customOrders       []CustomOrderDraft
	selectedBusinessID int

	now func() time.Time
}

func NewCartStore() *CartStore {
	return &CartStore{now: time.Now}
}

// AddItem merges with an existing line for the same product and business by
// adding the incoming quantity; otherwise it appends a new line with a
// timestamp id. Adding also selects the item's business.
func (s *CartStore) AddItem(p CartProduct) {
	s.mu.Lock()
	defer s.mu.Unlock()

	qty := p.Quantity
	if qty <= 0 {
		qty = 1
	}

	s.selectedBusinessID = p.BusinessID

	for i := range s.items {
		if s.items[i].ProductID == p.ProductID && s.items[i].BusinessID == p.BusinessID {
			s.items[i].Quantity += qty
			return
		}
	}

	s.items = append(s.items, CartItem{
		ID:           s.now().UnixMilli(),
		ProductID:    p.ProductID,
		BusinessID:   p.BusinessID,
		BusinessName: p.BusinessName,
		Name:         p.Name,
		Price:        float64(p.Price),
		Quantity:     qty,
		Image:        p.Image,
	})
}

// RemoveItem decrements the line's quantity by one and drops the line when it
// reaches zero. Without a business id it targets the selected business.
func (s *CartStore) RemoveItem(productID int, businessID ...int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bid := s.selectedBusinessID
	if len(businessID) > 0 {
		bid = businessID[0]
	}

	for i := range s.items {
		if s.items[i].ProductID == productID && s.items[i].BusinessID == bid {
			s.items[i].Quantity--
			if s.items[i].Quantity <= 0 {
				s.items = append(s.items[:i], s.items[i+1:]...)
			}
			return
		}
	}
}

// UpdateQuantity sets the line's quantity directly; zero or negative removes
// the line.
func (s *CartStore) UpdateQuantity(productID, quantity int, businessID ...int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bid := s.selectedBusinessID
	if len(businessID) > 0 {
		bid = businessID[0]
	}

	for i := range s.items {
		if s.items[i].ProductID == productID && s.items[i].BusinessID == bid {
			if quantity <= 0 {
				s.items = append(s.items[:i], s.items[i+1:]...)
			} else {
				s.items[i].Quantity = quantity
			}
			return
		}
	}
}

// ClearCart drops everything: items, custom order drafts and the selected
// business, in a single locked transition.
func (s *CartStore) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.customOrders = nil
	s.selectedBusinessID = 0
}

// ClearBusinessCart removes one business's items and custom order drafts
// together. The selection is reset only if it pointed at that business;
// another business's in-progress cart is untouched.
func (s *CartStore) ClearBusinessCart(businessID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, item := range s.items {
		if item.BusinessID != businessID {
			kept = append(kept, item)
		}
	}
	s.items = kept

	keptOrders := s.customOrders[:0]
	for _, co := range s.customOrders {
		if co.BusinessID != businessID {
			keptOrders = append(keptOrders, co)
		}
	}
	s.customOrders = keptOrders

	if s.selectedBusinessID == businessID {
		s.selectedBusinessID = 0
	}
}

func (s *CartStore) SetSelectedBusiness(businessID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedBusinessID = businessID
}

func (s *CartStore) SelectedBusinessID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedBusinessID
}

// Items returns a copy of every cart line.
func (s *CartStore) Items() []CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]CartItem, len(s.items))
	copy(items, s.items)
	return items
}

// SelectedBusinessItems returns the lines for the selected business.
func (s *CartStore) SelectedBusinessItems() []CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itemsForLocked(s.selectedBusinessID)
}

// ItemsForBusiness returns the lines for one business.
func (s *CartStore) ItemsForBusiness(businessID int) []CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itemsForLocked(businessID)
}

func (s *CartStore) itemsForLocked(businessID int) []CartItem {
	items := []CartItem{}
	for _, item := range s.items {
		if item.BusinessID == businessID {
			items = append(items, item)
		}
	}
	return items
}

// SelectedBusinessName returns the stored name of the selected business, or
// empty when nothing is selected.
func (s *CartStore) SelectedBusinessName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.BusinessID == s.selectedBusinessID {
			return item.BusinessName
		}
	}
	return ""
}

// CartTotal sums price times quantity for the selected business.
func (s *CartStore) CartTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return totalOf(s.itemsForLocked(s.selectedBusinessID))
}

// CartTotalAll sums price times quantity across every business.
func (s *CartStore) CartTotalAll() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return totalOf(s.items)
}

// ItemCount sums quantities for the selected business.
func (s *CartStore) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return countOf(s.itemsForLocked(s.selectedBusinessID))
}

// ItemCountAll sums quantities across every business.
func (s *CartStore) ItemCountAll() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return countOf(s.items)
}

// ItemQuantity returns the quantity of one product line, 0 when absent.
func (s *CartStore) ItemQuantity(productID, businessID int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.ProductID == productID && item.BusinessID == businessID {
			return item.Quantity
		}
	}
	return 0
}

// BusinessCarts groups lines by business, preserving first-seen order.
func (s *CartStore) BusinessCarts() []BusinessCart {
	s.mu.Lock()
	defer s.mu.Unlock()

	order := []int{}
	grouped := map[int]*BusinessCart{}
	for _, item := range s.items {
		bc, ok := grouped[item.BusinessID]
		if !ok {
			bc = &BusinessCart{BusinessID: item.BusinessID, BusinessName: item.BusinessName}
			grouped[item.BusinessID] = bc
			order = append(order, item.BusinessID)
		}
		bc.Items = append(bc.Items, item)
		bc.Total += item.Price * float64(item.Quantity)
		bc.ItemCount += item.Quantity
	}

	carts := make([]BusinessCart, 0, len(order))
	for _, id := range order {
		carts = append(carts, *grouped[id])
	}
	return carts
}

// AddCustomOrder stamps the draft with a timestamp id, pending status and
// creation time, then stores it.
func (s *CartStore) AddCustomOrder(draft CustomOrderDraft) CustomOrderDraft {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft.ID = s.now().UnixMilli()
	draft.Status = "pending"
	draft.CreatedAt = s.now()
	s.customOrders = append(s.customOrders, draft)
	return draft
}

func (s *CartStore) RemoveCustomOrder(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.customOrders {
		if s.customOrders[i].ID == id {
			s.customOrders = append(s.customOrders[:i], s.customOrders[i+1:]...)
			return
		}
	}
}

// UpdateCustomOrderStatus sets any status; there is no transition checking.
// A non-nil quote also records the quoted amount and note.
func (s *CartStore) UpdateCustomOrderStatus(id int64, status string, quote *float64, note string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.customOrders {
		if s.customOrders[i].ID == id {
			s.customOrders[i].Status = status
			if quote != nil {
				s.customOrders[i].QuoteAmount = quote
				s.customOrders[i].QuoteNote = note
			}
			return
		}
	}
}

func (s *CartStore) CustomOrders() []CustomOrderDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	orders := make([]CustomOrderDraft, len(s.customOrders))
	copy(orders, s.customOrders)
	return orders
}

func (s *CartStore) CustomOrdersForBusiness(businessID int) []CustomOrderDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	orders := []CustomOrderDraft{}
	for _, co := range s.customOrders {
		if co.BusinessID == businessID {
			orders = append(orders, co)
		}
	}
	return orders
}

func totalOf(items []CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

func countOf(items []CartItem) int {
	var count int
	for _, item := range items {
		count += item.Quantity
	}
	return count
}
