package domain

import (
	"time"

	"github.com/google/uuid"
)

type SaleStatus string

const (
	SaleStatusPending   SaleStatus = "PENDING"
	SaleStatusCompleted SaleStatus = "COMPLETED"
	SaleStatusCancelled SaleStatus = "CANCELLED"
)

// Sale is the order aggregate root. It is created once from a cart's lines
// joined against current prices, and mutated only through the operations
// below. Completed and Cancelled are terminal: nothing mutates a finalized
// sale. Every successful mutation appends to the aggregate's event log.
type Sale struct {
	ID           string      `json:"id"`
	SaleNumber   string      `json:"sale_number"`
	CustomerID   string      `json:"customer_id"`
	CustomerName string      `json:"customer_name"`
	BranchID     string      `json:"branch_id"`
	SaleDate     time.Time   `json:"sale_date"`
	Status       SaleStatus  `json:"status"`
	Items        []*SaleItem `json:"items"`

	events []Event
}

// NewSale builds a Pending sale from an already-priced item list and records
// the SaleCreated event. The sale number comes from an external generator.
func NewSale(customerID, customerName, branchID string, saleDate time.Time, saleNumber string, items []*SaleItem) (*Sale, error) {
	owned := make([]*SaleItem, 0, len(items))
	for _, item := range items {
		if item == nil {
			return nil, ErrItemRequired
		}
		copied := *item
		owned = append(owned, &copied)
	}

	sale := &Sale{
		ID:           uuid.NewString(),
		SaleNumber:   saleNumber,
		CustomerID:   customerID,
		CustomerName: customerName,
		BranchID:     branchID,
		SaleDate:     saleDate,
		Status:       SaleStatusPending,
		Items:        owned,
	}
	if err := sale.check(); err != nil {
		return nil, err
	}
	if err := sale.checkCurrencies(); err != nil {
		return nil, err
	}

	total, err := sale.TotalAmount()
	if err != nil {
		return nil, err
	}
	sale.record(SaleCreated{
		SaleNumber:   sale.SaleNumber,
		CustomerName: sale.CustomerName,
		TotalAmount:  total,
		OccurredAt:   time.Now().UTC(),
	})
	return sale, nil
}

func (s *Sale) check() error {
	if err := validate(
		required("saleNumber", s.SaleNumber),
		required("customerId", s.CustomerID),
		required("customerName", s.CustomerName),
		required("branchId", s.BranchID),
		func() *FieldError {
			if s.SaleDate.After(time.Now()) {
				return &FieldError{Field: "saleDate", Message: "must not be in the future"}
			}
			return nil
		},
		func() *FieldError {
			if len(s.Items) == 0 {
				return &FieldError{Field: "items", Message: "must contain at least one item"}
			}
			return nil
		},
	); err != nil {
		return err
	}
	for _, item := range s.Items {
		if err := item.check(); err != nil {
			return err
		}
	}
	return nil
}

// checkCurrencies enforces currency homogeneity over every line, cancelled
// ones included; a mixed-currency sale is a hard error.
func (s *Sale) checkCurrencies() error {
	for _, item := range s.Items[1:] {
		if item.UnitPrice.Currency != s.Items[0].UnitPrice.Currency {
			return ErrCurrencyMismatch
		}
	}
	return nil
}

// ensureMutable is the terminal-state guard run by every mutating operation.
func (s *Sale) ensureMutable() error {
	switch s.Status {
	case SaleStatusCompleted:
		return ErrSaleCompleted
	case SaleStatusCancelled:
		return ErrSaleCancelled
	default:
		return nil
	}
}

func (s *Sale) currency() string {
	if len(s.Items) == 0 {
		return DefaultCurrency
	}
	return s.Items[0].UnitPrice.Currency
}

// TotalAmount re-derives the total from the current Active lines. It is never
// maintained incrementally, so repeated reads without mutation are identical.
func (s *Sale) TotalAmount() (Money, error) {
	totals := make([]Money, 0, len(s.Items))
	for _, item := range s.Items {
		if item.IsActive() {
			totals = append(totals, item.TotalWithDiscount())
		}
	}
	if len(totals) == 0 {
		return ZeroMoney(s.currency()), nil
	}
	return SumMoney(totals)
}

// ActiveItems returns the lines that still count toward the total.
func (s *Sale) ActiveItems() []*SaleItem {
	active := make([]*SaleItem, 0, len(s.Items))
	for _, item := range s.Items {
		if item.IsActive() {
			active = append(active, item)
		}
	}
	return active
}

func (s *Sale) findActive(productID string) *SaleItem {
	for _, item := range s.Items {
		if item.IsActive() && item.ProductID == productID {
			return item
		}
	}
	return nil
}

// AddItem merges a new line into the sale: an existing active line for the
// same product has its quantity increased, anything else is appended.
func (s *Sale) AddItem(item *SaleItem, actor string) error {
	if err := s.ensureMutable(); err != nil {
		return err
	}
	if item == nil {
		return ErrItemRequired
	}
	if err := item.check(); err != nil {
		return err
	}
	if item.UnitPrice.Currency != s.currency() {
		return ErrCurrencyMismatch
	}

	if existing := s.findActive(item.ProductID); existing != nil {
		if err := existing.UpdateQuantity(existing.Quantity + item.Quantity); err != nil {
			return err
		}
	} else {
		copied := *item
		s.Items = append(s.Items, &copied)
	}

	s.record(SaleModified{SaleID: s.ID, Actor: actor, OccurredAt: time.Now().UTC()})
	return nil
}

// UpdateItem sets the quantity of an existing active line.
func (s *Sale) UpdateItem(productID string, quantity int, actor string) error {
	if err := s.ensureMutable(); err != nil {
		return err
	}
	item := s.findActive(productID)
	if item == nil {
		return ErrItemNotFound
	}
	if err := item.UpdateQuantity(quantity); err != nil {
		return err
	}
	s.record(SaleModified{SaleID: s.ID, Actor: actor, OccurredAt: time.Now().UTC()})
	return nil
}

// RemoveItem cancels an active line. Cancelling the last active line cascades
// into cancelling the whole sale: a pending sale is never left without active
// items.
func (s *Sale) RemoveItem(productID, actor string) error {
	if err := s.ensureMutable(); err != nil {
		return err
	}
	item := s.findActive(productID)
	if item == nil {
		return ErrItemNotFound
	}
	item.Cancel()
	s.record(ItemCancelled{
		ProductName: item.ProductName,
		SaleNumber:  s.SaleNumber,
		Actor:       actor,
		OccurredAt:  time.Now().UTC(),
	})

	if len(s.ActiveItems()) == 0 {
		s.cancel(actor)
	}
	return nil
}

// Cancel cancels every active line and moves the sale to its terminal
// Cancelled state.
func (s *Sale) Cancel(actor string) error {
	if err := s.ensureMutable(); err != nil {
		return err
	}
	s.cancel(actor)
	return nil
}

func (s *Sale) cancel(actor string) {
	for _, item := range s.Items {
		if item.IsActive() {
			item.Cancel()
		}
	}
	s.Status = SaleStatusCancelled
	s.record(SaleCancelled{SaleNumber: s.SaleNumber, Actor: actor, OccurredAt: time.Now().UTC()})
}

// Complete moves the sale to its terminal Completed state. A sale with no
// active lines can not be completed.
func (s *Sale) Complete(actor string) error {
	if err := s.ensureMutable(); err != nil {
		return err
	}
	if len(s.ActiveItems()) == 0 {
		return ErrNoActiveItems
	}
	s.Status = SaleStatusCompleted
	s.record(SaleCompleted{SaleNumber: s.SaleNumber, Actor: actor, OccurredAt: time.Now().UTC()})
	return nil
}

func (s *Sale) record(e Event) {
	s.events = append(s.events, e)
}

// PullEvents drains the event log: it returns the recorded events and clears
// the log so a unit of work dispatches each fact exactly once.
func (s *Sale) PullEvents() []Event {
	events := make([]Event, len(s.events))
	copy(events, s.events)
	s.events = nil
	return events
}

// PendingEvents returns the undrained log without clearing it.
func (s *Sale) PendingEvents() []Event {
	return s.events
}

// Clone deep-copies the persistent state of the aggregate. The event log is
// not carried over: events belong to the live instance that recorded them and
// are drained once per unit of work, never stored alongside the sale.
func (s *Sale) Clone() *Sale {
	items := make([]*SaleItem, 0, len(s.Items))
	for _, item := range s.Items {
		copied := *item
		items = append(items, &copied)
	}
	clone := *s
	clone.Items = items
	clone.events = nil
	return &clone
}
