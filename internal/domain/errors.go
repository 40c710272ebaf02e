package domain

// DomainError is a business-rule violation that is not a simple field-level
// failure: mutating a finalized sale, mixing currencies, referencing a line
// item that is not there. It carries a single human-readable message.
type DomainError struct {
	msg string
}

func NewDomainError(msg string) *DomainError {
	return &DomainError{msg: msg}
}

func (e *DomainError) Error() string {
	return e.msg
}

var (
	ErrCurrencyMismatch = NewDomainError("currency mismatch")
	ErrItemRequired     = NewDomainError("item is required")
	ErrSaleCompleted    = NewDomainError("cannot modify a completed sale")
	ErrSaleCancelled    = NewDomainError("cannot modify a cancelled sale")
	ErrItemNotFound     = NewDomainError("sale has no active item with this product")
	ErrItemCancelled    = NewDomainError("cannot change quantity of a cancelled item")
	ErrNoActiveItems    = NewDomainError("cannot complete a sale with no active items")
)
