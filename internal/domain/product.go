package domain

// Product is the slice of the catalog the sales flow needs: an identifier,
// a display name and the current unit price. The catalog itself lives in
// another service; this is the shape its lookups return.
type Product struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	UnitPrice Money  `json:"unit_price"`
}

func NewProduct(id, name string, unitPrice Money) (*Product, error) {
	if err := validate(
		required("id", id),
		required("name", name),
		nonNegativeAmount("unitPrice", unitPrice.Amount),
	); err != nil {
		return nil, err
	}
	return &Product{ID: id, Name: name, UnitPrice: unitPrice}, nil
}
