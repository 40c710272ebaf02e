package domain

import (
	"encoding/json"
	"regexp"
)

// PersonName is a validated first/last name pair. It is immutable once built;
// JSON unmarshalling goes back through the factory so an invalid name can not
// cross a serialization boundary.
type PersonName struct {
	first string
	last  string
}

func NewPersonName(first, last string) (PersonName, error) {
	if err := validate(
		required("firstName", first),
		maxLength("firstName", first, 100),
		required("lastName", last),
		maxLength("lastName", last, 100),
	); err != nil {
		return PersonName{}, err
	}
	return PersonName{first: first, last: last}, nil
}

func (n PersonName) First() string { return n.first }
func (n PersonName) Last() string  { return n.last }

func (n PersonName) String() string {
	return n.first + " " + n.last
}

type personNameJSON struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (n PersonName) MarshalJSON() ([]byte, error) {
	return json.Marshal(personNameJSON{FirstName: n.first, LastName: n.last})
}

func (n *PersonName) UnmarshalJSON(data []byte) error {
	var raw personNameJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := NewPersonName(raw.FirstName, raw.LastName)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// zip code: five digits plus an optional three-digit suffix (12345 or 12345-678)
var zipCodePattern = regexp.MustCompile(`^\d{5}(-?\d{3})?$`)

// Address is a validated postal address.
type Address struct {
	street  string
	city    string
	zipCode string
}

func NewAddress(street, city, zipCode string) (Address, error) {
	if err := validate(
		required("street", street),
		maxLength("street", street, 200),
		required("city", city),
		maxLength("city", city, 100),
		required("zipCode", zipCode),
		func() *FieldError {
			if zipCode != "" && !zipCodePattern.MatchString(zipCode) {
				return &FieldError{Field: "zipCode", Message: "must be a valid zip code"}
			}
			return nil
		},
	); err != nil {
		return Address{}, err
	}
	return Address{street: street, city: city, zipCode: zipCode}, nil
}

func (a Address) Street() string  { return a.street }
func (a Address) City() string    { return a.city }
func (a Address) ZipCode() string { return a.zipCode }

func (a Address) String() string {
	return a.street + ", " + a.city + " " + a.zipCode
}

type addressJSON struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	ZipCode string `json:"zip_code"`
}

func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(addressJSON{Street: a.street, City: a.city, ZipCode: a.zipCode})
}

func (a *Address) UnmarshalJSON(data []byte) error {
	var raw addressJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := NewAddress(raw.Street, raw.City, raw.ZipCode)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
