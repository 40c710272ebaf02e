package salenumber

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Generator produces sale number codes. Uniqueness is this package's
// contract; the domain only requires a non-empty code at construction.
type Generator interface {
	Next() string
}

// DateRandom generates codes like SALE-20260115-7F3A21BC: a date prefix for
// humans, a random suffix for uniqueness.
type DateRandom struct {
	prefix string
	now    func() time.Time
}

func NewDateRandom() *DateRandom {
	return &DateRandom{prefix: "SALE", now: time.Now}
}

func (g *DateRandom) Next() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:8]
	return g.prefix + "-" + g.now().UTC().Format("20060102") + "-" + suffix
}
