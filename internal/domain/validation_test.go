package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_CollectsAllFailures(t *testing.T) {
	err := validate(
		required("a", ""),
		required("b", "ok"),
		intRange("c", 99, 1, 20),
	)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Len(t, vErr.Errors, 2)
	assert.Equal(t, "a", vErr.Errors[0].Field)
	assert.Equal(t, "c", vErr.Errors[1].Field)
	assert.Contains(t, vErr.Error(), "a: is required")
	assert.Contains(t, vErr.Error(), "c: must be between 1 and 20")
}

func TestValidate_AllPass(t *testing.T) {
	assert.NoError(t, validate(required("a", "x"), intRange("b", 5, 1, 20)))
}

func TestErrorKinds_AreDistinct(t *testing.T) {
	var vErr *ValidationError
	var dErr *DomainError

	validation := validate(required("a", ""))
	assert.True(t, errors.As(validation, &vErr))
	assert.False(t, errors.As(validation, &dErr))

	domainErr := error(ErrSaleCompleted)
	assert.True(t, errors.As(domainErr, &dErr))
	assert.False(t, errors.As(domainErr, &vErr))
	assert.Equal(t, "cannot modify a completed sale", dErr.Error())
}
