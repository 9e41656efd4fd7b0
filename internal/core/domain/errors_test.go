package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/srgjo27/hotel_reservation/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestError_IsMatchesByKind(t *testing.T) {
	err := fmt.Errorf("admit: %w", domain.NewError(domain.KindInsufficientAvailability, "only 1 room left"))

	assert.ErrorIs(t, err, domain.ErrInsufficientAvailability)
	assert.NotErrorIs(t, err, domain.ErrInvalidPartySize)
	assert.Equal(t, domain.KindInsufficientAvailability, domain.KindOf(err))
	assert.Contains(t, err.Error(), "only 1 room left")
}

func TestStorageUnavailable(t *testing.T) {
	cause := errors.New("connection refused")

	err := domain.StorageUnavailable(cause)
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
	assert.ErrorIs(t, err, cause)

	notFound := domain.NotFound("room type not found")
	assert.Same(t, notFound, domain.StorageUnavailable(notFound))

	assert.NoError(t, domain.StorageUnavailable(nil))
	assert.Equal(t, domain.Kind(""), domain.KindOf(cause))
}
