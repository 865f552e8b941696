package dto

import (
	"errors"
	"testing"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_CreateTransferRequest(t *testing.T) {
	err := Validate(CreateTransferRequest{
		SourceType: "camion", // no es warehouse ni shop
		SourceID:   "w1",
		DestType:   "shop",
		DestID:     "s1",
		Items: []TransferItemRequest{
			{ProductID: "", Quantity: 0},
		},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	var vErr *domain.ValidationError
	require.True(t, errors.As(err, &vErr))

	byField := make(map[string]string, len(vErr.Fields))
	for _, f := range vErr.Fields {
		byField[f.Field] = f.Message
	}
	assert.Contains(t, byField, "source_type")
	assert.Contains(t, byField, "items[0].product_id")
	assert.Contains(t, byField, "items[0].quantity")
}

func TestValidate_RequestValidoPasa(t *testing.T) {
	err := Validate(CreateTransferRequest{
		SourceType: "warehouse",
		SourceID:   "w1",
		DestType:   "shop",
		DestID:     "s1",
		Items: []TransferItemRequest{
			{ProductID: "p1", Quantity: 3},
		},
	})
	assert.NoError(t, err)
}

func TestValidate_ItemsVacios(t *testing.T) {
	err := Validate(CreateTransferRequest{
		SourceType: "warehouse",
		SourceID:   "w1",
		DestType:   "shop",
		DestID:     "s1",
	})
	require.Error(t, err)

	var vErr *domain.ValidationError
	require.True(t, errors.As(err, &vErr))
	require.Len(t, vErr.Fields, 1)
	assert.Equal(t, "items", vErr.Fields[0].Field)
}
