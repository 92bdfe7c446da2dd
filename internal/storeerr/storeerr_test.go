package storeerr

import (
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/require"
)

func TestFromDynamo(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		require.NoError(t, FromDynamo("op", nil))
	})

	t.Run("missing table -> not found", func(t *testing.T) {
		err := FromDynamo("get", &types.ResourceNotFoundException{})
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("failed condition -> conflict", func(t *testing.T) {
		err := FromDynamo("put", &types.ConditionalCheckFailedException{})
		require.ErrorIs(t, err, ErrConflict)
	})

	t.Run("cancelled transaction with failed condition -> conflict", func(t *testing.T) {
		err := FromDynamo("tx", &types.TransactionCanceledException{
			CancellationReasons: []types.CancellationReason{
				{Code: aws.String("None")},
				{Code: aws.String("ConditionalCheckFailed")},
			},
		})
		require.ErrorIs(t, err, ErrConflict)
	})

	t.Run("throttling -> unavailable", func(t *testing.T) {
		err := FromDynamo("scan", &types.ProvisionedThroughputExceededException{})
		require.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("unknown errors keep their chain", func(t *testing.T) {
		cause := errors.New("wire snapped")
		err := FromDynamo("get", cause)
		require.ErrorIs(t, err, cause)
		require.NotErrorIs(t, err, ErrNotFound)
	})
}
