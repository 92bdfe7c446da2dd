// Package storeerr defines the closed set of error kinds the storage
// accessors are allowed to return. Raw SDK errors never cross the accessor
// boundary; callers branch on these sentinels, not on message strings.
package storeerr

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrUnavailable      = errors.New("store unavailable")
	ErrConflict         = errors.New("conflict")
)

// FromDynamo classifies an aws-sdk error into one of the sentinel kinds,
// keeping the original error in the chain for logging.
func FromDynamo(op string, err error) error {
	if err == nil {
		return nil
	}

	var rnf *types.ResourceNotFoundException
	if errors.As(err, &rnf) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	var ccf *types.ConditionalCheckFailedException
	if errors.As(err, &ccf) {
		return fmt.Errorf("%s: %w", op, ErrConflict)
	}

	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) {
		for _, reason := range tce.CancellationReasons {
			if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
				return fmt.Errorf("%s: %w", op, ErrConflict)
			}
		}
		return fmt.Errorf("%s: %v: %w", op, err, ErrUnavailable)
	}

	var ape smithy.APIError
	if errors.As(err, &ape) {
		switch ape.ErrorCode() {
		case "AccessDeniedException", "UnrecognizedClientException":
			return fmt.Errorf("%s: %w", op, ErrPermissionDenied)
		case "ProvisionedThroughputExceededException", "RequestLimitExceeded",
			"InternalServerError", "ServiceUnavailable", "ThrottlingException":
			return fmt.Errorf("%s: %w", op, ErrUnavailable)
		}
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %v: %w", op, err, ErrUnavailable)
	}

	return fmt.Errorf("%s: %w", op, err)
}
