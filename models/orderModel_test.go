package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrderStatusIsValid(t *testing.T) {
	valid := []OrderStatus{StatusPending, StatusPreparing, StatusReady, StatusDelivered, StatusCancelled}
	for _, status := range valid {
		require.True(t, status.IsValid(), "%q must be valid", status)
	}

	invalid := []OrderStatus{"", "pending", "READY", "InProgress", "Delivered ", "Rejected"}
	for _, status := range invalid {
		require.False(t, status.IsValid(), "%q must be invalid", status)
	}
}
