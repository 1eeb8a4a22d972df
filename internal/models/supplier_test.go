package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSupplierStatus(t *testing.T) {
	cases := map[string]string{
		"":             SupplierStatusActive,
		"active":       SupplierStatusActive,
		"Active":       SupplierStatusActive,
		"  ACTIVE  ":   SupplierStatusActive,
		"under_review": SupplierStatusUnderReview,
		"Under Review": SupplierStatusUnderReview,
		"UNDER_REVIEW": SupplierStatusUnderReview,
		"revoked":      SupplierStatusRevoked,
		"Revoked":      SupplierStatusRevoked,
		"Inactive":     SupplierStatusRevoked,
		"INACTIVE":     SupplierStatusRevoked,
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeSupplierStatus(in), "input %q", in)
	}
}

func TestValidSupplierStatus(t *testing.T) {
	assert.True(t, ValidSupplierStatus(SupplierStatusActive))
	assert.True(t, ValidSupplierStatus(SupplierStatusUnderReview))
	assert.True(t, ValidSupplierStatus(SupplierStatusRevoked))
	assert.False(t, ValidSupplierStatus("suspended"))
}
