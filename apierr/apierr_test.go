package apierr

import (
	"errors"
	"fmt"
	"testing"
)

func TestCategoryFromCode(t *testing.T) {
	tests := []struct {
		code int
		want Category
	}{
		{-1000, CategoryServerOrNetwork},
		{-1021, CategoryServerOrNetwork},
		{-1099, CategoryServerOrNetwork},
		{-1100, CategoryRequestIssues},
		{-1121, CategoryRequestIssues},
		{-2010, CategoryTrading},
		{-2015, CategoryTrading},
		{-3000, CategoryUnknown},
		{0, CategoryUnknown},
		{200, CategoryUnknown},
	}
	for _, tt := range tests {
		if got := CategoryFromCode(tt.code); got != tt.want {
			t.Errorf("CategoryFromCode(%d) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestAPIError(t *testing.T) {
	err := NewAPIError(-1121, "Invalid symbol.")
	if got := err.Error(); got != "binance api error -1121: Invalid symbol." {
		t.Errorf("Error() = %q", got)
	}
	if err.Category() != CategoryRequestIssues {
		t.Errorf("Category() = %v", err.Category())
	}
	if err.IsAuthError() {
		t.Error("-1121 classified as auth error")
	}
	if !NewAPIError(-2015, "Invalid API-key.").IsAuthError() {
		t.Error("-2015 not classified as auth error")
	}

	wrapped := fmt.Errorf("place order: %w", err)
	var apiErr *APIError
	if !errors.As(wrapped, &apiErr) || apiErr.Code != -1121 {
		t.Errorf("errors.As through wrap failed: %v", wrapped)
	}
}

func TestInvalidParameter(t *testing.T) {
	var invalid *InvalidParameter
	err := EmptyParameter("symbol")
	if !errors.As(fmt.Errorf("validate: %w", err), &invalid) {
		t.Fatal("errors.As failed")
	}
	if invalid.Name != "symbol" {
		t.Errorf("name = %q", invalid.Name)
	}
	if got := ParameterRange("limit", 1, 1000).Error(); got != `invalid parameter "limit": must be between 1 and 1000` {
		t.Errorf("Error() = %q", got)
	}
}
