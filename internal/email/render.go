package email

import (
	"fmt"
	"strings"
)

// RenderCustomer produces the customer-facing receipt document.
func RenderCustomer(o Order) (string, error) {
	var b strings.Builder
	if err := customerTmpl.Execute(&b, o); err != nil {
		return "", fmt.Errorf("render customer email: %w", err)
	}
	return b.String(), nil
}

// RenderOps produces the internal new-order notification document.
func RenderOps(o Order) (string, error) {
	var b strings.Builder
	if err := opsTmpl.Execute(&b, o); err != nil {
		return "", fmt.Errorf("render ops email: %w", err)
	}
	return b.String(), nil
}
