package order_post

import (
	"github.com/google/uuid"
	"service/internal/dto"
	"service/internal/pkg/httperr"
)

func validate(req dto.OrderCreate) []httperr.Issue {
	var issues []httperr.Issue

	if req.CustomerID == "" {
		issues = append(issues, httperr.Issue{Field: "customerId", Message: "customerId is required"})
	} else if uuid.Validate(req.CustomerID) != nil {
		issues = append(issues, httperr.Issue{Field: "customerId", Message: "customerId must be a valid UUID"})
	}

	return issues
}
