package orders_get

import (
	"net/url"
	"strconv"

	"github.com/AlekSi/pointer"
	"github.com/google/uuid"
	"service/internal/entities"
	"service/internal/pkg/httperr"
)

const (
	defaultOffset = 0
	defaultLimit  = 10
)

// parseFilter reads the supported query parameters, falling back to the
// default page window when offset or limit are absent.
func parseFilter(query url.Values) (entities.OrderFilter, []httperr.Issue) {
	filter := entities.OrderFilter{
		Offset: defaultOffset,
		Limit:  defaultLimit,
	}
	var issues []httperr.Issue

	if customerID := query.Get("customerId"); customerID != "" {
		if uuid.Validate(customerID) != nil {
			issues = append(issues, httperr.Issue{Field: "customerId", Message: "customerId must be a valid UUID"})
		} else {
			filter.CustomerID = pointer.To(customerID)
		}
	}

	if status := query.Get("status"); status != "" {
		statusType := entities.OrderStatus(status)
		if !statusType.Valid() {
			issues = append(issues, httperr.Issue{Field: "status", Message: "status must be one of pending, shipped, delivered, cancelled"})
		} else {
			filter.Status = pointer.To(statusType)
		}
	}

	if raw := query.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			issues = append(issues, httperr.Issue{Field: "offset", Message: "offset must be a non-negative integer"})
		} else {
			filter.Offset = offset
		}
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			issues = append(issues, httperr.Issue{Field: "limit", Message: "limit must be a positive integer"})
		} else {
			filter.Limit = limit
		}
	}

	return filter, issues
}
