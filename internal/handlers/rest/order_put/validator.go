package order_put

import (
	"encoding/json"
	"sort"

	"github.com/google/uuid"
	"service/internal/entities"
	"service/internal/pkg/httperr"
)

func validateOrderID(orderID string) []httperr.Issue {
	if uuid.Validate(orderID) != nil {
		return []httperr.Issue{{Field: "orderId", Message: "orderId must be a valid UUID"}}
	}
	return nil
}

// parseUpdate checks the status field and collects every other body key
// untouched. Unknown keys are not a validation failure here: the service
// rejects them after its existence check, so a bad update against a missing
// order still answers 404.
func parseUpdate(body map[string]json.RawMessage) (entities.OrderUpdate, []httperr.Issue) {
	var update entities.OrderUpdate
	var issues []httperr.Issue

	raw, ok := body["status"]
	if !ok {
		issues = append(issues, httperr.Issue{Field: "status", Message: "status is required"})
	} else {
		var status string
		if err := json.Unmarshal(raw, &status); err != nil {
			issues = append(issues, httperr.Issue{Field: "status", Message: "status must be a string"})
		} else if status != entities.OrderCancelled.String() {
			issues = append(issues, httperr.Issue{Field: "status", Message: `status must be "cancelled"`})
		} else {
			statusType := entities.OrderCancelled
			update.Status = &statusType
		}
	}

	for key := range body {
		if key == "status" {
			continue
		}
		update.UnknownFields = append(update.UnknownFields, key)
	}
	sort.Strings(update.UnknownFields)

	return update, issues
}
