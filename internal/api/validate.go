package api

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// validateRequestBody checks that the request body is JSON containing every
// required field. It mirrors what the game client expects on malformed
// requests: a plain validation message, not a schema error.
func validateRequestBody(c *fiber.Ctx, requiredFields ...string) (string, bool) {
	body := c.Body()
	if len(body) == 0 {
		return "No data provided in request body", false
	}

	var data map[string]json.RawMessage
	if err := json.Unmarshal(body, &data); err != nil || len(data) == 0 {
		return "No data provided in request body", false
	}

	var missing []string
	for _, field := range requiredFields {
		if _, ok := data[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", ")), false
	}

	return "Valid", true
}
