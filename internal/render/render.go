// Package render personalizes template bodies for a single recipient
package render

import (
	"strings"

	"github.com/LucasFerreiradeFreitas/LevelMarketingApp/internal/models"
)

// Render substitutes the recipient's fields into the template body.
// Exactly three tokens are recognized: {name}, {surname} and {email};
// every occurrence is replaced. A missing surname renders as an empty
// string. Anything else between braces is left untouched.
func Render(body string, client models.Client) string {
	surname := ""
	if client.Surname != nil {
		surname = *client.Surname
	}

	result := body
	result = strings.ReplaceAll(result, "{name}", client.Name)
	result = strings.ReplaceAll(result, "{surname}", surname)
	result = strings.ReplaceAll(result, "{email}", client.Email)
	return result
}
