package components

import (
	"github.com/Rorical/niveshak/ui/styles"
)

// RenderInput frames the text area view.
func RenderInput(input string, width int) string {
	return styles.InputStyle(width).Render(input)
}
