package components

import (
	"github.com/Rorical/niveshak/ui/styles"
)

func RenderStatus(status string, isError bool, width int) string {
	if isError {
		return styles.ErrorStatusStyle(width).Render(status)
	}
	return styles.StatusStyle(width).Render(status)
}
