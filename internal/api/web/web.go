// Package web embeds the minimal browser front end: an upload form and a
// webcam capture page posting to /analyze.
package web

import (
	"embed"

	"github.com/gofiber/fiber/v2"
)

//go:embed index.html
var assets embed.FS

// Index serves the single-page front end.
func Index(c *fiber.Ctx) error {
	page, err := assets.ReadFile("index.html")
	if err != nil {
		return fiber.ErrInternalServerError
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(page)
}
