package handler

import (
	"fmt"
	"io"

	"github.com/fadilmartias/careerboost/internal/model"
	"github.com/gofiber/fiber/v2"
)

// parseBody decodes the JSON body into T. Flow inputs are validated later,
// once profile defaults are filled in.
func parseBody[T any](c *fiber.Ctx) (T, error) {
	var req T
	if err := c.BodyParser(&req); err != nil {
		return req, fmt.Errorf("%w: malformed request body", model.ErrInvalidInput)
	}
	return req, nil
}

// readUpload returns the named multipart file, refusing anything larger
// than maxSize.
func readUpload(c *fiber.Ctx, field string, maxSize int64) (string, []byte, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %s file is required", model.ErrInvalidInput, field)
	}
	if file.Size > maxSize {
		return "", nil, fmt.Errorf("%w: %s file is too large (max %dMB)", model.ErrInvalidInput, field, maxSize>>20)
	}

	f, err := file.Open()
	if err != nil {
		return "", nil, fmt.Errorf("open %s upload: %w", field, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxSize+1))
	if err != nil {
		return "", nil, fmt.Errorf("read %s upload: %w", field, err)
	}
	return file.Filename, data, nil
}
