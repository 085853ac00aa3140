package product_controller

import (
	"context"
	"io"
	"log"
	"mime/multipart"

	"github.com/gin-gonic/gin"

	"github.com/cuongluu0705/Online-Electronics-Selling-System/catalog"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/upstream"
)

var (
	client *upstream.Client
	mapper *catalog.Mapper
	poller *catalog.Poller
)

// Init wires the upstream client, mapper and poller. Call once at
// startup.
func Init(c *upstream.Client, m *catalog.Mapper, p *catalog.Poller) {
	client = c
	mapper = m
	poller = p
}

// refreshStorefront pushes the write through to the public snapshot so
// buyers see it without waiting for the next poll.
func refreshStorefront(ctx context.Context) {
	if _, err := poller.RefreshNow(ctx); err != nil {
		log.Printf("[backoffice.products] storefront refresh failed: %v", err)
	}
}

func readImageFile(c *gin.Context) (*upstream.ProductImage, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		// No file attached is fine.
		return nil, nil
	}
	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer func(f multipart.File) { _ = f.Close() }(file)

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	return &upstream.ProductImage{Filename: fileHeader.Filename, Content: content}, nil
}
