package upstream

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/url"
	"strconv"

	"github.com/cuongluu0705/Online-Electronics-Selling-System/models"
)

// ListProducts fetches the public product list, optionally filtered by
// the buyer search query. Only Active products come back.
func (c *Client) ListProducts(ctx context.Context, query string) ([]models.UpstreamProduct, error) {
	path := "/buyer/products"
	if query != "" {
		path += "?q=" + url.QueryEscape(query)
	}
	var list []models.UpstreamProduct
	if err := c.getJSON(ctx, path, "", &list); err != nil {
		return nil, err
	}
	return list, nil
}

// StaffListProducts fetches the management list, deactivated products
// included.
func (c *Client) StaffListProducts(ctx context.Context, token, query string) ([]models.UpstreamProduct, error) {
	path := "/staff/products"
	if query != "" {
		path += "?q=" + url.QueryEscape(query)
	}
	var list []models.UpstreamProduct
	if err := c.getJSON(ctx, path, token, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// ProductImage is an optional uploaded image forwarded with a staff
// product write.
type ProductImage struct {
	Filename string
	Content  []byte
}

// StaffCreateProduct submits a new product as multipart form-data.
// Creation always carries an initial status of Active.
func (c *Client) StaffCreateProduct(ctx context.Context, token string, form models.StaffProductForm, image *ProductImage) (models.UpstreamProduct, error) {
	body, contentType, err := encodeProductForm(form, image, "Active")
	if err != nil {
		return models.UpstreamProduct{}, err
	}
	var created models.UpstreamProduct
	if err := c.sendMultipart(ctx, "POST", "/staff/products", token, body, contentType, &created); err != nil {
		return models.UpstreamProduct{}, err
	}
	return created, nil
}

// StaffUpdateProduct submits changed fields (and optionally a new image)
// for an existing product as multipart form-data.
func (c *Client) StaffUpdateProduct(ctx context.Context, token, productID string, form models.StaffProductForm, image *ProductImage) (models.UpstreamProduct, error) {
	body, contentType, err := encodeProductForm(form, image, "")
	if err != nil {
		return models.UpstreamProduct{}, err
	}
	var updated models.UpstreamProduct
	path := "/staff/products/" + url.PathEscape(productID)
	if err := c.sendMultipart(ctx, "PUT", path, token, body, contentType, &updated); err != nil {
		return models.UpstreamProduct{}, err
	}
	return updated, nil
}

// StaffUpdateProductStatus flips a product between Active and
// Deactivated via the dedicated status endpoint.
func (c *Client) StaffUpdateProductStatus(ctx context.Context, token, productID, apiStatus string) error {
	path := fmt.Sprintf("/staff/products/%s/update_product_status", url.PathEscape(productID))
	payload := map[string]string{"status": apiStatus}
	return c.sendJSON(ctx, "PUT", path, token, payload, nil)
}

func encodeProductForm(form models.StaffProductForm, image *ProductImage, initialStatus string) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	fields := map[string]string{
		"productId":     form.ProductID,
		"productName":   form.ProductName,
		"brand":         form.Brand,
		"price":         strconv.FormatFloat(form.Price, 'f', -1, 64),
		"quantity":      strconv.Itoa(form.Quantity),
		"category":      form.Category,
		"specification": form.Specification,
	}
	if initialStatus != "" {
		fields["status"] = initialStatus
	}
	for name, value := range fields {
		if value == "" {
			continue
		}
		if err := w.WriteField(name, value); err != nil {
			return nil, "", err
		}
	}

	if image != nil {
		part, err := w.CreateFormFile("image", image.Filename)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(image.Content); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}
