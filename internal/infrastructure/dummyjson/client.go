// Package dummyjson — клиент внешнего каталога товаров с REST API в формате dummyjson.com.
package dummyjson

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/go-playground/validator/v10"
)

// maxErrorBody — сколько байт тела ошибки попадает в лог
const maxErrorBody = 512

// Client читает каталог без повторов: любая ошибка запроса отдаётся вызывающему как e.ErrFetchFailed.
type Client struct {
	baseURL   string
	listLimit int
	http      *http.Client
	validate  *validator.Validate
	logger    logger.Logger
}

// NewClient создаёт клиента. listLimit = 0 запрашивает весь каталог.
func NewClient(baseURL string, timeout time.Duration, listLimit int, logger logger.Logger) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		listLimit: listLimit,
		http:      &http.Client{Timeout: timeout},
		validate:  validator.New(),
		logger:    logger,
	}
}

// FetchAll запрашивает полный список товаров. Некорректные записи пропускаются.
func (c *Client) FetchAll(ctx context.Context) ([]domain.Product, error) {
	const op = "dummyjson.Client.FetchAll"

	query := url.Values{}
	query.Set("limit", strconv.Itoa(c.listLimit))

	var envelope productsEnvelope
	status, err := c.getJSON(ctx, "/products?"+query.Encode(), &envelope)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if status != http.StatusOK {
		return nil, e.Wrap(op, fmt.Errorf("%w: status %d", e.ErrFetchFailed, status))
	}

	products := make([]domain.Product, 0, len(envelope.Products))
	for i := range envelope.Products {
		dto := &envelope.Products[i]
		if err := c.validateProduct(dto); err != nil {
			c.logger.Warnf("skipping invalid product, id: %d, error: %v", dto.ID, err)
			continue
		}
		products = append(products, dto.toDomain())
	}

	c.logger.Debugf("catalog fetched, products: %d, total: %d", len(products), envelope.Total)

	return products, nil
}

// FetchOne запрашивает товар по идентификатору. Отсутствующий товар — e.ErrProductNotFound.
func (c *Client) FetchOne(ctx context.Context, id int64) (*domain.Product, error) {
	const op = "dummyjson.Client.FetchOne"

	var dto productDTO
	status, err := c.getJSON(ctx, "/products/"+strconv.FormatInt(id, 10), &dto)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	switch status {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, e.Wrap(op, e.ErrProductNotFound)
	default:
		return nil, e.Wrap(op, fmt.Errorf("%w: status %d", e.ErrFetchFailed, status))
	}

	if err := c.validateProduct(&dto); err != nil {
		return nil, e.Wrap(op, fmt.Errorf("%w: %w", e.ErrFetchFailed, err))
	}

	product := dto.toDomain()
	return &product, nil
}

// getJSON выполняет GET и декодирует тело успешного ответа в dst.
// Для прочих статусов тело только логируется.
func (c *Client) getJSON(ctx context.Context, path string, dst any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", e.ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", e.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.Warnf("catalog responded %d for %s: %s", resp.StatusCode, path, strings.TrimSpace(string(body)))
		return resp.StatusCode, nil
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return resp.StatusCode, fmt.Errorf("%w: decode: %w", e.ErrFetchFailed, err)
	}

	return resp.StatusCode, nil
}

func (c *Client) validateProduct(dto *productDTO) error {
	if err := c.validate.Struct(dto); err != nil {
		return fmt.Errorf("%w: %w", e.ErrInvalidProduct, err)
	}

	product := dto.toDomain()
	if !product.HasValidDiscount() {
		return fmt.Errorf("%w: discount %s out of range", e.ErrInvalidProduct, dto.DiscountPercentage)
	}
	if product.Price.IsNegative() {
		return fmt.Errorf("%w: negative price", e.ErrInvalidProduct)
	}

	return nil
}
