package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"PantryOS-Server/domain"
	"PantryOS-Server/internal/api/presenters"
	"PantryOS-Server/pkg/product"
)

type (
	ProductHandler interface {
		GetProducts(c *fiber.Ctx) error
		UpsertProduct(c *fiber.Ctx) error
		UpdateProduct(c *fiber.Ctx) error
		DeleteProduct(c *fiber.Ctx) error
		GetBarcodes(c *fiber.Ctx) error
		AddBarcode(c *fiber.Ctx) error
	}

	productHandler struct {
		productService product.ProductService
		validator      *validator.Validate
	}
)

func NewProductHandler(productService product.ProductService, validator *validator.Validate) ProductHandler {
	return &productHandler{
		productService: productService,
		validator:      validator,
	}
}

func (h *productHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.productService.GetProducts(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedStoreFailure)
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, products)
}

func (h *productHandler) UpsertProduct(c *fiber.Ctx) error {
	req := new(domain.CreateProductRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddProduct)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageProductNameRequired)
	}

	res, err := h.productService.UpsertProduct(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrNameRequired) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageProductNameRequired)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAddProduct)
	}
	return presenters.SuccessResponse(c, fiber.StatusCreated, res)
}

func (h *productHandler) UpdateProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	req := new(domain.UpdateProductRequest)
	if len(c.Body()) > 0 {
		if err := c.BodyParser(req); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateProduct)
		}
	}

	updated, err := h.productService.UpdateProduct(c.Context(), id, *req)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageProductNotFound)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateProduct)
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, updated)
}

func (h *productHandler) DeleteProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.productService.DeleteProduct(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageProductNotFound)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateProduct)
	}
	return presenters.NoContentResponse(c)
}

func (h *productHandler) GetBarcodes(c *fiber.Ctx) error {
	barcodes, err := h.productService.GetBarcodes(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedStoreFailure)
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, barcodes)
}

func (h *productHandler) AddBarcode(c *fiber.Ctx) error {
	req := new(domain.CreateBarcodeRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddBarcode)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageBarcodeRequired)
	}

	barcode, err := h.productService.AddBarcode(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrNameRequired) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageBarcodeRequired)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAddBarcode)
	}
	return presenters.SuccessResponse(c, fiber.StatusCreated, barcode)
}
