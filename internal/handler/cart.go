package handler

import (
	"errors"
	"net/http"
	"velocity-shop/internal/dto"
	"velocity-shop/internal/service"

	"github.com/labstack/echo/v4"
)

type CartHandler struct {
	cartService service.CartService
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

func (h *CartHandler) AddItem(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CartAddRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	if _, err := h.cartService.Add(ctx, req); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &dto.SuccessResponse{
		Success: true,
		Message: "Added to cart",
	})
}

func (h *CartHandler) GetCart(c echo.Context) error {
	ctx := c.Request().Context()

	items, err := h.cartService.ListByUser(ctx, c.Param("userId"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, items)
}

func (h *CartHandler) UpdateItem(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CartUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	err := h.cartService.UpdateQuantity(ctx, c.Param("itemId"), req.Quantity)
	if errors.Is(err, service.ErrCartItemNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Item not found")
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &dto.SuccessResponse{Success: true})
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	ctx := c.Request().Context()

	err := h.cartService.Remove(ctx, c.Param("itemId"))
	if errors.Is(err, service.ErrCartItemNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Item not found")
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &dto.SuccessResponse{Success: true})
}
