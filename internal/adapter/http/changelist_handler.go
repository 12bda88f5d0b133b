package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"fieldops-backend/internal/domain/store"
	visitDomain "fieldops-backend/internal/domain/visit"
	"fieldops-backend/internal/usecase/changelist"
)

type ChangeListHandler struct{ uc *changelist.Usecase }

func NewChangeListHandler(uc *changelist.Usecase) *ChangeListHandler {
	return &ChangeListHandler{uc: uc}
}

func (h *ChangeListHandler) GetChangeList(c echo.Context) error {
	changeListID := c.Param("change_list_id")
	if !reHex32.MatchString(changeListID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid change_list_id"})
	}
	dto, err := h.uc.Get(c.Request().Context(), changeListID)
	if err != nil {
		if errors.Is(err, visitDomain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "change list not found"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not load change list"})
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ChangeListHandler) ListChangeLists(c echo.Context) error {
	storeID := c.Param("store_id")
	if !reHex32.MatchString(storeID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid store_id"})
	}
	status := visitDomain.ChangeListStatus(c.QueryParam("status"))
	switch status {
	case "", visitDomain.StatusSubmitted, visitDomain.StatusApproved, visitDomain.StatusRejected:
	default:
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid status filter"})
	}

	lists, err := h.uc.ListByStore(c.Request().Context(), storeID, status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "store not found"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not list change lists"})
	}
	return c.JSON(http.StatusOK, lists)
}
