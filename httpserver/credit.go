package httpserver

import (
	"net/http"

	"moviecredits/credit"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterCreditRoutes(g *echo.Group) {
	g.GET("", s.handleListCredits)
	g.POST("", s.handleAddCredit)
	g.GET("/:id", s.handleGetCredit)
	g.DELETE("/:id", s.handleDeleteCredit)
}

// handleListCredits godoc
// @Summary List Credits
// @Tags credits
// @Produce json
// @Success 200 {array} credit.Credit
// @Router /credit [get]
func (s *Server) handleListCredits(c echo.Context) error {
	credits, err := s.CreditService.ListCredits(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, credits)
}

// handleAddCredit godoc
// @Summary Create Credit
// @Tags credits
// @Accept json
// @Produce json
// @Param credit body AddCreditRequest true "Credit Data"
// @Success 201 {object} credit.Credit
// @Failure 400 {object} APIResponse
// @Router /credit [post]
func (s *Server) handleAddCredit(c echo.Context) error {
	input, err := readInput(c)
	if err != nil {
		return err
	}

	var req AddCreditRequest
	if err := bindInput(c, input, &req, creditIntFields...); err != nil {
		return createError("credit", err)
	}

	created, err := s.CreditService.AddCredit(c.Request().Context(), req.ToCredit())
	if err != nil {
		return createError("credit", err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (s *Server) handleGetCredit(c echo.Context) error {
	id, err := parseID(c, credit.ErrNotFound)
	if err != nil {
		return err
	}

	cr, err := s.CreditService.GetCredit(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cr)
}

func (s *Server) handleDeleteCredit(c echo.Context) error {
	id, err := parseID(c, credit.ErrNotFound)
	if err != nil {
		return err
	}

	if err := s.CreditService.DeleteCredit(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
