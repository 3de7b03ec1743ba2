package httpserver

import (
	"net/http"

	"moviecredits/actor"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterActorRoutes(g *echo.Group) {
	g.GET("", s.handleListActors)
	g.POST("", s.handleAddActor)
	g.GET("/:id", s.handleGetActor)
	g.PATCH("/:id", s.handlePatchActor)
	g.DELETE("/:id", s.handleDeleteActor)
}

// handleListActors godoc
// @Summary List Actors
// @Tags actors
// @Produce json
// @Success 200 {array} actor.Actor
// @Router /actor [get]
func (s *Server) handleListActors(c echo.Context) error {
	actors, err := s.ActorService.ListActors(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, actors)
}

// handleAddActor godoc
// @Summary Create Actor
// @Tags actors
// @Accept json
// @Produce json
// @Param actor body AddActorRequest true "Actor Data"
// @Success 201 {object} actor.Actor
// @Failure 400 {object} APIResponse
// @Router /actor [post]
func (s *Server) handleAddActor(c echo.Context) error {
	input, err := readInput(c)
	if err != nil {
		return err
	}

	var req AddActorRequest
	if err := bindInput(c, input, &req, actorIntFields...); err != nil {
		return createError("actor", err)
	}

	created, err := s.ActorService.AddActor(c.Request().Context(), req.ToActor())
	if err != nil {
		return createError("actor", err)
	}
	return c.JSON(http.StatusCreated, created)
}

// handleGetActor godoc
// @Summary Get Actor
// @Tags actors
// @Produce json
// @Param id path int true "Actor ID"
// @Success 200 {object} actor.Actor
// @Failure 404 {object} APIResponse
// @Router /actor/{id} [get]
func (s *Server) handleGetActor(c echo.Context) error {
	id, err := parseID(c, actor.ErrNotFound)
	if err != nil {
		return err
	}

	a, err := s.ActorService.GetActor(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, a)
}

// handlePatchActor godoc
// @Summary Update Actor
// @Description Only name and age can be updated
// @Tags actors
// @Accept json
// @Produce json
// @Param id path int true "Actor ID"
// @Success 202 {object} actor.Actor
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Router /actor/{id} [patch]
func (s *Server) handlePatchActor(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := parseID(c, actor.ErrNotFound)
	if err != nil {
		return err
	}
	if _, err := s.ActorService.GetActor(ctx, id); err != nil {
		return err
	}

	input, err := readInput(c)
	if err != nil {
		return err
	}
	if err := checkAllowed(input, actorUpdatableFields); err != nil {
		return err
	}
	patch, err := parseActorPatch(input)
	if err != nil {
		return updateError(err)
	}

	updated, err := s.ActorService.UpdateActor(ctx, id, patch)
	if err != nil {
		return updateError(err)
	}
	return c.JSON(http.StatusAccepted, updated)
}

// handleDeleteActor godoc
// @Summary Delete Actor
// @Description Deletes the actor and all of its credits
// @Tags actors
// @Param id path int true "Actor ID"
// @Success 204
// @Failure 404 {object} APIResponse
// @Router /actor/{id} [delete]
func (s *Server) handleDeleteActor(c echo.Context) error {
	id, err := parseID(c, actor.ErrNotFound)
	if err != nil {
		return err
	}

	if err := s.ActorService.DeleteActor(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
