package httpserver

import (
	"net/http"

	"moviecredits/movie"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterMovieRoutes(g *echo.Group) {
	g.GET("", s.handleListMovies)
	g.POST("", s.handleAddMovie)
	g.GET("/:id", s.handleGetMovie)
	g.PATCH("/:id", s.handlePatchMovie)
	g.DELETE("/:id", s.handleDeleteMovie)
}

// handleListMovies godoc
// @Summary List Movies
// @Tags movies
// @Produce json
// @Success 200 {array} movie.Movie
// @Router /movie [get]
func (s *Server) handleListMovies(c echo.Context) error {
	movies, err := s.MovieService.ListMovies(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, movies)
}

// handleAddMovie godoc
// @Summary Create Movie
// @Tags movies
// @Accept json
// @Produce json
// @Param movie body AddMovieRequest true "Movie Data"
// @Success 201 {object} movie.Movie
// @Failure 400 {object} APIResponse
// @Router /movie [post]
func (s *Server) handleAddMovie(c echo.Context) error {
	input, err := readInput(c)
	if err != nil {
		return err
	}

	var req AddMovieRequest
	if err := bindInput(c, input, &req, movieIntFields...); err != nil {
		return createError("movie", err)
	}

	created, err := s.MovieService.AddMovie(c.Request().Context(), req.ToMovie())
	if err != nil {
		return createError("movie", err)
	}
	return c.JSON(http.StatusCreated, created)
}

// handleGetMovie godoc
// @Summary Get Movie
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} movie.Movie
// @Failure 404 {object} APIResponse
// @Router /movie/{id} [get]
func (s *Server) handleGetMovie(c echo.Context) error {
	id, err := parseID(c, movie.ErrNotFound)
	if err != nil {
		return err
	}

	m, err := s.MovieService.GetMovie(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, m)
}

// handlePatchMovie godoc
// @Summary Update Movie
// @Tags movies
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Success 202 {object} movie.Movie
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Router /movie/{id} [patch]
func (s *Server) handlePatchMovie(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := parseID(c, movie.ErrNotFound)
	if err != nil {
		return err
	}
	if _, err := s.MovieService.GetMovie(ctx, id); err != nil {
		return err
	}

	input, err := readInput(c)
	if err != nil {
		return err
	}
	if err := checkAllowed(input, movieUpdatableFields); err != nil {
		return err
	}
	patch, err := parseMoviePatch(input)
	if err != nil {
		return updateError(err)
	}

	updated, err := s.MovieService.UpdateMovie(ctx, id, patch)
	if err != nil {
		return updateError(err)
	}
	return c.JSON(http.StatusAccepted, updated)
}

// handleDeleteMovie godoc
// @Summary Delete Movie
// @Description Deletes the movie and all of its credits
// @Tags movies
// @Param id path int true "Movie ID"
// @Success 204
// @Failure 404 {object} APIResponse
// @Router /movie/{id} [delete]
func (s *Server) handleDeleteMovie(c echo.Context) error {
	id, err := parseID(c, movie.ErrNotFound)
	if err != nil {
		return err
	}

	if err := s.MovieService.DeleteMovie(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
