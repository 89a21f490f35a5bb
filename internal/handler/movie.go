package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/loopcinemas/loop-api/internal/review"
)

// MovieHandler serves the read-only movie catalogue.
type MovieHandler struct {
	Movies  MovieStore
	Reviews ReviewStore
}

func NewMovieHandler(movies MovieStore, reviews ReviewStore) *MovieHandler {
	return &MovieHandler{Movies: movies, Reviews: reviews}
}

// List returns every movie with genres as a string array.
func (h *MovieHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	movies, err := h.Movies.List(ctx)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(http.StatusOK, echo.Map{"type": "movies", "movies": movies})
}

// Top returns the catalogue ordered by mean rating (descending), ties
// broken by review count, unreviewed movies last.
func (h *MovieHandler) Top(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	movies, err := h.Movies.List(ctx)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "Internal server error")
	}
	reviews, err := h.Reviews.ListAll(ctx)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(http.StatusOK, echo.Map{"type": "movies", "movies": review.Rank(movies, reviews)})
}
