package controller

import (
	"errors"
	"net/http"

	"github.com/psalmsin1759/menuja-backend/config"
	"github.com/psalmsin1759/menuja-backend/database"
	"github.com/psalmsin1759/menuja-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var (
	db       = database.Client.Database(config.Load().DBName)
	validate = validator.New()
)

// respondError maps a service error onto an HTTP status.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrInvalidID):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrDuplicate):
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
