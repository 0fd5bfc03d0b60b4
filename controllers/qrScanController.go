package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/psalmsin1759/menuja-backend/services"

	"github.com/gin-gonic/gin"
)

var qrScanService = services.NewQrScanService(db)

type ScanPack struct {
	Table_id string `json:"table_id" validate:"required"`
}

// RecordScan logs a QR code scan, capturing the client IP and user agent
// from the request.
func RecordScan() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel() // Ensure context is canceled

		var pack ScanPack
		if err := c.BindJSON(&pack); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(pack); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		ip := c.ClientIP()
		userAgent := c.GetHeader("User-Agent")
		var ipPtr, uaPtr *string
		if ip != "" {
			ipPtr = &ip
		}
		if userAgent != "" {
			uaPtr = &userAgent
		}

		scan, err := qrScanService.RecordScan(ctx, pack.Table_id, ipPtr, uaPtr)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, scan)
	}
}

func GetScans() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		scans, err := qrScanService.GetAllScans(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, scans)
	}
}

func GetScansByTable() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		scans, err := qrScanService.GetScansByTable(ctx, c.Param("tableId"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, scans)
	}
}

func DeleteScan() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		scan, err := qrScanService.DeleteScan(ctx, c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, scan)
	}
}
