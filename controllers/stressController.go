package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/maheshathikala/stress-detect/apperror"
	"github.com/maheshathikala/stress-detect/helpers"
	"github.com/maheshathikala/stress-detect/models"
	"github.com/maheshathikala/stress-detect/services"
)

var validate = validator.New()

type detectStressRequest struct {
	Image string `json:"image" validate:"required"`
}

type detectStressResponse struct {
	Success     bool   `json:"success"`
	StressLevel int    `json:"stress_level"`
	Category    string `json:"category"`
	Message     string `json:"message"`
}

type stressLogEntry struct {
	Username    string `json:"username"`
	StressLevel int    `json:"stress_level"`
	Category    string `json:"category"`
	Timestamp   string `json:"timestamp"`
}

type stressLogsResponse struct {
	Success bool             `json:"success"`
	Logs    []stressLogEntry `json:"logs"`
}

type trendResponse struct {
	Success        bool                  `json:"success"`
	AverageLevel   int                   `json:"average_level"`
	TrendDirection models.TrendDirection `json:"trend_direction"`
	WindowedSeries []int                 `json:"windowed_series"`
}

type failureResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// StressController exposes the stress detection API.
type StressController struct {
	svc *services.StressService
	log *zap.Logger
}

func NewStressController(svc *services.StressService, log *zap.Logger) *StressController {
	return &StressController{svc: svc, log: log}
}

// DetectStress classifies a webcam capture and records the result.
func (ct *StressController) DetectStress() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := getClaims(c)
		if claims == nil {
			return
		}

		var body detectStressRequest
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest,
				failureResponse{Success: false, Message: "Invalid request body"})
			return
		}
		if err := validate.Struct(body); err != nil {
			c.JSON(http.StatusBadRequest,
				failureResponse{Success: false, Message: "No image provided"})
			return
		}

		log, err := ct.svc.Classify(c.Request.Context(), claims.UserID, claims.Username, body.Image)
		if err != nil {
			ct.log.Warn("classification failed",
				zap.String("user_id", claims.UserID), zap.Error(err))
			c.JSON(apperror.StatusCode(err),
				failureResponse{Success: false, Message: apperror.Message(err)})
			return
		}

		c.JSON(http.StatusOK, detectStressResponse{
			Success:     true,
			StressLevel: log.StressLevel,
			Category:    log.Category,
			Message:     models.MessageForLevel(log.StressLevel),
		})
	}
}

// GetStressLogs returns recent logs for the current user, or for every user
// when the caller is an admin.
func (ct *StressController) GetStressLogs() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := getClaims(c)
		if claims == nil {
			return
		}

		var limit int64
		if l := c.Query("limit"); l != "" {
			if n, err := strconv.ParseInt(l, 10, 64); err == nil && n > 0 {
				limit = n
			}
		}

		logs, err := ct.svc.History(c.Request.Context(), claims.UserID, claims.Role, limit)
		if err != nil {
			c.JSON(apperror.StatusCode(err),
				failureResponse{Success: false, Message: apperror.Message(err)})
			return
		}

		entries := lo.Map(logs, func(log models.StressLog, _ int) stressLogEntry {
			return stressLogEntry{
				Username:    log.Username,
				StressLevel: log.StressLevel,
				Category:    log.Category,
				Timestamp:   log.Timestamp.UTC().Format(time.RFC3339),
			}
		})

		c.JSON(http.StatusOK, stressLogsResponse{Success: true, Logs: entries})
	}
}

// GetStressTrend returns the dashboard trend summary for the current user.
func (ct *StressController) GetStressTrend() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := getClaims(c)
		if claims == nil {
			return
		}

		summary, err := ct.svc.Trend(c.Request.Context(), claims.UserID)
		if err != nil {
			c.JSON(apperror.StatusCode(err),
				failureResponse{Success: false, Message: apperror.Message(err)})
			return
		}

		c.JSON(http.StatusOK, trendResponse{
			Success:        true,
			AverageLevel:   summary.AverageLevel,
			TrendDirection: summary.TrendDirection,
			WindowedSeries: summary.WindowedSeries,
		})
	}
}

func getClaims(c *gin.Context) *helpers.Claims {
	claimsVal, ok := c.Get("claims")
	if !ok {
		c.JSON(http.StatusUnauthorized,
			failureResponse{Success: false, Message: "Unauthorized"})
		return nil
	}
	claims, ok := claimsVal.(*helpers.Claims)
	if !ok || claims.UserID == "" {
		c.JSON(http.StatusUnauthorized,
			failureResponse{Success: false, Message: "Unauthorized"})
		return nil
	}
	return claims
}
