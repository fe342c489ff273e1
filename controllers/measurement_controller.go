package controllers

import (
	"net/http"

	"github.com/gregorycarnegie/body-fat-calculator/models"
	"github.com/gregorycarnegie/body-fat-calculator/services"

	"github.com/gin-gonic/gin"
)

type MeasurementController struct {
	Svc *services.BodyFatService
}

func NewMeasurementController(svc *services.BodyFatService) *MeasurementController {
	return &MeasurementController{Svc: svc}
}

type MeasurementInput struct {
	Site  string `json:"site" binding:"required"`
	Value string `json:"value"`
}

// UpdateMeasurement stores one freshly typed skinfold value. The value is
// parsed best-effort: text that is not a number is ignored, matching the
// lenient per-field entry point. Unknown sites are a client error.
func (mc *MeasurementController) UpdateMeasurement(c *gin.Context) {
	userID := c.GetUint("userID")

	var input MeasurementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	site := models.Site(input.Site)
	if !site.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown measurement site"})
		return
	}

	if err := mc.Svc.UpdateMeasurement(userID, site, input.Value); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "measurement updated"})
}

func (mc *MeasurementController) GetMeasurements(c *gin.Context) {
	userID := c.GetUint("userID")

	rec, err := mc.Svc.GetRecord(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"measurements": rec,
		"total":        rec.Total(),
	})
}

func (mc *MeasurementController) ResetMeasurements(c *gin.Context) {
	userID := c.GetUint("userID")

	if err := mc.Svc.ResetMeasurements(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "measurements cleared"})
}

type CalculateInput struct {
	Chest       string `json:"chest"`
	Abdominal   string `json:"abdominal"`
	Thigh       string `json:"thigh"`
	Triceps     string `json:"triceps"`
	Subscapular string `json:"subscapular"`
	Suprailiac  string `json:"suprailiac"`
	Midaxillary string `json:"midaxillary"`
	Age         string `json:"age"`
	Sex         string `json:"sex" binding:"required,oneof=Male Female"`
}

// Calculate resolves the submitted fields against the stored record and
// returns either the body-fat result or the full list of validation
// messages. Validation failures are 422, never partial results.
func (mc *MeasurementController) Calculate(c *gin.Context) {
	userID := c.GetUint("userID")

	var input CalculateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, msgs, err := mc.Svc.Calculate(userID, services.CalculationInput{
		Sites: map[models.Site]string{
			models.SiteChest:       input.Chest,
			models.SiteAbdominal:   input.Abdominal,
			models.SiteThigh:       input.Thigh,
			models.SiteTriceps:     input.Triceps,
			models.SiteSubscapular: input.Subscapular,
			models.SiteSuprailiac:  input.Suprailiac,
			models.SiteMidaxillary: input.Midaxillary,
		},
		Age: input.Age,
		Sex: models.Sex(input.Sex),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(msgs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": msgs})
		return
	}

	c.JSON(http.StatusOK, result)
}
