package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Yofukashi625/fangyang-wiki-app/config"
	"github.com/Yofukashi625/fangyang-wiki-app/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportSchoolsHandler streams the whole school database as an xlsx file.
func ExportSchoolsHandler(c *gin.Context) {
	var schools []models.School
	if err := config.DB.Order("created_at DESC").Find(&schools).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch schools from database"})
		return
	}

	if len(schools) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No schools found to export"})
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Schools"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{
		"ID", "Name", "Location", "Country", "Type", "Department",
		"Programs", "QS Ranking", "US News Ranking", "Tuition",
		"GPA Req", "TOEFL Req", "IELTS Req", "SAT Req",
		"Tags", "Partner", "Updated",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, s := range schools {
		reqs := s.Requirements.Data()
		values := []interface{}{
			s.ID, s.Name, s.Location, s.Country, s.Type, s.Department,
			strings.Join(s.Programs, ", "), derefInt(s.QsRanking), derefInt(s.UsNewsRanking), s.TuitionRange,
			reqs.Gpa, reqs.Toefl, reqs.Ielts, reqs.Sat,
			strings.Join(s.Tags, ", "), s.IsPartner, s.UpdatedAt.Format("2006-01-02"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename=schools_export.xlsx")
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		slog.Error("Failed to write xlsx export", "error", err)
	}
}

func derefInt(v *int) interface{} {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%d", *v)
}
