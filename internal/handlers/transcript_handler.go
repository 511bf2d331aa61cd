package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/Yofukashi625/fangyang-wiki-app/config"
	"github.com/Yofukashi625/fangyang-wiki-app/models"

	"github.com/gin-gonic/gin"
	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// recognizedTranscript mirrors the JSON response schema of the transcript
// recognition call. The model's own aggregate numbers are deliberately not
// part of the schema: totals are always recomputed locally.
type recognizedTranscript struct {
	StudentName string                    `json:"studentName"`
	University  string                    `json:"university"`
	Courses     []models.TranscriptCourse `json:"courses"`
}

var transcriptResponseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"studentName": {Type: genai.TypeString},
		"university":  {Type: genai.TypeString},
		"courses": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"name":          {Type: genai.TypeString},
					"credits":       {Type: genai.TypeNumber},
					"originalGrade": {Type: genai.TypeString},
					"gpa4":          {Type: genai.TypeNumber},
					"percentage":    {Type: genai.TypeNumber},
				},
			},
		},
	},
}

// RecognizeTranscriptHandler sends the uploaded transcript pages to Gemini
// and returns the recognized course list with locally recomputed totals.
func RecognizeTranscriptHandler(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, 30<<20)

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid form data: " + err.Error()})
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No transcript files provided"})
		return
	}
	if len(files) > 10 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You can upload a maximum of 10 files"})
		return
	}

	// One ID per recognition batch to correlate the log lines of a
	// multi-page upload.
	batchID := uuid.NewString()
	slog.Info("Transcript recognition started", "batch_id", batchID, "files", len(files))

	prompt := []genai.Part{
		genai.Text("You are a transcript analyst for a Taiwanese study abroad agency. " +
			"Read the attached transcript pages and extract the student name, the university name, " +
			"and every course row with its name (original language), credits, original grade text, " +
			"GPA on the 4.0 scale (Taiwan conversion: 80+ = 4.0, 70-79 = 3.0, 60-69 = 2.0, below 60 = 0.0) " +
			"and the percentage grade. Keep transfer-credit (抵), withdrawal (退), stop-enrollment (停), " +
			"Pass/P/W and physical education (體育/PE) rows in the list with their grade text intact; " +
			"do not drop or merge them."),
	}
	for _, fileHeader := range files {
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open uploaded file"})
			return
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
			return
		}
		prompt = append(prompt, genai.Blob{MIMEType: fileHeader.Header.Get("Content-Type"), Data: data})
	}

	jsonResponse, err := generateJSON(c.Request.Context(), transcriptResponseSchema, prompt...)
	if err != nil {
		slog.Error("Gemini transcript recognition failed", "batch_id", batchID, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Gemini recognition error: " + err.Error()})
		return
	}

	var recognized recognizedTranscript
	if err := json.Unmarshal(jsonResponse, &recognized); err != nil {
		slog.Error("Gemini returned malformed transcript JSON", "batch_id", batchID, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to parse recognition result"})
		return
	}

	courses := normalizeCourses(recognized.Courses)
	summary := calculateSummary(courses)

	c.JSON(http.StatusOK, gin.H{
		"studentName":       recognized.StudentName,
		"university":        recognized.University,
		"courses":           courses,
		"totalCredits":      summary.TotalCredits,
		"overallGpa4":       summary.OverallGpa4,
		"overallPercentage": summary.OverallPercentage,
	})
}

// TranscriptSummaryInput is an edited course list to recompute.
type TranscriptSummaryInput struct {
	Courses []models.TranscriptCourse `json:"courses" binding:"required"`
}

// SummarizeTranscriptHandler recomputes the aggregates over a course list
// after client-side edits. Pure computation, nothing is stored.
func SummarizeTranscriptHandler(c *gin.Context) {
	var input TranscriptSummaryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	summary := calculateSummary(input.Courses)
	included := make([]bool, len(input.Courses))
	for i, course := range input.Courses {
		included[i] = shouldCalculate(course)
	}

	c.JSON(http.StatusOK, gin.H{
		"totalCredits":      summary.TotalCredits,
		"overallGpa4":       summary.OverallGpa4,
		"overallPercentage": summary.OverallPercentage,
		"included":          included,
	})
}

// TranscriptReportInput is the payload for saving a conversion report.
// Totals are never taken from the client; they are recomputed on save.
type TranscriptReportInput struct {
	StudentName string                    `json:"studentName"`
	University  string                    `json:"university"`
	Courses     []models.TranscriptCourse `json:"courses" binding:"required"`
}

// CreateTranscriptReportHandler persists a conversion report.
func CreateTranscriptReportHandler(c *gin.Context) {
	var input TranscriptReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	summary := calculateSummary(input.Courses)
	report := models.TranscriptReport{
		StudentName:       input.StudentName,
		University:        input.University,
		Courses:           datatypes.NewJSONSlice(input.Courses),
		TotalCredits:      summary.TotalCredits,
		OverallGpa4:       summary.OverallGpa4,
		OverallPercentage: summary.OverallPercentage,
	}
	if err := config.DB.Create(&report).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save report: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, report)
}

// ListTranscriptReportsHandler returns saved reports, newest first.
func ListTranscriptReportsHandler(c *gin.Context) {
	var reports []models.TranscriptReport
	if err := config.DB.Order("created_at DESC").Find(&reports).Error; err != nil {
		slog.Error("Failed to fetch transcript reports", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch reports"})
		return
	}
	if reports == nil {
		reports = make([]models.TranscriptReport, 0)
	}
	c.JSON(http.StatusOK, reports)
}

// GetTranscriptReportHandler returns one saved report.
func GetTranscriptReportHandler(c *gin.Context) {
	var report models.TranscriptReport
	if err := config.DB.First(&report, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}
	c.JSON(http.StatusOK, report)
}

// UpdateTranscriptReportHandler replaces the course list of a report and
// recomputes the totals.
func UpdateTranscriptReportHandler(c *gin.Context) {
	var report models.TranscriptReport
	if err := config.DB.First(&report, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}

	var input TranscriptReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	summary := calculateSummary(input.Courses)
	report.StudentName = input.StudentName
	report.University = input.University
	report.Courses = datatypes.NewJSONSlice(input.Courses)
	report.TotalCredits = summary.TotalCredits
	report.OverallGpa4 = summary.OverallGpa4
	report.OverallPercentage = summary.OverallPercentage
	if err := config.DB.Save(&report).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update report"})
		return
	}
	c.JSON(http.StatusOK, report)
}

// DeleteTranscriptReportHandler removes a saved report.
func DeleteTranscriptReportHandler(c *gin.Context) {
	var report models.TranscriptReport
	if err := config.DB.First(&report, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}
	if err := config.DB.Delete(&report).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete report"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Report deleted successfully"})
}
