package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Yofukashi625/fangyang-wiki-app/config"
	"github.com/Yofukashi625/fangyang-wiki-app/models"

	"github.com/gin-gonic/gin"
	"github.com/google/generative-ai-go/genai"
	"gorm.io/datatypes"
)

// SchoolInput is the payload for creating or updating a school.
type SchoolInput struct {
	Name          string                    `json:"name" binding:"required"`
	Location      string                    `json:"location"`
	Country       string                    `json:"country"`
	Type          string                    `json:"type"`
	Programs      []string                  `json:"programs"`
	Department    string                    `json:"department"`
	QsRanking     *int                      `json:"qsRanking"`
	UsNewsRanking *int                      `json:"usNewsRanking"`
	TuitionRange  string                    `json:"tuitionRange"`
	Requirements  models.SchoolRequirements `json:"requirements"`
	Tags          []string                  `json:"tags"`
	Description   string                    `json:"description"`
	IsPartner     bool                      `json:"isPartner"`
}

func (in SchoolInput) toModel() models.School {
	schoolType := in.Type
	if schoolType == "" {
		schoolType = models.SchoolTypeUniversity
	}
	return models.School{
		Name:          in.Name,
		Location:      in.Location,
		Country:       in.Country,
		Type:          schoolType,
		Programs:      datatypes.NewJSONSlice(in.Programs),
		Department:    in.Department,
		QsRanking:     in.QsRanking,
		UsNewsRanking: in.UsNewsRanking,
		TuitionRange:  in.TuitionRange,
		Requirements:  datatypes.NewJSONType(in.Requirements),
		Tags:          datatypes.NewJSONSlice(in.Tags),
		Description:   in.Description,
		IsPartner:     in.IsPartner,
	}
}

// ListSchoolsHandler returns the filtered, paginated school list. Search,
// country/type selection and the score eligibility filter run in memory over
// the full list because requirement fields are free text; the result keeps
// the stored order (newest first) with no relevance re-sort.
func ListSchoolsHandler(c *gin.Context) {
	var schools []models.School
	if err := config.DB.Order("created_at DESC").Find(&schools).Error; err != nil {
		slog.Error("Failed to fetch schools from DB", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch schools"})
		return
	}

	filter := SchoolFilter{
		SearchTerm: c.Query("q"),
		Country:    c.Query("country"),
		Type:       c.Query("type"),
		ScoreType:  c.Query("scoreType"),
	}
	if filter.ScoreType != "" {
		if v, err := strconv.ParseFloat(c.Query("scoreValue"), 64); err == nil {
			filter.ScoreValue = v
			filter.HasScore = true
		}
	}

	filtered := FilterSchools(schools, filter)

	page, pageSize := pageParams(c)
	pageItems, currentPage, totalPages := PaginateSlice(filtered, page, pageSize)

	c.JSON(http.StatusOK, NewPaginatedResponse(pageItems, int64(len(filtered)), currentPage, totalPages, pageSize))
}

// GetSchoolHandler returns one school by id.
func GetSchoolHandler(c *gin.Context) {
	var school models.School
	if err := config.DB.First(&school, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "School not found"})
		return
	}
	c.JSON(http.StatusOK, school)
}

// CreateSchoolHandler adds a school to the database.
func CreateSchoolHandler(c *gin.Context) {
	var input SchoolInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	school := input.toModel()
	if err := config.DB.Create(&school).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create school: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, school)
}

// UpdateSchoolHandler replaces the editable fields of a school.
func UpdateSchoolHandler(c *gin.Context) {
	var school models.School
	if err := config.DB.First(&school, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "School not found"})
		return
	}

	var input SchoolInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	updated := input.toModel()
	updated.ID = school.ID
	updated.CreatedAt = school.CreatedAt
	if err := config.DB.Save(&updated).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update school"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteSchoolHandler removes a school.
func DeleteSchoolHandler(c *gin.Context) {
	var school models.School
	if err := config.DB.First(&school, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "School not found"})
		return
	}
	if err := config.DB.Delete(&school).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete school"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "School deleted successfully"})
}

var schoolDocumentSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"name":     {Type: genai.TypeString},
		"location": {Type: genai.TypeString},
		"country":  {Type: genai.TypeString},
		"type": {
			Type: genai.TypeString,
			Enum: []string{models.SchoolTypeGraduate, models.SchoolTypeUniversity, models.SchoolTypeHighSchool, models.SchoolTypeLanguage},
		},
		"programs":      {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"department":    {Type: genai.TypeString},
		"qsRanking":     {Type: genai.TypeNumber},
		"usNewsRanking": {Type: genai.TypeNumber},
		"tuitionRange":  {Type: genai.TypeString},
		"requirements": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"gpa":   {Type: genai.TypeString},
				"toefl": {Type: genai.TypeString},
				"ielts": {Type: genai.TypeString},
				"sat":   {Type: genai.TypeString},
			},
		},
		"tags":        {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"description": {Type: genai.TypeString},
	},
}

// ParseSchoolDocumentHandler sends an uploaded brochure or manual to Gemini
// and returns the extracted School fields. Nothing is persisted here; the
// client reviews the draft before creating the school.
func ParseSchoolDocumentHandler(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, 20<<20)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File not provided or too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open uploaded file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return
	}

	prompt := []genai.Part{
		genai.Text("You are an expert data entry assistant for the study abroad agency \"FangYang Nexus\". " +
			"Analyze the attached partner school document \"" + fileHeader.Filename + "\" and extract the school profile: " +
			"name, location (City, State/Province), country, type, programs (key program names), " +
			"department (specific college or faculty if mentioned), qsRanking (global, null if absent), " +
			"usNewsRanking (national, null if absent), tuitionRange (e.g. \"$30k - $40k\"), " +
			"requirements (gpa, toefl, ielts, sat as free text, e.g. \"3.5+\"), " +
			"tags (keywords like STEM, Boarding, Urban) and a short description in Traditional Chinese. " +
			"If information is missing, use reasonable estimations based on the school name or leave blank."),
		genai.Blob{MIMEType: fileHeader.Header.Get("Content-Type"), Data: data},
	}

	jsonResponse, err := generateJSON(c.Request.Context(), schoolDocumentSchema, prompt...)
	if err != nil {
		slog.Error("Gemini school document recognition failed", "error", err, "file", fileHeader.Filename)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Gemini recognition error: " + err.Error()})
		return
	}

	var draft SchoolInput
	if err := json.Unmarshal(jsonResponse, &draft); err != nil {
		slog.Error("Gemini returned malformed school JSON", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to parse recognition result"})
		return
	}

	c.JSON(http.StatusOK, draft)
}
