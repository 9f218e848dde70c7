package main

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/planwiz/planwiz/internal/model"
)

var scheduler = model.NewScheduler()

// solveRequest mirrors the extraction collaborator's wire shape: the catalog
// arrives as loosely-typed records, the leave day as an optional day name.
type solveRequest struct {
	SelectedSubjects   []string          `json:"selected_subjects" binding:"required"`
	CoursesData        []map[string]any  `json:"courses_data" binding:"required"`
	LeaveDay           string            `json:"leave_day"`
	PreferredFaculties map[string]string `json:"preferred_faculties"`
}

type suggestRequest struct {
	solveRequest
	Candidates []string `json:"candidates" binding:"required"`
}

func (request solveRequest) toModel(ctx *gin.Context) (model.Request, bool) {
	var leaveDay *model.Day
	if request.LeaveDay != "" {
		day, err := model.ParseDay(request.LeaveDay)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return model.Request{}, false
		}
		leaveDay = &day
	}

	return model.Request{
		Courses:     request.SelectedSubjects,
		Catalog:     model.SectionsFromRecords(request.CoursesData),
		LeaveDay:    leaveDay,
		Preferences: request.PreferredFaculties,
	}, true
}

func handleHealth(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func handleGenerate(ctx *gin.Context) {
	var request solveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	modelRequest, ok := request.toModel(ctx)
	if !ok {
		return
	}

	result := scheduler.Solve(modelRequest)
	slog.Info("solved timetable request",
		"subjects", len(modelRequest.Courses),
		"sections", len(modelRequest.Catalog),
		"status", result.Status,
	)
	ctx.JSON(http.StatusOK, result)
}

func handleCheck(ctx *gin.Context) {
	var request solveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	modelRequest, ok := request.toModel(ctx)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"solvable": scheduler.IsSolvable(modelRequest)})
}

func handleSuggest(ctx *gin.Context) {
	var request suggestRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	modelRequest, ok := request.toModel(ctx)
	if !ok {
		return
	}

	addable := scheduler.FilterAddable(ctx.Request.Context(), modelRequest, request.Candidates)
	ctx.JSON(http.StatusOK, gin.H{"addable": addable})
}
