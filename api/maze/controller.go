// Package mazeapi exposes maze generation, download, import and solving over HTTP.
package mazeapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/beka-birhanu/amazeing/api/access"
	"github.com/beka-birhanu/amazeing/domain"
	"github.com/beka-birhanu/amazeing/maze"
	"github.com/beka-birhanu/amazeing/service"
	"github.com/beka-birhanu/amazeing/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// maxImportBytes bounds the size of an uploaded maze file.
const maxImportBytes = 1 << 20

// MazeController serves the maze routes.
type MazeController struct {
	mazeService i.MazeService
	logger      i.Logger
}

// NewMazeController initializes a MazeController.
func NewMazeController(ms i.MazeService, logger i.Logger) (*MazeController, error) {
	if ms == nil || logger == nil {
		return nil, errors.New("maze controller needs a service and a logger")
	}
	return &MazeController{
		mazeService: ms,
		logger:      logger,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.generate)
		mazes.POST("/import", mc.importMaze)
		mazes.GET("/:ID", mc.byID)
		mazes.GET("/:ID/file", mc.file)
	}
}

// RegisterProtected registers routes that need the maze's solution token.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.GET("/:ID/solution", mc.solution)
		mazes.DELETE("/:ID", mc.delete)
	}
}

// generate handles maze generation requests.
func (mc *MazeController) generate(ctx *gin.Context) {
	var request GenerateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, token, err := mc.mazeService.Generate(ctx, request.toService())
	if err != nil {
		mc.writeError(ctx, err)
		return
	}

	mc.respondWithMaze(ctx, http.StatusCreated, record, token)
}

// importMaze stores a maze uploaded in its text form.
func (mc *MazeController) importMaze(ctx *gin.Context) {
	data, err := io.ReadAll(http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxImportBytes))
	if err != nil {
		ctx.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
		return
	}
	if len(data) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "empty maze file"})
		return
	}

	record, token, err := mc.mazeService.Import(ctx, data)
	if err != nil {
		mc.writeError(ctx, err)
		return
	}

	mc.respondWithMaze(ctx, http.StatusCreated, record, token)
}

// byID returns a stored maze without its solution.
func (mc *MazeController) byID(ctx *gin.Context) {
	id, ok := mc.mazeID(ctx)
	if !ok {
		return
	}

	record, err := mc.mazeService.ByID(ctx, id)
	if err != nil {
		mc.writeError(ctx, err)
		return
	}

	mc.respondWithMaze(ctx, http.StatusOK, record, "")
}

// file returns the maze in its text form. The solution line is left out.
func (mc *MazeController) file(ctx *gin.Context) {
	id, ok := mc.mazeID(ctx)
	if !ok {
		return
	}

	record, err := mc.mazeService.ByID(ctx, id)
	if err != nil {
		mc.writeError(ctx, err)
		return
	}

	m, err := record.Maze()
	if err != nil {
		mc.writeError(ctx, err)
		return
	}
	m.Solution, m.Solved = nil, false

	data, err := maze.Marshal(m)
	if err != nil {
		mc.writeError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", id.String()+".txt"))
	ctx.Data(http.StatusOK, "text/plain; charset=utf-8", data)
}

// solution returns the shortest path of a maze the caller holds a token for.
func (mc *MazeController) solution(ctx *gin.Context) {
	id, ok := mc.authorized(ctx)
	if !ok {
		return
	}

	record, err := mc.mazeService.ByID(ctx, id)
	if err != nil {
		mc.writeError(ctx, err)
		return
	}
	m, err := record.Maze()
	if err != nil {
		mc.writeError(ctx, err)
		return
	}

	path, err := mc.mazeService.Solution(ctx, id)
	if err != nil {
		mc.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toSolutionResponse(id.String(), m.Entry, path))
}

// delete removes a maze the caller holds a token for.
func (mc *MazeController) delete(ctx *gin.Context) {
	id, ok := mc.authorized(ctx)
	if !ok {
		return
	}

	if err := mc.mazeService.Delete(ctx, id); err != nil {
		mc.writeError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (mc *MazeController) respondWithMaze(ctx *gin.Context, status int, record *domain.MazeRecord, token string) {
	m, err := record.Maze()
	if err != nil {
		mc.writeError(ctx, err)
		return
	}
	ctx.JSON(status, toMazeResponse(record, m, token))
}

// mazeID parses the :ID route parameter, answering 400 when it is not a UUID.
func (mc *MazeController) mazeID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return uuid.Nil, false
	}
	return id, true
}

// authorized is mazeID plus a check that the request token names the maze.
func (mc *MazeController) authorized(ctx *gin.Context) (uuid.UUID, bool) {
	id, ok := mc.mazeID(ctx)
	if !ok {
		return uuid.Nil, false
	}

	claims, ok := access.Claims(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return uuid.Nil, false
	}
	if err := mc.mazeService.Authorize(claims, id); err != nil {
		ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return uuid.Nil, false
	}
	return id, true
}

// writeError maps service and maze errors onto HTTP statuses.
func (mc *MazeController) writeError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrMazeNotFound):
		status = http.StatusNotFound
	case errors.Is(err, maze.ErrUnreachableExit):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrMazeTooLarge),
		errors.Is(err, maze.ErrInvalidConfig),
		errors.Is(err, maze.ErrMalformedGrid),
		errors.Is(err, maze.ErrInvalidCoordinate),
		errors.Is(err, maze.ErrInvalidPath),
		errors.Is(err, maze.ErrInvalidAdjacency):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		mc.logger.Error(fmt.Sprintf("Request %s %s failed: %v", ctx.Request.Method, ctx.Request.URL.Path, err))
		ctx.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	ctx.JSON(status, gin.H{"error": err.Error()})
}
