package mazeapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/katalvlaran/mazeagent/api/i"
	"github.com/katalvlaran/mazeagent/gridgraph"
	"github.com/katalvlaran/mazeagent/internal/ctxlog"
	"github.com/katalvlaran/mazeagent/maze"
	"github.com/katalvlaran/mazeagent/render"
	"github.com/katalvlaran/mazeagent/search"
)

// Defaults fills fields a request leaves out.
type Defaults struct {
	Size            int
	WallProbability float64
	Strategy        search.Strategy
}

// Controller handles HTTP requests for generating and solving mazes.
type Controller struct {
	store    i.MazeStore
	defaults Defaults
	renderer *render.Renderer
}

// NewController creates a new Controller.
func NewController(store i.MazeStore, defaults Defaults) *Controller {
	return &Controller{
		store:    store,
		defaults: defaults,
		renderer: render.New(),
	}
}

// RegisterPublic registers the maze routes.
func (c *Controller) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", c.create)
		mazes.POST("/import", c.importMaze)
		mazes.GET("/:id", c.get)
		mazes.DELETE("/:id", c.delete)
		mazes.GET("/:id/render", c.render)
		mazes.POST("/:id/solve", c.solve)
		mazes.POST("/:id/race", c.race)
	}
}

// create handles maze generation.
func (c *Controller) create(ctx *gin.Context) {
	var request CreateMazeRequest
	if err := bindOptional(ctx, &request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	size, prob := c.defaults.Size, c.defaults.WallProbability
	if request.Size != nil {
		size = *request.Size
	}
	if request.WallProbability != nil {
		prob = *request.WallProbability
	}
	layout, err := maze.ParseLayout(request.Layout)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	opts := []maze.Option{maze.WithSize(size), maze.WithWallProbability(prob), maze.WithLayout(layout)}
	if request.Seed != 0 {
		opts = append(opts, maze.WithSeed(request.Seed))
	}
	if request.Start != nil {
		opts = append(opts, maze.WithStart(*request.Start))
	}
	if request.Goal != nil {
		opts = append(opts, maze.WithGoal(*request.Goal))
	}
	if request.Solvable {
		opts = append(opts, maze.WithSolvable())
	}

	m, err := maze.Generate(opts...)
	if err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	id := c.store.Save(m)
	ctxlog.FromContext(ctx.Request.Context()).Debug("Maze generated.", "id", id, "size", size, "opened", len(m.Opened))
	ctx.JSON(http.StatusCreated, newMazeResponse(id, m))
}

// importMaze handles uploading a maze in the text codec.
func (c *Controller) importMaze(ctx *gin.Context) {
	var request ImportMazeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	g, err := gridgraph.FromRows(request.Rows)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	m, err := maze.FromGrid(g)
	if err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	id := c.store.Save(m)
	ctx.JSON(http.StatusCreated, newMazeResponse(id, m))
}

// get returns a stored maze.
func (c *Controller) get(ctx *gin.Context) {
	id, m, ok := c.lookup(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, newMazeResponse(id, m))
}

// delete removes a stored maze.
func (c *Controller) delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return
	}
	if !c.store.Delete(id) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "maze not found"})
		return
	}
	ctx.Status(http.StatusNoContent)
}

// render returns the maze as text, with the path of ?strategy= overlaid.
func (c *Controller) render(ctx *gin.Context) {
	_, m, ok := c.lookup(ctx)
	if !ok {
		return
	}

	var path []gridgraph.Cell
	if name := ctx.Query("strategy"); name != "" {
		s, err := search.ParseStrategy(name)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		res, err := s.FindPath(m.Grid, m.Start, m.Goal, search.WithContext(ctx.Request.Context()))
		if err != nil {
			ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		path = res.Path
	}

	frame, err := c.renderer.Frame(m.Grid, path)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(frame))
}

// solve runs one strategy on a stored maze.
func (c *Controller) solve(ctx *gin.Context) {
	_, m, ok := c.lookup(ctx)
	if !ok {
		return
	}
	var request SolveRequest
	if err := bindOptional(ctx, &request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	strategy := c.defaults.Strategy
	if request.Strategy != "" {
		var err error
		if strategy, err = search.ParseStrategy(request.Strategy); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	start, goal := endpoints(m, request.Start, request.Goal)

	began := time.Now()
	res, err := strategy.FindPath(m.Grid, start, goal,
		search.WithContext(ctx.Request.Context()),
		search.WithMaxExpansions(request.MaxExpansions),
	)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	if res.Found {
		if err = search.ValidatePath(m.Grid, start, goal, res.Path); err != nil {
			ctxlog.FromContext(ctx.Request.Context()).Error("Search returned an invalid path.", "strategy", strategy, "error", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}
	ctxlog.FromContext(ctx.Request.Context()).Debug("Maze solved.",
		"strategy", strategy, "found", res.Found, "steps", res.Steps(), "expanded", res.Expanded)
	ctx.JSON(http.StatusOK, newSolveResponse(res, time.Since(began)))
}

// race runs several strategies concurrently on a stored maze.
func (c *Controller) race(ctx *gin.Context) {
	_, m, ok := c.lookup(ctx)
	if !ok {
		return
	}
	var request RaceRequest
	if err := bindOptional(ctx, &request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	strategies := make([]search.Strategy, 0, len(request.Strategies))
	for _, name := range request.Strategies {
		s, err := search.ParseStrategy(name)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		strategies = append(strategies, s)
	}
	start, goal := endpoints(m, request.Start, request.Goal)

	began := time.Now()
	results, err := search.Race(ctx.Request.Context(), m.Grid, start, goal, strategies,
		search.WithMaxExpansions(request.MaxExpansions))
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	elapsed := time.Since(began)
	response := RaceResponse{Results: make([]SolveResponse, len(results)), TimeTakenMs: millis(elapsed)}
	for k, r := range results {
		response.Results[k] = newSolveResponse(r, elapsed)
	}
	ctx.JSON(http.StatusOK, response)
}

// lookup resolves the :id parameter, writing 400 or 404 on failure.
func (c *Controller) lookup(ctx *gin.Context) (uuid.UUID, *maze.Maze, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return uuid.Nil, nil, false
	}
	m, ok := c.store.Get(id)
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "maze not found"})
		return uuid.Nil, nil, false
	}
	return id, m, true
}

// bindOptional binds a JSON body if there is one; an empty body keeps zero values.
func bindOptional(ctx *gin.Context, obj any) error {
	if ctx.Request.Body == nil || ctx.Request.Body == http.NoBody {
		return nil
	}
	if err := ctx.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func endpoints(m *maze.Maze, start, goal *gridgraph.Cell) (gridgraph.Cell, gridgraph.Cell) {
	s, g := m.Start, m.Goal
	if start != nil {
		s = *start
	}
	if goal != nil {
		g = *goal
	}
	return s, g
}

// statusFor maps search errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, search.ErrUnknownStrategy), errors.Is(err, search.ErrOptionViolation):
		return http.StatusBadRequest
	case errors.Is(err, search.ErrInvalidInput):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
