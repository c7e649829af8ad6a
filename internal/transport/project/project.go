package project

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainproject "github.com/alanyang/projecthub/internal/domain/project"
	projectsvc "github.com/alanyang/projecthub/internal/service/project"
)

func Register(rg *gin.RouterGroup, svc *projectsvc.Service) {
	rg.POST("/", createProject(svc))
	rg.GET("/", listProjects(svc))
	rg.GET("/:id", getProject(svc))
	rg.PATCH("/:id", updateProject(svc))
	rg.POST("/:id/state", transitionProject(svc))
	rg.DELETE("/:id", deleteProject(svc))
}

type createProjectReq struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type updateProjectReq struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type transitionProjectReq struct {
	State string `json:"state" binding:"required"`
}

func createProject(svc *projectsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createProjectReq
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, domainproject.ValidationError{Message: err.Error()})
			return
		}

		p, err := svc.Create(c.Request.Context(), req.Name, req.Description)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, p)
	}
}

func getProject(svc *projectsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			writeError(c, domainproject.ValidationError{Message: "invalid project id"})
			return
		}

		p, err := svc.GetByID(c.Request.Context(), id)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func listProjects(svc *projectsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "0"))

		var state *domainproject.State
		if raw := c.Query("state"); raw != "" {
			parsed, err := domainproject.ParseState(raw)
			if err != nil {
				writeError(c, err)
				return
			}
			state = &parsed
		}

		result, err := svc.List(c.Request.Context(), page, pageSize, state)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func updateProject(svc *projectsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			writeError(c, domainproject.ValidationError{Message: "invalid project id"})
			return
		}

		var req updateProjectReq
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, domainproject.ValidationError{Message: err.Error()})
			return
		}

		p, err := svc.Update(c.Request.Context(), id, projectsvc.UpdateParams{
			Name:        req.Name,
			Description: req.Description,
		})
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func transitionProject(svc *projectsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			writeError(c, domainproject.ValidationError{Message: "invalid project id"})
			return
		}

		var req transitionProjectReq
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, domainproject.ValidationError{Message: err.Error()})
			return
		}

		target, err := domainproject.ParseState(req.State)
		if err != nil {
			writeError(c, err)
			return
		}

		p, err := svc.TransitionState(c.Request.Context(), id, target)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func deleteProject(svc *projectsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			writeError(c, domainproject.ValidationError{Message: "invalid project id"})
			return
		}

		if err := svc.Delete(c.Request.Context(), id); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
