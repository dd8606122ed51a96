package utils

import "github.com/gin-gonic/gin"

// Problem is the error body returned by every endpoint.
type Problem struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func AbortWithProblem(c *gin.Context, status int, title, detail string) {
	c.AbortWithStatusJSON(status, Problem{Title: title, Status: status, Detail: detail})
}
