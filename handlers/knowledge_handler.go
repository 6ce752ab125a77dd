package handlers

import (
	"net/http"

	"legalgpt-portal/app"
	"legalgpt-portal/knowledge"

	"github.com/gin-gonic/gin"
)

// KnowledgeHandler serves the reference data as JSON
type KnowledgeHandler struct {
	kb       *knowledge.KnowledgeBase
	sections []app.SectionView
}

// NewKnowledgeHandler creates a new knowledge handler
func NewKnowledgeHandler(kb *knowledge.KnowledgeBase, sections []app.SectionView) *KnowledgeHandler {
	return &KnowledgeHandler{kb: kb, sections: sections}
}

// GetSections handles GET /api/sections
func (h *KnowledgeHandler) GetSections(c *gin.Context) {
	respondOK(c, http.StatusOK, h.sections)
}

// GetProvisions handles GET /api/provisions?category=
// An unknown category yields an empty list, matching the page filter.
func (h *KnowledgeHandler) GetProvisions(c *gin.Context) {
	filter := c.DefaultQuery("category", knowledge.AllCategories)
	respondOK(c, http.StatusOK, gin.H{
		"filter":     filter,
		"categories": h.kb.Select(filter),
	})
}

// GetCases handles GET /api/cases
func (h *KnowledgeHandler) GetCases(c *gin.Context) {
	respondOK(c, http.StatusOK, h.kb.Cases())
}

// GetProject handles GET /api/project
func (h *KnowledgeHandler) GetProject(c *gin.Context) {
	respondOK(c, http.StatusOK, h.kb.Project())
}
