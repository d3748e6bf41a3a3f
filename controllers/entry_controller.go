package controllers

import (
	"net/http"

	"github.com/MohammadaminAlbooyeh/diet-diary/services"
	"github.com/MohammadaminAlbooyeh/diet-diary/utils"

	"github.com/gin-gonic/gin"
)

type EntryController struct {
	Entries *services.EntryService
}

func NewEntryController(s *services.EntryService) *EntryController {
	return &EntryController{Entries: s}
}

// POST /entries/  { "food_name": "apple", "calories": 95, "quantity": 1 }
func (ec *EntryController) Create(c *gin.Context) {
	var req services.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body: " + err.Error()})
		return
	}
	entry, err := ec.Entries.CreateEntry(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// GET /entries/?skip=0&limit=100
func (ec *EntryController) List(c *gin.Context) {
	skip, limit, err := utils.ParsePagination(c, services.DefaultListLimit)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entries, err := ec.Entries.ListEntries(c.Request.Context(), skip, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// GET /entries/:id
func (ec *EntryController) Get(c *gin.Context) {
	id, err := utils.ParseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry, err := ec.Entries.GetEntry(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// DELETE /entries/:id
func (ec *EntryController) Delete(c *gin.Context) {
	id, err := utils.ParseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := ec.Entries.DeleteEntry(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /entries/summary
func (ec *EntryController) Summary(c *gin.Context) {
	sum, err := ec.Entries.Summary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}
