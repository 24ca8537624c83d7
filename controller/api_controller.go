package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cloverwhale/cafe-and-wifi/form"
	"github.com/cloverwhale/cafe-and-wifi/store"
)

const (
	locationNotFound = "Sorry, we don't have a cafe at that location."
	cafeIDNotFound   = "Sorry a cafe with that id was not found in the database."
)

// GetRandomCafe picks one cafe uniformly among the rows that exist.
func GetRandomCafe(cafes *store.DirectoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		cafe, err := cafes.Random()
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"Not Found": "There are no cafes in the database yet."}})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cafe"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"cafe": cafe})
	}
}

func GetAllCafes(cafes *store.DirectoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := cafes.All()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cafes"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"cafes": all})
	}
}

// SearchCafes matches on exact location; an empty result is a 404, not
// an empty success.
func SearchCafes(cafes *store.DirectoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		matches, err := cafes.ByLocation(c.Query("loc"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search cafes"})
			return
		}
		if len(matches) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"Not Found": locationNotFound}})
			return
		}
		c.JSON(http.StatusOK, gin.H{"cafes": matches})
	}
}

func AddCafe(cafes *store.DirectoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var f form.AddDirectoryCafeForm
		if errs := form.Bind(c, &f); errs != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
			return
		}
		cafe, errs := f.DirectoryCafe()
		if errs != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
			return
		}

		if err := cafes.Create(cafe); err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				c.JSON(http.StatusConflict, gin.H{"error": "A cafe with that name already exists."})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add cafe"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"response": gin.H{"success": "Successfully added the new cafe."}})
	}
}

// UpdateCafePrice is a partial update: only coffee_price changes.
func UpdateCafePrice(cafes *store.DirectoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cafe ID format"})
			return
		}

		if err := cafes.UpdatePrice(id, c.PostForm("new_price")); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"Not Found": cafeIDNotFound}})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update price"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"response": gin.H{"success": "Successfully update the price."}})
	}
}

// ReportClosed deletes the row. The shared-secret check happens in
// middleware before this handler runs.
func ReportClosed(cafes *store.DirectoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cafe ID format"})
			return
		}

		if err := cafes.Delete(id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": cafeIDNotFound})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete cafe"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"response": gin.H{"success": "Successfully deleted the cafe from the database."}})
	}
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
