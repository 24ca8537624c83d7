package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/cloverwhale/cafe-and-wifi/form"
	"github.com/cloverwhale/cafe-and-wifi/store"
)

var exportHeader = []string{
	"Name", "Location", "Map URL", "Image URL",
	"Wifi", "Sockets", "Toilet", "Calls", "Seats", "Coffee Price",
}

func ListCafes(cafes *store.CafeStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := cafes.All()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cafes"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"cafes": all})
	}
}

func About() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        "Cafe & Wifi",
			"description": "A curated directory of cafes that are good to work from.",
		})
	}
}

// NewCafeForm returns the blank form shape for the add page.
func NewCafeForm() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"form": form.CafeForm{}})
	}
}

func CreateCafe(cafes *store.CafeStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var f form.CafeForm
		if errs := form.Bind(c, &f); errs != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
			return
		}

		if err := cafes.Create(f.Cafe(), currentUserID(c)); err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				c.JSON(http.StatusConflict, gin.H{"error": "Error add cafe, Please try again."})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add cafe"})
			return
		}
		c.Redirect(http.StatusSeeOther, "/")
	}
}

// EditCafeForm returns the current values, amenity flags rendered Y/N.
func EditCafeForm(cafes *store.CafeStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cafe ID format"})
			return
		}

		cafe, err := cafes.ByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cafe not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cafe"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"form": form.FromCafe(cafe)})
	}
}

func UpdateCafe(cafes *store.CafeStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cafe ID format"})
			return
		}

		cafe, err := cafes.ByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cafe not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cafe"})
			return
		}

		var f form.CafeForm
		if errs := form.Bind(c, &f); errs != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
			return
		}

		f.Apply(cafe)
		if err := cafes.Update(cafe, currentUserID(c)); err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				c.JSON(http.StatusConflict, gin.H{"error": "A cafe with that name already exists."})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cafe"})
			return
		}
		c.Redirect(http.StatusSeeOther, "/")
	}
}

// DeleteCafe removes the row. AdminOnly middleware has already vetted
// the caller.
func DeleteCafe(cafes *store.CafeStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cafe ID format"})
			return
		}

		if err := cafes.Delete(id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cafe not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete cafe"})
			return
		}
		c.Redirect(http.StatusSeeOther, "/")
	}
}

// ExportCafes streams the full listing as an xlsx workbook.
func ExportCafes(cafes *store.CafeStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := cafes.All()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cafes"})
			return
		}

		xl := excelize.NewFile()
		defer xl.Close()

		sheet := xl.GetSheetName(0)
		for col, title := range exportHeader {
			cell, _ := excelize.CoordinatesToCellName(col+1, 1)
			xl.SetCellValue(sheet, cell, title)
		}
		for i, cafe := range all {
			values := []any{
				cafe.Name, cafe.Location, cafe.MapURL, cafe.ImgURL,
				form.FormatYesNo(cafe.HasWifi), form.FormatYesNo(cafe.HasSockets),
				form.FormatYesNo(cafe.HasToilet), form.FormatYesNo(cafe.CanTakeCalls),
				cafe.Seats, cafe.CoffeePrice,
			}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
				xl.SetCellValue(sheet, cell, v)
			}
		}

		c.Header("Content-Disposition", `attachment; filename="cafes.xlsx"`)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := xl.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write workbook"})
		}
	}
}

// ImportCafes bulk-loads cafes from an uploaded xlsx. Rows use the
// export column order; the header row and rows missing any required
// column are skipped.
func ImportCafes(cafes *store.CafeStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to open Excel file"})
			return
		}
		defer file.Close()

		xl, err := excelize.OpenReader(file)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse Excel file"})
			return
		}
		defer xl.Close()

		rows, err := xl.GetRows(xl.GetSheetName(0))
		if err != nil || len(rows) < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel must have at least one row of data"})
			return
		}

		userID := currentUserID(c)
		imported := 0
		skipped := 0
		for _, row := range rows[1:] {
			f, ok := rowToForm(row)
			if !ok {
				skipped++
				continue
			}
			if err := cafes.Create(f.Cafe(), userID); err != nil {
				skipped++
				continue
			}
			imported++
		}

		if imported == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No valid rows found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "count": imported, "skipped": skipped})
	}
}

func rowToForm(row []string) (*form.CafeForm, bool) {
	if len(row) < 8 {
		return nil, false
	}
	cell := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}
	f := &form.CafeForm{
		Name:         cell(0),
		Location:     cell(1),
		MapURL:       cell(2),
		ImgURL:       cell(3),
		HasWifi:      cell(4),
		HasSockets:   cell(5),
		HasToilet:    cell(6),
		CanTakeCalls: cell(7),
		Seats:        cell(8),
		CoffeePrice:  cell(9),
	}
	if f.Name == "" || f.Location == "" || f.MapURL == "" || f.ImgURL == "" {
		return nil, false
	}
	return f, true
}

func currentUserID(c *gin.Context) uint {
	if v, exists := c.Get("user_id"); exists {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
