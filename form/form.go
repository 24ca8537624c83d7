// Package form turns raw submissions into typed values or a list of
// per-field errors. A submission is never partially applied: either the
// whole struct validates or the caller gets the error list.
package form

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/cloverwhale/cafe-and-wifi/model"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// CafeForm is the session surface's add/edit submission. Amenity flags
// arrive as free text and go through ParseYesNo.
type CafeForm struct {
	Name         string `form:"name" binding:"required"`
	Location     string `form:"location" binding:"required"`
	MapURL       string `form:"map_url" binding:"required,url"`
	ImgURL       string `form:"img_url" binding:"required,url"`
	HasWifi      string `form:"has_wifi" binding:"required"`
	HasSockets   string `form:"has_sockets" binding:"required"`
	HasToilet    string `form:"has_toilet" binding:"required"`
	CanTakeCalls string `form:"can_take_calls" binding:"required"`
	Seats        string `form:"seats"`
	CoffeePrice  string `form:"coffee_price"`
}

type RegisterForm struct {
	Email    string `form:"email" binding:"required,email"`
	Name     string `form:"name" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type LoginForm struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// AddDirectoryCafeForm is the public API's /add submission; the amenity
// flags arrive as "true"/"false" text.
type AddDirectoryCafeForm struct {
	Name         string `form:"name" binding:"required"`
	MapURL       string `form:"map_url" binding:"required"`
	ImgURL       string `form:"img_url" binding:"required"`
	Location     string `form:"location" binding:"required"`
	Seats        string `form:"seats" binding:"required"`
	HasToilet    string `form:"has_toilet" binding:"required"`
	HasWifi      string `form:"has_wifi" binding:"required"`
	HasSockets   string `form:"has_sockets" binding:"required"`
	CanTakeCalls string `form:"can_take_calls" binding:"required"`
	CoffeePrice  string `form:"coffee_price"`
}

// Bind binds the request into dst and reports field-level errors, or
// nil when the submission is valid.
func Bind(c *gin.Context, dst any) []FieldError {
	if err := c.ShouldBind(dst); err != nil {
		return fieldErrors(err)
	}
	return nil
}

func fieldErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "", Message: "Malformed submission."}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: strings.ToLower(fe.Field()), Message: messageFor(fe.Tag())})
	}
	return out
}

func messageFor(tag string) string {
	switch tag {
	case "required":
		return "This field is required."
	case "url":
		return "Must be a well-formed URL."
	case "email":
		return "Must be a valid email address."
	}
	return "Invalid value."
}

// Cafe converts the validated form into an entity.
func (f *CafeForm) Cafe() *model.Cafe {
	return &model.Cafe{
		Name:         f.Name,
		Location:     f.Location,
		MapURL:       f.MapURL,
		ImgURL:       f.ImgURL,
		HasWifi:      ParseYesNo(f.HasWifi),
		HasSockets:   ParseYesNo(f.HasSockets),
		HasToilet:    ParseYesNo(f.HasToilet),
		CanTakeCalls: ParseYesNo(f.CanTakeCalls),
		Seats:        f.Seats,
		CoffeePrice:  f.CoffeePrice,
	}
}

// Apply copies the validated form onto an existing entity, leaving id
// and timestamps to the store.
func (f *CafeForm) Apply(cafe *model.Cafe) {
	cafe.Name = f.Name
	cafe.Location = f.Location
	cafe.MapURL = f.MapURL
	cafe.ImgURL = f.ImgURL
	cafe.HasWifi = ParseYesNo(f.HasWifi)
	cafe.HasSockets = ParseYesNo(f.HasSockets)
	cafe.HasToilet = ParseYesNo(f.HasToilet)
	cafe.CanTakeCalls = ParseYesNo(f.CanTakeCalls)
	cafe.Seats = f.Seats
	cafe.CoffeePrice = f.CoffeePrice
}

// FromCafe renders an entity back into form values, amenity flags as
// Y/N, for the edit view.
func FromCafe(cafe *model.Cafe) *CafeForm {
	return &CafeForm{
		Name:         cafe.Name,
		Location:     cafe.Location,
		MapURL:       cafe.MapURL,
		ImgURL:       cafe.ImgURL,
		HasWifi:      FormatYesNo(cafe.HasWifi),
		HasSockets:   FormatYesNo(cafe.HasSockets),
		HasToilet:    FormatYesNo(cafe.HasToilet),
		CanTakeCalls: FormatYesNo(cafe.CanTakeCalls),
		Seats:        cafe.Seats,
		CoffeePrice:  cafe.CoffeePrice,
	}
}

// DirectoryCafe converts the API form, parsing the "true"/"false" flag
// text. A flag that parses as neither is a field error.
func (f *AddDirectoryCafeForm) DirectoryCafe() (*model.DirectoryCafe, []FieldError) {
	var errs []FieldError
	parse := func(field, value string) bool {
		b, err := strconv.ParseBool(strings.ToLower(value))
		if err != nil {
			errs = append(errs, FieldError{Field: field, Message: "Must be true or false."})
		}
		return b
	}
	cafe := &model.DirectoryCafe{
		Name:         f.Name,
		MapURL:       f.MapURL,
		ImgURL:       f.ImgURL,
		Location:     f.Location,
		Seats:        f.Seats,
		HasToilet:    parse("has_toilet", f.HasToilet),
		HasWifi:      parse("has_wifi", f.HasWifi),
		HasSockets:   parse("has_sockets", f.HasSockets),
		CanTakeCalls: parse("can_take_calls", f.CanTakeCalls),
		CoffeePrice:  f.CoffeePrice,
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return cafe, nil
}

// ParseYesNo maps free text to a flag: "Y" or "YES" in any case is
// true, everything else (including empty) is false.
func ParseYesNo(s string) bool {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "Y", "YES":
		return true
	}
	return false
}

// FormatYesNo is the display inverse of ParseYesNo.
func FormatYesNo(b bool) string {
	if b {
		return "Y"
	}
	return "N"
}
