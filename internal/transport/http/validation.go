package http

import (
	"encoding/json"
	"errors"
	"math"
	"math/big"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/light-bringer/catalog-service/internal/app/product/domain"
)

// FieldErrors collects validation messages per request field.
type FieldErrors map[string][]string

// Add records msg for field.
func (e FieldErrors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

const (
	msgStatus   = `Status must be either "In Stock" or "Stock Out"`
	msgDesc     = "Description must be at least 10 characters"
	msgDiscount = "Discount must be between 0 and 100"
	msgCategory = "Invalid category ID"
	msgPrice    = "Price must be a positive number"
	msgImage    = "Image must be a valid URL"
	msgPage     = "Page must be a positive integer"
	msgLimit    = "Limit must be between 1 and 100"
)

// messages maps a failed "field.tag" to the messages it reports. A failed
// required rule also reports the messages of the rules it short-circuits.
var messages = map[string][]string{
	"name.required": {"Category name is required", "Category name must be between 2 and 50 characters"},
	"name.min":      {"Category name must be between 2 and 50 characters"},
	"name.max":      {"Category name must be between 2 and 50 characters"},

	"productName.required": {"Product name is required", "Product name must be between 3 and 100 characters"},
	"productName.min":      {"Product name must be between 3 and 100 characters"},
	"productName.max":      {"Product name must be between 3 and 100 characters"},

	"description.required": {"Product description is required", msgDesc},
	"description.min":      {msgDesc},

	"price.required": {msgPrice},
	"price.gte":      {msgPrice},

	"discount.gte": {msgDiscount},
	"discount.lte": {msgDiscount},

	"image.required": {"Product image URL is required", msgImage},
	"image.weburl":   {msgImage},

	"status.oneof": {msgStatus},

	"category.required": {"Category is required", msgCategory},
	"category.uuid":     {msgCategory},

	"page.gte":  {msgPage},
	"limit.gte": {msgLimit},
	"limit.lte": {msgLimit},
}

// aliases report a form field under a different request key.
var aliases = map[string]string{
	"productName": "name",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("weburl", func(fl validator.FieldLevel) bool {
		return isURL(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// check runs the struct rules on form and translates failures into messages.
func check(form interface{}) FieldErrors {
	errs := FieldErrors{}
	err := validate.Struct(form)
	if err == nil {
		return errs
	}

	var fails validator.ValidationErrors
	if !errors.As(err, &fails) {
		errs.Add("body", err.Error())
		return errs
	}
	for _, fe := range fails {
		field := fe.Field()
		msgs, ok := messages[field+"."+fe.Tag()]
		if !ok {
			msgs = []string{"Invalid value"}
		}
		if alias, ok := aliases[field]; ok {
			field = alias
		}
		for _, msg := range msgs {
			errs.Add(field, msg)
		}
	}
	return errs
}

type categoryBody struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type categoryForm struct {
	Name string `json:"name" validate:"required,min=2,max=50"`
}

// validate returns the trimmed name and description.
func (b *categoryBody) validate() (string, string, FieldErrors) {
	name := trimmed(b.Name)
	return name, trimmed(b.Description), check(&categoryForm{Name: name})
}

type createProductBody struct {
	Name        *string      `json:"name"`
	Description *string      `json:"description"`
	Price       *json.Number `json:"price"`
	Discount    *json.Number `json:"discount"`
	Image       *string      `json:"image"`
	Status      *string      `json:"status"`
	Category    *string      `json:"category"`
}

type createProductForm struct {
	Name        string   `json:"productName" validate:"required,min=3,max=100"`
	Description string   `json:"description" validate:"required,min=10"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Discount    *float64 `json:"discount" validate:"omitnil,gte=0,lte=100"`
	Image       string   `json:"image" validate:"required,weburl"`
	Status      *string  `json:"status" validate:"omitnil,oneof='In Stock' 'Stock Out'"`
	Category    string   `json:"category" validate:"required,uuid"`
}

type productInput struct {
	Name        string
	Description string
	Price       *domain.Money
	Discount    *domain.Discount
	Image       string
	Status      domain.StockStatus
	CategoryID  string
}

func (b *createProductBody) validate() (*productInput, FieldErrors) {
	price := decimal(b.Price)
	discount := decimal(b.Discount)
	in := &productInput{
		Name:        trimmed(b.Name),
		Description: trimmed(b.Description),
		Image:       trimmed(b.Image),
		CategoryID:  trimmed(b.Category),
	}

	errs := check(&createProductForm{
		Name:        in.Name,
		Description: in.Description,
		Price:       asFloat(b.Price, price),
		Discount:    asFloat(b.Discount, discount),
		Image:       in.Image,
		Status:      b.Status,
		Category:    in.CategoryID,
	})
	if len(errs) > 0 {
		return in, errs
	}

	in.Price = domain.NewMoneyFromRat(price)
	if discount != nil {
		d, err := domain.NewDiscount(discount)
		if err != nil {
			errs.Add("discount", msgDiscount)
			return in, errs
		}
		in.Discount = d
	}
	if b.Status != nil {
		status, err := domain.ParseStockStatus(*b.Status)
		if err != nil {
			errs.Add("status", msgStatus)
			return in, errs
		}
		in.Status = status
	}
	return in, errs
}

type updateProductBody struct {
	Status      *string      `json:"status"`
	Description *string      `json:"description"`
	Discount    *json.Number `json:"discount"`
}

type updateProductForm struct {
	Status      *string  `json:"status" validate:"omitnil,oneof='In Stock' 'Stock Out'"`
	Description *string  `json:"description" validate:"omitnil,min=10"`
	Discount    *float64 `json:"discount" validate:"omitnil,gte=0,lte=100"`
}

type productChanges struct {
	Status      *domain.StockStatus
	Description *string
	Discount    *domain.Discount
}

func (b *updateProductBody) validate() (*productChanges, FieldErrors) {
	changes := &productChanges{}
	discount := decimal(b.Discount)

	var description *string
	if b.Description != nil {
		d := strings.TrimSpace(*b.Description)
		description = &d
	}

	errs := check(&updateProductForm{
		Status:      b.Status,
		Description: description,
		Discount:    asFloat(b.Discount, discount),
	})
	if len(errs) > 0 {
		return changes, errs
	}

	if b.Status != nil {
		status, err := domain.ParseStockStatus(*b.Status)
		if err != nil {
			errs.Add("status", msgStatus)
			return changes, errs
		}
		changes.Status = &status
	}
	changes.Description = description
	if discount != nil {
		d, err := domain.NewDiscount(discount)
		if err != nil {
			errs.Add("discount", msgDiscount)
			return changes, errs
		}
		changes.Discount = d
	}
	return changes, errs
}

type listForm struct {
	Category string `json:"category" validate:"omitempty,uuid"`
	Page     *int   `json:"page" validate:"omitnil,gte=1"`
	Limit    *int   `json:"limit" validate:"omitnil,gte=1,lte=100"`
}

type listParams struct {
	CategoryID string
	Search     string
	Page       int
	Limit      int
}

func parseListParams(q url.Values) (*listParams, FieldErrors) {
	p := &listParams{
		CategoryID: strings.TrimSpace(q.Get("category")),
		Search:     strings.TrimSpace(q.Get("search")),
	}
	page := integer(q.Get("page"))
	limit := integer(q.Get("limit"))

	errs := check(&listForm{Category: p.CategoryID, Page: page, Limit: limit})
	if page != nil {
		p.Page = *page
	}
	if limit != nil {
		p.Limit = *limit
	}
	return p, errs
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

// decimal parses a JSON number or numeric string exactly.
func decimal(n *json.Number) *big.Rat {
	if n == nil {
		return nil
	}
	v, ok := new(big.Rat).SetString(strings.TrimSpace(n.String()))
	if !ok {
		return nil
	}
	return v
}

// asFloat gives the range rules a value to check. A present but unparseable
// number becomes NaN, which fails every comparison.
func asFloat(raw *json.Number, v *big.Rat) *float64 {
	if raw == nil {
		return nil
	}
	f := math.NaN()
	if v != nil {
		f, _ = v.Float64()
	}
	return &f
}

// integer parses a query parameter. A malformed value becomes 0, which the
// lower bounds reject.
func integer(raw string) *int {
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		n = 0
	}
	return &n
}

// isURL accepts absolute http(s) URLs and bare host URLs such as
// "cdn.example.com/a.png".
func isURL(s string) bool {
	if s == "" || strings.ContainsAny(s, " \t\n") {
		return false
	}
	if !strings.Contains(s, "://") {
		s = "http://" + s
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	host := u.Hostname()
	return host != "" && (strings.Contains(host, ".") || host == "localhost")
}
