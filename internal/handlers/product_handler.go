package handlers

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strconv"
	"strings"

	"vyapar/internal/middleware"
	"vyapar/internal/models"
	"vyapar/internal/repositories"
	"vyapar/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxProductImages = 5

// ProductHandler exposes seller listing management, the public catalogue and
// the cross-seller comparison route.
type ProductHandler struct {
	productService *services.ProductService
	compareService *services.CompareService
	companyService *services.CompanyService
	authService    *services.AuthService
	validate       *validator.Validate
	uploadDir      string
	baseDomain     string
	log            *zap.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(
	productService *services.ProductService,
	compareService *services.CompareService,
	companyService *services.CompanyService,
	authService *services.AuthService,
	uploadDir, baseDomain string,
	log *zap.Logger,
) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		compareService: compareService,
		companyService: companyService,
		authService:    authService,
		validate:       newValidator(),
		uploadDir:      uploadDir,
		baseDomain:     baseDomain,
		log:            log,
	}
}

// RegisterRoutes mounts the product routes. Static segments are registered
// before the parameterized detail route so they are never shadowed by it.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	auth := middleware.AuthRequired(h.authService)

	products := router.Group("/products")
	products.Get("/", h.Filter)
	products.Get("/random", h.Random)
	products.Get("/category/:category", h.ByCategory)
	products.Get("/:id/redirect", h.Redirect)

	products.Post("/", auth, h.Create)
	products.Get("/seller/me", auth, h.ListMine)
	products.Get("/store/:subdomain", auth, h.StoreFront)
	products.Get("/compare/:productId", auth, h.Compare)
	products.Put("/:id", auth, h.Update)
	products.Delete("/:id", auth, h.Delete)
	products.Get("/:productId", auth, h.Detail)
}

// Create adds a listing under the caller's company. Accepts JSON or a
// multipart form carrying up to five image files.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	scope, err := h.companyService.Resolve(userID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}

	var input services.CreateProductInput
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		form, err := c.MultipartForm()
		if err != nil {
			return respondMessage(c, fiber.StatusBadRequest, "Invalid multipart form")
		}
		input, err = h.parseMultipartProduct(c, form)
		if err != nil {
			return respondMessage(c, fiber.StatusBadRequest, err.Error())
		}
	} else if err := c.BodyParser(&input); err != nil {
		return respondMessage(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(input); err != nil {
		return respondValidation(c, err)
	}

	product, err := h.productService.Create(scope, input)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return respondCreated(c, product, "Product created successfully")
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	scope, err := h.companyService.Resolve(userID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}

	var input services.UpdateProductInput
	if err := c.BodyParser(&input); err != nil {
		return respondMessage(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(input); err != nil {
		return respondValidation(c, err)
	}

	product, err := h.productService.Update(scope, c.Params("id"), input)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return respondOK(c, product)
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	scope, err := h.companyService.Resolve(userID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	if err := h.productService.Delete(scope, c.Params("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Product deleted successfully",
	})
}

func (h *ProductHandler) ListMine(c *fiber.Ctx) error {
	scope, err := h.companyService.Resolve(userID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	products, err := h.productService.ListMine(scope)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return respondOK(c, products)
}

// Filter runs the public catalogue query with keyword, category, price and
// tag filters plus pagination.
func (h *ProductHandler) Filter(c *fiber.Ctx) error {
	filter := repositories.ProductFilter{
		Keyword:  c.Query("keyword"),
		Category: c.Query("category"),
		Sort:     c.Query("sort"),
		Page:     c.QueryInt("page", 1),
		Limit:    c.QueryInt("limit", 10),
	}
	if raw := c.Query("minPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MinPrice = &v
		}
	}
	if raw := c.Query("maxPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MaxPrice = &v
		}
	}
	if raw := c.Query("tags"); raw != "" {
		filter.Tags = splitCSV(raw)
	}

	items, total, pages, err := h.productService.Filter(filter)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return respondOK(c, fiber.Map{
		"products": items,
		"pagination": fiber.Map{
			"total": total,
			"page":  filter.Page,
			"limit": filter.Limit,
			"pages": pages,
		},
	})
}

func (h *ProductHandler) Random(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 12)
	products, err := h.productService.Random(limit)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return respondOK(c, products)
}

func (h *ProductHandler) ByCategory(c *fiber.Ctx) error {
	items, err := h.productService.ByCategory(c.Params("category"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return respondOK(c, items)
}

func (h *ProductHandler) StoreFront(c *fiber.Ctx) error {
	products, err := h.productService.StoreFront(c.Params("subdomain"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return respondOK(c, products)
}

// Redirect sends the buyer to the product page on the seller's storefront
// subdomain.
func (h *ProductHandler) Redirect(c *fiber.Ctx) error {
	url, err := h.productService.RedirectURL(c.Params("id"), h.baseDomain)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Redirect(url, fiber.StatusFound)
}

func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	product, err := h.productService.GetActive(c.Params("productId"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return respondOK(c, product)
}

// Compare returns competing listings for a product across other sellers with
// the price spread.
func (h *ProductHandler) Compare(c *fiber.Ctx) error {
	result, err := h.compareService.Compare(c.Params("productId"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return respondOK(c, result)
}

// parseMultipartProduct reads the listing fields from a multipart form and
// stores the uploaded image files under the upload directory with generated
// names.
func (h *ProductHandler) parseMultipartProduct(c *fiber.Ctx, form *multipart.Form) (services.CreateProductInput, error) {
	value := func(key string) string {
		if vs := form.Value[key]; len(vs) > 0 {
			return strings.TrimSpace(vs[0])
		}
		return ""
	}

	input := services.CreateProductInput{
		Name:        value("name"),
		Category:    value("category"),
		Description: value("description"),
		Tags:        splitCSV(value("tags")),
		Location: models.Location{
			City:    value("city"),
			State:   value("state"),
			Country: value("country"),
		},
	}
	if raw := value("price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return input, fmt.Errorf("invalid price value")
		}
		input.Price = v
	}
	if raw := value("stock"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return input, fmt.Errorf("invalid stock value")
		}
		input.Stock = v
	}
	if raw := value("minOrderQty"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return input, fmt.Errorf("invalid minOrderQty value")
		}
		input.MinOrderQty = v
	}

	files := form.File["images"]
	if len(files) > maxProductImages {
		return input, fmt.Errorf("a product can carry at most %d images", maxProductImages)
	}
	for _, file := range files {
		name := uuid.New().String() + filepath.Ext(file.Filename)
		if err := c.SaveFile(file, filepath.Join(h.uploadDir, name)); err != nil {
			return input, fmt.Errorf("failed to store image %s", file.Filename)
		}
		input.Images = append(input.Images, models.ProductImage{
			URL: "/uploads/" + name,
			Alt: input.Name,
		})
	}
	return input, nil
}

func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
