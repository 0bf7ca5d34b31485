package handlers

import (
	"errors"
	"log"

	"bloglist/internal/middleware"
	"bloglist/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// BlogHandler handles HTTP requests for blogs.
type BlogHandler struct {
	service  *services.BlogService
	validate *validator.Validate
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(service *services.BlogService) *BlogHandler {
	return &BlogHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers blog routes. Reads go on the public router;
// every mutation goes on the protected router behind the auth guard.
func (h *BlogHandler) RegisterRoutes(public fiber.Router, protected fiber.Router) {
	publicRoutes := public.Group("/blogs")
	publicRoutes.Get("/", h.HandleGetBlogs)
	publicRoutes.Get("/:id", h.HandleGetBlogByID)

	protectedRoutes := protected.Group("/blogs")
	protectedRoutes.Post("/", h.HandleCreateBlog)
	protectedRoutes.Put("/:id", h.HandleUpdateBlog)
	protectedRoutes.Delete("/:id", h.HandleDeleteBlog)
	protectedRoutes.Post("/:id/like", h.HandleLikeBlog)
}

// HandleGetBlogs retrieves all blogs. Public.
func (h *BlogHandler) HandleGetBlogs(c *fiber.Ctx) error {
	blogs, err := h.service.GetAllBlogs()
	if err != nil {
		log.Printf("Error getting all blogs: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve blogs",
		})
	}
	return c.JSON(blogs)
}

// HandleGetBlogByID retrieves a single blog by its ID. Public.
func (h *BlogHandler) HandleGetBlogByID(c *fiber.Ctx) error {
	blogID := c.Params("id")
	blog, err := h.service.GetBlogByID(blogID)
	if err != nil {
		return h.errorResponse(c, blogID, err)
	}
	return c.JSON(blog)
}

// HandleCreateBlog creates a new blog owned by the authenticated user.
func (h *BlogHandler) HandleCreateBlog(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication required",
		})
	}

	var input services.BlogInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing blog create body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationErrorMap(err),
		})
	}

	blog, err := h.service.CreateBlog(user, input)
	if err != nil {
		return h.errorResponse(c, "", err)
	}
	return c.Status(fiber.StatusCreated).JSON(blog)
}

// HandleUpdateBlog replaces a blog's fields. Owner only.
func (h *BlogHandler) HandleUpdateBlog(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication required",
		})
	}

	blogID := c.Params("id")
	var input services.BlogInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing blog update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationErrorMap(err),
		})
	}

	blog, err := h.service.UpdateBlog(user, blogID, input)
	if err != nil {
		return h.errorResponse(c, blogID, err)
	}
	return c.JSON(blog)
}

// HandleDeleteBlog removes a blog. Owner only.
func (h *BlogHandler) HandleDeleteBlog(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication required",
		})
	}

	blogID := c.Params("id")
	if err := h.service.DeleteBlog(user, blogID); err != nil {
		return h.errorResponse(c, blogID, err)
	}
	return c.JSON(fiber.Map{
		"message": "Blog deleted successfully",
	})
}

// HandleLikeBlog increments a blog's like counter by one. Not
// permitted on the caller's own blog.
func (h *BlogHandler) HandleLikeBlog(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication required",
		})
	}

	blogID := c.Params("id")
	blog, err := h.service.LikeBlog(user, blogID)
	if err != nil {
		return h.errorResponse(c, blogID, err)
	}
	return c.JSON(blog)
}

// errorResponse maps service errors onto HTTP statuses. Forbidden and
// not-found stay distinct so a denied mutation is never mistaken for a
// missing resource.
func (h *BlogHandler) errorResponse(c *fiber.Ctx, blogID string, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Blog not found",
			"error":   err.Error(),
		})
	case errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "You do not have permission to perform this action",
			"error":   err.Error(),
		})
	case errors.Is(err, services.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	default:
		log.Printf("Error handling blog %s: %v", blogID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not complete the request",
		})
	}
}
