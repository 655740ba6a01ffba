package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"webshop-api/pkg/lambda"
)

// RouterConfig holds the handlers exposed by the local server.
type RouterConfig struct {
	ShopHandler    *ShopHandler
	ProductHandler *ProductHandler
}

// SetupRoutes configures all API routes. The local server exposes the same
// operations as the per-entity Lambda functions, through the same handler
// methods.
func SetupRoutes(router *gin.Engine, config *RouterConfig) {
	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "webshop-api",
			"mode":    "server",
		})
	})

	shops := router.Group("/shops")
	{
		shops.POST("", wrapHandler(config.ShopHandler.HandleCreate))
		shops.GET("", wrapHandler(config.ShopHandler.HandleList))
		shops.GET("/:id", wrapHandler(config.ShopHandler.HandleGet))
		shops.PUT("/:id", wrapHandler(config.ShopHandler.HandleUpdate))
		shops.DELETE("/:id", wrapHandler(config.ShopHandler.HandleDelete))
	}

	products := router.Group("/products")
	{
		products.POST("", wrapHandler(config.ProductHandler.HandleCreate))
		products.GET("", wrapHandler(config.ProductHandler.HandleList))
		products.GET("/shop/:id", wrapHandler(config.ProductHandler.HandleListByShop))
		products.GET("/:id", wrapHandler(config.ProductHandler.HandleGet))
		products.PUT("/:id", wrapHandler(config.ProductHandler.HandleUpdate))
		products.DELETE("/:id", wrapHandler(config.ProductHandler.HandleDelete))
	}
}

// wrapHandler adapts a Lambda-shaped entity handler to a gin route.
func wrapHandler(h func(context.Context, *lambda.Request) (*lambda.Response, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body []byte
		if c.Request.Body != nil {
			body, _ = io.ReadAll(c.Request.Body)
		}

		pathParams := make(map[string]string, len(c.Params))
		for _, p := range c.Params {
			pathParams[p.Key] = p.Value
		}

		headers := make(map[string]string, len(c.Request.Header))
		for k := range c.Request.Header {
			headers[k] = c.Request.Header.Get(k)
		}

		queryParams := make(map[string]string)
		for k := range c.Request.URL.Query() {
			queryParams[k] = c.Query(k)
		}

		req := &lambda.Request{
			Method:      c.Request.Method,
			Path:        c.Request.URL.Path,
			Headers:     headers,
			QueryParams: queryParams,
			Body:        body,
			PathParams:  pathParams,
		}

		resp, err := h(c.Request.Context(), req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		for k, v := range resp.Headers {
			c.Header(k, v)
		}
		c.Data(resp.StatusCode, resp.Headers["Content-Type"], resp.Body)
	}
}
