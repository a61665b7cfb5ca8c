package routes

import (
	"jiyajewellery/internal/adapter/http/handlers"
	"jiyajewellery/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

func addCatalogRoutes(rg *gin.RouterGroup, rateHandler *handlers.RateHandler, catalogHandler *handlers.CatalogHandler) {
	admin := middleware.RequireRole(middleware.RoleAdmin)

	rates := rg.Group(PathRates)
	{
		rates.POST("", admin, rateHandler.Publish)
		rates.GET("/current", rateHandler.Current)
	}

	products := rg.Group(PathProducts)
	{
		products.POST("", admin, catalogHandler.CreateProduct)
		products.GET("", catalogHandler.ListProducts)
		products.GET("/:id", catalogHandler.GetProduct)
	}

	tags := rg.Group(PathOpenTags, middleware.RequireRole(middleware.RoleAdmin, middleware.RoleSalesperson))
	{
		tags.POST("", admin, catalogHandler.CreateOpenTag)
		tags.GET("/:tag_number", catalogHandler.GetOpenTag)
	}
}
