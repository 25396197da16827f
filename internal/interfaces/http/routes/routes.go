// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/KarenBrasil/Cestas-Presentes/internal/domain/catalog"
	"github.com/KarenBrasil/Cestas-Presentes/internal/domain/pricing"
	"github.com/KarenBrasil/Cestas-Presentes/internal/interfaces/http/handlers"
	"github.com/KarenBrasil/Cestas-Presentes/internal/pkg/draft"
	"github.com/KarenBrasil/Cestas-Presentes/internal/session"
)

// SetupRoutes wires all storefront routes into the API group. Every route
// except the catalog and storefront reads operates on the caller's session.
func SetupRoutes(rg *gin.RouterGroup, store session.Store, cat *catalog.Catalog, engine *pricing.Engine, drafts *draft.Client) {
	catalogHandler := handlers.NewCatalogHandler(cat)
	builderHandler := handlers.NewBuilderHandler(store, cat, engine)
	cartHandler := handlers.NewCartHandler(store, engine)
	flowHandler := handlers.NewFlowHandler(store)
	messageHandler := handlers.NewMessageHandler(drafts)
	storefrontHandler := handlers.NewStorefrontHandler()

	catalogGroup := rg.Group("/catalog")
	{
		catalogGroup.GET("/products", catalogHandler.GetProducts)
		catalogGroup.GET("/categories", catalogHandler.GetCategories)
		catalogGroup.GET("/pricing", catalogHandler.GetPricing)
	}

	builder := rg.Group("/builder")
	{
		custom := builder.Group("/custom")
		{
			custom.GET("", builderHandler.GetCustomBuilder)
			custom.POST("/items", builderHandler.AddCustomItem)
			custom.DELETE("/items/:id", builderHandler.RemoveCustomItem)
			custom.PUT("/message", builderHandler.SetCustomMessage)
			custom.PUT("/bouquet", builderHandler.SetCustomBouquet)
			custom.POST("/finalize", builderHandler.FinalizeCustom)
		}

		standard := builder.Group("/standard")
		{
			standard.GET("", builderHandler.GetStandard)
			standard.PUT("", builderHandler.UpdateStandard)
			standard.POST("/finalize", builderHandler.FinalizeStandard)
		}
	}

	cartGroup := rg.Group("/cart")
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.DELETE("/baskets/:id", cartHandler.RemoveBasket)
	}

	flowGroup := rg.Group("/flow")
	{
		flowGroup.GET("", flowHandler.GetFlow)
		flowGroup.POST("/navigate", flowHandler.Navigate)
		flowGroup.PUT("/note", flowHandler.SetNote)
		flowGroup.POST("/confirm", flowHandler.Confirm)
		flowGroup.POST("/finish", flowHandler.Finish)
	}

	rg.POST("/messages/draft", messageHandler.Draft)

	storefront := rg.Group("/storefront")
	{
		storefront.GET("/faq", storefrontHandler.GetFAQ)
		storefront.GET("/contact", storefrontHandler.GetContact)
	}
}
