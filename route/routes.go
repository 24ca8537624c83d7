package route

import (
	"github.com/gin-gonic/gin"

	"github.com/cloverwhale/cafe-and-wifi/auth"
	"github.com/cloverwhale/cafe-and-wifi/controller"
	"github.com/cloverwhale/cafe-and-wifi/store"
	"github.com/cloverwhale/cafe-and-wifi/utils"
)

// APIRoutes registers the public JSON API surface. Only report-closed
// is guarded, by the shared secret.
func APIRoutes(router *gin.Engine, cafes *store.DirectoryStore, apiKey string) {
	router.GET("/random", controller.GetRandomCafe(cafes))
	router.GET("/all", controller.GetAllCafes(cafes))
	router.GET("/search", controller.SearchCafes(cafes))
	router.POST("/add", controller.AddCafe(cafes))
	router.PATCH("/update-price/:id", controller.UpdateCafePrice(cafes))
	router.DELETE("/report-closed/:id", utils.RequireAPIKey(apiKey), controller.ReportClosed(cafes))
}

// WebRoutes registers the session surface. Add/edit/export need a
// session; delete and import need the admin on top of that.
func WebRoutes(router *gin.Engine, users *store.UserStore, cafes *store.CafeStore, secret string) {
	router.GET("/", controller.ListCafes(cafes))
	router.GET("/about", controller.About())

	router.GET("/register", auth.RegisterPage())
	router.POST("/register", auth.Register(users, secret))
	router.GET("/login", auth.LoginPage())
	router.POST("/login", auth.Login(users, secret))
	router.GET("/logout", auth.Logout())

	session := router.Group("/")
	session.Use(utils.RequireSession(secret, users))
	{
		session.GET("/add", controller.NewCafeForm())
		session.POST("/add", controller.CreateCafe(cafes))
		session.GET("/edit/:id", controller.EditCafeForm(cafes))
		session.POST("/edit/:id", controller.UpdateCafe(cafes))
		session.GET("/export", controller.ExportCafes(cafes))

		admin := session.Group("/")
		admin.Use(utils.AdminOnly())
		{
			admin.GET("/delete/:id", controller.DeleteCafe(cafes))
			admin.POST("/import", controller.ImportCafes(cafes))
		}
	}
}
