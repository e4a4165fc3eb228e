package router

import (
	"net/http"

	"bobcathub/internal/handler"
	"bobcathub/internal/middleware"
	"bobcathub/internal/model"

	"github.com/gin-gonic/gin"
)

// New wires the role-gated route groups. Viewing routes use the broad
// policy: club officers and admins may browse the student pages, the club
// group admits admins, the admin group admits admins only.
func New(
	auth *handler.AuthHandler,
	student *handler.StudentHandler,
	club *handler.ClubHandler,
	admin *handler.AdminHandler,
	authMW gin.HandlerFunc,
) *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"msg": "BobcatHub club directory"})
	})

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.Register)
		authGroup.POST("/login", auth.Login)
		authGroup.POST("/refresh", auth.Refresh)
		authGroup.GET("/logout", authMW, auth.Logout)
	}

	studentGroup := r.Group("/student")
	studentGroup.Use(authMW, middleware.RequireRole("Access denied.",
		model.RoleStudent, model.RoleClub, model.RoleAdmin))
	{
		studentGroup.GET("/dashboard", student.Dashboard)
		studentGroup.GET("/following", student.Following)
		studentGroup.GET("/my-rsvps", student.MyRSVPs)
		studentGroup.GET("/clubs", student.BrowseClubs)
		studentGroup.GET("/club/:slug", student.ClubDetail)
		studentGroup.GET("/my-clubs", student.MyClubs)
		studentGroup.GET("/event/:id", student.EventDetail)
		studentGroup.POST("/rsvp/:post_id", student.ToggleRSVP)
		studentGroup.POST("/follow/:club_id", student.ToggleFollow)
	}

	clubGroup := r.Group("/club")
	clubGroup.Use(authMW, middleware.RequireRole("Access denied. Club Officer account required.",
		model.RoleClub, model.RoleAdmin))
	{
		clubGroup.GET("/dashboard", club.Dashboard)
		clubGroup.POST("/create_event", club.CreateEvent)
	}

	adminGroup := r.Group("/admin")
	adminGroup.Use(authMW, middleware.RequireRole("Access denied. Admin account required.",
		model.RoleAdmin))
	{
		adminGroup.GET("/dashboard", admin.Dashboard)
		adminGroup.GET("/verify_club/:id", admin.VerifyClub)
		adminGroup.DELETE("/user/:id", admin.DeleteUser)
		adminGroup.DELETE("/club/:id", admin.DeleteClub)
	}

	return r
}
