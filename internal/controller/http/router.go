package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Routes holds the handlers and the middleware the API is mounted with.
// RateLimit may be nil.
type Routes struct {
	Users        *UserHandler
	Videos       *VideoHandler
	Comments     *CommentHandler
	Auth         gin.HandlerFunc
	RateLimit    gin.HandlerFunc
	VideoOwner   gin.HandlerFunc
	CommentOwner gin.HandlerFunc
}

func (rt Routes) protected() []gin.HandlerFunc {
	chain := []gin.HandlerFunc{rt.Auth}
	if rt.RateLimit != nil {
		chain = append(chain, rt.RateLimit)
	}
	return chain
}

// Register mounts every endpoint on r.
func (rt Routes) Register(r gin.IRouter) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	users := r.Group("/users")
	{
		public := users.Group("")
		if rt.RateLimit != nil {
			public.Use(rt.RateLimit)
		}
		public.POST("/register", rt.Users.Register)
		public.POST("/login", rt.Users.Login)

		me := users.Group("", rt.protected()...)
		me.GET("/get", rt.Users.GetUser)
		me.PUT("/update", rt.Users.UpdateUser)
		me.DELETE("/delete", rt.Users.DeleteUser)
	}

	videos := r.Group("/videos", rt.protected()...)
	{
		videos.GET("", rt.Videos.ListVideos)
		videos.GET("/category/:section", rt.Videos.ListByCategory)
		videos.GET("/detail/:idVideo", rt.Videos.GetVideo)
		videos.POST("/myvideos/create", rt.Videos.CreateVideo)
		videos.GET("/myvideos/created", rt.Videos.ListMyVideos)
		videos.GET("/myvideos/favourite", rt.Videos.ListFavourites)
		videos.DELETE("/myvideos/delete/:idVideo", rt.VideoOwner, rt.Videos.DeleteVideo)
		videos.PUT("/myvideos/update/:idVideo", rt.VideoOwner, rt.Videos.UpdateVideo)
		videos.PATCH("/favourite/:idVideo", rt.Videos.AddFavourite)
		videos.PATCH("/myvideos/favourite/delete/:idVideo", rt.Videos.RemoveFavourite)
	}

	comments := r.Group("/comments", rt.protected()...)
	{
		comments.GET("/get/:idComment", rt.Comments.GetComment)
		comments.POST("/create/:idVideo", rt.Comments.CreateComment)
		comments.PUT("/update/:idComment", rt.CommentOwner, rt.Comments.UpdateComment)
		comments.DELETE("/delete/:idVideo/:idComment", rt.CommentOwner, rt.Comments.DeleteComment)
	}
}
