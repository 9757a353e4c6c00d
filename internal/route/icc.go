package route

import (
	"github.com/SeakMengs/CardProof/internal/controller"
	"github.com/gin-gonic/gin"
)

func V1_ICCProfiles(r *gin.RouterGroup, iccController *controller.ICCController) {
	v1 := r.Group("/v1/icc-profiles")
	{
		v1.GET("", iccController.List)
		v1.POST("", iccController.Upload)
		v1.DELETE("/:filename", iccController.Delete)
	}
}
