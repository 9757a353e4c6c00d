package route

import (
	"github.com/SeakMengs/CardProof/internal/controller"
	"github.com/gin-gonic/gin"
)

func V1_Cards(r *gin.RouterGroup, cardController *controller.CardController) {
	v1 := r.Group("/v1/cards")
	{
		v1.POST("/generate", cardController.Generate)
		v1.POST("/preview", cardController.Preview)
	}
}
